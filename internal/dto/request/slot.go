package request

// CreateSlotRequest adds a slot to one day of the week. Capacity is bounded
// [1,100] here; capacity edits only enforce the lower bound, matching the
// asymmetric rules of the schedule screen.
type CreateSlotRequest struct {
	Time        string `json:"time" validate:"required,datetime=15:04"`
	MaxCapacity int    `json:"max_capacity" validate:"required,gte=1,lte=100"`
	Room        string `json:"room"`
	Instructor  string `json:"instructor"`
	ClassType   string `json:"class_type"`
}

type UpdateCapacityRequest struct {
	MaxCapacity int `json:"max_capacity" validate:"required,gte=1"`
}
