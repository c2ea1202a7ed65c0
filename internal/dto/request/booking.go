package request

// BookingRequest is used for both creation and full update. The start/end
// ordering rule is cross-field and checked in the service, accumulated with
// the tag violations below.
type BookingRequest struct {
	StudentID     int64    `json:"student_id" validate:"required"`
	InstructorID  int64    `json:"instructor_id" validate:"required"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string   `json:"end_time" validate:"required,datetime=15:04"`
	ClassType     string   `json:"class_type"`
	Room          string   `json:"room"`
	Notes         string   `json:"notes"`
	Equipment     []string `json:"equipment"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	PaymentStatus string   `json:"payment_status" validate:"omitempty,oneof=Pendente Pago Isento"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED CONFIRMED COMPLETED CANCELLED NO_SHOW"`
}

type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=Pendente Pago Isento"`
}

type EquipmentRequest struct {
	Item string `json:"item" validate:"required"`
}
