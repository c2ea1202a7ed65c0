package response

import (
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
)

type BookingResponse struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"student_id"`
	StudentName    string    `json:"student_name"`
	InstructorID   int64     `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	ClassType      string    `json:"class_type"`
	Status         string    `json:"status"`       // wire token
	StatusLabel    string    `json:"status_label"` // display label
	Notes          string    `json:"notes"`
	Room           string    `json:"room"`
	Equipment      []string  `json:"equipment"`
	Price          float64   `json:"price"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	equipment := booking.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return BookingResponse{
		ID:             booking.ID,
		StudentID:      booking.StudentID,
		StudentName:    booking.StudentName,
		InstructorID:   booking.InstructorID,
		InstructorName: booking.InstructorName,
		Date:           booking.Date,
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		ClassType:      booking.ClassType,
		Status:         string(booking.Status),
		StatusLabel:    booking.Status.Label(),
		Notes:          booking.Notes,
		Room:           booking.Room,
		Equipment:      equipment,
		Price:          booking.Price,
		PaymentStatus:  string(booking.PaymentStatus),
		CreatedAt:      booking.CreatedAt,
	}
}
