package response

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
)

// SessionSummary is the compact session shape the dashboard panels render.
type SessionSummary struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	ClassType      string `json:"class_type"`
	Status         string `json:"status"`
	StatusLabel    string `json:"status_label"`
	Room           string `json:"room"`
	StudentName    string `json:"student_name"`
	InstructorName string `json:"instructor_name"`
}

// DashboardResponse carries both panels. A panel whose fetch failed comes
// back empty; the other panel is unaffected.
type DashboardResponse struct {
	Today    []SessionSummary `json:"today"`
	Upcoming []SessionSummary `json:"upcoming"`
}

type ReportSummaryResponse struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingPayments   int64 `json:"pending_payments"`
	BookingsThisMonth int64 `json:"bookings_this_month"`
	SessionsNext7Days int64 `json:"sessions_next_7_days"`
	TotalCapacity     int   `json:"total_capacity"`
	TotalSlotBookings int   `json:"total_slot_bookings"`
	AverageOccupancy  int   `json:"average_occupancy"`
}

func BookingToSummary(booking *entity.Booking) SessionSummary {
	return SessionSummary{
		ID:             booking.ID,
		Date:           booking.Date,
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		ClassType:      booking.ClassType,
		Status:         string(booking.Status),
		StatusLabel:    booking.Status.Label(),
		Room:           booking.Room,
		StudentName:    booking.StudentName,
		InstructorName: booking.InstructorName,
	}
}
