package entity

import (
	"strings"
	"time"
)

// BookingStatus values are the wire tokens exchanged with clients. The
// Portuguese display labels live in statusLabels; the mapping is total and
// bijective in both directions.
type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "SCHEDULED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusNoShow    BookingStatus = "NO_SHOW"
)

var statusLabels = map[BookingStatus]string{
	BookingStatusScheduled: "Agendado",
	BookingStatusConfirmed: "Confirmado",
	BookingStatusCompleted: "Concluído",
	BookingStatusCancelled: "Cancelado",
	BookingStatusNoShow:    "Falta",
}

// Label returns the display label for a status, empty for unknown tokens.
func (s BookingStatus) Label() string {
	return statusLabels[s]
}

func (s BookingStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseBookingStatus accepts a wire token.
func ParseBookingStatus(token string) (BookingStatus, bool) {
	status := BookingStatus(token)
	return status, status.Valid()
}

// BookingStatusFromLabel maps a display label back to its wire token.
func BookingStatusFromLabel(label string) (BookingStatus, bool) {
	for status, l := range statusLabels {
		if l == label {
			return status, true
		}
	}
	return "", false
}

// PaymentStatus is an independent field with no transition constraints.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pendente"
	PaymentPaid    PaymentStatus = "Pago"
	PaymentExempt  PaymentStatus = "Isento"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentExempt:
		return true
	}
	return false
}

// Booking is one scheduled session between a student and an instructor.
// StudentName and InstructorName are snapshots copied at creation time; a
// later rename of the source entity does not update historical records.
type Booking struct {
	ID             int64         `json:"id"`
	StudentID      int64         `json:"student_id"`
	StudentName    string        `json:"student_name"`
	InstructorID   int64         `json:"instructor_id"`
	InstructorName string        `json:"instructor_name"`
	Date           string        `json:"date"`       // "2006-01-02"
	StartTime      string        `json:"start_time"` // "HH:MM"
	EndTime        string        `json:"end_time"`   // "HH:MM"
	ClassType      string        `json:"class_type"`
	Status         BookingStatus `json:"status"`
	Notes          string        `json:"notes"`
	Room           string        `json:"room"`
	Equipment      []string      `json:"equipment"`
	Price          float64       `json:"price"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// SetStatus overwrites the status unconditionally. Any state is reachable
// from any other; setting the current status again is a no-op.
func (b *Booking) SetStatus(target BookingStatus) {
	b.Status = target
}

// AddEquipment appends an item with set semantics: the trimmed item is
// ignored when empty or already present. Matching is case-sensitive, so
// "mat" and "Mat" are distinct items.
func (b *Booking) AddEquipment(item string) {
	item = strings.TrimSpace(item)
	if item == "" {
		return
	}
	for _, existing := range b.Equipment {
		if existing == item {
			return
		}
	}
	b.Equipment = append(b.Equipment, item)
}

// RemoveEquipment removes by exact match; removing an absent item is a no-op.
func (b *Booking) RemoveEquipment(item string) {
	for i, existing := range b.Equipment {
		if existing == item {
			b.Equipment = append(b.Equipment[:i], b.Equipment[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy so callers never alias the stored record.
func (b Booking) Clone() Booking {
	clone := b
	if b.Equipment != nil {
		clone.Equipment = make([]string, len(b.Equipment))
		copy(clone.Equipment, b.Equipment)
	}
	return clone
}
