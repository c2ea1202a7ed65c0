package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_LabelsBijective(t *testing.T) {
	statuses := []BookingStatus{
		BookingStatusScheduled,
		BookingStatusConfirmed,
		BookingStatusCompleted,
		BookingStatusCancelled,
		BookingStatusNoShow,
	}

	seen := make(map[string]bool)
	for _, status := range statuses {
		label := status.Label()
		assert.NotEmpty(t, label, "status %s has no label", status)
		assert.False(t, seen[label], "label %s mapped twice", label)
		seen[label] = true

		back, ok := BookingStatusFromLabel(label)
		assert.True(t, ok)
		assert.Equal(t, status, back)
	}

	_, ok := BookingStatusFromLabel("Pendente")
	assert.False(t, ok)
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("NO_SHOW")
	assert.True(t, ok)
	assert.Equal(t, BookingStatusNoShow, status)
	assert.Equal(t, "Falta", status.Label())

	_, ok = ParseBookingStatus("Agendado")
	assert.False(t, ok, "display labels are not wire tokens")
}

func TestBooking_SetStatusSameStateIsNoOp(t *testing.T) {
	booking := Booking{
		ID:            1,
		StudentID:     3,
		StudentName:   "Maria Oliveira",
		Status:        BookingStatusConfirmed,
		Equipment:     []string{"Mat", "Bola"},
		Price:         120,
		PaymentStatus: PaymentPending,
		CreatedAt:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	before := booking.Clone()

	booking.SetStatus(BookingStatusConfirmed)
	assert.Equal(t, before, booking)
}

func TestBooking_SetStatusAnyToAny(t *testing.T) {
	booking := Booking{Status: BookingStatusCancelled}

	// no transition table: cancelled records can be re-scheduled directly
	booking.SetStatus(BookingStatusScheduled)
	assert.Equal(t, BookingStatusScheduled, booking.Status)

	booking.SetStatus(BookingStatusNoShow)
	assert.Equal(t, BookingStatusNoShow, booking.Status)
}

func TestBooking_AddEquipmentSetSemantics(t *testing.T) {
	booking := Booking{}

	booking.AddEquipment("Mat")
	booking.AddEquipment("Mat")
	assert.Equal(t, []string{"Mat"}, booking.Equipment)

	// case-sensitive: "mat" is a distinct item
	booking.AddEquipment("mat")
	assert.Equal(t, []string{"Mat", "mat"}, booking.Equipment)

	booking.AddEquipment("  Bola  ")
	assert.Equal(t, []string{"Mat", "mat", "Bola"}, booking.Equipment)

	booking.AddEquipment("   ")
	assert.Len(t, booking.Equipment, 3)
}

func TestBooking_RemoveEquipment(t *testing.T) {
	booking := Booking{Equipment: []string{"Mat", "Bola"}}

	booking.RemoveEquipment("Mat")
	assert.Equal(t, []string{"Bola"}, booking.Equipment)

	booking.RemoveEquipment("Faixa")
	assert.Equal(t, []string{"Bola"}, booking.Equipment)
}

func TestBooking_CloneDoesNotAliasEquipment(t *testing.T) {
	booking := Booking{Equipment: []string{"Mat"}}
	clone := booking.Clone()

	clone.AddEquipment("Bola")
	assert.Equal(t, []string{"Mat"}, booking.Equipment)
}

func TestPaymentStatus_Valid(t *testing.T) {
	assert.True(t, PaymentPending.Valid())
	assert.True(t, PaymentPaid.Valid())
	assert.True(t, PaymentExempt.Valid())
	assert.False(t, PaymentStatus("Atrasado").Valid())
}
