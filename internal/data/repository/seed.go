package repository

import (
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
)

// SampleWeek is the six-day studio week the schedule screen ships with.
func SampleWeek() entity.WeekSchedule {
	return entity.WeekSchedule{
		Days: []entity.DaySchedule{
			{
				Day:  "Segunda",
				Date: "2026-08-24",
				Slots: []entity.TimeSlot{
					{ID: 1, Time: "07:00", MaxCapacity: 6, CurrentBookings: 5, Room: "Sala 1", Instructor: "Sarah Costa Silva", ClassType: "Pilates Solo"},
					{ID: 2, Time: "09:00", MaxCapacity: 8, CurrentBookings: 4, Room: "Sala 2", Instructor: "Juliana Mendes", ClassType: "Pilates Aparelhos"},
					{ID: 3, Time: "18:00", MaxCapacity: 10, CurrentBookings: 9, Room: "Sala 1", Instructor: "Sarah Costa Silva", ClassType: "Pilates Solo"},
				},
			},
			{
				Day:  "Terça",
				Date: "2026-08-25",
				Slots: []entity.TimeSlot{
					{ID: 4, Time: "08:00", MaxCapacity: 6, CurrentBookings: 3, Room: "Sala 1", Instructor: "Carlos Eduardo Lima", ClassType: "Pilates Aparelhos"},
					{ID: 5, Time: "17:00", MaxCapacity: 8, CurrentBookings: 6, Room: "Sala 3", Instructor: "Juliana Mendes", ClassType: "Pilates na Gravidez"},
				},
			},
			{
				Day:  "Quarta",
				Date: "2026-08-26",
				Slots: []entity.TimeSlot{
					{ID: 6, Time: "07:00", MaxCapacity: 6, CurrentBookings: 6, Room: "Sala 1", Instructor: "Sarah Costa Silva", ClassType: "Pilates Solo"},
					{ID: 7, Time: "10:00", MaxCapacity: 4, CurrentBookings: 1, Room: "Sala 2", Instructor: "Carlos Eduardo Lima", ClassType: "Pilates Aparelhos"},
					{ID: 8, Time: "19:00", MaxCapacity: 10, CurrentBookings: 7, Room: "Sala 1", Instructor: "Juliana Mendes", ClassType: "Pilates Solo"},
				},
			},
			{
				Day:  "Quinta",
				Date: "2026-08-27",
				Slots: []entity.TimeSlot{
					{ID: 9, Time: "08:00", MaxCapacity: 8, CurrentBookings: 2, Room: "Sala 2", Instructor: "Juliana Mendes", ClassType: "Pilates Aparelhos"},
				},
			},
			{
				Day:  "Sexta",
				Date: "2026-08-28",
				Slots: []entity.TimeSlot{
					{ID: 10, Time: "07:00", MaxCapacity: 6, CurrentBookings: 4, Room: "Sala 1", Instructor: "Sarah Costa Silva", ClassType: "Pilates Solo"},
					{ID: 11, Time: "16:00", MaxCapacity: 8, CurrentBookings: 8, Room: "Sala 3", Instructor: "Carlos Eduardo Lima", ClassType: "Pilates na Gravidez"},
				},
			},
			{
				Day:  "Sábado",
				Date: "2026-08-29",
				Slots: []entity.TimeSlot{
					{ID: 12, Time: "09:00", MaxCapacity: 12, CurrentBookings: 5, Room: "Sala 1", Instructor: "Sarah Costa Silva", ClassType: "Pilates Solo"},
				},
			},
		},
	}
}

// SampleBookings seeds the booking collection.
func SampleBookings() []entity.Booking {
	return []entity.Booking{
		{
			ID:             1,
			StudentID:      1,
			StudentName:    "Maria Oliveira",
			InstructorID:   1,
			InstructorName: "Sarah Costa Silva",
			Date:           "2026-08-24",
			StartTime:      "07:00",
			EndTime:        "08:00",
			ClassType:      "Pilates Solo",
			Status:         entity.BookingStatusConfirmed,
			Room:           "Sala 1",
			Equipment:      []string{"Mat", "Bola"},
			Price:          120,
			PaymentStatus:  entity.PaymentPaid,
			CreatedAt:      time.Date(2026, 8, 10, 14, 30, 0, 0, time.Local),
		},
		{
			ID:             2,
			StudentID:      2,
			StudentName:    "João Pereira",
			InstructorID:   2,
			InstructorName: "Juliana Mendes",
			Date:           "2026-08-25",
			StartTime:      "17:00",
			EndTime:        "18:00",
			ClassType:      "Pilates Aparelhos",
			Status:         entity.BookingStatusScheduled,
			Room:           "Sala 3",
			Equipment:      []string{"Reformer"},
			Price:          150,
			PaymentStatus:  entity.PaymentPending,
			CreatedAt:      time.Date(2026, 8, 11, 9, 0, 0, 0, time.Local),
		},
		{
			ID:             3,
			StudentID:      3,
			StudentName:    "Ana Beatriz Santos",
			InstructorID:   1,
			InstructorName: "Sarah Costa Silva",
			Date:           "2026-08-28",
			StartTime:      "16:00",
			EndTime:        "17:00",
			ClassType:      "Pilates na Gravidez",
			Status:         entity.BookingStatusScheduled,
			Room:           "Sala 3",
			Price:          150,
			PaymentStatus:  entity.PaymentExempt,
			CreatedAt:      time.Date(2026, 8, 12, 16, 45, 0, 0, time.Local),
		},
	}
}
