package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"

	"go.uber.org/zap"
)

type WeekRepository interface {
	GetWeek(ctx context.Context) (entity.WeekSchedule, error)
	AddSlot(ctx context.Context, day string, slot entity.TimeSlot) (entity.TimeSlot, error)
	UpdateSlotCapacity(ctx context.Context, slotID int64, capacity int) (entity.TimeSlot, error)
	RemoveSlot(ctx context.Context, day string, slotID int64) error
	Totals(ctx context.Context) (capacity, bookings, averageOccupancy int, err error)
}

// weekRepository owns the studio week in memory. All mutation goes through
// the mutex, which also serializes slot id allocation.
type weekRepository struct {
	mu   sync.Mutex
	week entity.WeekSchedule
	log  *zap.Logger
}

func NewWeekRepository(week entity.WeekSchedule, log *zap.Logger) WeekRepository {
	return &weekRepository{
		week: week,
		log:  log.With(zap.String("repository", "week")),
	}
}

func (r *weekRepository) GetWeek(_ context.Context) (entity.WeekSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneWeek(r.week), nil
}

// AddSlot assigns the next global slot id, inserts into the named day and
// restores time order.
func (r *weekRepository) AddSlot(_ context.Context, day string, slot entity.TimeSlot) (entity.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.week.Day(day)
	if !ok {
		return entity.TimeSlot{}, fmt.Errorf("day %s not found", day)
	}

	slot.ID = r.week.NextSlotID()
	target.AddSlot(slot)

	r.log.Info("Slot added",
		zap.Int64("slot_id", slot.ID),
		zap.String("day", day),
		zap.String("time", slot.Time),
		zap.Int("max_capacity", slot.MaxCapacity),
	)

	return slot, nil
}

func (r *weekRepository) UpdateSlotCapacity(_ context.Context, slotID int64, capacity int) (entity.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.week.Days {
		for j := range r.week.Days[i].Slots {
			if r.week.Days[i].Slots[j].ID == slotID {
				r.week.Days[i].Slots[j].MaxCapacity = capacity
				return r.week.Days[i].Slots[j], nil
			}
		}
	}

	return entity.TimeSlot{}, fmt.Errorf("slot %d not found", slotID)
}

func (r *weekRepository) RemoveSlot(_ context.Context, day string, slotID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.week.Day(day)
	if !ok {
		return fmt.Errorf("day %s not found", day)
	}

	if !target.RemoveSlot(slotID) {
		return fmt.Errorf("slot %d not found", slotID)
	}

	r.log.Info("Slot removed", zap.Int64("slot_id", slotID), zap.String("day", day))
	return nil
}

func (r *weekRepository) Totals(_ context.Context) (int, int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.week.TotalCapacity(), r.week.TotalBookings(), r.week.AverageOccupancy(), nil
}

func cloneWeek(week entity.WeekSchedule) entity.WeekSchedule {
	clone := entity.WeekSchedule{Days: make([]entity.DaySchedule, len(week.Days))}
	for i, day := range week.Days {
		copied := day
		copied.Slots = make([]entity.TimeSlot, len(day.Slots))
		copy(copied.Slots, day.Slots)
		clone.Days[i] = copied
	}
	return clone
}
