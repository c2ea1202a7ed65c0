package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"

	"go.uber.org/zap"
)

type BookingFilter struct {
	Status entity.BookingStatus // empty matches all
	Date   string               // "2006-01-02", empty matches all
	Search string               // case-insensitive student name match
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status entity.BookingStatus) (*entity.Booking, error)
	SetPaymentStatus(ctx context.Context, id int64, status entity.PaymentStatus) (*entity.Booking, error)
	AddEquipment(ctx context.Context, id int64, item string) (*entity.Booking, error)
	RemoveEquipment(ctx context.Context, id int64, item string) (*entity.Booking, error)
	FindByDate(ctx context.Context, date string) ([]*entity.Booking, error)
	FindBetween(ctx context.Context, from, to string) ([]*entity.Booking, error)
}

// bookingRepository holds the booking collection in memory. The mutex
// serializes the max(ids)+1 allocation, which would otherwise be unsafe
// with concurrent writers. Records are cloned on the way in and out so
// callers never share slices with the store.
type bookingRepository struct {
	mu       sync.Mutex
	bookings []entity.Booking
	log      *zap.Logger
}

func NewBookingRepository(seed []entity.Booking, log *zap.Logger) BookingRepository {
	bookings := make([]entity.Booking, 0, len(seed))
	for _, booking := range seed {
		bookings = append(bookings, booking.Clone())
	}

	return &bookingRepository{
		bookings: bookings,
		log:      log.With(zap.String("repository", "booking")),
	}
}

// nextID returns max(ids)+1, 1 for an empty collection. Callers hold the lock.
func (r *bookingRepository) nextID() int64 {
	var max int64
	for _, booking := range r.bookings {
		if booking.ID > max {
			max = booking.ID
		}
	}
	return max + 1
}

func (r *bookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.nextID()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	r.bookings = append(r.bookings, booking.Clone())

	r.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("student_id", booking.StudentID),
		zap.String("date", booking.Date),
		zap.String("start_time", booking.StartTime),
	)

	return nil
}

func (r *bookingRepository) FindByID(_ context.Context, id int64) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index(id); ok {
		found := r.bookings[i].Clone()
		return &found, nil
	}
	return nil, nil
}

func (r *bookingRepository) List(_ context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	search := strings.ToLower(filter.Search)

	var result []*entity.Booking
	for _, booking := range r.bookings {
		if filter.Status != "" && booking.Status != filter.Status {
			continue
		}
		if filter.Date != "" && booking.Date != filter.Date {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(booking.StudentName), search) {
			continue
		}
		found := booking.Clone()
		result = append(result, &found)
	}

	return result, nil
}

// Update overwrites every field of an existing record except the identifier
// and the creation timestamp, which are preserved from the stored copy.
func (r *bookingRepository) Update(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index(booking.ID)
	if !ok {
		return fmt.Errorf("booking %d not found", booking.ID)
	}

	booking.CreatedAt = r.bookings[i].CreatedAt
	r.bookings[i] = booking.Clone()
	return nil
}

func (r *bookingRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index(id)
	if !ok {
		return fmt.Errorf("booking %d not found", id)
	}

	r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}

func (r *bookingRepository) SetStatus(_ context.Context, id int64, status entity.BookingStatus) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index(id)
	if !ok {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	r.bookings[i].SetStatus(status)
	updated := r.bookings[i].Clone()
	return &updated, nil
}

func (r *bookingRepository) SetPaymentStatus(_ context.Context, id int64, status entity.PaymentStatus) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index(id)
	if !ok {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	r.bookings[i].PaymentStatus = status
	updated := r.bookings[i].Clone()
	return &updated, nil
}

func (r *bookingRepository) AddEquipment(_ context.Context, id int64, item string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index(id)
	if !ok {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	r.bookings[i].AddEquipment(item)
	updated := r.bookings[i].Clone()
	return &updated, nil
}

func (r *bookingRepository) RemoveEquipment(_ context.Context, id int64, item string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index(id)
	if !ok {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	r.bookings[i].RemoveEquipment(item)
	updated := r.bookings[i].Clone()
	return &updated, nil
}

func (r *bookingRepository) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	return r.List(ctx, BookingFilter{Date: date})
}

// FindBetween returns bookings with from <= date <= to. The zero-padded
// date format makes the string comparison a date comparison.
func (r *bookingRepository) FindBetween(_ context.Context, from, to string) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.Booking
	for _, booking := range r.bookings {
		if booking.Date < from || booking.Date > to {
			continue
		}
		found := booking.Clone()
		result = append(result, &found)
	}

	return result, nil
}

func (r *bookingRepository) index(id int64) (int, bool) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			return i, true
		}
	}
	return 0, false
}
