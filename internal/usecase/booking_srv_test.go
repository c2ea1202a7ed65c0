package usecase

import (
	"context"
	"testing"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/repository"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStudentRepo struct {
	students map[int64]*entity.Student
}

func (f *fakeStudentRepo) Create(_ context.Context, _ *entity.Student) error { return nil }
func (f *fakeStudentRepo) FindByID(_ context.Context, id int64) (*entity.Student, error) {
	return f.students[id], nil
}
func (f *fakeStudentRepo) FindByEmail(_ context.Context, _ string) (*entity.Student, error) {
	return nil, nil
}
func (f *fakeStudentRepo) List(_ context.Context, _ string, _ entity.StudentStatus, _, _ int) ([]*entity.Student, error) {
	return nil, nil
}
func (f *fakeStudentRepo) Count(_ context.Context, _ string, _ entity.StudentStatus) (int64, error) {
	return 0, nil
}
func (f *fakeStudentRepo) Update(_ context.Context, _ *entity.Student) error { return nil }
func (f *fakeStudentRepo) Delete(_ context.Context, _ int64) error           { return nil }

type fakeInstructorRepo struct {
	instructors map[int64]*entity.Instructor
}

func (f *fakeInstructorRepo) Create(_ context.Context, _ *entity.Instructor) error { return nil }
func (f *fakeInstructorRepo) FindByID(_ context.Context, id int64) (*entity.Instructor, error) {
	return f.instructors[id], nil
}
func (f *fakeInstructorRepo) List(_ context.Context, _ string, _ entity.InstructorStatus, _, _ int) ([]*entity.Instructor, error) {
	return nil, nil
}
func (f *fakeInstructorRepo) Count(_ context.Context, _ string, _ entity.InstructorStatus) (int64, error) {
	return 0, nil
}
func (f *fakeInstructorRepo) Update(_ context.Context, _ *entity.Instructor) error { return nil }
func (f *fakeInstructorRepo) Delete(_ context.Context, _ int64) error              { return nil }

func newBookingTestService(seed []entity.Booking) BookingService {
	log := zap.NewNop()

	repo := &repository.Repository{
		Booking: repository.NewBookingRepository(seed, log),
		Student: &fakeStudentRepo{students: map[int64]*entity.Student{
			1: {Base: entity.Base{ID: 1}, Name: "Maria Oliveira"},
		}},
		Instructor: &fakeInstructorRepo{instructors: map[int64]*entity.Instructor{
			7: {Base: entity.Base{ID: 7}, Name: "Sarah Costa Silva"},
		}},
	}

	return NewBookingService(repo, log)
}

func validBookingRequest() *request.BookingRequest {
	return &request.BookingRequest{
		StudentID:    1,
		InstructorID: 7,
		Date:         "2026-09-01",
		StartTime:    "08:00",
		EndTime:      "09:00",
		ClassType:    "Pilates Solo",
		Room:         "Sala 1",
		Price:        120,
	}
}

func TestValidateBookingFieldsAccumulatesAllErrors(t *testing.T) {
	req := &request.BookingRequest{
		StudentID:    1,
		InstructorID: 7,
		Date:         "01/09/2026", // wrong format
		StartTime:    "10:00",
		EndTime:      "09:00", // before start
		// Price missing
	}

	errs := validateBookingFields(req)

	assert.Contains(t, errs, "Date")
	assert.Contains(t, errs, "EndTime")
	assert.Contains(t, errs, "Price")
	assert.Len(t, errs, 3)
}

func TestValidateBookingFieldsEqualTimesRejected(t *testing.T) {
	req := validBookingRequest()
	req.StartTime = "09:00"
	req.EndTime = "09:00"

	errs := validateBookingFields(req)

	assert.Contains(t, errs, "EndTime")
}

func TestValidateBookingFieldsValidRequest(t *testing.T) {
	assert.Empty(t, validateBookingFields(validBookingRequest()))
}

func TestBookingCreateSnapshotsNames(t *testing.T) {
	srv := newBookingTestService(nil)

	resp, err := srv.Create(context.Background(), validBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Maria Oliveira", resp.StudentName)
	assert.Equal(t, "Sarah Costa Silva", resp.InstructorName)
	assert.Equal(t, "SCHEDULED", resp.Status)
	assert.Equal(t, "Agendado", resp.StatusLabel)
	assert.Equal(t, "Pendente", resp.PaymentStatus)
}

func TestBookingCreateUnknownStudent(t *testing.T) {
	srv := newBookingTestService(nil)

	req := validBookingRequest()
	req.StudentID = 99

	_, err := srv.Create(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "student 99 not found")
}

func TestBookingCreateRejectsInvalidRequest(t *testing.T) {
	srv := newBookingTestService(nil)

	req := validBookingRequest()
	req.StartTime = "10:00"
	req.EndTime = "09:30"

	_, err := srv.Create(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestBookingCreateNormalizesEquipment(t *testing.T) {
	srv := newBookingTestService(nil)

	req := validBookingRequest()
	req.Equipment = []string{" Mat ", "Mat", "", "Bola"}

	resp, err := srv.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"Mat", "Bola"}, resp.Equipment)
}

func TestBookingUpdatePreservesStatus(t *testing.T) {
	srv := newBookingTestService(nil)

	created, err := srv.Create(context.Background(), validBookingRequest())
	require.NoError(t, err)

	_, err = srv.SetStatus(context.Background(), created.ID, &request.SetStatusRequest{Status: "CONFIRMED"})
	require.NoError(t, err)

	req := validBookingRequest()
	req.Room = "Sala 2"

	updated, err := srv.Update(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "Sala 2", updated.Room)
	assert.Equal(t, "CONFIRMED", updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestBookingSetStatusAnyToAny(t *testing.T) {
	srv := newBookingTestService(nil)
	ctx := context.Background()

	created, err := srv.Create(ctx, validBookingRequest())
	require.NoError(t, err)

	for _, status := range []string{"COMPLETED", "SCHEDULED", "NO_SHOW", "CANCELLED", "CONFIRMED"} {
		resp, err := srv.SetStatus(ctx, created.ID, &request.SetStatusRequest{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, resp.Status)
	}
}

func TestBookingSetStatusRejectsLabel(t *testing.T) {
	srv := newBookingTestService(nil)

	created, err := srv.Create(context.Background(), validBookingRequest())
	require.NoError(t, err)

	_, err = srv.SetStatus(context.Background(), created.ID, &request.SetStatusRequest{Status: "Agendado"})
	require.Error(t, err)
}

func TestBookingSetPaymentStatus(t *testing.T) {
	srv := newBookingTestService(nil)

	created, err := srv.Create(context.Background(), validBookingRequest())
	require.NoError(t, err)

	resp, err := srv.SetPaymentStatus(context.Background(), created.ID, &request.SetPaymentStatusRequest{PaymentStatus: "Pago"})
	require.NoError(t, err)
	assert.Equal(t, "Pago", resp.PaymentStatus)
}

func TestBookingListFiltersByStatusToken(t *testing.T) {
	srv := newBookingTestService(repository.SampleBookings())

	confirmed, err := srv.List(context.Background(), &request.ListRequest{Status: "CONFIRMED"}, "")
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "Maria Oliveira", confirmed[0].StudentName)

	_, err = srv.List(context.Background(), &request.ListRequest{Status: "Confirmado"}, "")
	assert.Error(t, err)
}

func TestBookingGetByIDMissing(t *testing.T) {
	srv := newBookingTestService(nil)

	_, err := srv.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
