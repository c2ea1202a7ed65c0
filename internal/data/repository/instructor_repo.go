package repository

import (
	"context"
	"fmt"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InstructorRepository interface {
	Create(ctx context.Context, instructor *entity.Instructor) error
	FindByID(ctx context.Context, id int64) (*entity.Instructor, error)
	List(ctx context.Context, search string, status entity.InstructorStatus, limit, offset int) ([]*entity.Instructor, error)
	Count(ctx context.Context, search string, status entity.InstructorStatus) (int64, error)
	Update(ctx context.Context, instructor *entity.Instructor) error
	Delete(ctx context.Context, id int64) error
}

type instructorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInstructorRepository(db database.PgxIface, log *zap.Logger) InstructorRepository {
	return &instructorRepository{
		db:  db,
		log: log.With(zap.String("repository", "instructor")),
	}
}

const instructorColumns = `id, name, email, phone, cref, specialties, status, hire_date, created_at, updated_at`

func (r *instructorRepository) scanInstructor(row pgx.Row) (*entity.Instructor, error) {
	var instructor entity.Instructor
	err := row.Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.Email,
		&instructor.Phone,
		&instructor.CREF,
		&instructor.Specialties,
		&instructor.Status,
		&instructor.HireDate,
		&instructor.CreatedAt,
		&instructor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *instructorRepository) Create(ctx context.Context, instructor *entity.Instructor) error {
	query := `
		INSERT INTO instructors (name, email, phone, cref, specialties, status, hire_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		instructor.Name,
		instructor.Email,
		instructor.Phone,
		instructor.CREF,
		instructor.Specialties,
		instructor.Status,
		instructor.HireDate,
		instructor.CreatedAt,
		instructor.UpdatedAt,
	).Scan(&instructor.ID)

	if err != nil {
		r.log.Error("Failed to create instructor",
			zap.Error(err),
			zap.String("email", instructor.Email),
		)
		return fmt.Errorf("create instructor %s: %w", instructor.Email, err)
	}

	return nil
}

func (r *instructorRepository) FindByID(ctx context.Context, id int64) (*entity.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors WHERE id = $1 AND deleted_at IS NULL`

	instructor, err := r.scanInstructor(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find instructor by ID", zap.Error(err), zap.Int64("instructor_id", id))
		return nil, fmt.Errorf("find instructor by ID %d: %w", id, err)
	}

	return instructor, nil
}

func (r *instructorRepository) List(ctx context.Context, search string, status entity.InstructorStatus, limit, offset int) ([]*entity.Instructor, error) {
	query := `
		SELECT ` + instructorColumns + `
		FROM instructors
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
		ORDER BY name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, search, string(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to list instructors", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	defer rows.Close()

	var instructors []*entity.Instructor
	for rows.Next() {
		instructor, err := r.scanInstructor(rows)
		if err != nil {
			r.log.Error("Failed to scan instructor row", zap.Error(err))
			return nil, fmt.Errorf("scan instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}

	return instructors, nil
}

func (r *instructorRepository) Count(ctx context.Context, search string, status entity.InstructorStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM instructors
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, search, string(status)).Scan(&total); err != nil {
		r.log.Error("Failed to count instructors", zap.Error(err))
		return 0, fmt.Errorf("count instructors: %w", err)
	}

	return total, nil
}

func (r *instructorRepository) Update(ctx context.Context, instructor *entity.Instructor) error {
	query := `
		UPDATE instructors
		SET name = $2, email = $3, phone = $4, cref = $5, specialties = $6,
		    status = $7, hire_date = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		instructor.ID,
		instructor.Name,
		instructor.Email,
		instructor.Phone,
		instructor.CREF,
		instructor.Specialties,
		instructor.Status,
		instructor.HireDate,
		instructor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update instructor", zap.Error(err), zap.Int64("instructor_id", instructor.ID))
		return fmt.Errorf("update instructor %d: %w", instructor.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("instructor %d not found", instructor.ID)
	}

	return nil
}

func (r *instructorRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE instructors SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete instructor", zap.Error(err), zap.Int64("instructor_id", id))
		return fmt.Errorf("delete instructor %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("instructor %d not found", id)
	}

	r.log.Info("Instructor deleted", zap.Int64("instructor_id", id))
	return nil
}
