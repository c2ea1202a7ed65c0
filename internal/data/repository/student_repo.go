package repository

import (
	"context"
	"fmt"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	FindByID(ctx context.Context, id int64) (*entity.Student, error)
	FindByEmail(ctx context.Context, email string) (*entity.Student, error)
	List(ctx context.Context, search string, status entity.StudentStatus, limit, offset int) ([]*entity.Student, error)
	Count(ctx context.Context, search string, status entity.StudentStatus) (int64, error)
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id int64) error
}

type studentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStudentRepository(db database.PgxIface, log *zap.Logger) StudentRepository {
	return &studentRepository{
		db:  db,
		log: log.With(zap.String("repository", "student")),
	}
}

const studentColumns = `id, name, email, phone, birth_date, address, status, plan, medical_notes, created_at, updated_at`

func (r *studentRepository) scanStudent(row pgx.Row) (*entity.Student, error) {
	var student entity.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Phone,
		&student.BirthDate,
		&student.Address,
		&student.Status,
		&student.Plan,
		&student.MedicalNotes,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	query := `
		INSERT INTO students (name, email, phone, birth_date, address, status, plan, medical_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.Email,
		student.Phone,
		student.BirthDate,
		student.Address,
		student.Status,
		student.Plan,
		student.MedicalNotes,
		student.CreatedAt,
		student.UpdatedAt,
	).Scan(&student.ID)

	if err != nil {
		r.log.Error("Failed to create student",
			zap.Error(err),
			zap.String("email", student.Email),
		)
		return fmt.Errorf("create student %s: %w", student.Email, err)
	}

	return nil
}

func (r *studentRepository) FindByID(ctx context.Context, id int64) (*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND deleted_at IS NULL`

	student, err := r.scanStudent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find student by ID", zap.Error(err), zap.Int64("student_id", id))
		return nil, fmt.Errorf("find student by ID %d: %w", id, err)
	}

	return student, nil
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1 AND deleted_at IS NULL`

	student, err := r.scanStudent(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find student by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find student by email %s: %w", email, err)
	}

	return student, nil
}

// List filters by name/email substring and status; empty filters match all.
func (r *studentRepository) List(ctx context.Context, search string, status entity.StudentStatus, limit, offset int) ([]*entity.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
		ORDER BY name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, search, string(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to list students", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []*entity.Student
	for rows.Next() {
		student, err := r.scanStudent(rows)
		if err != nil {
			r.log.Error("Failed to scan student row", zap.Error(err))
			return nil, fmt.Errorf("scan student row: %w", err)
		}
		students = append(students, student)
	}

	return students, nil
}

func (r *studentRepository) Count(ctx context.Context, search string, status entity.StudentStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM students
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, search, string(status)).Scan(&total); err != nil {
		r.log.Error("Failed to count students", zap.Error(err))
		return 0, fmt.Errorf("count students: %w", err)
	}

	return total, nil
}

func (r *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	query := `
		UPDATE students
		SET name = $2, email = $3, phone = $4, birth_date = $5, address = $6,
		    status = $7, plan = $8, medical_notes = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		student.ID,
		student.Name,
		student.Email,
		student.Phone,
		student.BirthDate,
		student.Address,
		student.Status,
		student.Plan,
		student.MedicalNotes,
		student.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update student", zap.Error(err), zap.Int64("student_id", student.ID))
		return fmt.Errorf("update student %d: %w", student.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %d not found", student.ID)
	}

	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE students SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete student", zap.Error(err), zap.Int64("student_id", id))
		return fmt.Errorf("delete student %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %d not found", id)
	}

	r.log.Info("Student deleted", zap.Int64("student_id", id))
	return nil
}
