package repository

import (
	"context"
	"fmt"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *entity.Evaluation) error
	FindByID(ctx context.Context, id int64) (*entity.Evaluation, error)
	FindByStudentID(ctx context.Context, studentID int64) ([]*entity.Evaluation, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Evaluation, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, evaluation *entity.Evaluation) error
	Delete(ctx context.Context, id int64) error
}

type evaluationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEvaluationRepository(db database.PgxIface, log *zap.Logger) EvaluationRepository {
	return &evaluationRepository{
		db:  db,
		log: log.With(zap.String("repository", "evaluation")),
	}
}

const evaluationColumns = `id, student_id, date, weight_kg, height_m, flexibility, strength, balance, observations, created_at, updated_at`

func (r *evaluationRepository) scanEvaluation(row pgx.Row) (*entity.Evaluation, error) {
	var evaluation entity.Evaluation
	err := row.Scan(
		&evaluation.ID,
		&evaluation.StudentID,
		&evaluation.Date,
		&evaluation.WeightKg,
		&evaluation.HeightM,
		&evaluation.Flexibility,
		&evaluation.Strength,
		&evaluation.Balance,
		&evaluation.Observations,
		&evaluation.CreatedAt,
		&evaluation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *entity.Evaluation) error {
	query := `
		INSERT INTO evaluations (student_id, date, weight_kg, height_m, flexibility, strength, balance, observations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		evaluation.StudentID,
		evaluation.Date,
		evaluation.WeightKg,
		evaluation.HeightM,
		evaluation.Flexibility,
		evaluation.Strength,
		evaluation.Balance,
		evaluation.Observations,
		evaluation.CreatedAt,
		evaluation.UpdatedAt,
	).Scan(&evaluation.ID)

	if err != nil {
		r.log.Error("Failed to create evaluation",
			zap.Error(err),
			zap.Int64("student_id", evaluation.StudentID),
		)
		return fmt.Errorf("create evaluation for student %d: %w", evaluation.StudentID, err)
	}

	return nil
}

func (r *evaluationRepository) FindByID(ctx context.Context, id int64) (*entity.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE id = $1 AND deleted_at IS NULL`

	evaluation, err := r.scanEvaluation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find evaluation by ID", zap.Error(err), zap.Int64("evaluation_id", id))
		return nil, fmt.Errorf("find evaluation by ID %d: %w", id, err)
	}

	return evaluation, nil
}

func (r *evaluationRepository) FindByStudentID(ctx context.Context, studentID int64) ([]*entity.Evaluation, error) {
	query := `
		SELECT ` + evaluationColumns + `
		FROM evaluations
		WHERE student_id = $1 AND deleted_at IS NULL
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		r.log.Error("Failed to find evaluations by student", zap.Error(err), zap.Int64("student_id", studentID))
		return nil, fmt.Errorf("find evaluations by student %d: %w", studentID, err)
	}
	defer rows.Close()

	var evaluations []*entity.Evaluation
	for rows.Next() {
		evaluation, err := r.scanEvaluation(rows)
		if err != nil {
			r.log.Error("Failed to scan evaluation row", zap.Error(err))
			return nil, fmt.Errorf("scan evaluation row: %w", err)
		}
		evaluations = append(evaluations, evaluation)
	}

	return evaluations, nil
}

func (r *evaluationRepository) List(ctx context.Context, limit, offset int) ([]*entity.Evaluation, error) {
	query := `
		SELECT ` + evaluationColumns + `
		FROM evaluations
		WHERE deleted_at IS NULL
		ORDER BY date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list evaluations", zap.Error(err))
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var evaluations []*entity.Evaluation
	for rows.Next() {
		evaluation, err := r.scanEvaluation(rows)
		if err != nil {
			r.log.Error("Failed to scan evaluation row", zap.Error(err))
			return nil, fmt.Errorf("scan evaluation row: %w", err)
		}
		evaluations = append(evaluations, evaluation)
	}

	return evaluations, nil
}

func (r *evaluationRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM evaluations WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		r.log.Error("Failed to count evaluations", zap.Error(err))
		return 0, fmt.Errorf("count evaluations: %w", err)
	}
	return total, nil
}

func (r *evaluationRepository) Update(ctx context.Context, evaluation *entity.Evaluation) error {
	query := `
		UPDATE evaluations
		SET student_id = $2, date = $3, weight_kg = $4, height_m = $5,
		    flexibility = $6, strength = $7, balance = $8, observations = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		evaluation.ID,
		evaluation.StudentID,
		evaluation.Date,
		evaluation.WeightKg,
		evaluation.HeightM,
		evaluation.Flexibility,
		evaluation.Strength,
		evaluation.Balance,
		evaluation.Observations,
		evaluation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update evaluation", zap.Error(err), zap.Int64("evaluation_id", evaluation.ID))
		return fmt.Errorf("update evaluation %d: %w", evaluation.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("evaluation %d not found", evaluation.ID)
	}

	return nil
}

func (r *evaluationRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE evaluations SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete evaluation", zap.Error(err), zap.Int64("evaluation_id", id))
		return fmt.Errorf("delete evaluation %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("evaluation %d not found", id)
	}

	return nil
}
