package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EvolutionRepository interface {
	Create(ctx context.Context, evolution *entity.Evolution) error
	FindByID(ctx context.Context, id int64) (*entity.Evolution, error)
	FindByStudentID(ctx context.Context, studentID int64) ([]*entity.Evolution, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Evolution, error)
	Count(ctx context.Context) (int64, error)
	CountNextSessionBetween(ctx context.Context, from, to time.Time) (int64, error)
	Update(ctx context.Context, evolution *entity.Evolution) error
	Delete(ctx context.Context, id int64) error
}

type evolutionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEvolutionRepository(db database.PgxIface, log *zap.Logger) EvolutionRepository {
	return &evolutionRepository{
		db:  db,
		log: log.With(zap.String("repository", "evolution")),
	}
}

const evolutionColumns = `id, student_id, session_date, focus, progress, pain_level, next_session, created_at, updated_at`

func (r *evolutionRepository) scanEvolution(row pgx.Row) (*entity.Evolution, error) {
	var evolution entity.Evolution
	err := row.Scan(
		&evolution.ID,
		&evolution.StudentID,
		&evolution.SessionDate,
		&evolution.Focus,
		&evolution.Progress,
		&evolution.PainLevel,
		&evolution.NextSession,
		&evolution.CreatedAt,
		&evolution.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &evolution, nil
}

func (r *evolutionRepository) Create(ctx context.Context, evolution *entity.Evolution) error {
	query := `
		INSERT INTO evolutions (student_id, session_date, focus, progress, pain_level, next_session, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		evolution.StudentID,
		evolution.SessionDate,
		evolution.Focus,
		evolution.Progress,
		evolution.PainLevel,
		evolution.NextSession,
		evolution.CreatedAt,
		evolution.UpdatedAt,
	).Scan(&evolution.ID)

	if err != nil {
		r.log.Error("Failed to create evolution",
			zap.Error(err),
			zap.Int64("student_id", evolution.StudentID),
		)
		return fmt.Errorf("create evolution for student %d: %w", evolution.StudentID, err)
	}

	return nil
}

func (r *evolutionRepository) FindByID(ctx context.Context, id int64) (*entity.Evolution, error) {
	query := `SELECT ` + evolutionColumns + ` FROM evolutions WHERE id = $1 AND deleted_at IS NULL`

	evolution, err := r.scanEvolution(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find evolution by ID", zap.Error(err), zap.Int64("evolution_id", id))
		return nil, fmt.Errorf("find evolution by ID %d: %w", id, err)
	}

	return evolution, nil
}

func (r *evolutionRepository) FindByStudentID(ctx context.Context, studentID int64) ([]*entity.Evolution, error) {
	query := `
		SELECT ` + evolutionColumns + `
		FROM evolutions
		WHERE student_id = $1 AND deleted_at IS NULL
		ORDER BY session_date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		r.log.Error("Failed to find evolutions by student", zap.Error(err), zap.Int64("student_id", studentID))
		return nil, fmt.Errorf("find evolutions by student %d: %w", studentID, err)
	}
	defer rows.Close()

	var evolutions []*entity.Evolution
	for rows.Next() {
		evolution, err := r.scanEvolution(rows)
		if err != nil {
			r.log.Error("Failed to scan evolution row", zap.Error(err))
			return nil, fmt.Errorf("scan evolution row: %w", err)
		}
		evolutions = append(evolutions, evolution)
	}

	return evolutions, nil
}

func (r *evolutionRepository) List(ctx context.Context, limit, offset int) ([]*entity.Evolution, error) {
	query := `
		SELECT ` + evolutionColumns + `
		FROM evolutions
		WHERE deleted_at IS NULL
		ORDER BY session_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list evolutions", zap.Error(err))
		return nil, fmt.Errorf("list evolutions: %w", err)
	}
	defer rows.Close()

	var evolutions []*entity.Evolution
	for rows.Next() {
		evolution, err := r.scanEvolution(rows)
		if err != nil {
			r.log.Error("Failed to scan evolution row", zap.Error(err))
			return nil, fmt.Errorf("scan evolution row: %w", err)
		}
		evolutions = append(evolutions, evolution)
	}

	return evolutions, nil
}

func (r *evolutionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM evolutions WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		r.log.Error("Failed to count evolutions", zap.Error(err))
		return 0, fmt.Errorf("count evolutions: %w", err)
	}
	return total, nil
}

// CountNextSessionBetween counts records whose next-session date falls in
// [from, to], both bounds inclusive.
func (r *evolutionRepository) CountNextSessionBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM evolutions
		WHERE deleted_at IS NULL
		  AND next_session IS NOT NULL
		  AND next_session BETWEEN $1 AND $2
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		r.log.Error("Failed to count upcoming sessions", zap.Error(err))
		return 0, fmt.Errorf("count upcoming sessions: %w", err)
	}

	return total, nil
}

func (r *evolutionRepository) Update(ctx context.Context, evolution *entity.Evolution) error {
	query := `
		UPDATE evolutions
		SET student_id = $2, session_date = $3, focus = $4, progress = $5,
		    pain_level = $6, next_session = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		evolution.ID,
		evolution.StudentID,
		evolution.SessionDate,
		evolution.Focus,
		evolution.Progress,
		evolution.PainLevel,
		evolution.NextSession,
		evolution.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update evolution", zap.Error(err), zap.Int64("evolution_id", evolution.ID))
		return fmt.Errorf("update evolution %d: %w", evolution.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("evolution %d not found", evolution.ID)
	}

	return nil
}

func (r *evolutionRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE evolutions SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete evolution", zap.Error(err), zap.Int64("evolution_id", id))
		return fmt.Errorf("delete evolution %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("evolution %d not found", id)
	}

	return nil
}
