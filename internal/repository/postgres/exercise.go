package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
)

type exerciseLogRepository struct {
	db *sqlx.DB
}

func NewExerciseLogRepository(db *sqlx.DB) repository.ExerciseLogRepository {
	return &exerciseLogRepository{db: db}
}

func (r *exerciseLogRepository) Create(ctx context.Context, log *model.ExerciseLog) error {
	query := `
		INSERT INTO exercise_log (
			id, logged_date, exercise_id, exercise_name, duration_min,
			calories_burned, completed, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	log.ID = uuid.New()
	log.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		log.LoggedDate,
		log.ExerciseID,
		log.ExerciseName,
		log.DurationMin,
		log.CaloriesBurned,
		log.Completed,
		log.Note,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create exercise log: %w", err)
	}
	return nil
}

func (r *exerciseLogRepository) Get(ctx context.Context, id uuid.UUID) (*model.ExerciseLog, error) {
	query := `
		SELECT id, logged_date, exercise_id, exercise_name, duration_min,
			   calories_burned, completed, note, created_at
		FROM exercise_log
		WHERE id = $1
	`
	var log model.ExerciseLog
	err := r.db.GetContext(ctx, &log, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise log: %w", err)
	}
	return &log, nil
}

func (r *exerciseLogRepository) ListByDate(ctx context.Context, date string) ([]*model.ExerciseLog, error) {
	query := `
		SELECT id, logged_date, exercise_id, exercise_name, duration_min,
			   calories_burned, completed, note, created_at
		FROM exercise_log
		WHERE logged_date = $1
		ORDER BY created_at ASC
	`
	logs := []*model.ExerciseLog{}
	if err := r.db.SelectContext(ctx, &logs, query, date); err != nil {
		return nil, fmt.Errorf("failed to list exercise logs: %w", err)
	}
	return logs, nil
}

func (r *exerciseLogRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE exercise_log SET completed = $1 WHERE id = $2`, completed, id)
	if err != nil {
		return fmt.Errorf("failed to update exercise log: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("exercise log not found")
	}
	return nil
}

func (r *exerciseLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM exercise_log WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exercise log: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("exercise log not found")
	}
	return nil
}
