package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
)

type bloodPressureRepository struct {
	db *sqlx.DB
}

func NewBloodPressureRepository(db *sqlx.DB) repository.BloodPressureRepository {
	return &bloodPressureRepository{db: db}
}

func (r *bloodPressureRepository) Create(ctx context.Context, reading *model.BloodPressureReading) error {
	query := `
		INSERT INTO blood_pressure (
			id, measured_at, systolic, diastolic, pulse, timing, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	reading.ID = uuid.New()
	reading.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		reading.ID,
		reading.MeasuredAt,
		reading.Systolic,
		reading.Diastolic,
		reading.Pulse,
		reading.Timing,
		reading.Note,
		reading.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create blood pressure reading: %w", err)
	}
	return nil
}

func (r *bloodPressureRepository) List(ctx context.Context, filter *model.BloodPressureFilter) ([]*model.BloodPressureReading, error) {
	query := `
		SELECT id, measured_at, systolic, diastolic, pulse, timing, note, created_at
		FROM blood_pressure
	`
	args := []interface{}{}
	argCount := 1

	if filter.Date != "" {
		query += fmt.Sprintf(" WHERE left(measured_at, 10) = $%d", argCount)
		args = append(args, filter.Date)
		argCount++
	}

	query += " ORDER BY measured_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, filter.Limit)
	}

	readings := []*model.BloodPressureReading{}
	if err := r.db.SelectContext(ctx, &readings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list blood pressure readings: %w", err)
	}
	return readings, nil
}

func (r *bloodPressureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blood_pressure WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blood pressure reading: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("blood pressure reading not found")
	}
	return nil
}
