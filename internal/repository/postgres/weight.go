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

type weightRepository struct {
	db *sqlx.DB
}

func NewWeightRepository(db *sqlx.DB) repository.WeightRepository {
	return &weightRepository{db: db}
}

func (r *weightRepository) Upsert(ctx context.Context, entry *model.WeightEntry) error {
	query := `
		INSERT INTO weight_log (id, measured_at, weight_kg, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (measured_at) DO UPDATE SET weight_kg = EXCLUDED.weight_kg
	`
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.MeasuredAt,
		entry.WeightKg,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert weight entry: %w", err)
	}
	return nil
}

func (r *weightRepository) List(ctx context.Context, limit int) ([]*model.WeightEntry, error) {
	query := `
		SELECT id, measured_at, weight_kg, created_at
		FROM weight_log
		ORDER BY measured_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	entries := []*model.WeightEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list weight entries: %w", err)
	}
	return entries, nil
}

func (r *weightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM weight_log WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete weight entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("weight entry not found")
	}
	return nil
}
