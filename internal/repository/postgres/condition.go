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

type conditionRepository struct {
	db *sqlx.DB
}

func NewConditionRepository(db *sqlx.DB) repository.ConditionRepository {
	return &conditionRepository{db: db}
}

func (r *conditionRepository) Upsert(ctx context.Context, entry *model.ConditionLogEntry) error {
	query := `
		INSERT INTO condition_log (
			id, logged_date, overall_score, palpitation, edema,
			fatigue_level, cpap_used, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (logged_date) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			palpitation = EXCLUDED.palpitation,
			edema = EXCLUDED.edema,
			fatigue_level = EXCLUDED.fatigue_level,
			cpap_used = EXCLUDED.cpap_used,
			note = EXCLUDED.note
	`
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.LoggedDate,
		entry.OverallScore,
		entry.Palpitation,
		entry.Edema,
		entry.FatigueLevel,
		entry.CPAPUsed,
		entry.Note,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert condition log: %w", err)
	}
	return nil
}

func (r *conditionRepository) GetByDate(ctx context.Context, date string) (*model.ConditionLogEntry, error) {
	query := `
		SELECT id, logged_date, overall_score, palpitation, edema,
			   fatigue_level, cpap_used, note, created_at
		FROM condition_log
		WHERE logged_date = $1
	`
	var entry model.ConditionLogEntry
	err := r.db.GetContext(ctx, &entry, query, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get condition log: %w", err)
	}
	return &entry, nil
}

func (r *conditionRepository) List(ctx context.Context, limit int) ([]*model.ConditionLogEntry, error) {
	query := `
		SELECT id, logged_date, overall_score, palpitation, edema,
			   fatigue_level, cpap_used, note, created_at
		FROM condition_log
		ORDER BY logged_date DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	entries := []*model.ConditionLogEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list condition logs: %w", err)
	}
	return entries, nil
}
