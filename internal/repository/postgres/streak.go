package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
)

type streakRepository struct {
	db *sqlx.DB
}

func NewStreakRepository(db *sqlx.DB) repository.StreakRepository {
	return &streakRepository{db: db}
}

func (r *streakRepository) Get(ctx context.Context, streakType model.StreakType) (*model.StreakCounter, error) {
	query := `
		SELECT streak_type, current_count, best_count, last_date
		FROM streaks
		WHERE streak_type = $1
	`
	var counter model.StreakCounter
	if err := r.db.GetContext(ctx, &counter, query, streakType); err != nil {
		return nil, fmt.Errorf("failed to get streak counter: %w", err)
	}
	return &counter, nil
}

func (r *streakRepository) List(ctx context.Context) ([]*model.StreakCounter, error) {
	query := `
		SELECT streak_type, current_count, best_count, last_date
		FROM streaks
		ORDER BY streak_type
	`
	counters := []*model.StreakCounter{}
	if err := r.db.SelectContext(ctx, &counters, query); err != nil {
		return nil, fmt.Errorf("failed to list streak counters: %w", err)
	}
	return counters, nil
}

func (r *streakRepository) Save(ctx context.Context, counter *model.StreakCounter) error {
	query := `
		INSERT INTO streaks (streak_type, current_count, best_count, last_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (streak_type) DO UPDATE SET
			current_count = EXCLUDED.current_count,
			best_count = EXCLUDED.best_count,
			last_date = EXCLUDED.last_date
	`
	_, err := r.db.ExecContext(ctx, query,
		counter.StreakType,
		counter.CurrentCount,
		counter.BestCount,
		counter.LastDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save streak counter: %w", err)
	}
	return nil
}
