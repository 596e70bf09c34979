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

type missionRepository struct {
	db *sqlx.DB
}

func NewMissionRepository(db *sqlx.DB) repository.MissionRepository {
	return &missionRepository{db: db}
}

func (r *missionRepository) Create(ctx context.Context, mission *model.DailyMission) error {
	query := `
		INSERT INTO daily_missions (id, mission_date, mission_text, completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	mission.ID = uuid.New()
	mission.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		mission.ID,
		mission.MissionDate,
		mission.MissionText,
		mission.Completed,
		mission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create daily mission: %w", err)
	}
	return nil
}

func (r *missionRepository) GetByDate(ctx context.Context, date string) (*model.DailyMission, error) {
	query := `
		SELECT id, mission_date, mission_text, completed, created_at
		FROM daily_missions
		WHERE mission_date = $1
	`
	var mission model.DailyMission
	err := r.db.GetContext(ctx, &mission, query, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily mission: %w", err)
	}
	return &mission, nil
}

func (r *missionRepository) SetCompleted(ctx context.Context, date string, completed bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE daily_missions SET completed = $1 WHERE mission_date = $2`, completed, date)
	if err != nil {
		return fmt.Errorf("failed to update daily mission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("daily mission not found")
	}
	return nil
}
