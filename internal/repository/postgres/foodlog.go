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

type foodLogRepository struct {
	db *sqlx.DB
}

func NewFoodLogRepository(db *sqlx.DB) repository.FoodLogRepository {
	return &foodLogRepository{db: db}
}

func (r *foodLogRepository) Create(ctx context.Context, entry *model.FoodLogEntry) error {
	query := `
		INSERT INTO food_log (
			id, logged_date, meal_type, recipe_id, custom_name, portion,
			calories, salt_g, carbs_g, protein_g, fiber_g, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.LoggedDate,
		entry.MealType,
		entry.RecipeID,
		entry.CustomName,
		entry.Portion,
		entry.Calories,
		entry.SaltG,
		entry.CarbsG,
		entry.ProteinG,
		entry.FiberG,
		entry.Note,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create food log entry: %w", err)
	}
	return nil
}

func (r *foodLogRepository) ListByDate(ctx context.Context, date string) ([]*model.FoodLogEntry, error) {
	// Meal ordering is breakfast, lunch, dinner, snack; insertion order
	// within a meal.
	query := `
		SELECT id, logged_date, meal_type, recipe_id, custom_name, portion,
			   calories, salt_g, carbs_g, protein_g, fiber_g, note, created_at
		FROM food_log
		WHERE logged_date = $1
		ORDER BY
			CASE meal_type
				WHEN 'breakfast' THEN 1
				WHEN 'lunch' THEN 2
				WHEN 'dinner' THEN 3
				WHEN 'snack' THEN 4
				ELSE 5
			END,
			created_at ASC
	`
	entries := []*model.FoodLogEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, date); err != nil {
		return nil, fmt.Errorf("failed to list food log entries: %w", err)
	}
	return entries, nil
}

func (r *foodLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM food_log WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete food log entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("food log entry not found")
	}
	return nil
}
