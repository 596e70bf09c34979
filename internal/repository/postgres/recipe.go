package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
)

type recipeRepository struct {
	db *sqlx.DB
}

func NewRecipeRepository(db *sqlx.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// recipeRow mirrors the recipes table; list fields are stored as JSON text
type recipeRow struct {
	model.Recipe
	IngredientsJSON string         `db:"ingredients_json"`
	StepsJSON       string         `db:"steps_json"`
	SaltTipsJSON    sql.NullString `db:"salt_tips_json"`
	SugarTipsJSON   sql.NullString `db:"sugar_tips_json"`
}

func (row *recipeRow) toModel() (*model.Recipe, error) {
	recipe := row.Recipe
	if err := json.Unmarshal([]byte(row.IngredientsJSON), &recipe.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(row.StepsJSON), &recipe.Steps); err != nil {
		return nil, fmt.Errorf("failed to decode steps: %w", err)
	}
	if row.SaltTipsJSON.Valid {
		if err := json.Unmarshal([]byte(row.SaltTipsJSON.String), &recipe.SaltTips); err != nil {
			return nil, fmt.Errorf("failed to decode salt tips: %w", err)
		}
	}
	if row.SugarTipsJSON.Valid {
		if err := json.Unmarshal([]byte(row.SugarTipsJSON.String), &recipe.SugarTips); err != nil {
			return nil, fmt.Errorf("failed to decode sugar tips: %w", err)
		}
	}
	return &recipe, nil
}

func encodeTips(tips []string) interface{} {
	if tips == nil {
		return nil
	}
	b, _ := json.Marshal(tips)
	return string(b)
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	query := `
		INSERT INTO recipes (
			id, name, category, cook_time_min, servings,
			calories, salt_g, carbs_g, protein_g, fiber_g, potassium_mg,
			ingredients_json, steps_json, salt_tips_json, sugar_tips_json,
			is_favorite, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	recipe.CreatedAt = time.Now()

	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}
	steps, err := json.Marshal(recipe.Steps)
	if err != nil {
		return fmt.Errorf("failed to encode steps: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		recipe.ID,
		recipe.Name,
		recipe.Category,
		recipe.CookTimeMin,
		recipe.Servings,
		recipe.Calories,
		recipe.SaltG,
		recipe.CarbsG,
		recipe.ProteinG,
		recipe.FiberG,
		recipe.PotassiumMg,
		string(ingredients),
		string(steps),
		encodeTips(recipe.SaltTips),
		encodeTips(recipe.SugarTips),
		recipe.IsFavorite,
		recipe.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return nil
}

func (r *recipeRepository) Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	query := `
		SELECT id, name, category, cook_time_min, servings,
			   calories, salt_g, carbs_g, protein_g, fiber_g, potassium_mg,
			   ingredients_json, steps_json, salt_tips_json, sugar_tips_json,
			   is_favorite, created_at
		FROM recipes
		WHERE id = $1
	`
	var row recipeRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return row.toModel()
}

func (r *recipeRepository) List(ctx context.Context, filter *model.RecipeFilter) ([]*model.Recipe, error) {
	query := `
		SELECT id, name, category, cook_time_min, servings,
			   calories, salt_g, carbs_g, protein_g, fiber_g, potassium_mg,
			   ingredients_json, steps_json, salt_tips_json, sugar_tips_json,
			   is_favorite, created_at
		FROM recipes
		WHERE 1=1
	`
	args := []interface{}{}
	argCount := 1

	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argCount)
		args = append(args, filter.Category)
		argCount++
	}
	if filter.Favorite {
		query += " AND is_favorite = TRUE"
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argCount)
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	query += " ORDER BY category, name"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, filter.Limit)
	}

	var rows []recipeRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]*model.Recipe, 0, len(rows))
	for i := range rows {
		recipe, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (r *recipeRepository) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE recipes SET is_favorite = $1 WHERE id = $2`, favorite, id)
	if err != nil {
		return fmt.Errorf("failed to update recipe favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("recipe not found")
	}
	return nil
}
