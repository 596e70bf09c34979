package postgres

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/karadarhythm/health-api/internal/config"
)

func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS blood_pressure (
		id UUID PRIMARY KEY,
		measured_at TEXT NOT NULL,
		systolic INTEGER NOT NULL,
		diastolic INTEGER NOT NULL,
		pulse INTEGER,
		timing TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS weight_log (
		id UUID PRIMARY KEY,
		measured_at TEXT NOT NULL UNIQUE,
		weight_kg DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS food_log (
		id UUID PRIMARY KEY,
		logged_date TEXT NOT NULL,
		meal_type TEXT NOT NULL,
		recipe_id UUID,
		custom_name TEXT NOT NULL DEFAULT '',
		portion DOUBLE PRECISION NOT NULL DEFAULT 1.0,
		calories DOUBLE PRECISION,
		salt_g DOUBLE PRECISION,
		carbs_g DOUBLE PRECISION,
		protein_g DOUBLE PRECISION,
		fiber_g DOUBLE PRECISION,
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_food_log_date ON food_log (logged_date)`,
	`CREATE TABLE IF NOT EXISTS condition_log (
		id UUID PRIMARY KEY,
		logged_date TEXT NOT NULL UNIQUE,
		overall_score INTEGER NOT NULL DEFAULT 3,
		palpitation BOOLEAN NOT NULL DEFAULT FALSE,
		edema BOOLEAN NOT NULL DEFAULT FALSE,
		fatigue_level INTEGER NOT NULL DEFAULT 3,
		cpap_used BOOLEAN NOT NULL DEFAULT TRUE,
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS recipes (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		cook_time_min INTEGER NOT NULL DEFAULT 0,
		servings INTEGER NOT NULL DEFAULT 1,
		calories DOUBLE PRECISION,
		salt_g DOUBLE PRECISION NOT NULL DEFAULT 0,
		carbs_g DOUBLE PRECISION,
		protein_g DOUBLE PRECISION,
		fiber_g DOUBLE PRECISION,
		potassium_mg DOUBLE PRECISION,
		ingredients_json TEXT NOT NULL DEFAULT '[]',
		steps_json TEXT NOT NULL DEFAULT '[]',
		salt_tips_json TEXT,
		sugar_tips_json TEXT,
		is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS medical_visits (
		id UUID PRIMARY KEY,
		visit_date TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		doctor_name TEXT NOT NULL DEFAULT '',
		diagnosis TEXT NOT NULL DEFAULT '',
		prescription TEXT NOT NULL DEFAULT '',
		next_visit TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_log (
		id UUID PRIMARY KEY,
		logged_date TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		duration_min INTEGER NOT NULL DEFAULT 0,
		calories_burned DOUBLE PRECISION NOT NULL DEFAULT 0,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS daily_missions (
		id UUID PRIMARY KEY,
		mission_date TEXT NOT NULL UNIQUE,
		mission_text TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS streaks (
		streak_type TEXT PRIMARY KEY,
		current_count INTEGER NOT NULL DEFAULT 0,
		best_count INTEGER NOT NULL DEFAULT 0,
		last_date TEXT NOT NULL DEFAULT ''
	)`,
	`INSERT INTO streaks (streak_type) VALUES ('mission'), ('bp_record'), ('food_log'), ('cpap')
		ON CONFLICT (streak_type) DO NOTHING`,
}

// InitSchema creates the tables if they are missing. Statement failures
// from concurrent re-runs ("already exists") are logged and skipped.
func InitSchema(db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "already exists") {
				log.Debug().Err(err).Msg("schema statement skipped")
				continue
			}
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
