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

type medicalVisitRepository struct {
	db *sqlx.DB
}

func NewMedicalVisitRepository(db *sqlx.DB) repository.MedicalVisitRepository {
	return &medicalVisitRepository{db: db}
}

func (r *medicalVisitRepository) Create(ctx context.Context, visit *model.MedicalVisit) error {
	query := `
		INSERT INTO medical_visits (
			id, visit_date, department, doctor_name, diagnosis,
			prescription, next_visit, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	visit.ID = uuid.New()
	visit.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		visit.ID,
		visit.VisitDate,
		visit.Department,
		visit.DoctorName,
		visit.Diagnosis,
		visit.Prescription,
		visit.NextVisit,
		visit.Note,
		visit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical visit: %w", err)
	}
	return nil
}

func (r *medicalVisitRepository) Get(ctx context.Context, id uuid.UUID) (*model.MedicalVisit, error) {
	query := `
		SELECT id, visit_date, department, doctor_name, diagnosis,
			   prescription, next_visit, note, created_at
		FROM medical_visits
		WHERE id = $1
	`
	var visit model.MedicalVisit
	err := r.db.GetContext(ctx, &visit, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get medical visit: %w", err)
	}
	return &visit, nil
}

func (r *medicalVisitRepository) Update(ctx context.Context, visit *model.MedicalVisit) error {
	query := `
		UPDATE medical_visits
		SET visit_date = $1, department = $2, doctor_name = $3, diagnosis = $4,
			prescription = $5, next_visit = $6, note = $7
		WHERE id = $8
	`
	result, err := r.db.ExecContext(ctx, query,
		visit.VisitDate,
		visit.Department,
		visit.DoctorName,
		visit.Diagnosis,
		visit.Prescription,
		visit.NextVisit,
		visit.Note,
		visit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update medical visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("medical visit not found")
	}
	return nil
}

func (r *medicalVisitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM medical_visits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete medical visit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("medical visit not found")
	}
	return nil
}

func (r *medicalVisitRepository) List(ctx context.Context) ([]*model.MedicalVisit, error) {
	query := `
		SELECT id, visit_date, department, doctor_name, diagnosis,
			   prescription, next_visit, note, created_at
		FROM medical_visits
		ORDER BY visit_date DESC
	`
	visits := []*model.MedicalVisit{}
	if err := r.db.SelectContext(ctx, &visits, query); err != nil {
		return nil, fmt.Errorf("failed to list medical visits: %w", err)
	}
	return visits, nil
}

func (r *medicalVisitRepository) NextUpcoming(ctx context.Context, after string) (*model.MedicalVisit, error) {
	query := `
		SELECT id, visit_date, department, doctor_name, diagnosis,
			   prescription, next_visit, note, created_at
		FROM medical_visits
		WHERE next_visit <> '' AND next_visit >= $1
		ORDER BY next_visit ASC
		LIMIT 1
	`
	var visit model.MedicalVisit
	err := r.db.GetContext(ctx, &visit, query, after)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get next visit: %w", err)
	}
	return &visit, nil
}
