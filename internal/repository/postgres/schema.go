package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS doctors (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		full_name VARCHAR(255) NOT NULL,
		hashed_password VARCHAR(255) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS diagnosis_codes (
		id BIGSERIAL PRIMARY KEY,
		code VARCHAR(10) NOT NULL UNIQUE,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS consultations (
		id BIGSERIAL PRIMARY KEY,
		patient_name VARCHAR(255) NOT NULL,
		consultation_date TIMESTAMPTZ NOT NULL,
		notes TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_consultations_date ON consultations (consultation_date DESC, id)`,
	`CREATE TABLE IF NOT EXISTS consultation_diagnoses (
		consultation_id BIGINT NOT NULL REFERENCES consultations(id) ON DELETE CASCADE,
		diagnosis_code_id BIGINT NOT NULL REFERENCES diagnosis_codes(id) ON DELETE CASCADE,
		PRIMARY KEY (consultation_id, diagnosis_code_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_consultation_diagnoses_code ON consultation_diagnoses (diagnosis_code_id)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
