package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	"github.com/jwalitptl/cliniccare-api/internal/repository"
)

const consultationColumns = `id, patient_name, consultation_date, notes, created_at`

type consultationRepository struct {
	BaseRepository
}

func NewConsultationRepository(base BaseRepository) repository.ConsultationRepository {
	return &consultationRepository{base}
}

// consultationCode is one row of the association joined with its code.
type consultationCode struct {
	ConsultationID int64 `db:"consultation_id"`
	model.DiagnosisCode
}

// Create inserts the consultation and its association rows in one
// transaction. If any referenced code is missing nothing is written and a
// *repository.MissingDiagnosisCodeError names the first missing id. Codes are
// returned by ascending id, matching Get and List.
func (r *consultationRepository) Create(ctx context.Context, c *model.Consultation, diagnosisCodeIDs []int64) (err error) {
	defer func(start time.Time) { r.metrics.ObserveDB("consultation_create", start, err) }(time.Now())

	ids := uniqueIDs(diagnosisCodeIDs)

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		var found []model.DiagnosisCode
		err := tx.SelectContext(ctx, &found,
			`SELECT id, code, description FROM diagnosis_codes WHERE id = ANY($1)`,
			pq.Array(ids),
		)
		if err != nil {
			return fmt.Errorf("failed to load diagnosis codes: %w", err)
		}

		byID := make(map[int64]model.DiagnosisCode, len(found))
		for _, code := range found {
			byID[code.ID] = code
		}

		codes := make([]model.DiagnosisCode, 0, len(ids))
		for _, id := range ids {
			code, ok := byID[id]
			if !ok {
				return &repository.MissingDiagnosisCodeError{ID: id}
			}
			codes = append(codes, code)
		}

		query := `
			INSERT INTO consultations (patient_name, consultation_date, notes)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`
		if err := tx.QueryRowxContext(ctx, query, c.PatientName, c.ConsultationDate, c.Notes).
			Scan(&c.ID, &c.CreatedAt); err != nil {
			return fmt.Errorf("failed to create consultation: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO consultation_diagnoses (consultation_id, diagnosis_code_id)
			SELECT $1, unnest($2::bigint[])
		`, c.ID, pq.Array(ids))
		if err != nil {
			return fmt.Errorf("failed to link diagnosis codes: %w", err)
		}

		// same order attachCodes reads them back in
		sort.Slice(codes, func(i, j int) bool { return codes[i].ID < codes[j].ID })
		c.DiagnosisCodes = codes
		return nil
	})
}

func (r *consultationRepository) Get(ctx context.Context, id int64) (c *model.Consultation, err error) {
	defer func(start time.Time) { r.metrics.ObserveDB("consultation_get", start, err) }(time.Now())

	var consultation model.Consultation
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE id = $1`
	if err = r.GetDB().GetContext(ctx, &consultation, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}

	list := []model.Consultation{consultation}
	if err = r.attachCodes(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// List returns consultations newest first; ties keep insertion order.
func (r *consultationRepository) List(ctx context.Context, skip, limit int) (list []model.Consultation, err error) {
	defer func(start time.Time) { r.metrics.ObserveDB("consultation_list", start, err) }(time.Now())

	query := `
		SELECT ` + consultationColumns + `
		FROM consultations
		ORDER BY consultation_date DESC, id ASC
		LIMIT $1 OFFSET $2
	`

	list = []model.Consultation{}
	if err = r.GetDB().SelectContext(ctx, &list, query, limit, skip); err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}

	if err = r.attachCodes(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *consultationRepository) Count(ctx context.Context) (count int, err error) {
	defer func(start time.Time) { r.metrics.ObserveDB("consultation_count", start, err) }(time.Now())

	if err = r.GetDB().GetContext(ctx, &count, `SELECT COUNT(*) FROM consultations`); err != nil {
		return 0, fmt.Errorf("failed to count consultations: %w", err)
	}
	return count, nil
}

func (r *consultationRepository) attachCodes(ctx context.Context, list []model.Consultation) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, len(list))
	for i := range list {
		ids[i] = list[i].ID
		list[i].DiagnosisCodes = []model.DiagnosisCode{}
	}

	query := `
		SELECT cd.consultation_id, dc.id, dc.code, dc.description
		FROM consultation_diagnoses cd
		JOIN diagnosis_codes dc ON dc.id = cd.diagnosis_code_id
		WHERE cd.consultation_id = ANY($1)
		ORDER BY cd.consultation_id, dc.id
	`
	var rows []consultationCode
	if err := r.GetDB().SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to load consultation diagnosis codes: %w", err)
	}

	index := make(map[int64]int, len(list))
	for i := range list {
		index[list[i].ID] = i
	}
	for _, row := range rows {
		if i, ok := index[row.ConsultationID]; ok {
			list[i].DiagnosisCodes = append(list[i].DiagnosisCodes, row.DiagnosisCode)
		}
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
