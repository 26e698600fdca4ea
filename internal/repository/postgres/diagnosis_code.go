package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	"github.com/jwalitptl/cliniccare-api/internal/repository"
)

type diagnosisCodeRepository struct {
	BaseRepository
}

func NewDiagnosisCodeRepository(base BaseRepository) repository.DiagnosisCodeRepository {
	return &diagnosisCodeRepository{base}
}

// Search matches term case-insensitively against code or description. A
// blank term returns the first limit codes in storage order.
func (r *diagnosisCodeRepository) Search(ctx context.Context, term string, limit int) (codes []model.DiagnosisCode, err error) {
	defer func(start time.Time) { r.metrics.ObserveDB("diagnosis_code_search", start, err) }(time.Now())

	query := `SELECT id, code, description FROM diagnosis_codes`
	args := []interface{}{}

	if term = strings.TrimSpace(term); term != "" {
		query += ` WHERE code ILIKE $1 OR description ILIKE $1`
		args = append(args, containsPattern(term))
	}

	query += fmt.Sprintf(` ORDER BY id ASC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	codes = []model.DiagnosisCode{}
	if err = r.GetDB().SelectContext(ctx, &codes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search diagnosis codes: %w", err)
	}
	return codes, nil
}

func (r *diagnosisCodeRepository) Get(ctx context.Context, id int64) (code *model.DiagnosisCode, err error) {
	defer func(start time.Time) { r.metrics.ObserveDB("diagnosis_code_get", start, err) }(time.Now())

	var c model.DiagnosisCode
	err = r.GetDB().GetContext(ctx, &c, `SELECT id, code, description FROM diagnosis_codes WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get diagnosis code: %w", err)
	}
	return &c, nil
}
