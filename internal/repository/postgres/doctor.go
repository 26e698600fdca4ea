package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	"github.com/jwalitptl/cliniccare-api/internal/repository"
)

const doctorColumns = `id, username, email, full_name, hashed_password, is_active, created_at`

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(base BaseRepository) repository.DoctorRepository {
	return &doctorRepository{base}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) (err error) {
	defer func(start time.Time) { r.metrics.ObserveDB("doctor_create", start, err) }(time.Now())

	query := `
		INSERT INTO doctors (username, email, full_name, hashed_password, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err = r.GetDB().QueryRowxContext(ctx, query,
		doctor.Username,
		doctor.Email,
		doctor.FullName,
		doctor.HashedPassword,
		doctor.IsActive,
	).Scan(&doctor.ID, &doctor.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", translate(err))
	}
	return nil
}

func (r *doctorRepository) GetByUsername(ctx context.Context, username string) (*model.Doctor, error) {
	return r.getBy(ctx, "doctor_get_by_username", "username", username)
}

func (r *doctorRepository) GetByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	return r.getBy(ctx, "doctor_get_by_email", "email", email)
}

func (r *doctorRepository) getBy(ctx context.Context, op, column, value string) (doctor *model.Doctor, err error) {
	defer func(start time.Time) { r.metrics.ObserveDB(op, start, err) }(time.Now())

	query := fmt.Sprintf(`SELECT %s FROM doctors WHERE %s = $1`, doctorColumns, column)

	var d model.Doctor
	if err = r.GetDB().GetContext(ctx, &d, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor by %s: %w", column, err)
	}
	return &d, nil
}

func (r *doctorRepository) List(ctx context.Context) (doctors []*model.Doctor, err error) {
	defer func(start time.Time) { r.metrics.ObserveDB("doctor_list", start, err) }(time.Now())

	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY id ASC`

	doctors = []*model.Doctor{}
	if err = r.GetDB().SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context) (count int, err error) {
	defer func(start time.Time) { r.metrics.ObserveDB("doctor_count", start, err) }(time.Now())

	if err = r.GetDB().GetContext(ctx, &count, `SELECT COUNT(*) FROM doctors`); err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}
