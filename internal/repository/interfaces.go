package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jwalitptl/cliniccare-api/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// MissingDiagnosisCodeError is returned when a consultation references a
// diagnosis code id that does not exist.
type MissingDiagnosisCodeError struct {
	ID int64
}

func (e *MissingDiagnosisCodeError) Error() string {
	return fmt.Sprintf("diagnosis code with ID %d not found", e.ID)
}

// All repository interfaces in one file
type (
	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		GetByUsername(ctx context.Context, username string) (*model.Doctor, error)
		GetByEmail(ctx context.Context, email string) (*model.Doctor, error)
		List(ctx context.Context) ([]*model.Doctor, error)
		Count(ctx context.Context) (int, error)
	}

	DiagnosisCodeRepository interface {
		Search(ctx context.Context, term string, limit int) ([]model.DiagnosisCode, error)
		Get(ctx context.Context, id int64) (*model.DiagnosisCode, error)
	}

	// ConsultationRepository persists consultations together with their
	// diagnosis-code associations. Create is all-or-nothing.
	ConsultationRepository interface {
		Create(ctx context.Context, consultation *model.Consultation, diagnosisCodeIDs []int64) error
		Get(ctx context.Context, id int64) (*model.Consultation, error)
		List(ctx context.Context, skip, limit int) ([]model.Consultation, error)
		Count(ctx context.Context) (int, error)
	}
)
