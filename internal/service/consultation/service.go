package consultation

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	"github.com/jwalitptl/cliniccare-api/internal/repository"
	apperrors "github.com/jwalitptl/cliniccare-api/pkg/errors"
	"github.com/jwalitptl/cliniccare-api/pkg/validator"
)

type Service struct {
	repo      repository.ConsultationRepository
	validator validator.Validator
}

func NewService(repo repository.ConsultationRepository, v validator.Validator) *Service {
	return &Service{repo: repo, validator: v}
}

// Create validates and stores a consultation together with its diagnosis
// codes. Nothing is written unless every referenced code exists.
func (s *Service) Create(ctx context.Context, req *model.CreateConsultationRequest) (*model.Consultation, error) {
	c, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c, req.DiagnosisCodeIDs); err != nil {
		var missing *repository.MissingDiagnosisCodeError
		if errors.As(err, &missing) {
			return nil, apperrors.NotFoundf("diagnosis code with ID %d not found", missing.ID)
		}
		return nil, apperrors.Internal(err)
	}

	log.Info().
		Int64("consultation_id", c.ID).
		Int("diagnosis_codes", len(c.DiagnosisCodes)).
		Msg("consultation created")
	return c, nil
}

func (s *Service) prepare(req *model.CreateConsultationRequest) (*model.Consultation, error) {
	name := strings.TrimSpace(req.PatientName)
	if name == "" {
		return nil, apperrors.Validation("patient name cannot be empty")
	}
	if utf8.RuneCountInString(name) > model.MaxPatientNameLength {
		return nil, apperrors.Validationf("patient name must not exceed %d characters", model.MaxPatientNameLength)
	}

	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		return nil, apperrors.Validation("notes cannot be empty")
	}

	if req.ConsultationDate.IsZero() {
		return nil, apperrors.Validation("consultation date is required")
	}

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	return &model.Consultation{
		PatientName:      name,
		ConsultationDate: req.ConsultationDate,
		Notes:            notes,
	}, nil
}

// List returns one page of consultations, newest first, and the total number
// stored.
func (s *Service) List(ctx context.Context, skip, limit int) (*model.ConsultationListResponse, error) {
	if skip < 0 {
		return nil, apperrors.Validation("skip must not be negative")
	}
	if limit < 1 || limit > model.MaxConsultationPageSize {
		return nil, apperrors.Validationf("limit must be between 1 and %d", model.MaxConsultationPageSize)
	}

	consultations, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.ConsultationListResponse{
		Consultations: consultations,
		Total:         total,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Consultation, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFoundf("consultation with ID %d not found", id)
		}
		return nil, apperrors.Internal(err)
	}
	return c, nil
}
