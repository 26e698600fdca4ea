package diagnosis

import (
	"context"
	"errors"
	"strings"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	"github.com/jwalitptl/cliniccare-api/internal/repository"
	apperrors "github.com/jwalitptl/cliniccare-api/pkg/errors"
)

type Service struct {
	repo repository.DiagnosisCodeRepository
}

func NewService(repo repository.DiagnosisCodeRepository) *Service {
	return &Service{repo: repo}
}

// Search matches term case-insensitively against code and description. A
// blank term lists the catalog in id order. At most limit codes are returned.
func (s *Service) Search(ctx context.Context, term string, limit int) (*model.DiagnosisSearchResponse, error) {
	if limit < 1 || limit > model.MaxDiagnosisSearchLimit {
		return nil, apperrors.Validationf("limit must be between 1 and %d", model.MaxDiagnosisSearchLimit)
	}

	codes, err := s.repo.Search(ctx, strings.TrimSpace(term), limit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.DiagnosisSearchResponse{
		Results: codes,
		Total:   len(codes),
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.DiagnosisCode, error) {
	code, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFoundf("diagnosis code with ID %d not found", id)
		}
		return nil, apperrors.Internal(err)
	}
	return code, nil
}
