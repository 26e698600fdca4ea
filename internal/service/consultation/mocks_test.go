package consultation

import (
	"context"

	"github.com/jwalitptl/cliniccare-api/internal/model"
)

type mockConsultationRepository struct {
	CreateFunc func(ctx context.Context, c *model.Consultation, ids []int64) error
	GetFunc    func(ctx context.Context, id int64) (*model.Consultation, error)
	ListFunc   func(ctx context.Context, skip, limit int) ([]model.Consultation, error)
	CountFunc  func(ctx context.Context) (int, error)

	createCalls int
}

func (m *mockConsultationRepository) Create(ctx context.Context, c *model.Consultation, ids []int64) error {
	m.createCalls++
	return m.CreateFunc(ctx, c, ids)
}

func (m *mockConsultationRepository) Get(ctx context.Context, id int64) (*model.Consultation, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockConsultationRepository) List(ctx context.Context, skip, limit int) ([]model.Consultation, error) {
	return m.ListFunc(ctx, skip, limit)
}

func (m *mockConsultationRepository) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}
