package auth

import (
	"context"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	"github.com/jwalitptl/cliniccare-api/internal/repository"
)

type mockDoctorRepository struct {
	CreateFunc        func(ctx context.Context, doctor *model.Doctor) error
	GetByUsernameFunc func(ctx context.Context, username string) (*model.Doctor, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*model.Doctor, error)
	ListFunc          func(ctx context.Context) ([]*model.Doctor, error)
	CountFunc         func(ctx context.Context) (int, error)

	created []*model.Doctor
}

func (m *mockDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, doctor); err != nil {
			return err
		}
	}
	doctor.ID = int64(len(m.created) + 1)
	m.created = append(m.created, doctor)
	return nil
}

func (m *mockDoctorRepository) GetByUsername(ctx context.Context, username string) (*model.Doctor, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, repository.ErrNotFound
}

func (m *mockDoctorRepository) GetByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockDoctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return m.created, nil
}

func (m *mockDoctorRepository) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return len(m.created), nil
}
