package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/cliniccare-api/internal/repository"
	"github.com/jwalitptl/cliniccare-api/pkg/metrics"
)

// Repositories bundles every postgres-backed repository over one pool.
type Repositories struct {
	Doctors        repository.DoctorRepository
	DiagnosisCodes repository.DiagnosisCodeRepository
	Consultations  repository.ConsultationRepository
}

func NewRepositories(db *sqlx.DB, m *metrics.Metrics) *Repositories {
	base := NewBaseRepository(db, m)
	return &Repositories{
		Doctors:        NewDoctorRepository(base),
		DiagnosisCodes: NewDiagnosisCodeRepository(base),
		Consultations:  NewConsultationRepository(base),
	}
}
