package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/cliniccare-api/internal/config"
	"github.com/jwalitptl/cliniccare-api/internal/model"
	"github.com/jwalitptl/cliniccare-api/internal/repository"
	"github.com/jwalitptl/cliniccare-api/internal/repository/postgres"
	"github.com/jwalitptl/cliniccare-api/pkg/security"
)

type DiagnosisCodeSeed struct {
	Code        string
	Description string
}

type Seeder struct {
	base    postgres.BaseRepository
	doctors repository.DoctorRepository
	hasher  security.PasswordHasher
	codes   []DiagnosisCodeSeed
}

func NewSeeder(db *sqlx.DB, doctors repository.DoctorRepository, hasher security.PasswordHasher) *Seeder {
	return &Seeder{
		base:    postgres.NewBaseRepository(db, nil),
		doctors: doctors,
		hasher:  hasher,
		codes:   ICD10Codes,
	}
}

// SeedDiagnosisCodes loads the catalog in one transaction and reports how
// many codes were inserted. An already populated table is left alone unless
// clear is set, in which case existing codes are deleted first. Deleting a
// code cascades to the consultation links that reference it.
func (s *Seeder) SeedDiagnosisCodes(ctx context.Context, clear bool) (int, error) {
	inserted := 0

	err := s.base.WithTx(ctx, func(tx *sqlx.Tx) error {
		var existing int
		if err := tx.GetContext(ctx, &existing, `SELECT COUNT(*) FROM diagnosis_codes`); err != nil {
			return fmt.Errorf("failed to count diagnosis codes: %w", err)
		}

		if existing > 0 {
			if !clear {
				log.Info().Int("existing", existing).Msg("diagnosis codes already present, skipping")
				return nil
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM diagnosis_codes`); err != nil {
				return fmt.Errorf("failed to clear diagnosis codes: %w", err)
			}
			log.Info().Int("deleted", existing).Msg("cleared diagnosis codes")
		}

		codes := make([]string, len(s.codes))
		descriptions := make([]string, len(s.codes))
		for i, c := range s.codes {
			codes[i] = c.Code
			descriptions[i] = c.Description
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO diagnosis_codes (code, description)
			SELECT * FROM unnest($1::text[], $2::text[])
		`, pq.Array(codes), pq.Array(descriptions))
		if err != nil {
			return fmt.Errorf("failed to insert diagnosis codes: %w", err)
		}

		inserted = len(s.codes)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		log.Info().Int("count", inserted).Msg("seeded diagnosis codes")
	}
	return inserted, nil
}

// SeedDefaultDoctor creates the configured account when no doctor exists.
// It reports whether an account was created.
func (s *Seeder) SeedDefaultDoctor(ctx context.Context, cfg config.SeedConfig) (bool, error) {
	count, err := s.doctors.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		log.Info().Int("existing", count).Msg("doctors already present, skipping default doctor")
		return false, nil
	}

	hashed, err := s.hasher.Hash(cfg.DoctorPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash default doctor password: %w", err)
	}

	doctor := &model.Doctor{
		Username:       cfg.DoctorUsername,
		Email:          cfg.DoctorEmail,
		FullName:       cfg.DoctorFullName,
		HashedPassword: hashed,
		IsActive:       true,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return false, fmt.Errorf("failed to create default doctor: %w", err)
	}

	log.Info().Str("username", doctor.Username).Msg("created default doctor")
	return true, nil
}
