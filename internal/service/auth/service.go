package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	"github.com/jwalitptl/cliniccare-api/internal/repository"
	"github.com/jwalitptl/cliniccare-api/pkg/auth"
	apperrors "github.com/jwalitptl/cliniccare-api/pkg/errors"
	"github.com/jwalitptl/cliniccare-api/pkg/security"
	"github.com/jwalitptl/cliniccare-api/pkg/validator"
)

const (
	msgInvalidCredentials = "incorrect username or password"
	msgInactiveAccount    = "inactive account"
	msgCouldNotValidate   = "could not validate credentials"
	msgUsernameTaken      = "username already registered"
	msgEmailTaken         = "email already registered"

	dummyPassword = "cliniccare-unknown-user"
)

type Service struct {
	doctorRepo repository.DoctorRepository
	hasher     security.PasswordHasher
	tokens     auth.TokenService
	validator  validator.Validator

	dummyOnce sync.Once
	dummyHash string
}

func NewService(doctorRepo repository.DoctorRepository, hasher security.PasswordHasher,
	tokens auth.TokenService, v validator.Validator) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		hasher:     hasher,
		tokens:     tokens,
		validator:  v,
	}
}

// Register creates an active doctor and returns it with a fresh access token.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.Doctor, string, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, "", err
	}

	if _, err := s.doctorRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, "", apperrors.Conflict(msgUsernameTaken, nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", apperrors.Internal(err)
	}

	if _, err := s.doctorRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, "", apperrors.Conflict(msgEmailTaken, nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", apperrors.Internal(err)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) {
			return nil, "", apperrors.Validation(err.Error())
		}
		return nil, "", apperrors.Internal(err)
	}

	doctor := &model.Doctor{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashed,
		IsActive:       true,
	}

	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", apperrors.Conflict("username or email already registered", err)
		}
		return nil, "", apperrors.Internal(err)
	}

	token, err := s.tokens.IssueDefault(doctor.Username)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}

	log.Info().Int64("doctor_id", doctor.ID).Str("username", doctor.Username).Msg("doctor registered")
	return doctor, token, nil
}

// Login checks the credentials and issues an access token. Unknown users and
// wrong passwords are reported identically.
func (s *Service) Login(ctx context.Context, username, password string) (*model.Doctor, string, error) {
	doctor, err := s.doctorRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// burn one bcrypt comparison so unknown usernames cost the same
			s.hasher.Verify(password, s.unknownUserHash())
			log.Warn().Str("username", username).Msg("login failed")
			return nil, "", apperrors.Unauthenticated(msgInvalidCredentials)
		}
		return nil, "", apperrors.Internal(err)
	}

	if !s.hasher.Verify(password, doctor.HashedPassword) {
		log.Warn().Str("username", username).Msg("login failed")
		return nil, "", apperrors.Unauthenticated(msgInvalidCredentials)
	}

	if !doctor.IsActive {
		return nil, "", apperrors.Forbidden(msgInactiveAccount)
	}

	token, err := s.tokens.IssueDefault(doctor.Username)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return doctor, token, nil
}

// unknownUserHash is hashed at the configured cost on first use.
func (s *Service) unknownUserHash() string {
	s.dummyOnce.Do(func() {
		hashed, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash placeholder password")
			return
		}
		s.dummyHash = hashed
	})
	return s.dummyHash
}

// Resolve maps a bearer token to the active doctor it was issued for.
func (s *Service) Resolve(ctx context.Context, token string) (*model.Doctor, error) {
	username, err := s.tokens.Validate(token)
	if err != nil {
		return nil, apperrors.Unauthenticated(msgCouldNotValidate)
	}

	doctor, err := s.doctorRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthenticated(msgCouldNotValidate)
		}
		return nil, apperrors.Internal(err)
	}

	if !doctor.IsActive {
		return nil, apperrors.Forbidden(msgInactiveAccount)
	}
	return doctor, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctors, nil
}
