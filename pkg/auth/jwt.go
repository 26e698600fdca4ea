package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 30 * time.Minute

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("jwt secret is required")
)

// Config holds the signing parameters shared by issuance and validation.
type Config struct {
	Secret string
	TTL    time.Duration
}

// TokenService issues and validates stateless access tokens. The subject is
// the doctor's username.
type TokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	IssueDefault(subject string) (string, error)
	Validate(token string) (string, error)
	TTL() time.Duration
}

type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*jwtService)

// WithClock overrides the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) {
		s.now = now
	}
}

func NewJWTService(cfg *Config, opts ...Option) (TokenService, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, ErrMissingSecret
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	s := &jwtService{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("issue token: empty subject")
	}
	if ttl <= 0 {
		ttl = s.ttl
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) IssueDefault(subject string) (string, error) {
	return s.Issue(subject, s.ttl)
}

// Validate returns the token subject. Every failure mode collapses into
// ErrInvalidToken.
func (s *jwtService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *jwtService) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return s.secret, nil
}
