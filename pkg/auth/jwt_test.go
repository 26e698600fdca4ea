package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestService(t *testing.T, clock *fakeClock) TokenService {
	t.Helper()
	svc, err := NewJWTService(&Config{Secret: testSecret, TTL: 30 * time.Minute}, WithClock(clock.Now))
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&Config{})
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewJWTService(nil)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(&Config{Secret: testSecret})
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, svc.TTL())
}

func TestIssueAndValidate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	token, err := svc.IssueDefault("doctor")
	require.NoError(t, err)

	subject, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "doctor", subject)
}

func TestValidate_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	clock := &fakeClock{t: issuedAt}
	svc := newTestService(t, clock)

	ttl := 10 * time.Minute
	token, err := svc.Issue("doctor", ttl)
	require.NoError(t, err)

	clock.t = issuedAt.Add(ttl - time.Second)
	subject, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "doctor", subject)

	clock.t = issuedAt.Add(ttl + time.Second)
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	svc := newTestService(t, clock)

	other, err := NewJWTService(&Config{Secret: "another-secret"}, WithClock(clock.Now))
	require.NoError(t, err)

	token, err := other.IssueDefault("doctor")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Malformed(t *testing.T) {
	svc := newTestService(t, &fakeClock{t: time.Now()})

	for _, token := range []string{"", "abc", "a.b.c", "Bearer x.y.z"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestValidate_MissingSubject(t *testing.T) {
	now := time.Now()
	svc := newTestService(t, &fakeClock{t: now})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_MissingExpiry(t *testing.T) {
	svc := newTestService(t, &fakeClock{t: time.Now()})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "doctor",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Now()
	svc := newTestService(t, &fakeClock{t: now})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "doctor",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "doctor",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_EmptySubject(t *testing.T) {
	svc := newTestService(t, &fakeClock{t: time.Now()})

	_, err := svc.Issue("", time.Minute)
	assert.Error(t, err)
}
