package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	apperrors "github.com/jwalitptl/cliniccare-api/pkg/errors"
	"github.com/jwalitptl/cliniccare-api/pkg/httputil"
)

const ContextDoctor = "doctor"

// IdentityResolver maps a bearer token to an active doctor.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*model.Doctor, error)
}

type AuthMiddleware struct {
	resolver IdentityResolver
}

func NewAuthMiddleware(resolver IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate verifies the bearer token and sets the doctor in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			httputil.RespondWithError(c, apperrors.Unauthenticated("not authenticated"))
			return
		}

		doctor, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}

		c.Set(ContextDoctor, doctor)
		c.Next()
	}
}

// CurrentDoctor returns the doctor stored by Authenticate.
func CurrentDoctor(c *gin.Context) (*model.Doctor, bool) {
	v, exists := c.Get(ContextDoctor)
	if !exists {
		return nil, false
	}
	doctor, ok := v.(*model.Doctor)
	return doctor, ok && doctor != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
