package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/cliniccare-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func render(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/consultation", nil)

	RespondWithError(c, err)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, c.IsAborted())
	return w, body
}

func TestRespondWithError_AppErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		kind   apperrors.Kind
	}{
		{apperrors.Unauthenticated("could not validate credentials"), http.StatusUnauthorized, apperrors.KindUnauthenticated},
		{apperrors.Forbidden("inactive account"), http.StatusForbidden, apperrors.KindForbidden},
		{apperrors.Conflict("username already registered", nil), http.StatusConflict, apperrors.KindConflict},
		{apperrors.Validation("notes cannot be empty"), http.StatusUnprocessableEntity, apperrors.KindValidation},
		{apperrors.NotFound("consultation with ID 3 not found"), http.StatusNotFound, apperrors.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			w, body := render(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.kind, body.Kind)

			appErr, _ := apperrors.As(tt.err)
			assert.Equal(t, appErr.Message, body.Detail)
		})
	}
}

func TestRespondWithError_UnauthenticatedSetsChallenge(t *testing.T) {
	w, _ := render(t, apperrors.Unauthenticated("not authenticated"))
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestRespondWithError_HidesUnknownErrors(t *testing.T) {
	w, body := render(t, errors.New("pq: password authentication failed"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperrors.KindInternal, body.Kind)
	assert.Equal(t, "internal server error", body.Detail)
	assert.NotContains(t, w.Body.String(), "pq:")
}
