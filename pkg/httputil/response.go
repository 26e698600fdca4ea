package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/cliniccare-api/pkg/errors"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Detail string      `json:"detail"`
	Kind   errors.Kind `json:"kind"`
}

// RespondWithJSON sends data with the given status
func RespondWithJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// RespondWithError renders err and aborts the chain. Errors that are not
// application errors are logged and hidden behind a generic 500.
func RespondWithError(c *gin.Context, err error) {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.Internal(err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString("request_id")).
			Msg("request failed")
	}

	if appErr.Kind == errors.KindUnauthenticated {
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.AbortWithStatusJSON(status, ErrorBody{
		Detail: appErr.Message,
		Kind:   appErr.Kind,
	})
}
