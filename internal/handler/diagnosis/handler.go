package diagnosis

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/cliniccare-api/internal/model"
	apperrors "github.com/jwalitptl/cliniccare-api/pkg/errors"
	"github.com/jwalitptl/cliniccare-api/pkg/httputil"
)

type Service interface {
	Search(ctx context.Context, term string, limit int) (*model.DiagnosisSearchResponse, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/diagnosis", h.Search)
}

// Search handles GET /diagnosis?search=&limit=
func (h *Handler) Search(c *gin.Context) {
	limit := model.DefaultDiagnosisSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.RespondWithError(c, apperrors.Validation("limit must be an integer"))
			return
		}
		limit = parsed
	}

	resp, err := h.svc.Search(c.Request.Context(), c.Query("search"), limit)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, resp)
}
