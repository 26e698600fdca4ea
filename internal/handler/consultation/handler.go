package consultation

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
	Create(ctx context.Context, req *model.CreateConsultationRequest) (*model.Consultation, error)
	List(ctx context.Context, skip, limit int) (*model.ConsultationListResponse, error)
	Get(ctx context.Context, id int64) (*model.Consultation, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the consultation routes; every one requires a
// logged-in doctor.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authenticate gin.HandlerFunc) {
	consultations := r.Group("/consultation", authenticate)
	{
		consultations.POST("", h.Create)
		consultations.GET("", h.List)
		consultations.GET("/:id", h.Get)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid request body"))
		return
	}

	consultation, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusCreated, consultation)
}

func (h *Handler) List(c *gin.Context) {
	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	limit, err := intQuery(c, "limit", model.DefaultConsultationPageSize)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	resp, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("consultation id must be an integer"))
		return
	}

	consultation, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, consultation)
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Validationf("%s must be an integer", key)
	}
	return v, nil
}
