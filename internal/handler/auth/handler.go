package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/jwalitptl/cliniccare-api/internal/middleware"
	"github.com/jwalitptl/cliniccare-api/internal/model"
	apperrors "github.com/jwalitptl/cliniccare-api/pkg/errors"
	"github.com/jwalitptl/cliniccare-api/pkg/httputil"
	"github.com/jwalitptl/cliniccare-api/pkg/validator"
)

// Service is implemented by the auth service.
type Service interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Doctor, string, error)
	Login(ctx context.Context, username, password string) (*model.Doctor, string, error)
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
}

type Handler struct {
	svc       Service
	validator validator.Validator
}

func NewHandler(svc Service, v validator.Validator) *Handler {
	return &Handler{svc: svc, validator: v}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authenticate gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/login-json", h.LoginJSON)
		auth.GET("/me", authenticate, h.Me)
		auth.GET("/doctors", authenticate, h.ListDoctors)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid request body"))
		return
	}

	doctor, token, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithJSON(c, http.StatusCreated, model.DoctorTokenResponse{
		Doctor:      doctor,
		AccessToken: token,
		TokenType:   model.TokenTypeBearer,
	})
}

// Login accepts an OAuth2 password-grant style form.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid form data"))
		return
	}

	_, token, err := h.login(c, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithJSON(c, http.StatusOK, model.TokenResponse{
		AccessToken: token,
		TokenType:   model.TokenTypeBearer,
	})
}

func (h *Handler) LoginJSON(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid request body"))
		return
	}

	doctor, token, err := h.login(c, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithJSON(c, http.StatusOK, model.DoctorTokenResponse{
		Doctor:      doctor,
		AccessToken: token,
		TokenType:   model.TokenTypeBearer,
	})
}

func (h *Handler) login(c *gin.Context, req *model.LoginRequest) (*model.Doctor, string, error) {
	if err := h.validator.Validate(req); err != nil {
		return nil, "", err
	}
	return h.svc.Login(c.Request.Context(), req.Username, req.Password)
}

func (h *Handler) Me(c *gin.Context) {
	doctor, ok := middleware.CurrentDoctor(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.Unauthenticated("not authenticated"))
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, doctor)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.svc.ListDoctors(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithJSON(c, http.StatusOK, doctors)
}
