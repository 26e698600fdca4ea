package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/cliniccare-api/internal/handler/auth"
	"github.com/jwalitptl/cliniccare-api/internal/handler/consultation"
	"github.com/jwalitptl/cliniccare-api/internal/handler/diagnosis"
	"github.com/jwalitptl/cliniccare-api/internal/handler/health"
	"github.com/jwalitptl/cliniccare-api/internal/handler/prometheus"
	"github.com/jwalitptl/cliniccare-api/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	MaxBodySize    int64
}

type Router struct {
	engine        *gin.Engine
	auth          *middleware.AuthMiddleware
	authH         *auth.Handler
	diagnosisH    *diagnosis.Handler
	consultationH *consultation.Handler
	healthH       *health.Handler
	metricsH      *prometheus.Handler
}

func NewRouter(
	authMiddleware *middleware.AuthMiddleware,
	authH *auth.Handler,
	diagnosisH *diagnosis.Handler,
	consultationH *consultation.Handler,
	healthH *health.Handler,
	metricsH *prometheus.Handler,
	config RouterConfig,
) *Router {
	engine := gin.New()

	maxBody := config.MaxBodySize
	if maxBody <= 0 {
		maxBody = middleware.DefaultMaxBodySize
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		metricsH.Middleware(),
		cors.New(corsConfig(config.CORSOrigins)),
		middleware.SecurityHeaders(),
		middleware.Timeout(config.RequestTimeout),
		middleware.SizeLimit(maxBody),
	)

	return &Router{
		engine:        engine,
		auth:          authMiddleware,
		authH:         authH,
		diagnosisH:    diagnosisH,
		consultationH: consultationH,
		healthH:       healthH,
		metricsH:      metricsH,
	}
}

func (r *Router) Setup() {
	api := r.engine.Group("/api")

	r.healthH.RegisterRoutes(r.engine, api)
	r.engine.GET("/metrics", r.metricsH.Handler())

	authenticate := r.auth.Authenticate()
	r.authH.RegisterRoutes(api, authenticate)
	r.diagnosisH.RegisterRoutes(api)
	r.consultationH.RegisterRoutes(api, authenticate)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// corsConfig allows credentials for an explicit origin list; a wildcard or
// empty list opens every origin without credentials.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
			middleware.HeaderXRequestID,
		},
		ExposeHeaders: []string{
			"Content-Length",
			middleware.HeaderXRequestID,
		},
		MaxAge: 12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
