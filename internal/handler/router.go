package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/obesity-advisor/internal/middleware"
)

type RouterConfig struct {
	APIKey         string
	JWTSecret      string
	AllowedOrigins string
	MaxBodyBytes   int64
	AssessLimiter  *middleware.RateLimiter
	LoginLimiter   *middleware.RateLimiter
}

type Handlers struct {
	Auth       *AuthHandler
	Users      *UserHandler
	Metrics    *MetricHandler
	Assessment *AssessmentHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *mux.Router {
	r := mux.NewRouter()

	// CORS → security headers → body limit
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	if cfg.MaxBodyBytes > 0 {
		r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	}

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))

	assess := http.Handler(http.HandlerFunc(h.Assessment.Assess))
	if cfg.AssessLimiter != nil {
		assess = cfg.AssessLimiter.Middleware(assess)
	}
	api.Handle("/assessments", assess).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/scales/{param}/{value}", h.Assessment.Explain).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/stats", h.Assessment.Stats).Methods(http.MethodGet, http.MethodOptions)

	login := http.Handler(http.HandlerFunc(h.Auth.Login))
	if cfg.LoginLimiter != nil {
		login = cfg.LoginLimiter.Middleware(login)
	}
	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/login", login).Methods(http.MethodPost, http.MethodOptions)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	protected.HandleFunc("/users", h.Users.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/users", h.Users.GetAll).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/users/{id}", h.Users.GetByID).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/users/{id}", h.Users.Update).Methods(http.MethodPatch, http.MethodOptions)
	protected.HandleFunc("/users/{id}/metrics", h.Metrics.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/users/{id}/metrics", h.Metrics.GetByUserID).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/users/{id}/assessments", h.Assessment.CreateForUser).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/users/{id}/assessments", h.Assessment.ListForUser).Methods(http.MethodGet, http.MethodOptions)

	return r
}
