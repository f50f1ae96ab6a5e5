package main

import (
	"log"
	"net/http"
	"time"

	"github.com/yusufkecer/obesity-advisor/internal/config"
	"github.com/yusufkecer/obesity-advisor/internal/db"
	"github.com/yusufkecer/obesity-advisor/internal/handler"
	"github.com/yusufkecer/obesity-advisor/internal/middleware"
	"github.com/yusufkecer/obesity-advisor/internal/predictor"
	"github.com/yusufkecer/obesity-advisor/internal/repository"
	"github.com/yusufkecer/obesity-advisor/internal/service"
	"github.com/yusufkecer/obesity-advisor/internal/telemetry"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable must be set")
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, db.Schema); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	accountRepo := repository.NewAccountRepository(database)
	userRepo := repository.NewUserRepository(database)
	metricRepo := repository.NewMetricRepository(database)
	assessmentRepo := repository.NewAssessmentRepository(database)

	model := predictor.New(cfg.PredictorURL, cfg.PredictorTimeout)
	log.Printf("[predictor] using %s predictor", model.Name())

	stats := telemetry.New()
	assessmentService := service.NewAssessmentService(model, stats, assessmentRepo, userRepo)
	metricService := service.NewMetricService(metricRepo, userRepo)

	r := handler.NewRouter(handler.RouterConfig{
		APIKey:         cfg.APIKey,
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		AssessLimiter:  middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		LoginLimiter:   middleware.NewRateLimiter(5, 15*time.Minute),
	}, handler.Handlers{
		Auth:       handler.NewAuthHandler(cfg.JWTSecret, accountRepo),
		Users:      handler.NewUserHandler(userRepo),
		Metrics:    handler.NewMetricHandler(metricService),
		Assessment: handler.NewAssessmentHandler(assessmentService),
	})

	addr := ":" + cfg.Port
	log.Printf("server starting on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
