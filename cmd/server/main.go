package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"schoolplanner/config"
	authadapter "schoolplanner/internal/adapters/auth"
	"schoolplanner/internal/adapters/email"
	httpdelivery "schoolplanner/internal/delivery/http"
	"schoolplanner/internal/delivery/http/controllers"
	"schoolplanner/internal/delivery/http/middleware"
	"schoolplanner/internal/repository/postgres"
	"schoolplanner/internal/services"
)

const (
	serviceTimeout = 5 * time.Second
	tokenExpiry    = 24 * time.Hour
)

// @title School Planner API
// @version 1.0
// @description Multi-tenant school administration API with a weekly schedule engine.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	schoolRepo := postgres.NewSchoolRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	rosterRepo := postgres.NewRosterRepository(db)
	scheduleStore := postgres.NewScheduleRepository(db)

	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)
	issuer, verifier := authadapter.NewJWTTokens(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	authService := services.NewAuthService(schoolRepo, hasher, issuer, cfg.AdminCode, tokenExpiry, serviceTimeout)
	schoolService := services.NewSchoolService(schoolRepo, hasher, mailer, logger, serviceTimeout)
	catalogService := services.NewCatalogService(catalogRepo, serviceTimeout)
	rosterService := services.NewRosterService(rosterRepo, serviceTimeout)
	scheduleService := services.NewScheduleService(schoolRepo, scheduleStore, serviceTimeout)

	mux := httpdelivery.NewRouter(
		verifier,
		controllers.NewAuthController(logger, authService),
		controllers.NewSchoolController(logger, schoolService),
		controllers.NewCatalogController(logger, catalogService),
		controllers.NewRosterController(logger, rosterService),
		controllers.NewScheduleController(logger, scheduleService),
	)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
