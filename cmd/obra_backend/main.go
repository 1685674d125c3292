package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/obracontrol/budget_control_app/internal/adapters/database/pgsql"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/core/services"
	"github.com/obracontrol/budget_control_app/internal/handlers"
	"github.com/obracontrol/budget_control_app/internal/middleware"
	"github.com/obracontrol/budget_control_app/pkg/config"
	"github.com/obracontrol/budget_control_app/pkg/database"
)

// @title ObraControl Backend API
// @version 1.0
// @description Budget control and financial consolidation backend for construction projects.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, buildServices(dbPool, cfg))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires repositories into the service container handed to the
// HTTP layer.
func buildServices(dbPool *pgxpool.Pool, cfg *config.Config) *portssvc.ServiceContainer {
	partidaRepo := pgsql.NewPartidaRepository(dbPool)
	allocationRepo := pgsql.NewAllocationRepository(dbPool)
	planRepo := pgsql.NewMonthlyPlanRepository(dbPool)
	userRepo := pgsql.NewUserRepository(dbPool)
	// One repository backs voucher persistence, execution sums and the
	// cash-flow ledger.
	voucherRepo := pgsql.NewVoucherRepository(dbPool)

	ids := services.NewUUIDGenerator()

	availabilitySvc := services.NewAvailabilityService(partidaRepo, allocationRepo, voucherRepo)
	validationSvc := services.NewValidationService(availabilitySvc, services.AdvisoryPolicy{}, ids)
	alertSvc := services.NewAlertService(allocationRepo, availabilitySvc, ids)

	return &portssvc.ServiceContainer{
		Auth:         services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		Availability: availabilitySvc,
		Validation:   validationSvc,
		Alert:        alertSvc,
		Cashflow:     services.NewCashflowService(voucherRepo),
		BudgetReport: services.NewBudgetReportService(planRepo),
		Voucher:      services.NewVoucherService(voucherRepo, partidaRepo, validationSvc, alertSvc),
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory over a temporary stdlib connection.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
