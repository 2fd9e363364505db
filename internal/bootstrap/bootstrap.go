// Package bootstrap builds the application: configuration, logging, the
// database pool, migrations and the dependency graph.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumniconnect/backend/internal/app/controllers"
	"github.com/alumniconnect/backend/internal/app/migrations"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/app/routes"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/config"
	"github.com/alumniconnect/backend/internal/db"
	"github.com/alumniconnect/backend/internal/middleware"
	"github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/logger"
	"github.com/alumniconnect/backend/internal/seed"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Repos          *repositories.Repositories
	Services       *services.Services
	Controllers    *controllers.Controllers
	AuthMiddleware *middleware.AuthMiddleware
	TokenService   *auth.TokenService
}

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	pool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info().Msg("Database connection successfully established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := migrations.NewMigrator(pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), pool); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return pool, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// auth middleware.
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool) *Dependencies {
	repos := repositories.NewRepositories(pool)

	// Sweep tokens that expired while the server was down
	if _, err := repos.TokenRepository.DeleteExpired(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("Failed to sweep expired tokens")
	}

	tokenService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:   cfg.Auth.TokenSecret,
		TokenExp:    cfg.TokenExpiry(),
		TokenIssuer: cfg.Auth.TokenIssuer,
	})

	svcs := services.NewServices(repos, tokenService)

	return &Dependencies{
		Repos:          repos,
		Services:       svcs,
		Controllers:    controllers.NewControllers(svcs),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenService, repos.TokenRepository, repos.UserRepository),
		TokenService:   tokenService,
	}
}

// SetupRouter creates the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
