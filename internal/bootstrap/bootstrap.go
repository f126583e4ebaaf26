package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/escolar/escolar-backend/internal/app/controllers"
	appRepos "github.com/escolar/escolar-backend/internal/app/repositories"
	appRoutes "github.com/escolar/escolar-backend/internal/app/routes"
	appServices "github.com/escolar/escolar-backend/internal/app/services"
	"github.com/escolar/escolar-backend/internal/config"
	appMiddleware "github.com/escolar/escolar-backend/internal/middleware"
	"github.com/escolar/escolar-backend/internal/pkg/logger"
	"github.com/escolar/escolar-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	StudentController          *appControllers.StudentController
	TutorController            *appControllers.TutorController
	EmergencyContactController *appControllers.EmergencyContactController
	GroupController            *appControllers.GroupController
	EnrollmentController       *appControllers.EnrollmentController
	PaymentController          *appControllers.PaymentController
	CatalogController          *appControllers.CatalogController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDataSource builds the repository container for the configured data
// source mode and, for the memory variant, loads the demonstration dataset.
func SetupDataSource(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	switch cfg.DataSource.Mode {
	case config.DataSourceRemote:
		lgr.Info().Str("baseUrl", cfg.DataSource.BaseURL).Msg("Using remote data source")
		return appRepos.NewRemoteRepositories(cfg.DataSource.BaseURL, cfg.RemoteTimeout()), nil
	default:
		lgr.Info().Msg("Using in-memory data source")
		repos := appRepos.NewMemoryRepositories()
		if cfg.DataSource.Seed {
			if err := seed.CreateDefaultData(context.Background(), repos); err != nil {
				return nil, err
			}
		}
		return repos, nil
	}
}

// BuildDependencies wires repositories, services and controllers together.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	repos, err := SetupDataSource(cfg, lgr)
	if err != nil {
		return nil, err
	}

	services := appServices.NewServices(repos)

	deps := &Dependencies{
		Repos:    repos,
		Services: services,

		StudentController:          appControllers.NewStudentController(services.Student),
		TutorController:            appControllers.NewTutorController(services.Tutor),
		EmergencyContactController: appControllers.NewEmergencyContactController(services.EmergencyContact),
		GroupController:            appControllers.NewGroupController(services.Group),
		EnrollmentController:       appControllers.NewEnrollmentController(services.Enrollment),
		PaymentController:          appControllers.NewPaymentController(services.Payment),
		CatalogController:          appControllers.NewCatalogController(services.Grade, services.Dashboard),

		Logger: lgr,
	}
	return deps, nil
}

// SetupRouter creates the gin engine and registers middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(
		router,
		deps.StudentController,
		deps.TutorController,
		deps.EmergencyContactController,
		deps.GroupController,
		deps.EnrollmentController,
		deps.PaymentController,
		deps.CatalogController,
	)
	return router
}
