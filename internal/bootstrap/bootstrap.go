// Package bootstrap assembles the application: configuration, logging,
// database, migrations, seed data, and the full dependency graph the router
// is built from.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/controllers"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/migrations"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/repositories"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/routes"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/services"
	"github.com/tharatepjaiya-creator/Student-info1/internal/config"
	"github.com/tharatepjaiya-creator/Student-info1/internal/db"
	"github.com/tharatepjaiya-creator/Student-info1/internal/middleware"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/filestorage"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/session"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/validation"
	"github.com/tharatepjaiya-creator/Student-info1/internal/seed"
)

// App holds everything the server needs to run and shut down.
type App struct {
	Config      *config.Config
	Database    *db.Database
	Controllers routes.Controllers
	Sessions    *middleware.SessionMiddleware
	Storage     filestorage.Storage
}

// New loads configuration, opens and migrates the database, seeds defaults,
// and wires repositories, services, and controllers.
func New(configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	if err := validation.RegisterCustomRules(); err != nil {
		return nil, fmt.Errorf("registering validation rules: %w", err)
	}

	database, err := db.New(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrations.NewMigrator(database.DB, database.Driver).Run(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	repos := repositories.NewRepositories(database.DB)
	if err := seed.CreateDefaultData(ctx, repos, logger.Logger()); err != nil {
		logger.Warn().Err(err).Msg("seeding default data incomplete")
	}

	storage, err := newStorage(cfg)
	if err != nil {
		database.Close()
		return nil, err
	}

	sessionStore := newSessionStore(cfg, database)

	lgr := logger.Logger()
	authService := services.NewAuthService(repos.Students, repos.Admins, sessionStore, cfg.SessionTTL(), lgr)
	studentService := services.NewStudentService(repos.Students, storage, lgr)
	departmentService := services.NewDepartmentService(repos.Departments, lgr)
	announcementService := services.NewAnnouncementService(repos.Announcements, repos.Students, lgr)
	statsService := services.NewStatsService(repos.Stats)

	ctrl := routes.Controllers{
		Auth: controllers.NewAuthController(
			authService, departmentService, statsService, storage,
			cfg.Session.CookieName, cfg.SessionTTL(),
		),
		StudentPortal: controllers.NewStudentPortalController(studentService, announcementService),
		Students:      controllers.NewStudentController(studentService, authService, storage),
		Departments:   controllers.NewDepartmentController(departmentService),
		Announcements: controllers.NewAnnouncementController(announcementService, storage),
		Stats:         controllers.NewStatsController(statsService),
	}

	return &App{
		Config:      cfg,
		Database:    database,
		Controllers: ctrl,
		Sessions:    middleware.NewSessionMiddleware(sessionStore, cfg.Session.CookieName),
		Storage:     storage,
	}, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.Database != nil {
		a.Database.Close()
	}
}

func newStorage(cfg *config.Config) (filestorage.Storage, error) {
	switch cfg.Storage.Backend {
	case "cloudinary":
		return filestorage.NewCloudinaryStorage(
			cfg.Storage.Cloudinary.CloudName,
			cfg.Storage.Cloudinary.APIKey,
			cfg.Storage.Cloudinary.APISecret,
			cfg.Storage.Cloudinary.Folder,
		)
	default:
		return filestorage.NewLocalStorage(cfg.Storage.LocalPath, "/uploads")
	}
}

func newSessionStore(cfg *config.Config, database *db.Database) session.Store {
	if cfg.Session.Store == "memory" {
		return session.NewMemoryStore()
	}
	return session.NewSQLStore(database.DB)
}
