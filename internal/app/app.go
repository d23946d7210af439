package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/trackfit/trackfit/internal/config"
	"github.com/trackfit/trackfit/internal/db"
	"github.com/trackfit/trackfit/internal/repository"
	"github.com/trackfit/trackfit/internal/service"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	AuthService *service.AuthService
	JobService  *service.JobService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	jobRepository := repository.NewJobRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	jobService := service.NewJobService(jobRepository)

	return &App{
		Cfg:         cfg,
		DB:          database,
		AuthService: authService,
		JobService:  jobService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
