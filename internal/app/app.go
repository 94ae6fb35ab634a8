package app

import (
	"fmt"

	"github.com/filedrop/filedrop/internal/config"
	"github.com/filedrop/filedrop/internal/db"
	"github.com/filedrop/filedrop/internal/repository"
	"github.com/filedrop/filedrop/internal/service"
	"github.com/filedrop/filedrop/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	Storage     storage.Storage
	AuthService *service.AuthService
	FileService *service.FileService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	fileRepository := repository.NewFileRepository(database)

	// Storage
	var blobStorage storage.Storage
	if cfg.StorageDriver == "memory" {
		blobStorage = storage.NewMemoryStorage()
	} else {
		blobStorage, err = storage.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %v", err)
		}
	}

	// Services
	authService := service.NewAuthService(userRepository)
	fileService := service.NewFileService(fileRepository, blobStorage)

	return &App{
		Cfg:         cfg,
		DB:          database,
		Storage:     blobStorage,
		AuthService: authService,
		FileService: fileService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
