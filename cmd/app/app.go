package app

import (
	"log"

	"imageshare/internal/config"
	"imageshare/internal/database"
	"imageshare/internal/repository"
	"imageshare/internal/service"
	"imageshare/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Could not connect to DB: %v", err)
	}

	// upload directory
	disk, err := storage.NewDiskStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Could not initialize upload storage: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, disk)

	return db, repo, services
}
