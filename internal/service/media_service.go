package service

import (
	"context"
	"fmt"
	"io"

	"imageshare/internal/config"
	"imageshare/internal/models"
	"imageshare/internal/repository"
	"imageshare/internal/storage"
)

type MediaService interface {
	Upload(ctx context.Context, identity *models.Identity, fileName string, file io.Reader) (*models.Image, error)
	Feed(ctx context.Context) ([]*models.Image, error)
	Delete(ctx context.Context, identity *models.Identity, imageID string) error
	OpenFile(fileName string) (io.ReadCloser, error)
}

type mediaService struct {
	imageRepo repository.ImageRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewMediaService(imageRepo repository.ImageRepository, storage storage.Storage, cfg *config.Config) MediaService {
	return &mediaService{
		imageRepo: imageRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func (m *mediaService) Upload(ctx context.Context, identity *models.Identity, fileName string, file io.Reader) (*models.Image, error) {
	// role is checked before anything touches the file
	if err := RequireRole(identity, models.RoleCreator); err != nil {
		return nil, fmt.Errorf("only creators can upload images: %w", err)
	}

	if file == nil || fileName == "" {
		return nil, fmt.Errorf("no image uploaded: %w", models.ErrBadRequest)
	}

	storedName, err := m.storage.Save(fileName, file)
	if err != nil {
		return nil, fmt.Errorf("could not save image file: %w", err)
	}

	image := &models.Image{
		Filename: storedName,
		Uploader: identity.Username,
	}

	err = m.imageRepo.Create(ctx, image)
	if err != nil {
		m.storage.Remove(storedName)
		return nil, fmt.Errorf("could not save image record: %w", err)
	}

	return image, nil
}

func (m *mediaService) Feed(ctx context.Context) ([]*models.Image, error) {
	return m.imageRepo.GetAll(ctx)
}

func (m *mediaService) Delete(ctx context.Context, identity *models.Identity, imageID string) error {
	image, err := m.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	if err := RequireOwnership(identity, image.Uploader); err != nil {
		return err
	}

	// comments and the image row go in one transaction; the file removal is
	// best effort after the commit
	if err := m.imageRepo.DeleteWithComments(ctx, imageID); err != nil {
		return err
	}

	if err := m.storage.Remove(image.Filename); err != nil {
		return fmt.Errorf("image record deleted, file removal failed: %w", err)
	}

	return nil
}

func (m *mediaService) OpenFile(fileName string) (io.ReadCloser, error) {
	return m.storage.Open(fileName)
}
