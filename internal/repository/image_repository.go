package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"imageshare/internal/models"
)

type imageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	if image.ImageID == "" {
		image.ImageID = uuid.New().String()
	}

	query := `
		INSERT INTO images (image_id, filename, uploader)
		VALUES (:image_id, :filename, :uploader)
	`

	_, err := r.db.NamedExecContext(ctx, query, image)
	if err != nil {
		return fmt.Errorf("could not create image: %w", err)
	}

	return nil
}

func (r *imageRepository) GetByID(ctx context.Context, imageID string) (*models.Image, error) {
	var image models.Image

	query := `SELECT * FROM images WHERE image_id = $1`

	err := r.db.GetContext(ctx, &image, query, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("image %s: %w", imageID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get image: %w", err)
	}

	return &image, nil
}

func (r *imageRepository) GetAll(ctx context.Context) ([]*models.Image, error) {
	query := `SELECT * FROM images ORDER BY image_id`

	var images []*models.Image
	err := r.db.SelectContext(ctx, &images, query)
	if err != nil {
		return nil, fmt.Errorf("could not list images: %w", err)
	}

	return images, nil
}

// DeleteWithComments deletes dependent comments and then the image row in one
// transaction, so a delete observed through the API never leaves orphaned
// comments behind.
func (r *imageRepository) DeleteWithComments(ctx context.Context, imageID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE image_id = $1`, imageID)
	if err != nil {
		return fmt.Errorf("could not delete image comments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM images WHERE image_id = $1`, imageID)
	if err != nil {
		return fmt.Errorf("could not delete image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("image %s: %w", imageID, models.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit delete: %w", err)
	}

	return nil
}
