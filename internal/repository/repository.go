package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"imageshare/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, imageID string) (*models.Image, error)
	GetAll(ctx context.Context) ([]*models.Image, error)
	// DeleteWithComments removes the image row and every comment that
	// references it inside a single transaction.
	DeleteWithComments(ctx context.Context, imageID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByImageID(ctx context.Context, imageID string) ([]*models.Comment, error)
}

type Repository struct {
	User    UserRepository
	Image   ImageRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Image:   NewImageRepository(db),
		Comment: NewCommentRepository(db),
	}
}
