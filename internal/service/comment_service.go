package service

import (
	"context"
	"fmt"

	"imageshare/internal/models"
	"imageshare/internal/repository"
)

type CommentService interface {
	Add(ctx context.Context, identity *models.Identity, imageID, text string) (*models.Comment, error)
	ListForImage(ctx context.Context, imageID string) ([]*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// Add stores a comment for an image. Image existence is not verified, so a
// comment can reference an id that was never uploaded or is already deleted.
func (s *commentService) Add(ctx context.Context, identity *models.Identity, imageID, text string) (*models.Comment, error) {
	if imageID == "" || text == "" {
		return nil, fmt.Errorf("missing image_id or text: %w", models.ErrBadRequest)
	}

	comment := &models.Comment{
		ImageID:   imageID,
		Commenter: identity.Username,
		Text:      text,
	}

	err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) ListForImage(ctx context.Context, imageID string) ([]*models.Comment, error) {
	return s.commentRepo.GetByImageID(ctx, imageID)
}
