package service

import (
	"imageshare/internal/config"
	"imageshare/internal/repository"
	"imageshare/internal/storage"
)

type Service struct {
	Auth    AuthService
	Media   MediaService
	Comment CommentService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Media:   NewMediaService(rep.Image, storage, cfg),
		Comment: NewCommentService(rep.Comment),
	}
}
