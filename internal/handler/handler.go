package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"imageshare/internal/config"
	"imageshare/internal/database"
	"imageshare/internal/models"
	"imageshare/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	MediaService   service.MediaService
	CommentService service.CommentService
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		MediaService:   services.Media,
		CommentService: services.Comment,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

// identityFromContext recovers the identity placed there by the auth
// middleware.
func identityFromContext(r *http.Request) (*models.Identity, bool) {
	username, ok1 := r.Context().Value("username").(string)
	role, ok2 := r.Context().Value("role").(string)
	if !ok1 || !ok2 {
		return nil, false
	}
	return &models.Identity{Username: username, Role: role}, true
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "Database is not available", http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
