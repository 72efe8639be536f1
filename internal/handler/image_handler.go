package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"imageshare/internal/models"
	"imageshare/internal/service"
)

type ImageResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Uploader string `json:"uploader"`
	URL      string `json:"url"`
}

const uploadsURLPrefix = "/static/uploads/"

func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		WriteError(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	// the role gate comes before the multipart parse, so a consumer gets 403
	// no matter what the body holds
	if err := service.RequireRole(identity, models.RoleCreator); err != nil {
		WriteError(w, "Only creators can upload images", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "No image uploaded", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "No image uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	_, err = h.MediaService.Upload(r.Context(), identity, header.Filename, file)
	if err != nil {
		writeServiceError(w, err, "Could not upload image")
		return
	}

	WriteJSON(w, MessageResponse{Message: "Image uploaded successfully"}, http.StatusOK)
}

func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	images, err := h.MediaService.Feed(r.Context())
	if err != nil {
		writeServiceError(w, err, "Could not list images")
		return
	}

	// always an array, never null
	response := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		response = append(response, ImageResponse{
			ID:       img.ImageID,
			Filename: img.Filename,
			Uploader: img.Uploader,
			URL:      uploadsURLPrefix + img.Filename,
		})
	}

	WriteJSON(w, response, http.StatusOK)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		WriteError(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	imageID := mux.Vars(r)["imageId"]

	err := h.MediaService.Delete(r.Context(), identity, imageID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeServiceError(w, err, "Image not found")
		} else {
			writeServiceError(w, err, "Only the uploader can delete this image")
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Image deleted successfully"}, http.StatusOK)
}

func (h *Handlers) ServeUpload(w http.ResponseWriter, r *http.Request) {
	fileName := mux.Vars(r)["filename"]

	f, err := h.MediaService.OpenFile(fileName)
	if err != nil {
		writeServiceError(w, err, "File not found")
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	io.Copy(w, f)
}
