package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type AddCommentRequest struct {
	ImageID string `json:"image_id" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

type CommentResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r)
	if !ok {
		WriteError(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	_, err := h.CommentService.Add(r.Context(), identity, req.ImageID, req.Text)
	if err != nil {
		writeServiceError(w, err, "Missing required fields")
		return
	}

	WriteJSON(w, MessageResponse{Message: "Comment added successfully"}, http.StatusOK)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	imageID := mux.Vars(r)["imageId"]

	comments, err := h.CommentService.ListForImage(r.Context(), imageID)
	if err != nil {
		writeServiceError(w, err, "Could not list comments")
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		response = append(response, CommentResponse{
			ID:       c.CommentID,
			Username: c.Commenter,
			Text:     c.Text,
		})
	}

	WriteJSON(w, response, http.StatusOK)
}
