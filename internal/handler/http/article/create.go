package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"project-board/internal/domain/entity"
	"project-board/internal/handler/http/auth"
	"project-board/internal/handler/http/respond"
	artUC "project-board/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new article authored by the authenticated user.
// A request whose author account has vanished is absorbed as a logged skip,
// so the client still sees 201.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		HashtagText string `json:"hashtag_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Title == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("title is required"))
		return
	}

	userID := auth.UserFromContext(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	if _, err := h.Svc.Save(r.Context(), artUC.SaveInput{
		UserID:      userID,
		Title:       req.Title,
		Content:     req.Content,
		HashtagText: req.HashtagText,
	}); err != nil {
		code := http.StatusInternalServerError
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
