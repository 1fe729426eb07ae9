package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"project-board/internal/handler/http/auth"
	"project-board/internal/handler/http/pathutil"
	"project-board/internal/handler/http/respond"
	artUC "project-board/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP updates an article's title, content and hashtag set. A missing
// article or a requester that is not the author is absorbed as a logged skip
// and still answers 204.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		HashtagText string `json:"hashtag_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	userID := auth.UserFromContext(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	if _, err := h.Svc.Update(r.Context(), id, artUC.UpdateInput{
		UserID:      userID,
		Title:       req.Title,
		Content:     req.Content,
		HashtagText: req.HashtagText,
	}); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
