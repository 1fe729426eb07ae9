package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"project-board/internal/domain/entity"
	"project-board/internal/handler/http/auth"
	"project-board/internal/handler/http/pathutil"
	"project-board/internal/handler/http/respond"
	cmtUC "project-board/internal/usecase/comment"
)

type CreateHandler struct{ Svc *cmtUC.Service }

// ServeHTTP creates a new comment under an article, authored by the
// authenticated user. A vanished parent article or author is absorbed as a
// logged skip; the client still sees 201.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Content string `json:"content"`
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

	if _, err := h.Svc.Save(r.Context(), cmtUC.SaveInput{
		ArticleID: articleID,
		UserID:    userID,
		Content:   req.Content,
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
