package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"project-board/internal/handler/http/auth"
	"project-board/internal/handler/http/pathutil"
	"project-board/internal/handler/http/respond"
	cmtUC "project-board/internal/usecase/comment"
)

type UpdateHandler struct{ Svc *cmtUC.Service }

// ServeHTTP updates a comment's content. A missing comment or a requester
// that is not the author is absorbed as a logged skip and still answers 204.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/comments/")
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

	if _, err := h.Svc.Update(r.Context(), id, cmtUC.UpdateInput{
		UserID:  userID,
		Content: req.Content,
	}); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
