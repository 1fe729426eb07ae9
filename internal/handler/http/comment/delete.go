package comment

import (
	"errors"
	"net/http"

	"project-board/internal/handler/http/auth"
	"project-board/internal/handler/http/pathutil"
	"project-board/internal/handler/http/respond"
	cmtUC "project-board/internal/usecase/comment"
)

type DeleteHandler struct{ Svc *cmtUC.Service }

// ServeHTTP deletes a comment when the requester is its author. Anything
// else is absorbed as a logged skip and still answers 204.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/comments/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	userID := auth.UserFromContext(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	if _, err := h.Svc.Delete(r.Context(), id, userID); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
