package article

import (
	"errors"
	"net/http"

	"project-board/internal/handler/http/auth"
	"project-board/internal/handler/http/pathutil"
	"project-board/internal/handler/http/respond"
	artUC "project-board/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article and its comments when the requester is the
// author. A missing article or a non-author requester is absorbed as a
// logged skip and still answers 204.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
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
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
