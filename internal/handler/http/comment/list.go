package comment

import (
	"net/http"

	"project-board/internal/handler/http/pathutil"
	"project-board/internal/handler/http/respond"
	cmtUC "project-board/internal/usecase/comment"
)

type ListHandler struct{ Svc *cmtUC.Service }

// ServeHTTP lists an article's comments oldest-first. A missing article
// yields an empty list rather than 404.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	comments, err := h.Svc.ListForArticle(r.Context(), articleID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, struct {
		Comments []DTO `json:"comments"`
	}{Comments: dtos})
}
