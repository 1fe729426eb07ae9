package article

import (
	"errors"
	"net/http"

	"project-board/internal/domain/entity"
	"project-board/internal/handler/http/pathutil"
	"project-board/internal/handler/http/respond"
	artUC "project-board/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns one article with its comments oldest-first.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	detail, err := h.Svc.GetWithComments(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		var nf *entity.NotFoundError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.As(err, &nf) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	total, err := h.Svc.Count(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	comments := make([]CommentDTO, 0, len(detail.Comments))
	for _, c := range detail.Comments {
		comments = append(comments, toCommentDTO(c))
	}

	respond.JSON(w, http.StatusOK, DetailDTO{
		DTO:          toDTO(detail.Article),
		Comments:     comments,
		CommentCount: len(comments),
		ArticleCount: total,
	})
}
