package comment

import (
	"net/http"

	cmtUC "project-board/internal/usecase/comment"
)

// Register registers all comment-related HTTP handlers with the given mux.
// Comment listing and creation nest under the parent article; update and
// delete address the comment directly.
func Register(mux *http.ServeMux, svc *cmtUC.Service) {
	mux.Handle("GET    /articles/{id}/comments", ListHandler{svc})
	mux.Handle("POST   /articles/{id}/comments", CreateHandler{svc})
	mux.Handle("PUT    /comments/", UpdateHandler{svc})
	mux.Handle("DELETE /comments/", DeleteHandler{svc})
}
