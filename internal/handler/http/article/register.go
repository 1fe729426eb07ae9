package article

import (
	"log/slog"
	"net/http"

	"project-board/internal/common/pagination"
	artUC "project-board/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Write routes rely on the auth middleware applied around the whole mux;
// read routes are public.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /articles/hashtag", HashtagSearchHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /hashtags", HashtagListHandler{svc})
	mux.Handle("GET    /articles/", GetHandler{svc})

	mux.Handle("POST   /articles", CreateHandler{svc})
	mux.Handle("PUT    /articles/", UpdateHandler{svc})
	mux.Handle("DELETE /articles/", DeleteHandler{svc})
}
