package article

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"project-board/internal/common/pagination"
	"project-board/internal/handler/http/requestid"
	"project-board/internal/handler/http/respond"
	"project-board/internal/observability/logging"
	artUC "project-board/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP serves the paginated article listing, optionally filtered by a
// search. The search_type query parameter selects the field
// (TITLE/CONTENT/NICKNAME/USER_ID/HASHTAG) and search_value the query; with
// neither set the full board is listed newest-first.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	kind, err := artUC.ParseSearchKind(r.URL.Query().Get("search_type"))
	if err != nil {
		logger.Warn("Invalid search type",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	query := r.URL.Query().Get("search_value")

	logger.Info("Paginated article list request",
		"page", params.Page,
		"limit", params.Limit,
		"search_type", string(kind),
		"request_id", reqID)

	result, err := h.Svc.Search(ctx, kind, query, params)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrUnknownSearchKind) {
			code = http.StatusBadRequest
		}
		logger.Error("Failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit,
			"request_id", reqID)
		respond.SafeError(w, code, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, toDTO(item))
	}

	response := pagination.NewResponse(dtos, result.Pagination)

	logger.Info("Paginated response",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"status", http.StatusOK,
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, response)
}
