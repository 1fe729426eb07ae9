package article

import (
	"log/slog"
	"net/http"

	"project-board/internal/common/pagination"
	"project-board/internal/handler/http/requestid"
	"project-board/internal/handler/http/respond"
	"project-board/internal/observability/logging"
	artUC "project-board/internal/usecase/article"
)

type HashtagSearchHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP serves the hashtag search page. The search_value query parameter
// carries the exact tag; a blank tag yields an empty page rather than the
// full board.
func (h HashtagSearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
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

	tag := r.URL.Query().Get("search_value")
	result, err := h.Svc.SearchViaHashtag(ctx, tag, params)
	if err != nil {
		logger.Error("Failed to search articles by hashtag",
			"error", err.Error(),
			"tag", tag,
			"request_id", reqID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	tags, err := h.Svc.Hashtags(ctx)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, toDTO(item))
	}
	respond.JSON(w, http.StatusOK, HashtagPageDTO{
		Response: pagination.NewResponse(dtos, result.Pagination),
		Hashtags: tags,
	})
}

// HashtagPageDTO is the hashtag search page: the matching articles plus the
// distinct hashtag list rendered next to them.
type HashtagPageDTO struct {
	pagination.Response[DTO]
	Hashtags []string `json:"hashtags"`
}

type HashtagListHandler struct{ Svc *artUC.Service }

// ServeHTTP lists every distinct hashtag on the board.
func (h HashtagListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Svc.Hashtags(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	respond.JSON(w, http.StatusOK, struct {
		Hashtags []string `json:"hashtags"`
	}{Hashtags: tags})
}
