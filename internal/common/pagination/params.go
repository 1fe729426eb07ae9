package pagination

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Sort describes the ordering applied to a listing query.
// Field is restricted to a whitelist so it can be spliced into SQL safely.
type Sort struct {
	Field string
	Desc  bool
}

// Request represents a page request: a zero-based page index, a page size,
// and a sort specification.
type Request struct {
	Page  int // 0-based page index
	Limit int // Items per page
	Sort  Sort
}

// DefaultSort orders listings by creation time, newest first.
func DefaultSort() Sort {
	return Sort{Field: "created_at", Desc: true}
}

// sortableFields maps accepted sort keys to column names.
var sortableFields = map[string]string{
	"created_at": "created_at",
	"title":      "title",
}

// ParseQueryParams parses pagination parameters from an HTTP request query string.
// Returns a Request with defaults when parameters are missing.
//
// Query parameters:
//   - page: zero-based page index (non-negative integer)
//   - limit: items per page (between 1 and config.MaxLimit)
//   - sort: "<field>" or "<field>,desc" against a field whitelist
//
// Returns an error if parameters are invalid.
func ParseQueryParams(r *http.Request, config Config) (Request, error) {
	req := Request{
		Page:  0,
		Limit: config.DefaultLimit,
		Sort:  DefaultSort(),
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return req, fmt.Errorf("invalid query parameter: page must be a non-negative integer")
		}
		req.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return req, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		req.Limit = limit
	}

	if sortStr := r.URL.Query().Get("sort"); sortStr != "" {
		sort, err := parseSort(sortStr)
		if err != nil {
			return req, err
		}
		req.Sort = sort
	}

	return req, nil
}

func parseSort(s string) (Sort, error) {
	parts := strings.SplitN(s, ",", 2)
	field, ok := sortableFields[parts[0]]
	if !ok {
		return Sort{}, fmt.Errorf("invalid query parameter: sort field %q is not supported", parts[0])
	}
	sort := Sort{Field: field}
	if len(parts) == 2 {
		switch parts[1] {
		case "asc":
		case "desc":
			sort.Desc = true
		default:
			return Sort{}, fmt.Errorf("invalid query parameter: sort direction must be asc or desc")
		}
	}
	return sort, nil
}
