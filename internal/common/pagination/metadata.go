package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Total      int64 `json:"total"`       // Total number of items across all pages
	Page       int   `json:"page"`        // Current page index (0-based)
	Limit      int   `json:"limit"`       // Items per page
	TotalPages int   `json:"total_pages"` // Calculated total number of pages
}

// NewMetadata builds response metadata for a page request and total count.
func NewMetadata(req Request, total int64) Metadata {
	return Metadata{
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: CalculateTotalPages(total, req.Limit),
	}
}
