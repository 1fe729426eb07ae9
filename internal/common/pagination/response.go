package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., article.DTO, comment.DTO).
// Bar carries the page numbers shown in the navigation bar for this page.
type Response[T any] struct {
	Data       []T      `json:"data"`           // Array of data items for the current page
	Pagination Metadata `json:"pagination"`     // Pagination metadata (total, page, limit, etc.)
	Bar        []int    `json:"pagination_bar"` // Visible page numbers for navigation
}

// NewResponse creates a new paginated response with data and metadata.
// The pagination bar is derived from the metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
		Bar:        BarNumbers(metadata.Page, metadata.TotalPages),
	}
}
