package pagination

// CalculateOffset calculates the database OFFSET value based on a zero-based
// page index and limit.
//
// Formula: offset = page * limit
//
// Examples:
//   - Page 0, Limit 10 -> Offset 0
//   - Page 1, Limit 10 -> Offset 10
//   - Page 2, Limit 20 -> Offset 40
func CalculateOffset(page, limit int) int {
	if page < 0 {
		return 0
	}
	return page * limit
}

// CalculateTotalPages calculates the total number of pages based on total
// elements and limit, using ceiling division. An empty result set has zero
// pages, which in turn yields an empty pagination bar.
//
// Examples:
//   - Total 0, Limit 10 -> 0 pages
//   - Total 1, Limit 10 -> 1 page
//   - Total 10, Limit 10 -> 1 page
//   - Total 11, Limit 10 -> 2 pages
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
