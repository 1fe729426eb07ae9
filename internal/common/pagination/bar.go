package pagination

// DefaultBarLength is the number of page links shown in the pagination bar.
// Must be odd so the current page can sit in the middle of the window.
const DefaultBarLength = 5

// BarNumbers computes the visible page numbers for the pagination bar using
// the default bar length. See BarNumbersWithLength.
func BarNumbers(currentPage, totalPages int) []int {
	return BarNumbersWithLength(currentPage, totalPages, DefaultBarLength)
}

// BarNumbersWithLength returns a contiguous window of zero-based page
// numbers of length at most barLength, centered on currentPage when interior
// pages exist on both sides and otherwise clipped to [0, totalPages):
//
//	start = max(0, currentPage - barLength/2)
//	window = [start, start+barLength) ∩ [0, totalPages)
//
// totalPages == 0 yields an empty window. Invalid inputs clamp rather than
// fail; the result never contains negatives or values >= totalPages.
func BarNumbersWithLength(currentPage, totalPages, barLength int) []int {
	if totalPages <= 0 || barLength <= 0 {
		return []int{}
	}
	if currentPage < 0 {
		currentPage = 0
	}

	start := currentPage - barLength/2
	if start < 0 {
		start = 0
	}
	end := start + barLength
	if end > totalPages {
		end = totalPages
	}
	if start >= end {
		return []int{}
	}

	numbers := make([]int, 0, end-start)
	for n := start; n < end; n++ {
		numbers = append(numbers, n)
	}
	return numbers
}
