package services

import "strconv"

// PostsPerPage is the fixed feed window size.
const PostsPerPage = 10

// PageInfo describes one window over an ordered result set.
type PageInfo struct {
	Number     int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// ParsePage reads a raw ?page= value. Absent or garbage input means page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageWindow clamps the requested page into the valid range and returns the
// page descriptor plus the limit/offset to fetch it with. Out-of-range
// requests land on the nearest valid page rather than erroring, so page 3 of
// a 13-item feed serves page 2's items.
func PageWindow(requested int, total int64) (PageInfo, int, int) {
	totalPages := int((total + PostsPerPage - 1) / PostsPerPage)
	if totalPages < 1 {
		totalPages = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	info := PageInfo{
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	return info, PostsPerPage, (page - 1) * PostsPerPage
}
