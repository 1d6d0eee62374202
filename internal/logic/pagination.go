package logic

// PageInfo describes where the current page sits within a filtered result
type PageInfo struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// NewPageInfo constructs page metadata, deriving TotalPages from total and size
func NewPageInfo(page, size, total int) PageInfo {
	return PageInfo{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: TotalPages(total, size),
	}
}

// HasNext reports whether a page follows the current one
func (p PageInfo) HasNext() bool { return p.Page < p.TotalPages }

// HasPrev reports whether a page precedes the current one
func (p PageInfo) HasPrev() bool { return p.Page > 1 }

// TotalPages is ceil(total/size); zero for an empty result or a non-positive size
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Offset returns the index of the first item on a 1-based page
func Offset(page, size int) int {
	if page <= 1 {
		return 0
	}
	return (page - 1) * size
}

// PageWindow returns the contiguous slice of items shown on a 1-based page.
// Bounds are clamped to the sequence, so a page past the end is empty.
// The result shares storage with items but cannot be appended into it.
func PageWindow[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items[:0:0]
	}
	start := Offset(page, size)
	if start >= len(items) {
		return items[:0:0]
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}
