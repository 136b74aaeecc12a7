// Package pagination carries the page window requested by a caller and the
// page of results handed back, mirroring the (content, page, size,
// totalElements, totalPages) shape the API exposes.
package pagination

// DefaultSize is applied when a request does not specify a page size.
const DefaultSize = 10

// Request is a zero-based page window. Size must be positive.
type Request struct {
	Page int
	Size int
}

// NewRequest clamps page and size into a valid window.
func NewRequest(page, size int) Request {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultSize
	}
	return Request{Page: page, Size: size}
}

// Offset returns the row offset for this window.
func (r Request) Offset() int {
	return r.Page * r.Size
}

// Page is one window of results plus the totals needed by clients to page on.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage assembles a page, computing totalPages as ceil(total/size).
func NewPage[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := int((total + int64(req.Size) - 1) / int64(req.Size))
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Empty returns a page with no content and zero totals.
func Empty[T any](req Request) Page[T] {
	return Page[T]{Content: []T{}, Page: req.Page, Size: req.Size}
}
