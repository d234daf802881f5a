package pagination

// Defaults and bounds for page normalization
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params is a normalized page request.
type Params struct {
	Page     int
	PageSize int
}

// Normalize maps raw page inputs onto valid values: non-positive page falls
// back to 1, non-positive pageSize falls back to 10, and pageSize is capped
// at 100.
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the number of rows to take.
func (p Params) Limit() int {
	return p.PageSize
}

// Result is the paginated envelope returned by list operations.
type Result[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewResult wraps a page of items with its envelope metadata. An empty page
// is valid; TotalPages is zero when there are no rows at all.
func NewResult[T any](items []T, total int64, p Params) Result[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	return Result[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}
