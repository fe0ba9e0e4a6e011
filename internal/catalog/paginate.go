package catalog

// Page sizes used across the portal views.
const (
	GamesPerPage     = 24
	BlogsPerPage     = 9
	AdminRowsPerPage = 20
)

// Page is one slice of a filtered, sorted collection plus the counts
// the pager controls need.
type Page[T any] struct {
	Items      []T `json:"data"`
	Total      int `json:"total"`
	TotalPages int `json:"pages"`
	Current    int `json:"current"`
	Size       int `json:"size"`
}

// Paginate slices items into 1-based pages of the given size. A page
// beyond the last yields an empty slice, not an error; callers that
// drive a pager should clamp the requested page first (ClampPage) so a
// narrowed result set cannot strand the view on an empty page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Total:      total,
		TotalPages: totalPages,
		Current:    page,
		Size:       size,
	}
}

// TotalPages reports how many pages of the given size a collection
// fills. A non-positive size counts as 1 so callers cannot divide by
// zero.
func TotalPages(count, size int) int {
	if size < 1 {
		size = 1
	}
	return (count + size - 1) / size
}

// ClampPage pins a requested page into [1, totalPages]. A zero
// totalPages still yields page 1 so the pager renders.
func ClampPage(page, totalPages int) int {
	if page < 1 || totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
