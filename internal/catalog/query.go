// Package catalog is the shared filter/sort/paginate pipeline behind
// the game search, category listing and blog listing endpoints. Every
// stage is a pure transformation over an in-memory slice; nothing here
// touches storage and nothing here returns an error. Unmatchable input
// degrades to an empty result, never a failure.
package catalog

import (
	"net/url"
	"strconv"
)

// Query is the listing state carried in URL parameters. CategoryParam
// holds the raw category value from the request; callers resolve it to
// a category id before filtering (the engine matches by id only).
type Query struct {
	Text          string
	Sort          SortKey
	CategoryParam string
	Page          int
	PerPage       int
}

// ParseQuery reads the canonical listing parameters. The historical
// URL shape used both q (free text) and search (category-scoped text);
// q wins when both are present.
func ParseQuery(values url.Values, perPage int) Query {
	q := Query{
		Text:          values.Get("q"),
		Sort:          ParseSortKey(values.Get("sort")),
		CategoryParam: values.Get("category"),
		Page:          1,
		PerPage:       perPage,
	}

	if q.Text == "" {
		q.Text = values.Get("search")
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		q.Page = page
	}

	return q
}
