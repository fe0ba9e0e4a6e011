package catalog

import (
	"strings"

	"ht5play/internal/models"
)

// MatchText reports whether any of the fields contains the query,
// case-insensitively. An empty query matches everything.
func MatchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}

	return false
}

// FilterGames narrows games by free text (title OR description) and by
// category id. A zero categoryID means no category constraint. The
// input slice is never modified.
func FilterGames(games []models.Game, text string, categoryID int64) []models.Game {
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if !MatchText(text, g.Title, g.Description) {
			continue
		}
		if categoryID != 0 && g.CategoryID != categoryID {
			continue
		}
		out = append(out, g)
	}

	return out
}

// FilterBlogs narrows blogs by free text over title and content.
func FilterBlogs(blogs []models.Blog, text string) []models.Blog {
	out := make([]models.Blog, 0, len(blogs))
	for _, b := range blogs {
		if MatchText(text, b.Title, b.Content) {
			out = append(out, b)
		}
	}

	return out
}
