package catalog

import (
	"math/rand"
	"sort"

	"ht5play/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortTitle    SortKey = "title"
	SortRecent   SortKey = "recent"
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
	SortTrending SortKey = "trending"
	SortRandom   SortKey = "random"
)

// ParseSortKey maps the sort query parameter onto a known key. Unknown
// or empty values fall back to the title order.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortTitle, SortRecent, SortNewest, SortOldest, SortTrending, SortRandom:
		return SortKey(s)
	default:
		return SortTitle
	}
}

var titleCollator = collate.New(language.English, collate.IgnoreCase)

// SortGames orders games in place by the given key. All keys except
// random are stable. Random applies a uniform Fisher-Yates shuffle once
// over the whole collection; the old pairwise random comparator was
// biased and is gone.
func SortGames(games []models.Game, key SortKey) {
	switch key {
	case SortRecent, SortNewest:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].CreatedAt.After(games[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].CreatedAt.Before(games[j].CreatedAt)
		})
	case SortTrending:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Featured && !games[j].Featured
		})
	case SortRandom:
		rand.Shuffle(len(games), func(i, j int) {
			games[i], games[j] = games[j], games[i]
		})
	default:
		sort.SliceStable(games, func(i, j int) bool {
			return titleCollator.CompareString(games[i].Title, games[j].Title) < 0
		})
	}
}

// SortBlogsNewest orders blogs newest first; the blog listing has no
// selectable sort key.
func SortBlogsNewest(blogs []models.Blog) {
	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
}
