package catalog

import (
	"net/url"
	"testing"
	"time"

	"ht5play/internal/models"

	"github.com/stretchr/testify/assert"
)

func testGames() []models.Game {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Game{
		{ID: 1, Title: "Dragon Quest", Description: "slay the beast", CategoryID: 1, CreatedAt: base},
		{ID: 2, Title: "Bubble Pop", Description: "match three", CategoryID: 2, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: 3, Title: "Castle DRAGONS", Description: "tower defense", CategoryID: 1, Featured: true, CreatedAt: base.AddDate(0, 0, 2)},
		{ID: 4, Title: "Apple Run", Description: "endless runner with a dragon boss", CategoryID: 2, CreatedAt: base.AddDate(0, 0, 3)},
		{ID: 5, Title: "zebra Racing", Description: "drift", CategoryID: 1, CreatedAt: base.AddDate(0, 0, 4)},
	}
}

func TestMatchText(t *testing.T) {
	assert.True(t, MatchText("", "anything"))
	assert.True(t, MatchText("DRAGON", "Dragon Quest", ""))
	assert.True(t, MatchText("dragon", "Apple Run", "endless runner with a dragon boss"))
	assert.False(t, MatchText("dragon", "Bubble Pop", "match three"))
}

func TestFilterGames(t *testing.T) {
	games := testGames()

	t.Run("text matches title or description", func(t *testing.T) {
		got := FilterGames(games, "dragon", 0)
		assert.Len(t, got, 3)
	})

	t.Run("category narrows", func(t *testing.T) {
		got := FilterGames(games, "dragon", 1)
		assert.Len(t, got, 2)
	})

	t.Run("empty filter is identity", func(t *testing.T) {
		got := FilterGames(games, "", 0)
		assert.Equal(t, games, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := FilterGames(games, "dragon", 1)
		twice := FilterGames(once, "dragon", 1)
		assert.Equal(t, once, twice)
	})

	t.Run("input not modified", func(t *testing.T) {
		before := testGames()
		FilterGames(games, "dragon", 1)
		assert.Equal(t, before, games)
	})
}

func TestSortGames(t *testing.T) {
	t.Run("title is case-insensitive", func(t *testing.T) {
		games := testGames()
		SortGames(games, SortTitle)
		assert.Equal(t, "Apple Run", games[0].Title)
		assert.Equal(t, "zebra Racing", games[4].Title)
	})

	t.Run("newest reverses oldest", func(t *testing.T) {
		newest := testGames()
		SortGames(newest, SortNewest)
		oldest := testGames()
		SortGames(oldest, SortOldest)

		for i := range newest {
			assert.Equal(t, newest[i].ID, oldest[len(oldest)-1-i].ID)
		}
	})

	t.Run("trending floats featured", func(t *testing.T) {
		games := testGames()
		SortGames(games, SortTrending)
		assert.True(t, games[0].Featured)
	})

	t.Run("random is a permutation", func(t *testing.T) {
		games := testGames()
		SortGames(games, SortRandom)

		seen := make(map[int64]bool)
		for _, g := range games {
			seen[g.ID] = true
		}
		assert.Len(t, seen, 5)
	})
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortRecent, ParseSortKey("recent"))
	assert.Equal(t, SortTitle, ParseSortKey(""))
	assert.Equal(t, SortTitle, ParseSortKey("bogus"))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	t.Run("pages cover the collection exactly once", func(t *testing.T) {
		page1 := Paginate(items, 1, 24)
		page2 := Paginate(items, 2, 24)
		page3 := Paginate(items, 3, 24)

		assert.Equal(t, 3, page1.TotalPages)
		assert.Equal(t, 50, page1.Total)
		assert.Len(t, page1.Items, 24)
		assert.Len(t, page2.Items, 24)
		assert.Len(t, page3.Items, 2)

		var all []int
		all = append(all, page1.Items...)
		all = append(all, page2.Items...)
		all = append(all, page3.Items...)
		assert.Equal(t, items, all)
	})

	t.Run("page beyond the last is empty", func(t *testing.T) {
		page := Paginate(items, 4, 24)
		assert.Empty(t, page.Items)
		assert.Equal(t, 4, page.Current)
		assert.Equal(t, 50, page.Total)
	})

	t.Run("empty collection", func(t *testing.T) {
		page := Paginate([]int{}, 1, 24)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.TotalPages)
		assert.Equal(t, 1, page.Current)
	})
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 1, ClampPage(7, 0))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(50, 24))
	assert.Equal(t, 1, TotalPages(24, 24))
	assert.Equal(t, 0, TotalPages(0, 24))
	assert.Equal(t, 5, TotalPages(5, 0))
}

func TestParseQuery(t *testing.T) {
	t.Run("q wins over search", func(t *testing.T) {
		values := url.Values{"q": {"dragon"}, "search": {"castle"}}
		q := ParseQuery(values, 24)
		assert.Equal(t, "dragon", q.Text)
	})

	t.Run("search fills in when q is absent", func(t *testing.T) {
		values := url.Values{"search": {"castle"}, "sort": {"newest"}, "category": {"action"}, "page": {"3"}}
		q := ParseQuery(values, 24)

		assert.Equal(t, "castle", q.Text)
		assert.Equal(t, SortNewest, q.Sort)
		assert.Equal(t, "action", q.CategoryParam)
		assert.Equal(t, 3, q.Page)
		assert.Equal(t, 24, q.PerPage)
	})

	t.Run("bad page falls back to 1", func(t *testing.T) {
		q := ParseQuery(url.Values{"page": {"zero"}}, 24)
		assert.Equal(t, 1, q.Page)
	})
}
