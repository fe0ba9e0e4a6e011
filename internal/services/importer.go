package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"ht5play/internal/config"
	"ht5play/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// ImportService pulls games from distributor feeds (GameMonetize,
// GameDistribution) or any custom feed URL and files them under a
// chosen category. Items that fail to import do not abort the batch;
// the result carries per-item successes and errors.
type ImportService struct {
	games  *GameService
	log    *slog.Logger
	client *http.Client
	feeds  map[string]string
}

type ImportResult struct {
	Success []*models.Game `json:"success"`
	Errors  []string       `json:"errors"`
}

type feedItem struct {
	Title       string
	URL         string
	Thumb       string
	Description string
	Width       int
	Height      int
}

func NewImportService(games *GameService, cfg config.ImportConfig, log *slog.Logger) *ImportService {
	return &ImportService{
		games:  games,
		log:    log,
		client: &http.Client{Timeout: cfg.Timeout},
		feeds: map[string]string{
			"gamemonetize":     cfg.GameMonetizeFeed,
			"gamedistribution": cfg.GameDistributionFeed,
		},
	}
}

func (s *ImportService) Providers() []string {
	out := make([]string, 0, len(s.feeds))
	for name := range s.feeds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (s *ImportService) ImportFromProvider(ctx context.Context, provider string, categoryID int64) (*ImportResult, error) {
	feedURL, ok := s.feeds[strings.ToLower(provider)]
	if !ok {
		return nil, validationError("unknown provider %q", provider)
	}
	return s.ImportFromURL(ctx, feedURL, strings.ToLower(provider), categoryID)
}

func (s *ImportService) ImportFromURL(ctx context.Context, feedURL, source string, categoryID int64) (*ImportResult, error) {
	const op = "services.importer.ImportFromURL"

	if feedURL == "" {
		return nil, validationError("feed url is required")
	}
	if source == "" {
		source = "custom"
	}

	items, err := s.fetchFeed(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := &ImportResult{Success: []*models.Game{}, Errors: []string{}}
	for _, item := range items {
		game := &models.Game{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			Thumb:       item.Thumb,
			CategoryID:  categoryID,
			Width:       item.Width,
			Height:      item.Height,
			Source:      source,
		}
		if game.Width == 0 {
			game.Width = 800
		}
		if game.Height == 0 {
			game.Height = 600
		}

		created, err := s.games.Create(ctx, game)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", item.Title, err))
			continue
		}
		result.Success = append(result.Success, created)
	}

	s.log.Info("feed import finished",
		slog.String("operation", op),
		slog.String("source", source),
		slog.Int("imported", len(result.Success)),
		slog.Int("failed", len(result.Errors)))

	return result, nil
}

func (s *ImportService) fetchFeed(ctx context.Context, feedURL string) ([]feedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "ht5play-importer/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	return parseFeed(doc), nil
}

// parseFeed extracts game entries from an RSS-ish document. The HTML
// parser folds <link> into a void element, so the game URL is taken
// from the enclosure attribute or <guid> before falling back to the
// text stranded after the folded tag.
func parseFeed(doc *goquery.Document) []feedItem {
	var items []feedItem

	doc.Find("item").Each(func(_ int, sel *goquery.Selection) {
		item := feedItem{
			Title:       strings.TrimSpace(sel.Find("title").Text()),
			Description: strings.TrimSpace(sel.Find("description").Text()),
		}

		if url, ok := sel.Find("enclosure").Attr("url"); ok {
			item.Thumb = url
		}
		if thumb := strings.TrimSpace(sel.Find("thumb").Text()); thumb != "" {
			item.Thumb = thumb
		}

		if w, err := strconv.Atoi(strings.TrimSpace(sel.Find("width").Text())); err == nil && w > 0 {
			item.Width = w
		}
		if h, err := strconv.Atoi(strings.TrimSpace(sel.Find("height").Text())); err == nil && h > 0 {
			item.Height = h
		}

		if guid := strings.TrimSpace(sel.Find("guid").Text()); guid != "" {
			item.URL = guid
		} else if link := sel.Find("link"); link.Length() > 0 {
			if next := link.Get(0).NextSibling; next != nil {
				item.URL = strings.TrimSpace(next.Data)
			}
		}

		if item.Title == "" || item.URL == "" {
			return
		}
		items = append(items, item)
	})

	return items
}
