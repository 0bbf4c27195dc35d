package crawler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/Gomguk-paper/Gomguk-BE/internal/config"
	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/types"
)

// Crawler pulls recent papers from the arXiv category RSS feeds.
type Crawler struct {
	cfg    config.CrawlerConfig
	log    *logger.Logger
	parser *gofeed.Parser
}

func New(cfg config.CrawlerConfig, log *logger.Logger) *Crawler {
	return &Crawler{
		cfg:    cfg,
		log:    log.With("service", "Crawler"),
		parser: gofeed.NewParser(),
	}
}

// FetchPapers crawls every configured category concurrently, splitting the
// overall paper budget evenly between them. A category that fails to fetch is
// logged and skipped; the remaining categories still contribute. Results are
// deduplicated by arXiv id and capped at the configured maximum.
func (c *Crawler) FetchPapers(ctx context.Context) ([]*types.Paper, error) {
	categories := c.cfg.Categories
	if len(categories) == 0 {
		return nil, fmt.Errorf("no arxiv categories configured")
	}

	perCategory := c.cfg.MaxPapers / len(categories)
	if perCategory < 1 {
		perCategory = 1
	}

	results := make([][]*types.Paper, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			papers, err := c.fetchCategory(gctx, category, perCategory)
			if err != nil {
				c.log.Warn("Category fetch failed, skipping", "category", category, "error", err)
				return nil
			}
			results[i] = papers
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var unique []*types.Paper
	for _, papers := range results {
		for _, p := range papers {
			if seen[p.ArxivID] {
				continue
			}
			seen[p.ArxivID] = true
			unique = append(unique, p)
		}
	}
	if len(unique) > c.cfg.MaxPapers {
		unique = unique[:c.cfg.MaxPapers]
	}

	c.log.Info("Crawl finished", "categories", len(categories), "papers", len(unique))
	return unique, nil
}

func (c *Crawler) fetchCategory(ctx context.Context, category string, limit int) ([]*types.Paper, error) {
	feedURL := fmt.Sprintf("%s/%s", c.cfg.FeedBase, category)

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", feedURL, err)
	}

	now := time.Now()
	var papers []*types.Paper
	for _, item := range feed.Items {
		if len(papers) == limit {
			break
		}
		paper, ok := paperFromItem(item, now)
		if !ok {
			c.log.Debug("Skipping feed entry without id", "category", category, "title", item.Title)
			continue
		}
		papers = append(papers, paper)
	}
	return papers, nil
}

// paperFromItem maps one feed entry onto the stored paper shape. Citation and
// trending metrics start at zero; they come from a later metric-refresh, not
// the feed.
func paperFromItem(item *gofeed.Item, now time.Time) (*types.Paper, bool) {
	arxivID := arxivIDFromItem(item)
	if arxivID == "" {
		return nil, false
	}

	var published *time.Time
	if item.PublishedParsed != nil {
		t := *item.PublishedParsed
		published = &t
	}
	updated := published
	if item.UpdatedParsed != nil {
		t := *item.UpdatedParsed
		updated = &t
	}

	year := 0
	if published != nil {
		year = published.Year()
	}

	recency := 0.0
	if published != nil {
		recency = RecencyScore(*published, now)
	}

	return &types.Paper{
		ID:            "arxiv_" + arxivID,
		ArxivID:       arxivID,
		Title:         strings.TrimSpace(item.Title),
		Authors:       authorsFromItem(item),
		Year:          year,
		Venue:         "arXiv",
		Tags:          item.Categories,
		Abstract:      abstractFromDescription(item.Description),
		PDFURL:        "https://arxiv.org/pdf/" + arxivID,
		ArxivURL:      "https://arxiv.org/abs/" + arxivID,
		PublishedDate: published,
		UpdatedDate:   updated,
		Citations:     0,
		TrendingScore: 0,
		RecencyScore:  recency,
	}, true
}

// arxivIDFromItem pulls "2401.12345" out of the entry link
// (https://arxiv.org/abs/2401.12345) or, failing that, the OAI guid
// (oai:arXiv.org:2401.12345v1).
func arxivIDFromItem(item *gofeed.Item) string {
	if item.Link != "" {
		parts := strings.Split(strings.TrimSuffix(item.Link, "/"), "/")
		if id := parts[len(parts)-1]; id != "" {
			return stripVersion(id)
		}
	}
	if item.GUID != "" {
		parts := strings.Split(item.GUID, ":")
		if id := parts[len(parts)-1]; id != "" {
			return stripVersion(id)
		}
	}
	return ""
}

func stripVersion(id string) string {
	i := strings.LastIndex(id, "v")
	if i <= 0 {
		return id
	}
	suffix := id[i+1:]
	if suffix == "" {
		return id
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return id
		}
	}
	return id[:i]
}

// authorsFromItem flattens the feed's author entries into individual names.
// arXiv feeds often pack every author into one comma separated dc:creator.
func authorsFromItem(item *gofeed.Item) []string {
	var out []string
	for _, person := range item.Authors {
		if person == nil {
			continue
		}
		for _, name := range strings.Split(person.Name, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// abstractFromDescription trims the feed boilerplate ("arXiv:... Announce
// Type: new Abstract: ...") down to the abstract text.
func abstractFromDescription(description string) string {
	description = strings.TrimSpace(description)
	if i := strings.Index(description, "Abstract:"); i >= 0 {
		return strings.TrimSpace(description[i+len("Abstract:"):])
	}
	return description
}
