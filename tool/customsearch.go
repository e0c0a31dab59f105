package tool

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// maxCustomSearchResults is the API's per-request ceiling.
const maxCustomSearchResults = 10

// CustomSearch searches the web with the Google Programmable Search JSON API.
type CustomSearch struct {
	svc      *customsearch.Service
	engineID string
}

// NewCustomSearch creates a CustomSearch searcher for the search engine cx.
// An empty apiKey falls back to SEARCH_API_KEY, an empty cx to SEARCH_ENGINE_ID.
func NewCustomSearch(ctx context.Context, apiKey, cx string, opts ...option.ClientOption) (*CustomSearch, error) {
	if apiKey == "" {
		apiKey = os.Getenv("SEARCH_API_KEY")
	}
	if cx == "" {
		cx = os.Getenv("SEARCH_ENGINE_ID")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("SEARCH_API_KEY not set")
	}
	if cx == "" {
		return nil, fmt.Errorf("SEARCH_ENGINE_ID not set")
	}

	svc, err := customsearch.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &CustomSearch{svc: svc, engineID: cx}, nil
}

// Name returns the name of the tool.
func (c *CustomSearch) Name() string {
	return "Google_Custom_Search"
}

// Description returns the description of the tool.
func (c *CustomSearch) Description() string {
	return "Searches the web with Google Programmable Search. Input should be a search query."
}

// Call executes the search.
func (c *CustomSearch) Call(ctx context.Context, input string) (string, error) {
	articles, err := c.SearchArticles(ctx, input, 3)
	if err != nil {
		return "", err
	}
	return formatArticles(articles), nil
}

// SearchArticles returns up to limit results for query.
func (c *CustomSearch) SearchArticles(ctx context.Context, query string, limit int) ([]Article, error) {
	resp, err := c.svc.Cse.List().
		Cx(c.engineID).
		Q(query).
		Num(int64(clampLimit(limit, maxCustomSearchResults))).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("custom search: %w", err)
	}

	articles := make([]Article, 0, len(resp.Items))
	for _, item := range resp.Items {
		articles = append(articles, Article{
			Title:       item.Title,
			Link:        item.Link,
			Snippet:     item.Snippet,
			DisplayLink: item.DisplayLink,
		})
	}
	return articles, nil
}
