package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/tools"
)

// Every backend is also usable as a langchaingo tool.
var (
	_ tools.Tool = (*YouTube)(nil)
	_ tools.Tool = (*CustomSearch)(nil)
	_ tools.Tool = (*BraveSearch)(nil)
	_ tools.Tool = (*DuckDuckGo)(nil)

	_ VideoSearcher   = (*YouTube)(nil)
	_ ArticleSearcher = (*CustomSearch)(nil)
	_ ArticleSearcher = (*BraveSearch)(nil)
	_ ArticleSearcher = (*DuckDuckGo)(nil)
)

// Video is one video recommendation.
type Video struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	VideoID     string `json:"video_id,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Description string `json:"description,omitempty"`
}

// Article is one web page recommendation.
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet,omitempty"`
	DisplayLink string `json:"display_link,omitempty"`
}

// VideoSearcher finds the single most relevant video for a query.
// A nil video with a nil error means nothing matched.
type VideoSearcher interface {
	SearchVideo(ctx context.Context, query string) (*Video, error)
}

// ArticleSearcher finds up to limit web pages for a query.
type ArticleSearcher interface {
	SearchArticles(ctx context.Context, query string, limit int) ([]Article, error)
}

func formatArticles(articles []Article) string {
	if len(articles) == 0 {
		return "No results found"
	}

	var sb strings.Builder
	for i, a := range articles {
		sb.WriteString(fmt.Sprintf("%d. Title: %s\nURL: %s\nDescription: %s\n\n",
			i+1, a.Title, a.Link, a.Snippet))
	}
	return sb.String()
}

func clampLimit(limit, upper int) int {
	if limit < 1 {
		return 1
	}
	if limit > upper {
		return upper
	}
	return limit
}
