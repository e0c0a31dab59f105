package tool

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const duckDuckGoURL = "https://html.duckduckgo.com/html/"

// DuckDuckGo searches the web by scraping the DuckDuckGo HTML results page.
// It needs no API key.
type DuckDuckGo struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewDuckDuckGo creates a DuckDuckGo searcher.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		BaseURL:    duckDuckGoURL,
		UserAgent:  "Mozilla/5.0 (compatible; studymap/1.0)",
		HTTPClient: http.DefaultClient,
	}
}

// Name returns the name of the tool.
func (d *DuckDuckGo) Name() string {
	return "DuckDuckGo_Search"
}

// Description returns the description of the tool.
func (d *DuckDuckGo) Description() string {
	return "Searches the web with DuckDuckGo without an API key. Input should be a search query."
}

// Call executes the search.
func (d *DuckDuckGo) Call(ctx context.Context, input string) (string, error) {
	articles, err := d.SearchArticles(ctx, input, 5)
	if err != nil {
		return "", err
	}
	return formatArticles(articles), nil
}

// SearchArticles returns up to limit organic results for query. Ads are
// skipped.
func (d *DuckDuckGo) SearchArticles(ctx context.Context, query string, limit int) ([]Article, error) {
	reqURL := d.BaseURL + "?" + url.Values{"q": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", d.UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse results page: %w", err)
	}

	limit = clampLimit(limit, 30)
	var articles []Article
	doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.HasClass("result--ad") {
			return true
		}
		a := s.Find("a.result__a").First()
		href, ok := a.Attr("href")
		if !ok {
			return true
		}
		link := resolveRedirect(href)
		if link == "" {
			return true
		}
		articles = append(articles, Article{
			Title:       strings.TrimSpace(a.Text()),
			Link:        link,
			Snippet:     strings.TrimSpace(s.Find(".result__snippet").First().Text()),
			DisplayLink: strings.TrimSpace(s.Find(".result__url").First().Text()),
		})
		return len(articles) < limit
	})
	return articles, nil
}

// resolveRedirect unwraps DuckDuckGo's "/l/?uddg=<target>" links.
func resolveRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}
