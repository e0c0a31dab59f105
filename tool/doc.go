// Package tool provides the search backends used to find study resources.
//
// Every backend is also a langchaingo tool (Name, Description, Call), so it
// can be handed to an agent as well as called directly.
//
// # Video search
//
// YouTube wraps the YouTube Data API v3 and returns the single most viewed
// video for a query:
//
//	yt, err := tool.NewYouTube(ctx, "") // reads YOUTUBE_API_KEY
//	if err != nil {
//		return err
//	}
//	video, err := yt.SearchVideo(ctx, "Rotational Motion JEE tutorial")
//	if video == nil && err == nil {
//		// nothing matched
//	}
//
// # Article search
//
// Three backends implement ArticleSearcher:
//
//   - CustomSearch: Google Programmable Search (SEARCH_API_KEY, SEARCH_ENGINE_ID)
//   - BraveSearch: Brave web search (BRAVE_API_KEY)
//   - DuckDuckGo: the keyless HTML results page, parsed with goquery
//
// Example:
//
//	cs, err := tool.NewCustomSearch(ctx, "", "")
//	if err != nil {
//		return err
//	}
//	articles, err := cs.SearchArticles(ctx, "Rotational Motion JEE study material article", 3)
//
// The Google backends accept option.ClientOption values, which tests use to
// point them at an httptest server.
package tool
