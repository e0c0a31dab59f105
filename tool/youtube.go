package tool

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const youtubeWatchURL = "https://www.youtube.com/watch?v="

// YouTube searches videos with the YouTube Data API v3.
type YouTube struct {
	svc *youtube.Service
}

// NewYouTube creates a YouTube searcher.
// If apiKey is empty, it tries to read from YOUTUBE_API_KEY environment variable.
// Extra client options are passed to the API client, e.g. option.WithEndpoint.
func NewYouTube(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTube, error) {
	if apiKey == "" {
		apiKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY not set")
	}

	svc, err := youtube.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &YouTube{svc: svc}, nil
}

// Name returns the name of the tool.
func (y *YouTube) Name() string {
	return "YouTube_Search"
}

// Description returns the description of the tool.
func (y *YouTube) Description() string {
	return "Finds the most viewed YouTube video for a topic. Input should be a search query."
}

// Call executes the search and formats the top video.
func (y *YouTube) Call(ctx context.Context, input string) (string, error) {
	v, err := y.SearchVideo(ctx, input)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "No video found", nil
	}
	return fmt.Sprintf("Title: %s\nURL: %s\n", v.Title, v.URL), nil
}

// SearchVideo returns the most viewed video matching query, or nil.
func (y *YouTube) SearchVideo(ctx context.Context, query string) (*Video, error) {
	resp, err := y.svc.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(1).
		Type("video").
		Order("viewCount").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		v := &Video{
			URL:     youtubeWatchURL + item.Id.VideoId,
			VideoID: item.Id.VideoId,
		}
		if s := item.Snippet; s != nil {
			v.Title = s.Title
			v.Description = s.Description
			v.Thumbnail = thumbnailURL(s.Thumbnails)
		}
		return v, nil
	}
	return nil, nil
}

func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
