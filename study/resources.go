package study

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/smallnest/studymap/tool"
)

// Resources is the result of one lookup. Each half carries its own error
// so that a failed video search never hides the articles, or the reverse.
type Resources struct {
	Topic       string
	Video       *tool.Video
	Articles    []tool.Article
	VideoErr    error
	ArticlesErr error
}

// Finder looks up videos and articles for a sub-topic.
type Finder struct {
	videos   tool.VideoSearcher
	articles tool.ArticleSearcher
	opts     *options
}

// NewFinder creates a Finder. Either searcher may be nil, in which case that
// half of every lookup reports ErrNoBackend.
func NewFinder(videos tool.VideoSearcher, articles tool.ArticleSearcher, opts ...Option) *Finder {
	return &Finder{videos: videos, articles: articles, opts: newOptions(opts)}
}

// Find searches for a video and for articles concurrently.
func (f *Finder) Find(ctx context.Context, topic string) *Resources {
	res := &Resources{Topic: strings.TrimSpace(topic)}
	if res.Topic == "" {
		res.VideoErr = ErrEmptyTopic
		res.ArticlesErr = ErrEmptyTopic
		return res
	}

	ctx, span := f.opts.tracer.Start(ctx, "study.Find", trace.WithAttributes(attribute.String("study.topic", res.Topic)))
	defer span.End()

	// The goroutines write disjoint fields and never return an error, so
	// one failure does not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		res.Video, res.VideoErr = f.findVideo(ctx, res.Topic)
		return nil
	})
	g.Go(func() error {
		res.Articles, res.ArticlesErr = f.findArticles(ctx, res.Topic)
		return nil
	})
	_ = g.Wait()

	span.SetAttributes(
		attribute.Bool("study.video_found", res.Video != nil),
		attribute.Int("study.articles", len(res.Articles)),
	)
	return res
}

// FindVideo looks up only the video for topic. A nil video with a nil error
// means the search found nothing.
func (f *Finder) FindVideo(ctx context.Context, topic string) (*tool.Video, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	ctx, span := f.opts.tracer.Start(ctx, "study.FindVideo", trace.WithAttributes(attribute.String("study.topic", topic)))
	defer span.End()

	v, err := f.findVideo(ctx, topic)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return v, err
}

// FindArticles looks up only the articles for topic.
func (f *Finder) FindArticles(ctx context.Context, topic string) ([]tool.Article, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	ctx, span := f.opts.tracer.Start(ctx, "study.FindArticles", trace.WithAttributes(attribute.String("study.topic", topic)))
	defer span.End()

	articles, err := f.findArticles(ctx, topic)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return articles, err
}

func (f *Finder) findVideo(ctx context.Context, topic string) (*tool.Video, error) {
	if f.videos == nil {
		return nil, ErrNoBackend
	}
	v, err := f.videos.SearchVideo(ctx, VideoQuery(topic))
	if err != nil {
		f.opts.logger.Warn("video search for %q failed: %v", topic, err)
		return nil, &UpstreamError{Op: "search video", Err: err}
	}
	if v == nil {
		f.opts.logger.Debug("no video for %q", topic)
	}
	return v, nil
}

func (f *Finder) findArticles(ctx context.Context, topic string) ([]tool.Article, error) {
	if f.articles == nil {
		return nil, ErrNoBackend
	}
	articles, err := f.articles.SearchArticles(ctx, ArticleQuery(topic), f.opts.articleLimit)
	if err != nil {
		f.opts.logger.Warn("article search for %q failed: %v", topic, err)
		return nil, &UpstreamError{Op: "search articles", Err: err}
	}
	if len(articles) > f.opts.articleLimit {
		articles = articles[:f.opts.articleLimit]
	}
	return articles, nil
}
