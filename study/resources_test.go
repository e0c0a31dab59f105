package study

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/smallnest/studymap/tool"
)

type fakeVideos struct {
	video *tool.Video
	err   error
	query string
}

func (f *fakeVideos) SearchVideo(ctx context.Context, query string) (*tool.Video, error) {
	f.query = query
	return f.video, f.err
}

type fakeArticles struct {
	articles []tool.Article
	err      error
	query    string
	limit    int
}

func (f *fakeArticles) SearchArticles(ctx context.Context, query string, limit int) ([]tool.Article, error) {
	f.query = query
	f.limit = limit
	return f.articles, f.err
}

func someArticles(n int) []tool.Article {
	out := make([]tool.Article, n)
	for i := range out {
		out[i] = tool.Article{Title: string(rune('A' + i)), Link: "https://example.com/" + string(rune('a'+i))}
	}
	return out
}

func TestFinder_Find(t *testing.T) {
	videos := &fakeVideos{video: &tool.Video{Title: "SHM", URL: "https://www.youtube.com/watch?v=1"}}
	articles := &fakeArticles{articles: someArticles(3)}

	res := NewFinder(videos, articles).Find(context.Background(), " Simple Harmonic Motion ")

	assert.Equal(t, "Simple Harmonic Motion", res.Topic)
	require.NotNil(t, res.Video)
	assert.Equal(t, "SHM", res.Video.Title)
	assert.Len(t, res.Articles, 3)
	assert.NoError(t, res.VideoErr)
	assert.NoError(t, res.ArticlesErr)

	assert.Equal(t, "Simple Harmonic Motion JEE tutorial", videos.query)
	assert.Equal(t, "Simple Harmonic Motion JEE study material article", articles.query)
	assert.Equal(t, DefaultArticleLimit, articles.limit)
}

func TestFinder_NoVideoStillReturnsArticles(t *testing.T) {
	res := NewFinder(&fakeVideos{}, &fakeArticles{articles: someArticles(2)}).Find(context.Background(), "Obscure")

	assert.Nil(t, res.Video)
	assert.NoError(t, res.VideoErr)
	assert.Len(t, res.Articles, 2)
	assert.NoError(t, res.ArticlesErr)
}

func TestFinder_FailuresAreIndependent(t *testing.T) {
	down := errors.New("quota exceeded")

	res := NewFinder(&fakeVideos{err: down}, &fakeArticles{articles: someArticles(1)}).Find(context.Background(), "x")
	assert.ErrorIs(t, res.VideoErr, down)
	assert.True(t, IsUpstream(res.VideoErr))
	assert.Len(t, res.Articles, 1)

	res = NewFinder(&fakeVideos{video: &tool.Video{Title: "v"}}, &fakeArticles{err: down}).Find(context.Background(), "x")
	assert.NotNil(t, res.Video)
	assert.ErrorIs(t, res.ArticlesErr, down)
	assert.Empty(t, res.Articles)
}

func TestFinder_LimitsArticles(t *testing.T) {
	articles := &fakeArticles{articles: someArticles(10)}

	res := NewFinder(nil, articles).Find(context.Background(), "x")
	assert.Len(t, res.Articles, DefaultArticleLimit)

	res = NewFinder(nil, articles, WithArticleLimit(5)).Find(context.Background(), "x")
	assert.Len(t, res.Articles, 5)
	assert.Equal(t, 5, articles.limit)
}

func TestFinder_MissingBackends(t *testing.T) {
	res := NewFinder(nil, nil).Find(context.Background(), "x")
	assert.ErrorIs(t, res.VideoErr, ErrNoBackend)
	assert.ErrorIs(t, res.ArticlesErr, ErrNoBackend)
}

func TestFinder_EmptyTopic(t *testing.T) {
	videos := &fakeVideos{}
	articles := &fakeArticles{}

	res := NewFinder(videos, articles).Find(context.Background(), "  ")
	assert.ErrorIs(t, res.VideoErr, ErrEmptyTopic)
	assert.ErrorIs(t, res.ArticlesErr, ErrEmptyTopic)
	assert.Empty(t, videos.query)
	assert.Empty(t, articles.query)
}

func TestFinder_FindVideo(t *testing.T) {
	videos := &fakeVideos{video: &tool.Video{Title: "SHM", VideoID: "1"}}
	f := NewFinder(videos, nil)

	v, err := f.FindVideo(context.Background(), " Oscillations ")
	require.NoError(t, err)
	assert.Equal(t, "SHM", v.Title)
	assert.Equal(t, "Oscillations JEE tutorial", videos.query)

	_, err = f.FindVideo(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyTopic)

	_, err = f.FindArticles(context.Background(), "Oscillations")
	assert.ErrorIs(t, err, ErrNoBackend)
}

func TestFinder_FindArticles(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	down := errors.New("quota exceeded")

	f := NewFinder(nil, &fakeArticles{err: down}, WithTracer(tp.Tracer("test")))
	_, err := f.FindArticles(context.Background(), "Optics")
	assert.ErrorIs(t, err, down)
	assert.True(t, IsUpstream(err))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "study.FindArticles", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	f = NewFinder(nil, &fakeArticles{articles: someArticles(5)})
	articles, err := f.FindArticles(context.Background(), "Optics")
	require.NoError(t, err)
	assert.Len(t, articles, DefaultArticleLimit)
}
