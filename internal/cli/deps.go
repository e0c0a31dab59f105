package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/smallnest/studymap/config"
	"github.com/smallnest/studymap/log"
	"github.com/smallnest/studymap/study"
	"github.com/smallnest/studymap/tool"
)

// deps builds the external clients. Tests swap them for fakes.
type deps struct {
	newModel  func(ctx context.Context, cfg config.LLMConfig) (llms.Model, error)
	newVideos func(ctx context.Context, cfg config.SearchConfig) (tool.VideoSearcher, error)
	newArts   func(ctx context.Context, cfg config.SearchConfig) (tool.ArticleSearcher, error)
}

func defaultDeps() deps {
	return deps{
		newModel:  newModel,
		newVideos: newVideoSearcher,
		newArts:   newArticleSearcher,
	}
}

// geminiMaxTokens leaves room for a full roadmap; googleai defaults to 2048.
const geminiMaxTokens = 8192

var errNoAPIKey = errors.New("no API key configured for the llm provider")

func newModel(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	key := cfg.APIKey()
	if key == "" {
		return nil, fmt.Errorf("%w %q", errNoAPIKey, cfg.Provider)
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		llm, err := openai.New(openai.WithToken(key), openai.WithModel(cfg.Model()))
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}
		return llm, nil
	default:
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(key),
			googleai.WithDefaultModel(cfg.Model()),
			googleai.WithDefaultMaxTokens(geminiMaxTokens),
		)
		if err != nil {
			return nil, fmt.Errorf("create gemini model: %w", err)
		}
		return llm, nil
	}
}

func newVideoSearcher(ctx context.Context, cfg config.SearchConfig) (tool.VideoSearcher, error) {
	return tool.NewYouTube(ctx, cfg.YouTubeAPIKey)
}

func newArticleSearcher(ctx context.Context, cfg config.SearchConfig) (tool.ArticleSearcher, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.ArticleBackend {
	case config.BackendBrave:
		return tool.NewBraveSearch(cfg.BraveAPIKey, tool.WithBraveHTTPClient(client))
	case config.BackendDuckDuckGo:
		ddg := tool.NewDuckDuckGo()
		ddg.HTTPClient = client
		return ddg, nil
	default:
		return tool.NewCustomSearch(ctx, cfg.SearchAPIKey, cfg.SearchEngineID)
	}
}

// generator builds the roadmap generator. The returned func releases the
// model's connection and must be called once the command is done.
func (a *app) generator(ctx context.Context) (*study.Generator, func(), error) {
	model, err := a.deps.newModel(ctx, a.cfg.LLM)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if c, ok := model.(io.Closer); ok {
			if err := c.Close(); err != nil {
				a.logger.Warn("close llm client: %v", err)
			}
		}
	}
	return study.NewGenerator(model, study.WithLogger(a.logger)), release, nil
}

// finder builds a Finder from whatever backends are configured. A missing
// backend is logged and left nil so the other half still works.
func (a *app) finder(ctx context.Context) *study.Finder {
	videos, err := a.deps.newVideos(ctx, a.cfg.Search)
	if err != nil {
		a.logger.Warn("video search disabled: %v", err)
		videos = nil
	}
	articles, err := a.deps.newArts(ctx, a.cfg.Search)
	if err != nil {
		a.logger.Warn("article search disabled: %v", err)
		articles = nil
	}
	return study.NewFinder(videos, articles,
		study.WithLogger(a.logger),
		study.WithArticleLimit(a.cfg.Search.ArticleLimit),
	)
}

// withLogger is used where a component needs a logger other than the
// command's, like the terminal UI which must not write to the screen.
func (a *app) withLogger(l log.Logger) *app {
	c := *a
	c.logger = log.OrDefault(l)
	return &c
}
