package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/smallnest/studymap/internal/validate"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	BackendCustomSearch = "customsearch"
	BackendBrave        = "brave"
	BackendDuckDuckGo   = "duckduckgo"

	DefaultGeminiModel = "gemini-2.5-pro"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultAddr        = ":8000"
	DefaultOrigin      = "http://localhost:3000"
)

// Config is the complete studymap configuration.
type Config struct {
	LLM    LLMConfig    `yaml:"llm"`
	Search SearchConfig `yaml:"search"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Notes  NotesConfig  `yaml:"notes"`
}

// LLMConfig selects and authenticates the language model.
type LLMConfig struct {
	Provider     string `yaml:"provider" validate:"oneof=gemini openai"`
	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model" validate:"required"`
	OpenAIAPIKey string `yaml:"openai_api_key"`
	OpenAIModel  string `yaml:"openai_model" validate:"required"`
}

// SearchConfig configures the resource search backends.
type SearchConfig struct {
	YouTubeAPIKey  string        `yaml:"youtube_api_key"`
	SearchAPIKey   string        `yaml:"search_api_key"`
	SearchEngineID string        `yaml:"search_engine_id"`
	BraveAPIKey    string        `yaml:"brave_api_key"`
	ArticleBackend string        `yaml:"article_backend" validate:"oneof=customsearch brave duckduckgo"`
	ArticleLimit   int           `yaml:"article_limit" validate:"min=1,max=10"`
	Timeout        time.Duration `yaml:"timeout" validate:"gt=0"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string          `yaml:"addr" validate:"required"`
	AllowedOrigins []string        `yaml:"allowed_origins" validate:"dive,url"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
	Tracing        bool            `yaml:"tracing"`
}

// RateLimitConfig allows MaxRequests per Window for each client. Zero
// MaxRequests disables limiting.
type RateLimitConfig struct {
	Window      time.Duration `yaml:"window" validate:"gt=0"`
	MaxRequests int           `yaml:"max_requests" validate:"min=0"`
}

// LogConfig configures logging. File is used by the terminal UI.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error none"`
	File  string `yaml:"file"`
}

// NotesConfig configures where PDF notes are written.
type NotesConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    ProviderGemini,
			GeminiModel: DefaultGeminiModel,
			OpenAIModel: DefaultOpenAIModel,
		},
		Search: SearchConfig{
			ArticleBackend: BackendCustomSearch,
			ArticleLimit:   3,
			Timeout:        15 * time.Second,
		},
		Server: ServerConfig{
			Addr:           DefaultAddr,
			AllowedOrigins: []string{DefaultOrigin},
			RateLimit: RateLimitConfig{
				Window:      15 * time.Minute,
				MaxRequests: 100,
			},
		},
		Log:   LogConfig{Level: "info"},
		Notes: NotesConfig{Dir: "."},
	}
}

// Load reads the optional YAML file at path over the defaults, applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// APIKey returns the key of the selected provider.
func (c *LLMConfig) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// Model returns the model of the selected provider.
func (c *LLMConfig) Model() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.LLM.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&c.LLM.GeminiModel, "GEMINI_MODEL")
	setString(&c.LLM.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&c.LLM.OpenAIModel, "OPENAI_MODEL")

	setString(&c.Search.YouTubeAPIKey, "YOUTUBE_API_KEY")
	setString(&c.Search.SearchAPIKey, "SEARCH_API_KEY")
	setString(&c.Search.SearchEngineID, "SEARCH_ENGINE_ID")
	setString(&c.Search.BraveAPIKey, "BRAVE_API_KEY")
	setString(&c.Search.ArticleBackend, "ARTICLE_BACKEND")

	setString(&c.Log.Level, "STUDYMAP_LOG_LEVEL")
	setString(&c.Notes.Dir, "STUDYMAP_NOTES_DIR")

	if port := getenv("PORT"); port != "" {
		c.Server.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	if origins := getenv("CLIENT_URL"); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}

	var errs []error
	if v := getenv("RATE_LIMIT_WINDOW_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW_MS: %w", err))
		} else {
			c.Server.RateLimit.Window = time.Duration(ms) * time.Millisecond
		}
	}
	if v := getenv("RATE_LIMIT_MAX_REQUESTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_MAX_REQUESTS: %w", err))
		} else {
			c.Server.RateLimit.MaxRequests = n
		}
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
