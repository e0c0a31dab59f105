package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/smallnest/studymap/config"
	"github.com/smallnest/studymap/tool"
)

// mockLLM is a mock implementation of llms.Model for testing
type mockLLM struct {
	response string
	closed   int
}

func (m *mockLLM) Close() error {
	m.closed++
	return nil
}

func (m *mockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *mockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func fakeDeps(response string) deps {
	return deps{
		newModel: func(context.Context, config.LLMConfig) (llms.Model, error) {
			return &mockLLM{response: response}, nil
		},
		newVideos: func(context.Context, config.SearchConfig) (tool.VideoSearcher, error) {
			return nil, errors.New("no key")
		},
		newArts: func(context.Context, config.SearchConfig) (tool.ArticleSearcher, error) {
			return nil, errors.New("no key")
		},
	}
}

func run(t *testing.T, d deps, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(d)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "none"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Kinematics": ["Velocity", "Acceleration"]}`), 0o644))

	out, err := run(t, fakeDeps(""), "", "encode", path)
	require.NoError(t, err)
	assert.Equal(t, "graph LR;\n"+
		"    node0[\"Kinematics\"];\n"+
		"    node1[\"Velocity\"];\n"+
		"    node0 --> node1;\n"+
		"    node2[\"Acceleration\"];\n"+
		"    node0 --> node2;\n", out)

	out, err = run(t, fakeDeps(""), "", "encode", path, "--format", "ascii")
	require.NoError(t, err)
	assert.Equal(t, "└── Kinematics\n    ├── Velocity\n    └── Acceleration\n", out)
}

func TestEncodeCommand_Stdin(t *testing.T) {
	out, err := run(t, fakeDeps(""), "model said: {\"A\": [\"x\"]} done", "encode", "-", "-f", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph roadmap {")
	assert.Contains(t, out, "node0 -> node1;")
}

func TestEncodeCommand_Errors(t *testing.T) {
	_, err := run(t, fakeDeps(""), `{"A": ["x"]}`, "encode", "-", "--format", "svg")
	assert.ErrorContains(t, err, `unknown format "svg"`)

	_, err = run(t, fakeDeps(""), `{"A": ["x"]}`, "encode", "-", "--direction", "XY")
	assert.ErrorContains(t, err, `unknown direction "XY"`)

	out, err := run(t, fakeDeps(""), `{"A": ["x"]}`, "encode", "-", "--direction", "TD")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD;\n"), out)

	_, err = run(t, fakeDeps(""), "no json here", "encode", "-")
	assert.Error(t, err)

	_, err = run(t, fakeDeps(""), "", "encode", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read roadmap")
}

func TestNotesCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, fakeDeps("# OPTICS\n\nLight bends at an *interface*."), "", "notes", "Wave", "Optics", "--out", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "Wave_Optics_JEE_notes_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestInvalidLogLevel(t *testing.T) {
	cmd := newRootCommand(fakeDeps(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud", "encode", "-"})
	assert.ErrorContains(t, cmd.Execute(), "unknown log level")
}

func TestNewModel(t *testing.T) {
	ctx := context.Background()

	_, err := newModel(ctx, config.LLMConfig{Provider: config.ProviderGemini, GeminiModel: "gemini-2.5-pro"})
	assert.ErrorIs(t, err, errNoAPIKey)

	_, err = newModel(ctx, config.LLMConfig{Provider: config.ProviderOpenAI, OpenAIModel: "gpt-4o-mini"})
	assert.ErrorIs(t, err, errNoAPIKey)

	m, err := newModel(ctx, config.LLMConfig{Provider: config.ProviderGemini, GeminiAPIKey: "k", GeminiModel: "gemini-2.5-flash"})
	require.NoError(t, err)
	g, ok := m.(*googleai.GoogleAI)
	require.True(t, ok)
	assert.NoError(t, g.Close())

	m, err = newModel(ctx, config.LLMConfig{Provider: config.ProviderOpenAI, OpenAIAPIKey: "k", OpenAIModel: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.IsType(t, &openai.LLM{}, m)
}

func TestGeneratorReleasesModel(t *testing.T) {
	llm := &mockLLM{response: "# Notes"}
	d := fakeDeps("")
	d.newModel = func(context.Context, config.LLMConfig) (llms.Model, error) { return llm, nil }

	_, err := run(t, d, "", "notes", "Optics", "--out", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 1, llm.closed)
}

func TestNewArticleSearcher(t *testing.T) {
	cfg := config.Default().Search

	cfg.ArticleBackend = config.BackendDuckDuckGo
	s, err := newArticleSearcher(context.Background(), cfg)
	require.NoError(t, err)
	ddg, ok := s.(*tool.DuckDuckGo)
	require.True(t, ok)
	assert.Equal(t, cfg.Timeout, ddg.HTTPClient.Timeout)

	cfg.ArticleBackend = config.BackendBrave
	cfg.BraveAPIKey = "brave-key"
	s, err = newArticleSearcher(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &tool.BraveSearch{}, s)
}
