package study

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/smallnest/studymap/log"
	"github.com/smallnest/studymap/roadmap"
)

// mockLLM is a mock implementation of llms.Model for testing
type mockLLM struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (m *mockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, messages[0].Parts[0].(llms.TextContent).Text)
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *mockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestGenerateRoadmap(t *testing.T) {
	llm := &mockLLM{response: "Sure!\n```json\n{\"Kinematics\": [\"Velocity\", {\"Graphs\": [\"x-t\", \"v-t\"]}]}\n```"}
	g := NewGenerator(llm)

	tree, err := g.GenerateRoadmap(context.Background(), "  Mechanics ")
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Kinematics", tree[0].Label)
	assert.Equal(t, []string{"Velocity", "x-t", "v-t"}, tree.Leaves())

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "JEE topic: 'Mechanics'")
	assert.Contains(t, llm.prompts[0], "Return ONLY the valid JSON object.")
}

func TestGenerateRoadmap_EmptyTopicMakesNoCall(t *testing.T) {
	llm := &mockLLM{response: `{"A": ["x"]}`}
	g := NewGenerator(llm)

	for _, topic := range []string{"", "   ", "\n\t"} {
		_, err := g.GenerateRoadmap(context.Background(), topic)
		assert.ErrorIs(t, err, ErrEmptyTopic)

		_, err = g.GenerateNotes(context.Background(), topic)
		assert.ErrorIs(t, err, ErrEmptyTopic)
	}
	assert.Empty(t, llm.prompts)
}

func TestGenerateRoadmap_ParseFailure(t *testing.T) {
	llm := &mockLLM{response: "I am unable to produce a roadmap."}
	g := NewGenerator(llm)

	tree, err := g.GenerateRoadmap(context.Background(), "Optics")
	assert.Nil(t, tree)
	require.Error(t, err)

	assert.True(t, roadmap.IsParseError(err))
	assert.ErrorIs(t, err, roadmap.ErrNoJSON)
	assert.False(t, IsUpstream(err))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "I am unable to produce a roadmap.", pe.Response)
}

func TestGenerateRoadmap_UpstreamFailure(t *testing.T) {
	quota := errors.New("quota exceeded")
	g := NewGenerator(&mockLLM{err: quota})

	_, err := g.GenerateRoadmap(context.Background(), "Optics")
	require.Error(t, err)
	assert.True(t, IsUpstream(err))
	assert.ErrorIs(t, err, quota)
	assert.False(t, roadmap.IsParseError(err))
	assert.Equal(t, "generate roadmap: quota exceeded", err.Error())
}

func TestGenerateNotes(t *testing.T) {
	llm := &mockLLM{response: "## Key Formulas\nF = ma"}
	g := NewGenerator(llm)

	notes, err := g.GenerateNotes(context.Background(), "Newton's Laws")
	require.NoError(t, err)
	assert.Equal(t, "## Key Formulas\nF = ma", notes)
	assert.Contains(t, llm.prompts[0], "'Newton's Laws'")
	assert.Contains(t, llm.prompts[0], "Key Formulas, Core Concepts, Problem-Solving Tips, and a Summary")

	_, err = NewGenerator(&mockLLM{err: errors.New("down")}).GenerateNotes(context.Background(), "x")
	assert.True(t, IsUpstream(err))
}

func TestGenerator_Spans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	g := NewGenerator(&mockLLM{response: "no json"}, WithTracer(tp.Tracer("test")))
	_, err := g.GenerateRoadmap(context.Background(), "Optics")
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "study.GenerateRoadmap", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestQueries(t *testing.T) {
	assert.Equal(t, "Vectors JEE tutorial", VideoQuery("Vectors"))
	assert.Equal(t, "Vectors JEE study material article", ArticleQuery("Vectors"))
}

func TestGenerator_FallsBackToDefaultLogger(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	var buf bytes.Buffer
	log.SetDefault(log.NewWriterGologLogger(&buf, log.LogLevelDebug))

	g := NewGenerator(&mockLLM{response: "no tree today"})
	_, err := g.GenerateRoadmap(context.Background(), "Optics")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `generating roadmap for "Optics"`)
	assert.Contains(t, out, "raw answer: no tree today")
}
