package study

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/smallnest/studymap/roadmap"
)

// Generator asks a language model for roadmaps and study notes.
type Generator struct {
	model llms.Model
	opts  *options
}

// NewGenerator creates a Generator over model.
func NewGenerator(model llms.Model, opts ...Option) *Generator {
	return &Generator{model: model, opts: newOptions(opts)}
}

// GenerateRoadmap returns the topic tree for topic.
//
// A blank topic fails with ErrEmptyTopic without calling the model. A
// failed model call is an *UpstreamError; an answer without a usable JSON
// object is a *ParseError.
func (g *Generator) GenerateRoadmap(ctx context.Context, topic string) (roadmap.Tree, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	ctx, span := g.opts.tracer.Start(ctx, "study.GenerateRoadmap", trace.WithAttributes(attribute.String("study.topic", topic)))
	defer span.End()

	g.opts.logger.Info("generating roadmap for %q", topic)
	text, err := llms.GenerateFromSinglePrompt(ctx, g.model, RoadmapPrompt(topic), g.opts.callOptions...)
	if err != nil {
		g.opts.logger.Error("roadmap generation for %q failed: %v", topic, err)
		return nil, fail(span, &UpstreamError{Op: "generate roadmap", Err: err})
	}

	tree, err := roadmap.Parse(text)
	if err != nil {
		g.opts.logger.Warn("model answer for %q is not a roadmap: %v", topic, err)
		g.opts.logger.Debug("raw answer: %s", text)
		return nil, fail(span, &ParseError{Response: text, Err: err})
	}

	stats := tree.Stats()
	span.SetAttributes(
		attribute.Int("roadmap.categories", stats.Categories),
		attribute.Int("roadmap.leaves", stats.Leaves),
	)
	g.opts.logger.Debug("roadmap for %q: %d categories, %d leaves", topic, stats.Categories, stats.Leaves)
	return tree, nil
}

// GenerateNotes returns markdown study notes for topic.
func (g *Generator) GenerateNotes(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}

	ctx, span := g.opts.tracer.Start(ctx, "study.GenerateNotes", trace.WithAttributes(attribute.String("study.topic", topic)))
	defer span.End()

	g.opts.logger.Info("generating notes for %q", topic)
	text, err := llms.GenerateFromSinglePrompt(ctx, g.model, NotesPrompt(topic), g.opts.callOptions...)
	if err != nil {
		g.opts.logger.Error("notes generation for %q failed: %v", topic, err)
		return "", fail(span, &UpstreamError{Op: "generate notes", Err: err})
	}
	return text, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
