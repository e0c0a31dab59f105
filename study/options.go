package study

import (
	"github.com/tmc/langchaingo/llms"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/smallnest/studymap/log"
)

const (
	tracerName = "github.com/smallnest/studymap/study"

	// DefaultArticleLimit is the number of articles a lookup returns.
	DefaultArticleLimit = 3
)

type options struct {
	logger       log.Logger
	tracer       trace.Tracer
	callOptions  []llms.CallOption
	articleLimit int
}

// Option configures a Generator or a Finder.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTracer sets the tracer used for spans. The global provider is used
// by default.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// WithCallOptions adds options passed to every model call.
func WithCallOptions(opts ...llms.CallOption) Option {
	return func(o *options) {
		o.callOptions = append(o.callOptions, opts...)
	}
}

// WithArticleLimit sets how many articles a lookup returns.
func WithArticleLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.articleLimit = n
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{articleLimit: DefaultArticleLimit}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = log.OrDefault(o.logger)
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
	return o
}
