package study

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTopic is returned before any external call when the topic is blank.
	ErrEmptyTopic = errors.New("topic is required")
	// ErrNoBackend is recorded when a resource kind has no search backend configured.
	ErrNoBackend = errors.New("no search backend configured")
)

// UpstreamError is a failure of an external call: network, quota or auth.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the model answered but its text held no
// usable roadmap. It unwraps to roadmap.ErrNoJSON or roadmap.ErrMalformed.
type ParseError struct {
	Response string
	Err      error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsUpstream reports whether err is an *UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
