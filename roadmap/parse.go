package roadmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNoJSON is returned when model output contains no JSON object.
	ErrNoJSON = errors.New("roadmap: no JSON object in model output")
	// ErrMalformed is returned when the extracted object is not a valid tree.
	ErrMalformed = errors.New("roadmap: malformed JSON object")
)

// jsonObject spans from the first opening brace to the last closing one.
var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// Parse extracts the roadmap object embedded in free model text.
func Parse(text string) (Tree, error) {
	raw := jsonObject.FindString(text)
	if raw == "" {
		return nil, ErrNoJSON
	}
	var t Tree
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return t, nil
}

// IsParseError reports whether err came from Parse rather than from a transport.
func IsParseError(err error) bool {
	return errors.Is(err, ErrNoJSON) || errors.Is(err, ErrMalformed)
}
