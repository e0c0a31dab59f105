package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a block of notes.
type Kind int

const (
	Body Kind = iota
	Heading
)

func (k Kind) String() string {
	if k == Heading {
		return "heading"
	}
	return "body"
}

// maxHeadingLen is the length below which a colon-terminated or all
// upper-case line counts as a heading.
const maxHeadingLen = 60

// Run is a span of text in one style.
type Run struct {
	Text   string
	Italic bool
}

// Block is one rendered line of the notes.
type Block struct {
	Kind Kind
	Text string
	Runs []Run
}

// Document is study notes ready to be rendered.
type Document struct {
	Topic     string
	Generated time.Time
	Blocks    []Block
}

var (
	emphasis = regexp.MustCompile(`\*(.*?)\*`)
	unsafe   = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	atxMark  = regexp.MustCompile(`^#{1,6}\s+`)
	bullet   = regexp.MustCompile(`^[-*+]\s+`)
)

// Parse splits model output into blocks, one per non-blank line.
//
// Bold markers are dropped. A line is a heading when it starts with "1."
// through "6.", when it is a markdown "#" heading, or when it is shorter
// than 60 characters and either ends with ':' or is all upper-case.
// Everything else is body text in which "*x*" is italic.
func Parse(topic, text string, generated time.Time) *Document {
	d := &Document{Topic: topic, Generated: generated}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		clean := strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		if clean == "" {
			continue
		}

		if loc := atxMark.FindStringIndex(clean); loc != nil {
			title := strings.TrimSpace(clean[loc[1]:])
			d.Blocks = append(d.Blocks, Block{Kind: Heading, Text: title, Runs: []Run{{Text: title}}})
			continue
		}
		if IsHeading(clean) {
			d.Blocks = append(d.Blocks, Block{Kind: Heading, Text: clean, Runs: []Run{{Text: clean}}})
			continue
		}

		if loc := bullet.FindStringIndex(clean); loc != nil {
			clean = "• " + clean[loc[1]:]
		}
		runs := splitEmphasis(clean)
		d.Blocks = append(d.Blocks, Block{Kind: Body, Text: plain(runs), Runs: runs})
	}
	return d
}

// IsHeading applies the heading rule to a line with bold markers removed.
func IsHeading(line string) bool {
	for _, p := range []string{"1.", "2.", "3.", "4.", "5.", "6."} {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	if utf8.RuneCountInString(line) >= maxHeadingLen {
		return false
	}
	return strings.HasSuffix(line, ":") || isUpper(line)
}

// isUpper reports whether s has at least one cased letter and no lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

func splitEmphasis(s string) []Run {
	var runs []Run
	last := 0
	for _, m := range emphasis.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			runs = append(runs, Run{Text: s[last:m[0]]})
		}
		if m[3] > m[2] {
			runs = append(runs, Run{Text: s[m[2]:m[3]], Italic: true})
		}
		last = m[1]
	}
	if last < len(s) {
		runs = append(runs, Run{Text: s[last:]})
	}
	return runs
}

func plain(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Title returns the document title.
func (d *Document) Title() string {
	return "JEE Study Notes: " + d.Topic
}

// Filename returns the download name for notes on topic generated at t.
// Every character outside [A-Za-z0-9_-] becomes '_'.
func Filename(topic string, t time.Time) string {
	return fmt.Sprintf("%s_JEE_notes_%s.pdf", unsafe.ReplaceAllString(topic, "_"), t.Format("20060102"))
}

// Save renders the document as PDF into dir and returns the file path.
func (d *Document) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create notes dir: %w", err)
	}

	path := filepath.Join(dir, Filename(d.Topic, d.Generated))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create notes file: %w", err)
	}
	if err := d.WritePDF(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close notes file: %w", err)
	}
	return path, nil
}
