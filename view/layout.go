package view

import (
	"fmt"

	"github.com/smallnest/studymap/roadmap"
)

const (
	// MaxColumns is the widest leaf grid a section uses.
	MaxColumns = 3
	// MaxLabel is the longest label shown without truncation.
	MaxLabel = 40

	ellipsis = "..."
)

// Button is the control for one leaf topic.
type Button struct {
	// Key is unique across the whole layout.
	Key string
	// Label is the full leaf label. It is what gets selected.
	Label string
	// Text is the display text, possibly truncated.
	Text string
	// Column is the grid column inside the owning section.
	Column int
}

// Section is one collapsible category.
type Section struct {
	Title    string
	Depth    int
	Expanded bool
	Columns  int
	Buttons  []Button
	Branches []*Section
}

// Layout is the UI description of a whole tree.
type Layout struct {
	Sections []*Section

	index map[string]int
	order []Button
}

// Render describes tree as nested sections. It has no side effects and two
// calls with the same tree produce the same keys.
func Render(tree roadmap.Tree) *Layout {
	l := &Layout{index: make(map[string]int)}
	counter := 0
	for _, c := range tree {
		l.Sections = append(l.Sections, l.section(c, 0, &counter))
	}
	return l
}

func (l *Layout) section(c roadmap.Category, depth int, counter *int) *Section {
	s := &Section{
		Title:    c.Label,
		Depth:    depth,
		Expanded: true,
		Columns:  columns(c.Items),
	}

	// Keys follow full item order; the leaf/branch split is layout only.
	for _, item := range c.Items {
		if item.IsBranch() {
			for _, sub := range item.Tree() {
				s.Branches = append(s.Branches, l.section(sub, depth+1, counter))
			}
			continue
		}
		b := Button{
			Key:    Key(*counter),
			Label:  item.Label(),
			Text:   Truncate(item.Label()),
			Column: len(s.Buttons) % s.Columns,
		}
		*counter++
		s.Buttons = append(s.Buttons, b)
		l.index[b.Key] = len(l.order)
		l.order = append(l.order, b)
	}
	return s
}

func columns(items []roadmap.Item) int {
	leaves := 0
	for _, item := range items {
		if !item.IsBranch() {
			leaves++
		}
	}
	return max(1, min(MaxColumns, leaves))
}

// Key returns the control key of the n-th leaf.
func Key(n int) string {
	return fmt.Sprintf("roadmap_btn_%d", n)
}

// Truncate shortens labels longer than MaxLabel characters.
func Truncate(label string) string {
	r := []rune(label)
	if len(r) <= MaxLabel {
		return label
	}
	return string(r[:MaxLabel-len(ellipsis)]) + ellipsis
}

// Buttons returns every button in key order.
func (l *Layout) Buttons() []Button {
	return l.order
}

// Button looks a button up by key.
func (l *Layout) Button(key string) (Button, bool) {
	i, ok := l.index[key]
	if !ok {
		return Button{}, false
	}
	return l.order[i], true
}

// IsEmpty reports whether the layout has no sections.
func (l *Layout) IsEmpty() bool {
	return l == nil || len(l.Sections) == 0
}
