package view

import "github.com/smallnest/studymap/roadmap"

// Session is the selection state of one interactive user.
type Session struct {
	MainTopic     string
	Tree          roadmap.Tree
	Selected      string
	ShowResources bool
}

// WithRoadmap installs a freshly generated tree and drops any selection
// that belonged to the previous one.
func (s *Session) WithRoadmap(topic string, tree roadmap.Tree) {
	s.MainTopic = topic
	s.Tree = tree
	s.Clear()
}

// Activate selects the full label of the button with the given key. It
// reports false and leaves the session untouched for unknown keys.
func (s *Session) Activate(l *Layout, key string) bool {
	if l == nil {
		return false
	}
	b, ok := l.Button(key)
	if !ok {
		return false
	}
	s.Selected = b.Label
	s.ShowResources = true
	return true
}

// Clear drops the selection.
func (s *Session) Clear() {
	s.Selected = ""
	s.ShowResources = false
}

// HasSelection reports whether resources should be shown.
func (s *Session) HasSelection() bool {
	return s.ShowResources && s.Selected != ""
}
