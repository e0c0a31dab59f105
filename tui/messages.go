package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smallnest/studymap/notes"
	"github.com/smallnest/studymap/roadmap"
	"github.com/smallnest/studymap/study"
)

// roadmapMsg carries the result of a roadmap generation.
type roadmapMsg struct {
	topic string
	tree  roadmap.Tree
	err   error
}

// resourcesMsg carries the lookup for one selected sub-topic.
type resourcesMsg struct {
	topic string
	res   *study.Resources
}

// notesMsg reports where the PDF notes for topic were written.
type notesMsg struct {
	topic string
	path  string
	err   error
}

func generateRoadmap(ctx context.Context, gen Generator, topic string) tea.Cmd {
	return func() tea.Msg {
		tree, err := gen.GenerateRoadmap(ctx, topic)
		return roadmapMsg{topic: topic, tree: tree, err: err}
	}
}

func findResources(ctx context.Context, finder Finder, topic string) tea.Cmd {
	return func() tea.Msg {
		return resourcesMsg{topic: topic, res: finder.Find(ctx, topic)}
	}
}

func writeNotes(ctx context.Context, gen Generator, topic, dir string, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		text, err := gen.GenerateNotes(ctx, topic)
		if err != nil {
			return notesMsg{topic: topic, err: err}
		}
		path, err := notes.Parse(topic, text, now()).Save(dir)
		return notesMsg{topic: topic, path: path, err: err}
	}
}
