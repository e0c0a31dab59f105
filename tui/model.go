package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smallnest/studymap/log"
	"github.com/smallnest/studymap/roadmap"
	"github.com/smallnest/studymap/study"
	"github.com/smallnest/studymap/view"
)

// Generator produces roadmaps and notes. *study.Generator implements it.
type Generator interface {
	GenerateRoadmap(ctx context.Context, topic string) (roadmap.Tree, error)
	GenerateNotes(ctx context.Context, topic string) (string, error)
}

// Finder looks up resources. *study.Finder implements it.
type Finder interface {
	Find(ctx context.Context, topic string) *study.Resources
}

type screen int

const (
	screenInput screen = iota
	screenGenerating
	screenRoadmap
)

const emptyTopicWarning = "Please enter a topic."

// Config holds the dependencies of the UI.
type Config struct {
	Generator Generator
	Finder    Finder
	// NotesDir is where PDF notes are written.
	NotesDir string
	Logger   log.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the bubbletea model of the study planner.
type Model struct {
	ctx context.Context
	cfg Config

	screen   screen
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	session view.Session
	layout  *view.Layout
	// order lists the buttons in display order, focus indexes into it.
	order   []view.Button
	focus   int
	diagram bool

	pending string
	warning string
	err     error

	resources    *study.Resources
	searching    bool
	notesBusy    bool
	notesPath    string
	notesErr     error
	notesStarted bool
}

// New creates the model. ctx bounds every external call.
func New(ctx context.Context, cfg Config) Model {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = &log.NoOpLogger{}
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. Rotational Motion"
	ti.CharLimit = 200
	ti.Width = 50
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		ctx:      ctx,
		cfg:      cfg,
		input:    ti,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport: viewport.New(100, 30),
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 5)
		m.refresh()
		return m, nil

	case roadmapMsg:
		return m.onRoadmap(msg), nil

	case resourcesMsg:
		if msg.topic != m.session.Selected {
			// a newer selection superseded this lookup
			return m, nil
		}
		m.searching = false
		m.resources = msg.res
		m.refresh()
		return m, nil

	case notesMsg:
		if msg.topic != m.session.Selected {
			return m, nil
		}
		m.notesBusy = false
		m.notesPath, m.notesErr = msg.path, msg.err
		if msg.err != nil {
			m.cfg.Logger.Error("notes for %q: %v", msg.topic, msg.err)
		} else {
			m.cfg.Logger.Info("notes for %q saved to %s", msg.topic, msg.path)
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.screen != screenGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenInput:
			return m.updateInput(msg)
		case screenRoadmap:
			return m.updateRoadmap(msg)
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		topic := strings.TrimSpace(m.input.Value())
		if topic == "" {
			m.warning = emptyTopicWarning
			return m, nil
		}
		m.warning = ""
		m.err = nil
		m.pending = topic
		m.screen = screenGenerating
		m.cfg.Logger.Info("generating roadmap for %q", topic)
		return m, tea.Batch(m.spinner.Tick, generateRoadmap(m.ctx, m.cfg.Generator, topic))

	case tea.KeyEsc:
		if m.layout != nil {
			m.screen = screenRoadmap
			m.refresh()
			return m, nil
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) onRoadmap(msg roadmapMsg) Model {
	if msg.topic != m.pending {
		return m
	}
	m.pending = ""
	if msg.err != nil {
		m.cfg.Logger.Error("roadmap for %q: %v", msg.topic, msg.err)
		m.err = msg.err
		m.screen = screenInput
		return m
	}

	m.session.WithRoadmap(msg.topic, msg.tree)
	m.layout = view.Render(msg.tree)
	m.order = displayOrder(m.layout.Sections, nil)
	m.focus = 0
	m.diagram = false
	m.resetResources()
	m.screen = screenRoadmap
	m.viewport.GotoTop()
	m.refresh()
	return m
}

func (m Model) updateRoadmap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "down", "right", "tab", "j", "l":
		if len(m.order) > 0 {
			m.focus = (m.focus + 1) % len(m.order)
		}

	case "up", "left", "shift+tab", "k", "h":
		if len(m.order) > 0 {
			m.focus = (m.focus - 1 + len(m.order)) % len(m.order)
		}

	case "enter":
		if m.focus >= len(m.order) {
			return m, nil
		}
		if !m.session.Activate(m.layout, m.order[m.focus].Key) {
			return m, nil
		}
		m.resetResources()
		m.searching = true
		m.refresh()
		return m, findResources(m.ctx, m.cfg.Finder, m.session.Selected)

	case "c":
		m.session.Clear()
		m.resetResources()

	case "d":
		m.diagram = !m.diagram

	case "n":
		if !m.session.HasSelection() || m.notesBusy {
			return m, nil
		}
		m.notesBusy = true
		m.notesStarted = true
		m.notesPath, m.notesErr = "", nil
		m.refresh()
		return m, writeNotes(m.ctx, m.cfg.Generator, m.session.Selected, m.cfg.NotesDir, m.cfg.Now)

	case "/":
		m.screen = screenInput
		m.input.SetValue("")
		m.warning = ""
		return m, m.input.Focus()

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

func (m *Model) resetResources() {
	m.resources = nil
	m.searching = false
	m.notesBusy = false
	m.notesStarted = false
	m.notesPath = ""
	m.notesErr = nil
}

// refresh re-renders the roadmap screen into the viewport.
func (m *Model) refresh() {
	if m.screen != screenRoadmap {
		return
	}
	m.viewport.SetContent(m.roadmapView())
}

// View renders the current screen.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("JEE Study Roadmap"))
	b.WriteString("\n\n")

	switch m.screen {
	case screenInput:
		b.WriteString("Enter a JEE topic to build a roadmap:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.warning != "" {
			b.WriteString("\n" + warnStyle.Render(m.warning) + "\n")
		}
		if m.err != nil {
			b.WriteString("\n" + errStyle.Render(describeError(m.err)) + "\n")
		}
		b.WriteString("\n" + dimStyle.Render("enter: generate • esc: back • ctrl+c: quit"))

	case screenGenerating:
		fmt.Fprintf(&b, "%s Generating roadmap for %q...\n", m.spinner.View(), m.pending)

	case screenRoadmap:
		b.WriteString(m.viewport.View())
		b.WriteString("\n" + dimStyle.Render("←/→/tab: move • enter: select • c: clear • d: diagram • n: notes • /: new topic • q: quit"))
	}
	return b.String()
}

func (m Model) roadmapView() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Roadmap: "+m.session.MainTopic) + "\n\n")

	switch {
	case m.layout.IsEmpty():
		b.WriteString(warnStyle.Render("The roadmap is empty.") + "\n")
	case m.diagram:
		b.WriteString(roadmap.NewEncoder(roadmap.Options{}).ASCII(m.session.Tree))
	default:
		focused := ""
		if m.focus < len(m.order) {
			focused = m.order[m.focus].Key
		}
		for _, s := range m.layout.Sections {
			m.writeSection(&b, s, focused)
		}
	}

	if m.session.HasSelection() {
		b.WriteString("\n")
		m.writeResources(&b)
	}
	return b.String()
}

func (m Model) writeSection(b *strings.Builder, s *view.Section, focused string) {
	indent := strings.Repeat("  ", s.Depth)
	b.WriteString(indent + sectionStyle.Render("▼ "+s.Title) + "\n")

	for i := 0; i < len(s.Buttons); i += s.Columns {
		end := min(i+s.Columns, len(s.Buttons))
		cells := make([]string, 0, s.Columns)
		for _, btn := range s.Buttons[i:end] {
			cells = append(cells, m.renderButton(btn, focused))
		}
		b.WriteString(indent + "  " + lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	for _, sub := range s.Branches {
		m.writeSection(b, sub, focused)
	}
}

func (m Model) renderButton(btn view.Button, focused string) string {
	text := "[ " + btn.Text + " ]"
	switch {
	case btn.Key == focused:
		return focusedStyle.Render(text)
	case m.session.HasSelection() && btn.Label == m.session.Selected:
		return selectedStyle.Render(text)
	default:
		return buttonStyle.Render(text)
	}
}

func (m Model) writeResources(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Resources for: "+m.session.Selected) + "\n")

	if m.searching || m.resources == nil {
		b.WriteString(dimStyle.Render("Searching for videos and articles...") + "\n")
	} else {
		res := m.resources
		b.WriteString("\n" + sectionStyle.Render("Video") + "\n")
		switch {
		case res.VideoErr != nil:
			b.WriteString(errStyle.Render("Video search failed: "+res.VideoErr.Error()) + "\n")
		case res.Video == nil:
			b.WriteString(warnStyle.Render("No video found.") + "\n")
		default:
			b.WriteString(res.Video.Title + "\n" + linkStyle.Render(res.Video.URL) + "\n")
		}

		b.WriteString("\n" + sectionStyle.Render("Articles") + "\n")
		switch {
		case res.ArticlesErr != nil:
			b.WriteString(errStyle.Render("Article search failed: "+res.ArticlesErr.Error()) + "\n")
		case len(res.Articles) == 0:
			b.WriteString(warnStyle.Render("No articles found.") + "\n")
		default:
			for i, a := range res.Articles {
				fmt.Fprintf(b, "%d. %s\n   %s\n", i+1, a.Title, linkStyle.Render(a.Link))
				if a.Snippet != "" {
					b.WriteString("   " + dimStyle.Render(a.Snippet) + "\n")
				}
			}
		}
	}

	b.WriteString("\n" + sectionStyle.Render("Notes") + "\n")
	switch {
	case m.notesBusy:
		b.WriteString(dimStyle.Render("Generating notes...") + "\n")
	case m.notesErr != nil:
		b.WriteString(errStyle.Render("Notes failed: "+m.notesErr.Error()) + "\n")
	case m.notesPath != "":
		b.WriteString("Notes saved to " + m.notesPath + "\n")
	case !m.notesStarted:
		b.WriteString(dimStyle.Render("Press n to generate PDF notes.") + "\n")
	}
}

// displayOrder flattens sections the way they are drawn: a section's own
// buttons first, then its branches.
func displayOrder(sections []*view.Section, out []view.Button) []view.Button {
	for _, s := range sections {
		out = append(out, s.Buttons...)
		out = displayOrder(s.Branches, out)
	}
	return out
}

// rawAnswerLimit caps how much of an unparseable answer the error view shows.
const rawAnswerLimit = 400

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func describeError(err error) string {
	var pe *study.ParseError
	switch {
	case errors.As(err, &pe):
		msg := "The model's answer was not a valid roadmap. Please try again. (" + err.Error() + ")"
		if raw := strings.TrimSpace(pe.Response); raw != "" {
			msg += "\n\nRaw answer:\n" + truncateRunes(raw, rawAnswerLimit)
		}
		return msg
	case errors.Is(err, study.ErrEmptyTopic):
		return emptyTopicWarning
	default:
		return "Error generating roadmap: " + err.Error()
	}
}
