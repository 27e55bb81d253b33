package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/blockmark"
	bl "github.com/fwojciec/blockmark/lipgloss"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the document preview.
type Model struct {
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	load   LoadFunc
	theme  blockmark.Theme
	styles Styles
	width  int // render width; <= 0 follows the window

	source string
	loads  int
	err    error
	ready  bool
}

// New creates a preview Model. A width <= 0 renders at the window width.
func New(load LoadFunc, theme blockmark.Theme, width int) Model {
	return Model{
		load:   load,
		theme:  theme,
		styles: NewStyles(theme),
		width:  width,
	}
}

// Err returns the last load or render error, if any.
func (m Model) Err() error { return m.err }

// Loads returns how many times the source has been loaded successfully.
func (m Model) Loads() int { return m.loads }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.reload()
}

func (m Model) reload() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		src, err := load()
		return LoadedMsg{Source: src, Err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.reload()
		}

	case LoadedMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("load: %w", msg.Err)
			return m, nil
		}
		m.source = msg.Source
		m.loads++
		m.err = nil
		m = m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	vpHeight := max(msg.Height-statusHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	return m.refresh()
}

// refresh re-renders the current source into the viewport.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	width := m.width
	if width <= 0 {
		width = m.Viewport.Width
	}
	out, err := bl.Render(m.source, width, m.theme)
	if err != nil {
		m.err = fmt.Errorf("render: %w", err)
		return m
	}
	m.Viewport.SetContent(out)
	return m
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render("error: " + m.err.Error())
	}
	pct := m.styles.Accent.Render(fmt.Sprintf("%3.0f%%", m.Viewport.ScrollPercent()*100))
	return pct + m.styles.Muted.Render("  r reload · q quit")
}
