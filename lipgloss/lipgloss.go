// Package lipgloss renders block tokens to ANSI-styled terminal output
// using lipgloss for styling.
package lipgloss

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/blockmark"
	"github.com/mattn/go-runewidth"
)

// DefaultWidth is used when a non-positive width is requested.
const DefaultWidth = 80

var _ blockmark.Renderer = (*Renderer)(nil)

// Renderer implements [blockmark.Renderer] for terminals. Paragraphs are
// word-wrapped to the renderer width and every block is followed by a
// blank line.
type Renderer struct {
	width   int
	heading lipgloss.Style
	marks   lipgloss.Style
	rule    lipgloss.Style
	text    lipgloss.Style
}

// NewRenderer creates a Renderer for the given theme and width.
func NewRenderer(theme blockmark.Theme, width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{
		width:   width,
		heading: lipgloss.NewStyle().Foreground(ansiColor(theme.Heading)).Bold(true),
		marks:   lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)),
		rule:    lipgloss.NewStyle().Foreground(ansiColor(theme.Rule)).Faint(true),
		text:    lipgloss.NewStyle().Foreground(ansiColor(theme.Text)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// Render implements blockmark.Renderer.
func (r *Renderer) Render(w io.Writer, t blockmark.Token) error {
	var buf strings.Builder
	switch t.Kind {
	case blockmark.Heading:
		if err := t.Validate(); err != nil {
			return err
		}
		line := r.marks.Render(strings.Repeat("#", t.Level)) + " " + r.heading.Render(t.Text)
		buf.WriteString(lipgloss.NewStyle().Width(r.width).Render(line))
		buf.WriteString("\n")
		if u := r.underline(t); u != "" {
			buf.WriteString(r.rule.Render(u))
			buf.WriteString("\n")
		}

	case blockmark.ThematicBreak:
		buf.WriteString(r.rule.Render(strings.Repeat("─", r.width)))
		buf.WriteString("\n")

	case blockmark.Paragraph:
		// Soft line breaks reflow like spaces.
		text := strings.ReplaceAll(t.Text, "\n", " ")
		buf.WriteString(r.text.Width(r.width).Render(text))
		buf.WriteString("\n")

	case blockmark.EndOfInput:
		return nil

	default:
		return fmt.Errorf("%s: %w", t.Kind, blockmark.ErrUnknownKind)
	}
	buf.WriteString("\n")
	_, err := io.WriteString(w, buf.String())
	return err
}

// underline returns the rule drawn under level 1 and 2 headings, sized to
// the display width of the heading line.
func (r *Renderer) underline(t blockmark.Token) string {
	if t.Level > 2 || t.Text == "" {
		return ""
	}
	n := min(t.Level+1+runewidth.StringWidth(t.Text), r.width)
	if t.Level == 1 {
		return strings.Repeat("═", n)
	}
	return strings.Repeat("─", n)
}

// Render compiles markdown source to ANSI-styled terminal output.
func Render(source string, width int, theme blockmark.Theme) (string, error) {
	if source == "" {
		return "", nil
	}
	out, err := blockmark.Compile(source, NewRenderer(theme, width))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
