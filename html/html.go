// Package html renders block tokens with the fixed HTML templates.
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/blockmark"
)

var _ blockmark.Renderer = Renderer{}

// Renderer implements [blockmark.Renderer]. Token text is written verbatim,
// without HTML escaping.
type Renderer struct{}

// Render writes one block followed by a newline. EndOfInput writes nothing.
func (Renderer) Render(w io.Writer, t blockmark.Token) error {
	var err error
	switch t.Kind {
	case blockmark.Heading:
		if verr := t.Validate(); verr != nil {
			return verr
		}
		_, err = fmt.Fprintf(w, "<h%d>%s</h%d>\n", t.Level, t.Text, t.Level)
	case blockmark.ThematicBreak:
		_, err = io.WriteString(w, "<hr />\n")
	case blockmark.Paragraph:
		_, err = fmt.Fprintf(w, "<p>%s</p>\n", t.Text)
	case blockmark.EndOfInput:
	default:
		return fmt.Errorf("%s: %w", t.Kind, blockmark.ErrUnknownKind)
	}
	return err
}

// Compile converts markdown to HTML.
func Compile(markdown string) (string, error) {
	return blockmark.Compile(markdown, Renderer{})
}

// Fragment renders a single token to its own string.
func Fragment(t blockmark.Token) (string, error) {
	var b strings.Builder
	if err := (Renderer{}).Render(&b, t); err != nil {
		return "", err
	}
	return b.String(), nil
}
