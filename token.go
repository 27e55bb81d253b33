package blockmark

import (
	"fmt"
	"strconv"
)

// Kind identifies the block type of a Token.
type Kind uint8

const (
	EndOfInput Kind = iota
	Heading
	ThematicBreak
	Paragraph
)

// MaxHeadingLevel is the deepest ATX heading level.
const MaxHeadingLevel = 6

func (k Kind) String() string {
	switch k {
	case EndOfInput:
		return "end_of_input"
	case Heading:
		return "heading"
	case ThematicBreak:
		return "thematic_break"
	case Paragraph:
		return "paragraph"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind is the inverse of Kind.String. Unknown names wrap
// ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "end_of_input":
		return EndOfInput, nil
	case "heading":
		return Heading, nil
	case "thematic_break":
		return ThematicBreak, nil
	case "paragraph":
		return Paragraph, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
}

// Token is one block produced by the Tokenizer.
//
// Text is a substring of the normalized buffer the token was scanned from
// and holds only the block content, with delimiters and surrounding
// whitespace stripped. Offset is the byte offset of Text in that buffer.
type Token struct {
	Kind   Kind
	Level  int // 1..6 for Heading, 0 otherwise
	Text   string
	Offset int
}

// Len returns the byte length of the token text.
func (t Token) Len() int { return len(t.Text) }

// End returns the offset just past the token text.
func (t Token) End() int { return t.Offset + len(t.Text) }
