package blockmark

import "strings"

// BlockRule scans one block construct starting at the cursor.
//
// Scan returns the token and true when the construct matched and the cursor
// has been advanced past the block. It returns false when the input at the
// cursor is not this construct; the tokenizer then rewinds the cursor to
// where the scan began and reparses the block as a paragraph.
type BlockRule interface {
	Scan(c *Cursor) (Token, bool)
}

// Interface compliance checks.
var (
	_ BlockRule = HeadingRule{}
	_ BlockRule = BreakRule{}
	_ BlockRule = ParagraphRule{}
)

// rules maps the leading byte of a block to its scanner. Bytes without an
// entry go straight to ParagraphRule.
var rules = [256]BlockRule{
	'#': HeadingRule{},
	'*': BreakRule{Marker: '*'},
	'-': BreakRule{Marker: '-'},
	'_': BreakRule{Marker: '_'},
}

// paragraphSpace is trimmed from both ends of paragraph text.
const paragraphSpace = " \t\n\v\r"

// HeadingRule scans an ATX heading: 1..6 '#' followed by a mandatory space.
// Only spaces are trimmed from the heading text.
type HeadingRule struct{}

// Scan implements BlockRule.
func (HeadingRule) Scan(c *Cursor) (Token, bool) {
	level := 0
	for c.Peek() == '#' {
		c.Bump()
		level++
	}
	if level > MaxHeadingLevel || !c.Eat(' ') {
		return Token{}, false
	}

	m := c.Mark()
	for !c.EOF() && c.Peek() != '\n' {
		c.Bump()
	}
	text, off := trim(c.Slice(m), int(m), " ")
	c.Eat('\n')

	return Token{Kind: Heading, Level: level, Text: text, Offset: off}, true
}

// BreakRule scans a thematic break made of Marker. The line may contain only
// Marker and spaces, and at least three Markers.
type BreakRule struct {
	Marker byte
}

// Scan implements BlockRule.
func (r BreakRule) Scan(c *Cursor) (Token, bool) {
	start := c.Pos()
	n := 0
	for !c.EOF() && c.Peek() != '\n' {
		switch c.Bump() {
		case r.Marker:
			n++
		case ' ':
		default:
			return Token{}, false
		}
	}
	if n < 3 {
		return Token{}, false
	}
	c.Eat('\n')

	return Token{Kind: ThematicBreak, Offset: start}, true
}

// ParagraphRule consumes everything up to the next blank line, or the end
// of the buffer. It always matches.
type ParagraphRule struct{}

// Scan implements BlockRule.
func (ParagraphRule) Scan(c *Cursor) (Token, bool) {
	start := c.Pos()
	span := c.Rest()
	advance := len(span)
	if i := strings.Index(span, "\n\n"); i >= 0 {
		span = span[:i]
		advance = i + 2
	}
	c.Skip(advance)

	text, off := trim(span, start, paragraphSpace)
	return Token{Kind: Paragraph, Text: text, Offset: off}, true
}

// trim strips cutset from both ends of s, which starts at offset off in the
// buffer, and returns the remaining substring with its own offset.
func trim(s string, off int, cutset string) (string, int) {
	left := strings.TrimLeft(s, cutset)
	off += len(s) - len(left)
	return strings.TrimRight(left, cutset), off
}
