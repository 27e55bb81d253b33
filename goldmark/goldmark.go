// Package goldmark tokenizes markdown with goldmark's CommonMark parser so the
// blockmark tokenizer can be checked against a reference implementation.
package goldmark

import (
	"strings"

	"github.com/fwojciec/blockmark"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Tokenize parses markdown with goldmark and maps each top-level block to a
// blockmark token, ending with EndOfInput. Headings, thematic breaks and
// paragraphs map to their own kinds. Every other block becomes a Paragraph
// holding the block's source lines.
//
// Offsets point at the first source line of a block, or 0 for blocks that
// carry no lines (thematic breaks, empty headings).
func Tokenize(markdown string) []blockmark.Token {
	src := []byte(blockmark.Normalize(markdown))
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var tokens []blockmark.Token
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		tokens = append(tokens, blockToken(c, src))
	}
	return append(tokens, blockmark.Token{Kind: blockmark.EndOfInput, Offset: len(src)})
}

func blockToken(node ast.Node, src []byte) blockmark.Token {
	text, off := collectLines(node, src)
	switch n := node.(type) {
	case *ast.Heading:
		return blockmark.Token{Kind: blockmark.Heading, Level: n.Level, Text: text, Offset: off}
	case *ast.ThematicBreak:
		return blockmark.Token{Kind: blockmark.ThematicBreak}
	default:
		return blockmark.Token{Kind: blockmark.Paragraph, Text: text, Offset: off}
	}
}

// collectLines joins the source lines of node, or of its descendants for
// container blocks, and returns them with the offset of the first line.
func collectLines(node ast.Node, src []byte) (string, int) {
	var parts []string
	off := -1
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if n.Type() != ast.TypeBlock {
			return
		}
		lines := n.Lines()
		if lines.Len() == 0 {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				walk(c)
			}
			return
		}
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if off < 0 {
				off = seg.Start
			}
			parts = append(parts, strings.TrimRight(string(seg.Value(src)), "\n"))
		}
	}
	walk(node)

	if off < 0 {
		off = 0
	}
	return strings.Trim(strings.Join(parts, "\n"), " \t\n\v\r"), off
}
