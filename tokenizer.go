package blockmark

import "fmt"

// Tokenizer splits a markdown document into block tokens. It uses a pull
// model: each call to Next scans exactly one block.
//
// A Tokenizer owns the normalized buffer for the document. Every token it
// returns references that buffer.
type Tokenizer struct {
	src   string
	cur   Cursor
	rules *[256]BlockRule
}

// NewTokenizer normalizes markdown and returns a tokenizer positioned at its
// start.
func NewTokenizer(markdown string) *Tokenizer {
	src := Normalize(markdown)
	return &Tokenizer{src: src, cur: NewCursor(src), rules: &rules}
}

// Source returns the normalized buffer that token text points into.
func (t *Tokenizer) Source() string { return t.src }

// Next returns the next block token. Runs of blank lines between blocks are
// skipped. Once the buffer is exhausted Next returns an EndOfInput token on
// every call.
//
// The only error is ErrStalled, returned when a scanner produced a token
// without moving the cursor forward.
func (t *Tokenizer) Next() (Token, error) {
	for t.cur.Eat('\n') {
	}
	if t.cur.EOF() {
		return Token{Kind: EndOfInput, Offset: t.cur.Pos()}, nil
	}

	start := t.cur.Mark()
	tok := t.scan(start)
	if t.cur.Pos() <= int(start) {
		return Token{}, fmt.Errorf("%s at offset %d: %w", tok.Kind, start, ErrStalled)
	}
	return tok, nil
}

func (t *Tokenizer) scan(start Mark) Token {
	if rule := t.rules[t.cur.Peek()]; rule != nil {
		if tok, ok := rule.Scan(&t.cur); ok {
			return tok
		}
		t.cur.Reset(start)
	}
	tok, _ := ParagraphRule{}.Scan(&t.cur)
	return tok
}
