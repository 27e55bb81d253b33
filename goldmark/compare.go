package goldmark

import "github.com/fwojciec/blockmark"

// Divergence is a position where the blockmark token stream differs from
// goldmark's. A stream that ended early contributes an EndOfInput token.
type Divergence struct {
	Index int
	Got   blockmark.Token // blockmark
	Want  blockmark.Token // goldmark
}

// Compare tokenizes markdown with both implementations and reports every
// index where kind, level or text differ. Offsets are not compared.
func Compare(markdown string) ([]Divergence, error) {
	got, err := blockmark.Tokenize(markdown)
	if err != nil {
		return nil, err
	}
	want := Tokenize(markdown)

	var out []Divergence
	for i := range max(len(got), len(want)) {
		g, w := at(got, i), at(want, i)
		if g.Kind != w.Kind || g.Level != w.Level || g.Text != w.Text {
			out = append(out, Divergence{Index: i, Got: g, Want: w})
		}
	}
	return out, nil
}

func at(tokens []blockmark.Token, i int) blockmark.Token {
	if i < len(tokens) {
		return tokens[i]
	}
	return blockmark.Token{Kind: blockmark.EndOfInput}
}
