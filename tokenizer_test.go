package blockmark_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/blockmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds strips text and offsets so tests can compare token shapes.
func kinds(tokens []blockmark.Token) []blockmark.Token {
	out := make([]blockmark.Token, len(tokens))
	for i, tok := range tokens {
		out[i] = blockmark.Token{Kind: tok.Kind, Level: tok.Level}
	}
	return out
}

func heading(level int, text string) blockmark.Token {
	return blockmark.Token{Kind: blockmark.Heading, Level: level, Text: text}
}

func paragraph(text string) blockmark.Token {
	return blockmark.Token{Kind: blockmark.Paragraph, Text: text}
}

var (
	hr  = blockmark.Token{Kind: blockmark.ThematicBreak}
	eoi = blockmark.Token{Kind: blockmark.EndOfInput}
)

// tokenize returns the tokens of markdown with offsets cleared.
func tokenize(t *testing.T, markdown string) []blockmark.Token {
	t.Helper()
	tokens, err := blockmark.Tokenize(markdown)
	require.NoError(t, err)
	for i := range tokens {
		tokens[i].Offset = 0
	}
	return tokens
}

func TestTokenizer_Headings(t *testing.T) {
	t.Parallel()

	t.Run("levels one through six", func(t *testing.T) {
		t.Parallel()
		for level := 1; level <= 6; level++ {
			src := strings.Repeat("#", level) + " title\n"
			assert.Equal(t, []blockmark.Token{heading(level, "title"), eoi}, tokenize(t, src))
		}
	})

	t.Run("seven marks is a paragraph with the literal run", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "####### title\n")
		assert.Equal(t, []blockmark.Token{paragraph("####### title"), eoi}, got)
	})

	t.Run("missing space is a paragraph", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "#title\n")
		assert.Equal(t, []blockmark.Token{paragraph("#title"), eoi}, got)
	})

	t.Run("bare hash is a paragraph", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "#\n")
		assert.Equal(t, []blockmark.Token{paragraph("#"), eoi}, got)
	})

	t.Run("surrounding spaces are trimmed", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "##       hai!     \n")
		assert.Equal(t, []blockmark.Token{heading(2, "hai!"), eoi}, got)
	})

	t.Run("mixed line endings and empty headings", func(t *testing.T) {
		t.Parallel()
		src := "# hai!             \n" +
			"##       hai!     \n" +
			"### hai!                       \r" +
			"####            hai!           \r\n" +
			"##### hai!        \r" +
			"######        hai!         \n" +
			"# \n" +
			"## \n" +
			"### \n" +
			"#### \n" +
			"##### \n" +
			"###### "
		want := []blockmark.Token{
			heading(1, "hai!"),
			heading(2, "hai!"),
			heading(3, "hai!"),
			heading(4, "hai!"),
			heading(5, "hai!"),
			heading(6, "hai!"),
			heading(1, ""),
			heading(2, ""),
			heading(3, ""),
			heading(4, ""),
			heading(5, ""),
			heading(6, ""),
			eoi,
		}
		assert.Equal(t, want, tokenize(t, src))
	})
}

func TestTokenizer_ThematicBreaks(t *testing.T) {
	t.Parallel()

	t.Run("two markers is a paragraph", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []blockmark.Token{paragraph("--"), eoi}, tokenize(t, "-- "))
	})

	t.Run("three markers is a break", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []blockmark.Token{hr, eoi}, tokenize(t, "---"))
	})

	t.Run("mixed markers is a paragraph", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []blockmark.Token{paragraph("*-*"), eoi}, tokenize(t, "*-*\n"))
	})

	t.Run("disqualified line reparses whole line as paragraph", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "**bold** text\nmore\n")
		assert.Equal(t, []blockmark.Token{paragraph("**bold** text\nmore"), eoi}, got)
	})

	t.Run("break followed directly by text", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "_ _ _\nafter\n")
		assert.Equal(t, []blockmark.Token{hr, paragraph("after"), eoi}, got)
	})
}

func TestTokenizer_Paragraphs(t *testing.T) {
	t.Parallel()

	t.Run("soft line breaks are preserved", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "line one\nline two\n\n")
		assert.Equal(t, []blockmark.Token{paragraph("line one\nline two"), eoi}, got)
	})

	t.Run("blank line runs separate paragraphs", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "a\n\n\n\n\nb")
		assert.Equal(t, []blockmark.Token{paragraph("a"), paragraph("b"), eoi}, got)
	})

	t.Run("paragraph absorbs following heading line", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "para\n# not a heading\n\n# heading\n")
		assert.Equal(t, []blockmark.Token{paragraph("para\n# not a heading"), heading(1, "heading"), eoi}, got)
	})

	t.Run("leading spaces prevent heading", func(t *testing.T) {
		t.Parallel()
		got := tokenize(t, "  # x\n")
		assert.Equal(t, []blockmark.Token{paragraph("# x"), eoi}, got)
	})
}

func TestTokenizer_Document(t *testing.T) {
	t.Parallel()

	got := tokenize(t, "# Title  \n\nBody text\n\n***\n")
	assert.Equal(t, []blockmark.Token{heading(1, "Title"), paragraph("Body text"), hr, eoi}, got)
}

func TestTokenizer_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"", "\n", "\r\n\r\n", strings.Repeat("\n", 100000)} {
		assert.Equal(t, []blockmark.Token{eoi}, kinds(tokenize(t, src)))
	}
}

func TestTokenizer_EndOfInputRepeats(t *testing.T) {
	t.Parallel()

	tz := blockmark.NewTokenizer("text")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, blockmark.Paragraph, tok.Kind)
	for range 3 {
		tok, err = tz.Next()
		require.NoError(t, err)
		assert.Equal(t, blockmark.EndOfInput, tok.Kind)
	}
}

func TestTokenizer_TextBorrowsSource(t *testing.T) {
	t.Parallel()

	tz := blockmark.NewTokenizer("# Title\r\n\r\n  body\r\nline  \r\n\r\n***")
	src := tz.Source()
	assert.Equal(t, "# Title\n\n  body\nline  \n\n***\n\n", src)
	for {
		tok, err := tz.Next()
		require.NoError(t, err)
		assert.Equal(t, tok.Text, src[tok.Offset:tok.End()])
		assert.Equal(t, len(tok.Text), tok.Len())
		if tok.Kind == blockmark.EndOfInput {
			assert.Equal(t, len(src), tok.Offset)
			break
		}
	}
}

type stuckRule struct{}

func (stuckRule) Scan(c *blockmark.Cursor) (blockmark.Token, bool) {
	return blockmark.Token{Kind: blockmark.Paragraph}, true
}

func TestTokenizer_StalledScanner(t *testing.T) {
	t.Parallel()

	tz := blockmark.NewTokenizerWithRule("x\n", 'x', stuckRule{})
	_, err := tz.Next()
	assert.ErrorIs(t, err, blockmark.ErrStalled)
}

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"# Title  \n\nBody text\n\n***\n",
		"####### x",
		"*-*\r\n-- \r\n___",
		"\r\r\r#",
		"a\n\n\n\nb\n# \n",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, markdown string) {
		tz := blockmark.NewTokenizer(markdown)
		src := tz.Source()
		for n := 0; ; n++ {
			require.LessOrEqual(t, n, len(src), "more tokens than bytes")
			tok, err := tz.Next()
			require.NoError(t, err)
			require.NoError(t, tok.Validate())
			require.Equal(t, tok.Text, src[tok.Offset:tok.End()])
			if tok.Kind == blockmark.EndOfInput {
				return
			}
		}
	})
}
