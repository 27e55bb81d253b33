package blockmark_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/fwojciec/blockmark"
	"github.com/fwojciec/blockmark/html"
	"github.com/fwojciec/blockmark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("renders every block and never end of input", func(t *testing.T) {
		t.Parallel()
		var seen []blockmark.Kind
		r := &mock.Renderer{
			RenderFn: func(w io.Writer, tok blockmark.Token) error {
				seen = append(seen, tok.Kind)
				_, err := fmt.Fprintf(w, "[%s]", tok.Kind)
				return err
			},
		}
		out, err := blockmark.Compile("# a\n\nb\n\n---", r)
		require.NoError(t, err)
		assert.Equal(t, "[heading][paragraph][thematic_break]", out)
		assert.Equal(t, []blockmark.Kind{blockmark.Heading, blockmark.Paragraph, blockmark.ThematicBreak}, seen)
	})

	t.Run("token handler sees end of input", func(t *testing.T) {
		t.Parallel()
		var handled []blockmark.Kind
		_, err := blockmark.Compile("text", html.Renderer{}, blockmark.WithTokenHandler(func(tok blockmark.Token) {
			handled = append(handled, tok.Kind)
		}))
		require.NoError(t, err)
		assert.Equal(t, []blockmark.Kind{blockmark.Paragraph, blockmark.EndOfInput}, handled)
	})

	t.Run("renderer error stops compilation", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("disk full")
		calls := 0
		r := &mock.Renderer{
			RenderFn: func(io.Writer, blockmark.Token) error {
				calls++
				return wantErr
			},
		}
		_, err := blockmark.Compile("a\n\nb", r)
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 1, calls)
	})

	t.Run("end to end html", func(t *testing.T) {
		t.Parallel()
		out, err := blockmark.Compile("# Title  \n\nBody text\n\n***\n", html.Renderer{})
		require.NoError(t, err)
		assert.Equal(t, "<h1>Title</h1>\n<p>Body text</p>\n<hr />\n", out)
	})
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tokens, err := blockmark.Tokenize("## x\n\ny")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, blockmark.Token{Kind: blockmark.Heading, Level: 2, Text: "x", Offset: 3}, tokens[0])
	assert.Equal(t, blockmark.Token{Kind: blockmark.Paragraph, Text: "y", Offset: 6}, tokens[1])
	assert.Equal(t, blockmark.Token{Kind: blockmark.EndOfInput, Offset: 9}, tokens[2])
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("matches compile output", func(t *testing.T) {
		t.Parallel()
		src := "# Title  \n\nBody text\n\n***\n"
		tokens, err := blockmark.Tokenize(src)
		require.NoError(t, err)
		got, err := blockmark.Render(tokens, html.Renderer{})
		require.NoError(t, err)
		want, err := blockmark.Compile(src, html.Renderer{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("stops at end of input", func(t *testing.T) {
		t.Parallel()
		tokens := []blockmark.Token{
			{Kind: blockmark.Paragraph, Text: "a"},
			{Kind: blockmark.EndOfInput},
			{Kind: blockmark.Paragraph, Text: "b"},
		}
		got, err := blockmark.Render(tokens, html.Renderer{})
		require.NoError(t, err)
		assert.Equal(t, "<p>a</p>\n", got)
	})

	t.Run("wraps renderer errors", func(t *testing.T) {
		t.Parallel()
		_, err := blockmark.Render([]blockmark.Token{{Kind: blockmark.Kind(9)}}, html.Renderer{})
		assert.ErrorIs(t, err, blockmark.ErrUnknownKind)
	})
}
