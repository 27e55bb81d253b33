package html_test

import (
	"testing"

	"github.com/fwojciec/blockmark"
	"github.com/fwojciec/blockmark/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"empty document", "", ""},
		{"document with every block", "# Title  \n\nBody text\n\n***\n", "<h1>Title</h1>\n<p>Body text</p>\n<hr />\n"},
		{"heading levels", "###### six\n### three", "<h6>six</h6>\n<h3>three</h3>\n"},
		{"soft breaks are kept", "one\ntwo", "<p>one\ntwo</p>\n"},
		{"text is not escaped", "a < b & <em>c</em>", "<p>a < b & <em>c</em></p>\n"},
		{"crlf document", "# A\r\n\r\nB\r\n", "<h1>A</h1>\n<p>B</p>\n"},
		{"invalid constructs degrade to paragraphs", "#nope\n\n-- \n\n*-*", "<p>#nope</p>\n<p>--</p>\n<p>*-*</p>\n"},
		{"empty heading", "## ", "<h2></h2>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := html.Compile(tt.markdown)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFragment(t *testing.T) {
	t.Parallel()

	t.Run("heading", func(t *testing.T) {
		t.Parallel()
		got, err := html.Fragment(blockmark.Token{Kind: blockmark.Heading, Level: 4, Text: "x"})
		require.NoError(t, err)
		assert.Equal(t, "<h4>x</h4>\n", got)
	})

	t.Run("thematic break", func(t *testing.T) {
		t.Parallel()
		got, err := html.Fragment(blockmark.Token{Kind: blockmark.ThematicBreak})
		require.NoError(t, err)
		assert.Equal(t, "<hr />\n", got)
	})

	t.Run("end of input renders nothing", func(t *testing.T) {
		t.Parallel()
		got, err := html.Fragment(blockmark.Token{Kind: blockmark.EndOfInput})
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("heading level out of range", func(t *testing.T) {
		t.Parallel()
		_, err := html.Fragment(blockmark.Token{Kind: blockmark.Heading, Level: 7})
		assert.ErrorIs(t, err, blockmark.ErrValidation)
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()
		_, err := html.Fragment(blockmark.Token{Kind: blockmark.Kind(42)})
		assert.ErrorIs(t, err, blockmark.ErrUnknownKind)
	})
}
