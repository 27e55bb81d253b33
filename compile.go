package blockmark

import (
	"fmt"
	"io"
	"strings"
)

// Renderer writes the output form of a single block token. Compile never
// passes EndOfInput to a Renderer.
type Renderer interface {
	Render(w io.Writer, t Token) error
}

// CompileOption configures a single Compile invocation.
type CompileOption func(*compileConfig)

type compileConfig struct {
	onToken func(Token)
}

// WithTokenHandler sets a callback that receives every token in document
// order, including the final EndOfInput. If nil or not set, tokens are only
// passed to the renderer.
func WithTokenHandler(h func(Token)) CompileOption {
	return func(c *compileConfig) {
		c.onToken = h
	}
}

// Compile normalizes markdown, tokenizes it, and feeds each block token to r
// in order. It returns the accumulated output.
func Compile(markdown string, r Renderer, opts ...CompileOption) (string, error) {
	var cfg compileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var out strings.Builder
	tz := NewTokenizer(markdown)
	for {
		tok, err := tz.Next()
		if err != nil {
			return "", err
		}
		if cfg.onToken != nil {
			cfg.onToken(tok)
		}
		if tok.Kind == EndOfInput {
			return out.String(), nil
		}
		if err := r.Render(&out, tok); err != nil {
			return "", fmt.Errorf("render %s at offset %d: %w", tok.Kind, tok.Offset, err)
		}
	}
}

// Tokenize returns every token of markdown, ending with EndOfInput.
func Tokenize(markdown string) ([]Token, error) {
	var tokens []Token
	tz := NewTokenizer(markdown)
	for {
		tok, err := tz.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EndOfInput {
			return tokens, nil
		}
	}
}

// Render feeds already scanned tokens to r, stopping at the first
// EndOfInput, and returns the accumulated output.
func Render(tokens []Token, r Renderer) (string, error) {
	var out strings.Builder
	for _, tok := range tokens {
		if tok.Kind == EndOfInput {
			break
		}
		if err := r.Render(&out, tok); err != nil {
			return "", fmt.Errorf("render %s at offset %d: %w", tok.Kind, tok.Offset, err)
		}
	}
	return out.String(), nil
}
