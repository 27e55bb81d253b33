package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/blockmark"
	bmjson "github.com/fwojciec/blockmark/json"
	"github.com/fwojciec/blockmark/msgpack"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
)

// maxTextGraphemes bounds token text in the pretty dump.
const maxTextGraphemes = 48

func (a *app) tokenizeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tokenize [file|-]",
		Short: "Print the block tokens of a markdown document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readSource(args)
			if err != nil {
				return err
			}
			tokens, err := blockmark.Tokenize(src)
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}
			a.logger.Debug("tokenized", "tokens", len(tokens), "format", format)

			switch format {
			case "pretty":
				return writePretty(a.stdout, tokens, newPalette(a.cfg.Theme.theme(), a.color))
			case "json":
				data, err := bmjson.MarshalTokens(tokens)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(a.stdout, "%s\n", data)
				return err
			case "msgpack":
				data, err := msgpack.MarshalTokens(tokens)
				if err != nil {
					return err
				}
				_, err = a.stdout.Write(data)
				return err
			default:
				return fmt.Errorf("unknown format %q: must be pretty, json, or msgpack", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

// palette colors the pretty token dump.
type palette struct {
	index *color.Color
	kind  *color.Color
	text  *color.Color
	muted *color.Color
}

func newPalette(t blockmark.Theme, enabled bool) palette {
	p := palette{
		index: fgColor(t.Muted),
		kind:  fgColor(t.Accent).Add(color.Bold),
		text:  fgColor(t.Text),
		muted: fgColor(t.Muted),
	}
	for _, c := range []*color.Color{p.index, p.kind, p.text, p.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// fgColor maps an ANSI color index (0-15, -1 for none) to a foreground color.
func fgColor(index int) *color.Color {
	switch {
	case index >= 0 && index < 8:
		return color.New(color.FgBlack + color.Attribute(index))
	case index >= 8 && index < 16:
		return color.New(color.FgHiBlack + color.Attribute(index-8))
	default:
		return color.New(color.Reset)
	}
}

func writePretty(w io.Writer, tokens []blockmark.Token, p palette) error {
	for i, tok := range tokens {
		level := "-"
		if tok.Kind == blockmark.Heading {
			level = strconv.Itoa(tok.Level)
		}
		// Pad before coloring so escape codes do not skew the columns.
		_, err := fmt.Fprintf(w, "%s %s %s %s%s\n",
			p.index.Sprintf("%3d:", i),
			p.kind.Sprintf("%-14s", tok.Kind),
			level,
			p.text.Sprint(strconv.Quote(truncate(tok.Text, maxTextGraphemes))),
			p.muted.Sprintf("@%d", tok.Offset),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// truncate shortens s to at most n grapheme clusters, marking the cut with
// an ellipsis.
func truncate(s string, n int) string {
	if uniseg.GraphemeClusterCount(s) <= n {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n-1 && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	b.WriteString("…")
	return b.String()
}
