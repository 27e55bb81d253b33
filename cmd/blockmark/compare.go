package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fwojciec/blockmark"
	"github.com/fwojciec/blockmark/goldmark"
	"github.com/spf13/cobra"
)

// errDiverged is returned by compare --strict when the tokenizers disagree.
var errDiverged = errors.New("output diverges from CommonMark")

func (a *app) compareCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "compare [file|-]",
		Short: "Compare block tokens against goldmark's CommonMark parser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readSource(args)
			if err != nil {
				return err
			}
			divs, err := goldmark.Compare(src)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			p := newPalette(a.cfg.Theme.theme(), a.color)
			for _, d := range divs {
				fmt.Fprintf(a.stdout, "%s\n  got:  %s\n  want: %s\n",
					p.index.Sprintf("block %d:", d.Index),
					describe(d.Got),
					describe(d.Want),
				)
			}
			a.logger.Debug("compared", "divergences", len(divs))
			if len(divs) == 0 {
				fmt.Fprintln(a.stdout, "no divergences")
				return nil
			}
			if strict {
				return fmt.Errorf("%d block(s): %w", len(divs), errDiverged)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any divergence is found")
	return cmd
}

func describe(t blockmark.Token) string {
	s := t.Kind.String()
	if t.Kind == blockmark.Heading {
		s += " " + strconv.Itoa(t.Level)
	}
	if t.Text != "" {
		s += " " + strconv.Quote(t.Text)
	}
	return s
}
