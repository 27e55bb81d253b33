package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/blockmark"
	"github.com/fwojciec/blockmark/html"
	bmjson "github.com/fwojciec/blockmark/json"
	"github.com/spf13/cobra"
)

func (a *app) compileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile [file|-]",
		Short: "Compile markdown to HTML on stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readSource(args)
			if err != nil {
				return err
			}
			var count int
			out, err := blockmark.Compile(src, html.Renderer{}, blockmark.WithTokenHandler(func(blockmark.Token) {
				count++
			}))
			if err != nil {
				return fmt.Errorf("compile: %w", err)
			}
			a.logger.Debug("compiled", "tokens", count, "bytes", len(out))
			_, err = io.WriteString(a.stdout, out)
			return err
		},
	}
}

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render tokens.json",
		Short: "Render a JSON token dump to HTML on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := bmjson.Load(args[0])
			if err != nil {
				return err
			}
			out, err := blockmark.Render(tokens, html.Renderer{})
			if err != nil {
				return err
			}
			a.logger.Debug("rendered", "path", args[0], "tokens", len(tokens))
			_, err = io.WriteString(a.stdout, out)
			return err
		},
	}
}
