package main

import (
	"fmt"
	"os"

	bt "github.com/fwojciec/blockmark/bubbletea"
	"github.com/spf13/cobra"
)

func (a *app) previewCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Preview a rendered markdown file in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				width = a.cfg.Preview.Width
			}
			path := args[0]
			load := func() (string, error) {
				data, err := os.ReadFile(path)
				if err != nil {
					return "", err
				}
				a.logger.Debug("preview loaded", "path", path, "bytes", len(data))
				return string(data), nil
			}
			m := bt.New(load, a.cfg.Theme.theme(), width)
			if err := bt.Run(cmd.Context(), m); err != nil {
				return fmt.Errorf("TUI: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "render width (default: terminal width)")
	return cmd
}
