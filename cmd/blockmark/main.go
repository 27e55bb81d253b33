// Command blockmark compiles a small block-level subset of Markdown to HTML.
//
// Usage:
//
//	blockmark compile [file|-]
//	blockmark tokenize [file|-] [--format pretty|json|msgpack]
//	blockmark render tokens.json
//	blockmark build <pattern>... [--root dir] [--out dir] [--jobs n]
//	blockmark preview <file> [--width n]
//	blockmark compare [file|-] [--strict]
//
// Global flags:
//
//	--config string   Path to config file (default: .blockmark.toml)
//	--color string    Colorize output: auto, on, off (default: auto)
//	--verbose         Log debug output to stderr
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "blockmark: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands. It is populated by the
// root command's PersistentPreRunE before any subcommand runs.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	colorMode  string
	verbose    bool

	cfg    config
	color  bool
	logger *slog.Logger
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blockmark",
		Short:         "Compile block-level Markdown to HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to config file (default "+defaultConfigPath+")")
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	flags.BoolVar(&a.verbose, "verbose", false, "log debug output to stderr")

	root.AddCommand(
		a.compileCmd(),
		a.renderCmd(),
		a.tokenizeCmd(),
		a.buildCmd(),
		a.previewCmd(),
		a.compareCmd(),
	)
	return root
}

func (a *app) setup() error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	color, err := resolveColor(a.colorMode, a.stdout)
	if err != nil {
		return err
	}
	a.color = color

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("config resolved", "path", cfg.path, "color", a.color)
	return nil
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode %q: must be auto, on, or off", mode)
	}
}

// readSource reads markdown from the named file, or from stdin when the
// name is empty or "-".
func (a *app) readSource(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}
