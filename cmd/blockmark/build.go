package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fwojciec/blockmark"
	"github.com/fwojciec/blockmark/fs"
	"github.com/fwojciec/blockmark/html"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) buildCmd() *cobra.Command {
	var (
		root   string
		outDir string
		jobs   int
	)
	cmd := &cobra.Command{
		Use:   "build <pattern>...",
		Short: "Compile every markdown file matching the patterns to HTML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				outDir = a.cfg.Build.Out
			}
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Build.Jobs
			}
			n, err := a.build(cmd.Context(), root, args, outDir, jobs)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stderr, "built %d file(s)\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "directory patterns are matched against")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: next to each source)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "files compiled in parallel (default: GOMAXPROCS)")
	return cmd
}

// build compiles every file matched by patterns under root and returns the
// number of files written. The first failure cancels the remaining files.
func (a *app) build(ctx context.Context, root string, patterns []string, outDir string, jobs int) (int, error) {
	files, err := fs.Expand(root, patterns)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no files match %v under %s", patterns, root)
	}
	targets, err := a.plan(root, files, outDir)
	if err != nil {
		return 0, err
	}
	if len(targets) == 0 {
		return 0, fmt.Errorf("no buildable files match %v under %s", patterns, root)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	a.logger.Debug("build started", "root", root, "files", len(targets), "jobs", jobs, "out", outDir)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, tgt := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.buildFile(tgt)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(targets), nil
}

// target is one source file and the output it compiles to.
type target struct {
	src string
	dst string
}

// plan maps every source to its output path. A source that would be its
// own output is skipped. Two sources writing the same output are rejected
// before anything is written.
func (a *app) plan(root string, files []string, outDir string) ([]target, error) {
	targets := make([]target, 0, len(files))
	owner := make(map[string]string, len(files))
	for _, src := range files {
		dst, err := fs.OutputPath(root, src, outDir)
		if err != nil {
			return nil, fmt.Errorf("output path for %s: %w", src, err)
		}
		src, dst = filepath.Clean(src), filepath.Clean(dst)
		if dst == src {
			a.logger.Warn("skipping source that is its own output", "src", src)
			continue
		}
		if prev, ok := owner[dst]; ok {
			return nil, fmt.Errorf("%s and %s both compile to %s: %w", prev, src, dst, blockmark.ErrValidation)
		}
		owner[dst] = src
		targets = append(targets, target{src: src, dst: dst})
	}
	for _, tgt := range targets {
		if other, ok := owner[tgt.src]; ok {
			return nil, fmt.Errorf("%s would overwrite source %s: %w", other, tgt.src, blockmark.ErrValidation)
		}
	}
	return targets, nil
}

func (a *app) buildFile(tgt target) error {
	data, err := os.ReadFile(tgt.src)
	if err != nil {
		return fmt.Errorf("read %s: %w", tgt.src, err)
	}
	out, err := html.Compile(string(data))
	if err != nil {
		return fmt.Errorf("compile %s: %w", tgt.src, err)
	}
	if err := fs.WriteFile(tgt.dst, []byte(out)); err != nil {
		return fmt.Errorf("write %s: %w", tgt.dst, err)
	}
	a.logger.Debug("built", "src", tgt.src, "dst", tgt.dst, "bytes", len(out))
	return nil
}
