package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rybkr/rookhop/internal/board"
	"github.com/rybkr/rookhop/internal/search"
)

type searchFlags struct {
	size          int
	rooks         int
	progressEvery int
	timeout       time.Duration
}

func newSearchCmd(a *app) *cobra.Command {
	f := &searchFlags{}

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search a board for a counterexample",
		Long: `Enumerate every non-attacking rook placement (up to left-right mirroring)
and report the first one whose rooks cannot all be relocated by knight moves.

Examples:
  rookhop search
  rookhop search -n 6
  rookhop search -n 8 -k 5 --progress-every 0
  rookhop search -n 12 --timeout 1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, a, f)
		},
	}

	searchCmd.Flags().IntVarP(&f.size, "size", "n", board.DefaultSize, "Board side length")
	searchCmd.Flags().IntVarP(&f.rooks, "rooks", "k", 0, "Number of rooks (0 = board size)")
	searchCmd.Flags().IntVar(&f.progressEvery, "progress-every", search.DefaultProgressEvery, "Log progress every N placements (0 = never)")
	searchCmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Stop the search after this long (0 = no limit)")

	return searchCmd
}

func runSearch(cmd *cobra.Command, a *app, f *searchFlags) error {
	if f.progressEvery < 0 {
		return fmt.Errorf("progress interval must not be negative, got %d", f.progressEvery)
	}

	cfg, err := board.NewConfig(f.size, f.rooks)
	if err != nil {
		return err
	}

	s, err := search.New(cfg, &search.Options{
		ProgressEvery: f.progressEvery,
		Logger:        a.log,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	out := cmd.OutOrStdout()
	res, err := s.Run(ctx)
	if errors.Is(err, search.ErrCanceled) {
		fmt.Fprintf(out, "INTERRUPTED after %d placements on %v\n", res.Checked, cfg)
		fmt.Fprintf(out, "%.3f s\n", res.Elapsed.Seconds())
		return err
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if res.Safe() {
		fmt.Fprintf(out, "SUCCESS: no counterexample on %v (%d placements checked)\n", cfg, res.Checked)
	} else {
		fmt.Fprintf(out, "COUNTEREXAMPLE FOUND after %d placements:\n", res.Checked)
		fmt.Fprintln(out, res.Counterexample.String())
		fmt.Fprint(out, res.Counterexample.Format(cfg.Size))
	}
	fmt.Fprintf(out, "%.3f s\n", res.Elapsed.Seconds())

	return nil
}
