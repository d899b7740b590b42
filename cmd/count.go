package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rybkr/rookhop/internal/board"
	"github.com/rybkr/rookhop/internal/generator"
)

type countFlags struct {
	size      int
	rooks     string
	noMirror  bool
	enumerate bool
}

func newCountCmd(a *app) *cobra.Command {
	f := &countFlags{}

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count the placements a search would check",
		Long: `Print how many placements the enumerator yields for a board, computed
in closed form and optionally by walking the enumeration.

Examples:
  rookhop count -n 12
  rookhop count -n 6 -k 2:4 --enumerate
  rookhop count -n 4 -k 2 --no-mirror`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, a, f)
		},
	}

	countCmd.Flags().IntVarP(&f.size, "size", "n", board.DefaultSize, "Board side length")
	countCmd.Flags().StringVarP(&f.rooks, "rooks", "k", "", "Number of rooks or range like 2:4 (empty = board size)")
	countCmd.Flags().BoolVar(&f.noMirror, "no-mirror", false, "Count mirror images too")
	countCmd.Flags().BoolVar(&f.enumerate, "enumerate", false, "Also enumerate placements one by one")

	return countCmd
}

// parseRookRange parses a rook count string which can be:
// - empty, meaning one rook per row
// - a single number: "4"
// - a range: "2:4"
func parseRookRange(s string, size int) (lo, hi int, err error) {
	if strings.TrimSpace(s) == "" {
		return size, size, nil
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid rook count: %w", err)
		}
		return val, val, nil
	case 2:
		lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid rook count min: %w", err)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid rook count max: %w", err)
		}
		if lo > hi {
			return 0, 0, fmt.Errorf("rook count min (%d) cannot be greater than max (%d)", lo, hi)
		}
		return lo, hi, nil
	}
	return 0, 0, fmt.Errorf("invalid rook count format: %s (use format like '4' or '2:4')", s)
}

func runCount(cmd *cobra.Command, a *app, f *countFlags) error {
	lo, hi, err := parseRookRange(f.rooks, f.size)
	if err != nil {
		return err
	}

	opts := &generator.Options{MirrorReduction: !f.noMirror}
	out := cmd.OutOrStdout()

	for rooks := lo; rooks <= hi; rooks++ {
		cfg := board.Config{Size: f.size, Rooks: rooks}
		if err := cfg.Validate(); err != nil {
			return err
		}

		gen := generator.New(cfg, opts)
		line := fmt.Sprintf("k=%d placements=%s", rooks, gen.Count())
		if f.enumerate {
			var n int64
			for range gen.All() {
				n++
			}
			line += fmt.Sprintf(" enumerated=%d", n)
		}
		fmt.Fprintln(out, line)
		a.log.WithField("config", cfg.String()).Debug("counted")
	}

	return nil
}
