package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rybkr/rookhop/internal/board"
	"github.com/rybkr/rookhop/internal/solver"
)

type checkFlags struct {
	size  int
	count bool
}

func newCheckCmd(a *app) *cobra.Command {
	f := &checkFlags{}

	checkCmd := &cobra.Command{
		Use:   "check PLACEMENT",
		Short: "Check whether one placement can be relocated",
		Long: `Check a single rook placement given as (row, column) pairs. The rook
order is the order in which rooks commit to their knight moves.

Examples:
  rookhop check -n 5 "(0, 1) (1, 0) (4, 4)"
  rookhop check -n 4 "0,1 1,0 2,3 3,2" --count`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, a, f, args[0])
		},
	}

	checkCmd.Flags().IntVarP(&f.size, "size", "n", board.DefaultSize, "Board side length")
	checkCmd.Flags().BoolVar(&f.count, "count", false, "Also count every valid relocation (exhaustive)")

	return checkCmd
}

func runCheck(cmd *cobra.Command, a *app, f *checkFlags, arg string) error {
	p, err := board.ParsePlacement(arg)
	if err != nil {
		return err
	}

	cfg := board.Config{Size: f.size, Rooks: len(p)}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := p.Validate(cfg); err != nil {
		return err
	}

	checker := solver.New(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Placement:")
	fmt.Fprint(out, p.Format(cfg.Size))

	if moved, ok := checker.Relocate(p); ok {
		fmt.Fprintln(out, "PASSES, relocation:")
		fmt.Fprintln(out, moved.String())
		fmt.Fprint(out, moved.Format(cfg.Size))
	} else {
		fmt.Fprintln(out, "FAILS: no knight relocation exists")
	}

	if f.count {
		fmt.Fprintf(out, "Relocations: %d\n", checker.CountRelocations(p))
	}

	a.log.WithField("nodes", checker.Stats().Nodes).Debug("check finished")
	return nil
}
