// Package generator enumerates non-attacking rook placements.
//
// Rows are chosen as k-combinations of [0, n) in increasing order; for each
// row combination the columns run through every k-permutation of [0, n) in
// lexicographic order. With mirror reduction enabled, permutations whose
// first column exceeds (n-1)/2 are skipped, which ends the permutation loop
// for that row combination.
package generator

import (
	"iter"

	"github.com/rybkr/rookhop/internal/board"
)

// Generator is a cursor over the placements of one board configuration.
// It is not safe for concurrent use. A Generator is finished once Next
// returns false; call New again for a fresh sequence.
type Generator struct {
	cfg     board.Config
	options *Options

	maxFirstCol int

	rows []int  // current row combination, increasing
	cols []int  // current column permutation
	used []bool // used[c] is true when column c is in cols

	started bool
	done    bool
}

// New creates a placement generator for cfg.
// cfg is not validated; a rook count larger than the board size yields
// nothing.
func New(cfg board.Config, options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	maxFirstCol := cfg.Size - 1
	if options.MirrorReduction {
		maxFirstCol = cfg.MaxFirstCol()
	}

	return &Generator{
		cfg:         cfg,
		options:     options,
		maxFirstCol: maxFirstCol,
	}
}

// Next returns the next placement and true, or nil and false once the
// sequence is exhausted. Every returned placement is owned by the caller.
func (g *Generator) Next() (board.Placement, bool) {
	if g.done {
		return nil, false
	}

	if !g.started {
		g.started = true
		if !g.reset() {
			g.done = true
			return nil, false
		}
		return g.placement(), true
	}

	if g.nextPermutation() && g.firstColAllowed() {
		return g.placement(), true
	}
	if g.nextCombination() {
		g.firstPermutation()
		return g.placement(), true
	}

	g.done = true
	return nil, false
}

// All returns the remaining placements as an iterator.
func (g *Generator) All() iter.Seq[board.Placement] {
	return func(yield func(board.Placement) bool) {
		for {
			p, ok := g.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// reset prepares the first row combination and column permutation.
// It reports false when no placement exists.
func (g *Generator) reset() bool {
	n, k := g.cfg.Size, g.cfg.Rooks
	if k < 0 || k > n {
		return false
	}

	g.rows = make([]int, k)
	for i := range k {
		g.rows[i] = i
	}
	g.cols = make([]int, k)
	g.used = make([]bool, n)
	g.firstPermutation()

	return g.firstColAllowed()
}

// firstColAllowed applies mirror reduction to the current permutation.
func (g *Generator) firstColAllowed() bool {
	return len(g.cols) == 0 || g.cols[0] <= g.maxFirstCol
}

// placement builds an owned Placement from the current rows and columns.
func (g *Generator) placement() board.Placement {
	p := make(board.Placement, len(g.rows))
	for i := range g.rows {
		p[i] = board.Coord{Row: g.rows[i], Col: g.cols[i]}
	}
	return p
}

// nextCombination advances rows to the next k-combination of [0, n) in
// lexicographic order. It reports false when rows was the last one.
func (g *Generator) nextCombination() bool {
	n, k := g.cfg.Size, len(g.rows)
	for i := k - 1; i >= 0; i-- {
		if g.rows[i] < n-k+i {
			g.rows[i]++
			for j := i + 1; j < k; j++ {
				g.rows[j] = g.rows[j-1] + 1
			}
			return true
		}
	}
	return false
}

// firstPermutation sets cols to 0, 1, ..., k-1.
func (g *Generator) firstPermutation() {
	clear(g.used)
	for i := range g.cols {
		g.cols[i] = i
		g.used[i] = true
	}
}

// nextPermutation advances cols to the next k-permutation of [0, n) in
// lexicographic order. It reports false when cols was the last one.
func (g *Generator) nextPermutation() bool {
	n := g.cfg.Size
	for i := len(g.cols) - 1; i >= 0; i-- {
		g.used[g.cols[i]] = false
		for v := g.cols[i] + 1; v < n; v++ {
			if g.used[v] {
				continue
			}
			g.cols[i] = v
			g.used[v] = true
			g.fillSmallest(i + 1)
			return true
		}
	}
	return false
}

// fillSmallest assigns the smallest unused columns, ascending, to
// cols[from:].
func (g *Generator) fillSmallest(from int) {
	v := 0
	for i := from; i < len(g.cols); i++ {
		for g.used[v] {
			v++
		}
		g.cols[i] = v
		g.used[v] = true
	}
}
