// Package solver decides whether every rook of a placement can make one
// knight move so that the moved rooks are again mutually non-attacking.
//
// Rooks commit to a move in placement order. Rook i only has to avoid the
// squares of rooks 0..i-1 as already moved; rooks after i have not moved
// yet and do not constrain it.
package solver

import (
	"github.com/rybkr/rookhop/internal/board"
)

// Stats captures the work done by a Checker.
type Stats struct {
	// Nodes counts calls of the recursive search, one per rook visited.
	Nodes int64
}

// Checker implements the relocation search for one board size.
// It is not safe for concurrent use; create one Checker per goroutine.
type Checker struct {
	size  int
	stats Stats
}

// New creates a checker for boards described by cfg.
func New(cfg board.Config) *Checker {
	return &Checker{size: cfg.Size}
}

// Passes reports whether every rook of p can be relocated by a knight
// move. p is not modified.
func (c *Checker) Passes(p board.Placement) bool {
	_, ok := c.Relocate(p)
	return ok
}

// Relocate returns the first relocation found, in knight-offset order, and
// true; or nil and false if p is a counterexample. p is not modified.
func (c *Checker) Relocate(p board.Placement) (board.Placement, bool) {
	work := p.Clone()
	if len(work) == 0 {
		return work, true
	}
	if !c.check(work, 0) {
		return nil, false
	}
	return work, true
}

// Stats returns the counters accumulated since the checker was created.
func (c *Checker) Stats() Stats {
	return c.stats
}

// check tries the knight moves of rook i against rooks 0..i-1, which
// already hold their moved squares. On success the placement is left
// holding the relocation; on failure rook i is restored.
func (c *Checker) check(p board.Placement, i int) bool {
	c.stats.Nodes++

	orig := p[i]
	for _, o := range board.KnightOffsets {
		dst := orig.Add(o)
		if !dst.Inside(c.size) || attacksAny(dst, p[:i]) {
			continue
		}

		p[i] = dst
		if i == len(p)-1 || c.check(p, i+1) {
			return true
		}
		p[i] = orig
	}

	return false
}

// attacksAny reports whether pos shares a row or column with any of rooks.
func attacksAny(pos board.Coord, rooks []board.Coord) bool {
	for _, r := range rooks {
		if pos.Attacks(r) {
			return true
		}
	}
	return false
}
