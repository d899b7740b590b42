package solver

import (
	"github.com/rybkr/rookhop/internal/board"
)

// CountRelocations returns the number of complete relocations of p, that
// is every way of choosing one knight move per rook that satisfies the
// same ordering rule as Passes. A placement passes exactly when the count
// is positive. The search is exhaustive and grows as 8^k in the worst case.
func (c *Checker) CountRelocations(p board.Placement) int64 {
	work := p.Clone()
	if len(work) == 0 {
		return 1
	}
	return c.traceRelocations(work, 0)
}

// traceRelocations counts the completions of rooks i.. and always restores
// rook i before returning.
func (c *Checker) traceRelocations(p board.Placement, i int) int64 {
	c.stats.Nodes++

	orig := p[i]
	var count int64
	for _, o := range board.KnightOffsets {
		dst := orig.Add(o)
		if !dst.Inside(c.size) || attacksAny(dst, p[:i]) {
			continue
		}

		p[i] = dst
		if i == len(p)-1 {
			count++
		} else {
			count += c.traceRelocations(p, i+1)
		}
		p[i] = orig
	}
	return count
}
