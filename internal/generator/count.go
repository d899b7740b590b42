package generator

import (
	"math/big"

	"github.com/rybkr/rookhop/internal/board"
)

// Count returns how many placements a fresh Generator with the same
// configuration yields, without enumerating them.
func (g *Generator) Count() *big.Int {
	return CountFor(g.cfg, g.options)
}

// CountFor returns C(n,k) * f * P(n-1,k-1), where f is the number of
// columns the first rook may take.
func CountFor(cfg board.Config, options *Options) *big.Int {
	if options == nil {
		options = DefaultOptions()
	}

	n, k := int64(cfg.Size), int64(cfg.Rooks)
	switch {
	case k < 0 || k > n:
		return big.NewInt(0)
	case k == 0:
		return big.NewInt(1)
	}

	firstCols := n
	if options.MirrorReduction {
		firstCols = int64(cfg.MaxFirstCol()) + 1
	}

	count := new(big.Int).Binomial(n, k)
	count.Mul(count, big.NewInt(firstCols))
	return count.Mul(count, fallingFactorial(n-1, k-1))
}

// fallingFactorial returns n * (n-1) * ... * (n-k+1).
func fallingFactorial(n, k int64) *big.Int {
	if k == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(n-k+1, n)
}
