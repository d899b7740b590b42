package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig      = errors.New("invalid board configuration")
	ErrInvalidPosition    = errors.New("position out of bounds")
	ErrIllegalPlacement   = errors.New("rooks attack each other")
	ErrWrongRookCount     = errors.New("wrong number of rooks")
	ErrMalformedPlacement = errors.New("malformed placement")
)

// Validate checks that p is a legal placement for cfg: exactly cfg.Rooks
// rooks, all on the board, none attacking another.
func (p Placement) Validate(cfg Config) error {
	if len(p) != cfg.Rooks {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongRookCount, len(p), cfg.Rooks)
	}
	for i, c := range p {
		if !c.Inside(cfg.Size) {
			return fmt.Errorf("%w: rook %d at %v must be in range [0, %d)", ErrInvalidPosition, i, c, cfg.Size)
		}
	}
	for i := range p {
		for j := range i {
			if p[i].Attacks(p[j]) {
				return fmt.Errorf("%w: rook %d at %v and rook %d at %v", ErrIllegalPlacement, j, p[j], i, p[i])
			}
		}
	}
	return nil
}
