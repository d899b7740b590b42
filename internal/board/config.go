package board

import "fmt"

// Default board parameters.
const (
	DefaultSize = 12
)

// Config holds the board parameters of a search run.
// Config is a plain value; it is never mutated once a run starts.
type Config struct {
	// Size is the board side length N.
	Size int

	// Rooks is the number of rooks K placed on the board.
	Rooks int
}

// DefaultConfig returns a DefaultSize board with one rook per row.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, Rooks: DefaultSize}
}

// NewConfig builds a Config and validates it.
// A rooks value of 0 means one rook per row.
func NewConfig(size, rooks int) (Config, error) {
	if rooks == 0 {
		rooks = size
	}
	cfg := Config{Size: size, Rooks: rooks}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the board parameters.
// Every failure wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: board size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Rooks < 0 {
		return fmt.Errorf("%w: rook count must not be negative, got %d", ErrInvalidConfig, c.Rooks)
	}
	if c.Rooks > c.Size {
		return fmt.Errorf("%w: rook count (%d) cannot be greater than board size (%d)", ErrInvalidConfig, c.Rooks, c.Size)
	}
	return nil
}

// MaxFirstCol is the largest column the first rook of an enumerated
// placement may occupy; larger columns are mirror images of smaller ones.
func (c Config) MaxFirstCol() int {
	return (c.Size - 1) / 2
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d board, %d rooks", c.Size, c.Size, c.Rooks)
}
