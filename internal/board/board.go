package board

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Glyphs used by Format.
const (
	RookGlyph  = "♜"
	EmptyGlyph = "·"
)

// Coord is a square on an N×N board.
type Coord struct {
	Row int
	Col int
}

// Offset is a relative displacement between two squares.
type Offset struct {
	DRow int
	DCol int
}

// KnightOffsets lists the 8 knight moves in the order they are tried.
// Treat as read-only.
var KnightOffsets = [8]Offset{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// Add returns the square reached by applying o to c.
func (c Coord) Add(o Offset) Coord {
	return Coord{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// Attacks reports whether c and other share a row or a column.
func (c Coord) Attacks(other Coord) bool {
	return c.Row == other.Row || c.Col == other.Col
}

// Inside reports whether c lies on a size×size board.
func (c Coord) Inside(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// KnightMoves returns the in-board knight destinations from c, in
// KnightOffsets order.
func KnightMoves(c Coord, size int) []Coord {
	moves := make([]Coord, 0, len(KnightOffsets))
	for _, o := range KnightOffsets {
		if dst := c.Add(o); dst.Inside(size) {
			moves = append(moves, dst)
		}
	}
	return moves
}

// Placement is an ordered set of rooks; the index is the rook's identity.
type Placement []Coord

// Clone creates an independent copy of the Placement.
func (p Placement) Clone() Placement {
	if p == nil {
		return nil
	}
	clone := make(Placement, len(p))
	copy(clone, p)
	return clone
}

// Equal reports whether p and other hold the same coordinates in the same order.
func (p Placement) Equal(other Placement) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// IsNonAttacking reports whether no two rooks share a row or a column.
func (p Placement) IsNonAttacking() bool {
	for i := range p {
		for j := range i {
			if p[i].Attacks(p[j]) {
				return false
			}
		}
	}
	return true
}

// String returns the placement as space-separated "(row, col)" pairs.
func (p Placement) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Format returns a human-readable size×size grid with the rooks marked.
// Rooks outside the board are not drawn.
func (p Placement) Format(size int) string {
	occupied := make(map[Coord]bool, len(p))
	for _, c := range p {
		occupied[c] = true
	}

	cellWidth := max(runewidth.StringWidth(RookGlyph), runewidth.StringWidth(EmptyGlyph))
	line := "+" + strings.Repeat("-", size*(cellWidth+1)+1) + "+\n"

	var sb strings.Builder
	sb.WriteString(line)
	for row := range size {
		sb.WriteString("| ")
		for col := range size {
			glyph := EmptyGlyph
			if occupied[Coord{Row: row, Col: col}] {
				glyph = RookGlyph
			}
			sb.WriteString(runewidth.FillRight(glyph, cellWidth))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(line)

	return sb.String()
}
