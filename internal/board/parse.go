package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParsePlacement reads a placement from a list of integer pairs.
// The String format "(0, 1) (2, 3)" is accepted, as is any other
// separator layout such as "0,1 2,3". Bounds are not checked; use Validate.
func ParsePlacement(s string) (Placement, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '-'
	})
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of coordinates (%d) in %q", ErrMalformedPlacement, len(fields), s)
	}

	p := make(Placement, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		row, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: rook %d row: %w", ErrMalformedPlacement, i/2, err)
		}
		col, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: rook %d column: %w", ErrMalformedPlacement, i/2, err)
		}
		p = append(p, Coord{Row: row, Col: col})
	}
	return p, nil
}
