package board

import (
	"errors"
	"testing"
)

func TestPlacementValidate(t *testing.T) {
	cfg := Config{Size: 4, Rooks: 2}
	cases := []struct {
		name string
		p    Placement
		want error
	}{
		{"legal", Placement{{0, 0}, {1, 2}}, nil},
		{"too few", Placement{{0, 0}}, ErrWrongRookCount},
		{"off board", Placement{{0, 0}, {4, 1}}, ErrInvalidPosition},
		{"negative", Placement{{-1, 0}, {1, 1}}, ErrInvalidPosition},
		{"same row", Placement{{2, 0}, {2, 3}}, ErrIllegalPlacement},
		{"same column", Placement{{0, 1}, {3, 1}}, ErrIllegalPlacement},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate(cfg)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParsePlacement(t *testing.T) {
	cases := []struct {
		in   string
		want Placement
	}{
		{"(0, 1) (1, 0) (4, 4)", Placement{{0, 1}, {1, 0}, {4, 4}}},
		{"0,1 2,3", Placement{{0, 1}, {2, 3}}},
		{"", Placement{}},
		{"(-1, 2)", Placement{{-1, 2}}},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePlacement(tc.in)
			if err != nil {
				t.Fatalf("ParsePlacement(%q): %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParsePlacement(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParsePlacementRoundTripsString(t *testing.T) {
	p := Placement{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 5}, {5, 4}}
	got, err := ParsePlacement(p.String())
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if !got.Equal(p) {
		t.Fatalf("got %v, want %v", got, p)
	}
}

func TestParsePlacementErrors(t *testing.T) {
	for _, in := range []string{"(0, 1) (2)", "1-2 3", "--1 2"} {
		if _, err := ParsePlacement(in); !errors.Is(err, ErrMalformedPlacement) {
			t.Errorf("ParsePlacement(%q) = %v, want ErrMalformedPlacement", in, err)
		}
	}
}
