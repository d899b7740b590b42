package solver

import (
	"testing"

	"github.com/rybkr/rookhop/internal/board"
	"github.com/rybkr/rookhop/internal/generator"
)

func TestSingleRook(t *testing.T) {
	cases := []struct {
		name string
		size int
		rook board.Coord
		want bool
	}{
		{"1x1 board", 1, board.Coord{0, 0}, false},
		{"2x2 board", 2, board.Coord{1, 0}, false},
		{"center of 3x3", 3, board.Coord{1, 1}, false},
		{"corner of 3x3", 3, board.Coord{0, 0}, true},
		{"edge of 3x3", 3, board.Coord{0, 1}, true},
		{"corner of 8x8", 8, board.Coord{7, 7}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(board.Config{Size: tc.size, Rooks: 1})
			if got := c.Passes(board.Placement{tc.rook}); got != tc.want {
				t.Fatalf("Passes(%v) on %dx%d = %v, want %v", tc.rook, tc.size, tc.size, got, tc.want)
			}
		})
	}
}

func TestEmptyPlacementPasses(t *testing.T) {
	c := New(board.Config{Size: 3, Rooks: 0})
	if !c.Passes(board.Placement{}) {
		t.Fatal("empty placement should pass")
	}
	if n := c.CountRelocations(board.Placement{}); n != 1 {
		t.Fatalf("CountRelocations(empty) = %d, want 1", n)
	}
}

func TestRelocate(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		p     board.Placement
		want  board.Placement
		count int64
	}{
		{
			name:  "two rooks",
			size:  4,
			p:     board.Placement{{0, 0}, {1, 1}},
			want:  board.Placement{{1, 2}, {0, 3}},
			count: 6,
		},
		{
			name:  "full 4x4",
			size:  4,
			p:     board.Placement{{0, 1}, {1, 0}, {2, 3}, {3, 2}},
			want:  board.Placement{{1, 3}, {0, 2}, {3, 1}, {2, 0}},
			count: 4,
		},
		{
			name: "5x5 counterexample",
			size: 5,
			p:    board.Placement{{0, 1}, {1, 0}, {4, 4}},
		},
		{
			name: "6x6 counterexample",
			size: 6,
			p:    board.Placement{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 5}, {5, 4}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(board.Config{Size: tc.size, Rooks: len(tc.p)})
			orig := tc.p.Clone()

			got, ok := c.Relocate(tc.p)
			if ok != (tc.want != nil) {
				t.Fatalf("Relocate(%v) ok = %v, want %v", tc.p, ok, tc.want != nil)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("Relocate(%v) = %v, want %v", tc.p, got, tc.want)
			}
			if !tc.p.Equal(orig) {
				t.Fatalf("Relocate modified its input: %v, was %v", tc.p, orig)
			}
			if n := c.CountRelocations(tc.p); n != tc.count {
				t.Fatalf("CountRelocations(%v) = %d, want %d", tc.p, n, tc.count)
			}
		})
	}
}

func TestCheckRestoresOnFailure(t *testing.T) {
	c := New(board.Config{Size: 5, Rooks: 3})
	p := board.Placement{{0, 1}, {1, 0}, {4, 4}}
	orig := p.Clone()

	if c.check(p, 0) {
		t.Fatal("expected the counterexample to fail")
	}
	if !p.Equal(orig) {
		t.Fatalf("failed check left %v, want %v", p, orig)
	}
}

func TestCheckLeavesRelocationOnSuccess(t *testing.T) {
	c := New(board.Config{Size: 4, Rooks: 2})
	p := board.Placement{{0, 0}, {1, 1}}

	if !c.check(p, 0) {
		t.Fatal("expected the placement to pass")
	}
	if want := (board.Placement{{1, 2}, {0, 3}}); !p.Equal(want) {
		t.Fatalf("successful check left %v, want %v", p, want)
	}
}

func TestRelocationsAreValid(t *testing.T) {
	for _, cfg := range []board.Config{{Size: 4, Rooks: 4}, {Size: 5, Rooks: 3}, {Size: 6, Rooks: 4}} {
		c := New(cfg)
		for p := range generator.New(cfg, nil).All() {
			moved, ok := c.Relocate(p)
			if !ok {
				continue
			}
			if err := moved.Validate(cfg); err != nil {
				t.Fatalf("%v: relocation %v of %v is illegal: %v", cfg, moved, p, err)
			}
			for i := range p {
				if !isKnightMove(p[i], moved[i]) {
					t.Fatalf("%v: rook %d moved %v -> %v", cfg, i, p[i], moved[i])
				}
			}
		}
	}
}

func isKnightMove(from, to board.Coord) bool {
	for _, o := range board.KnightOffsets {
		if from.Add(o) == to {
			return true
		}
	}
	return false
}

func TestPassesAgreesWithCount(t *testing.T) {
	for _, cfg := range []board.Config{{Size: 3, Rooks: 2}, {Size: 4, Rooks: 3}, {Size: 5, Rooks: 3}} {
		c := New(cfg)
		for p := range generator.New(cfg, nil).All() {
			passes := c.Passes(p)
			if count := c.CountRelocations(p); passes != (count > 0) {
				t.Fatalf("%v: Passes(%v) = %v but %d relocations", cfg, p, passes, count)
			}
		}
	}
}

func TestPassesIsRepeatable(t *testing.T) {
	cfg := board.Config{Size: 5, Rooks: 4}
	c := New(cfg)
	for p := range generator.New(cfg, nil).All() {
		a, b := p.Clone(), p.Clone()
		if c.Passes(a) != c.Passes(b) {
			t.Fatalf("Passes disagrees with itself on %v", p)
		}
		if !a.Equal(p) || !b.Equal(p) {
			t.Fatalf("Passes modified %v", p)
		}
	}
}

func TestStatsCountNodes(t *testing.T) {
	c := New(board.Config{Size: 4, Rooks: 2})
	if c.Stats().Nodes != 0 {
		t.Fatal("fresh checker has nonzero stats")
	}
	c.Passes(board.Placement{{0, 0}, {1, 1}})
	if got := c.Stats().Nodes; got != 2 {
		t.Fatalf("Nodes = %d, want 2", got)
	}
}
