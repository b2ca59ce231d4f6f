package cubeviz

import (
	"errors"
	"sort"
	"testing"
)

func TestMoveNotationRoundTrip(t *testing.T) {
	cases := []struct {
		move Move
		want string
	}{
		{Move{X, Positive90, 0}, "X0"},
		{Move{X, Negative90, 2}, "X2'"},
		{Move{Y, Positive90, 1}, "Y1"},
		{Move{Z, Negative90, 0}, "Z0'"},
		{Move{Z, Positive90, 10}, "Z10"},
	}
	for _, tc := range cases {
		if got := tc.move.Notation(); got != tc.want {
			t.Errorf("%+v.Notation() = %q, want %q", tc.move, got, tc.want)
		}
		parsed, err := ParseMove(tc.want)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.want, err)
			continue
		}
		if parsed != tc.move {
			t.Errorf("ParseMove(%q) = %+v, want %+v", tc.want, parsed, tc.move)
		}
	}
}

func TestParseMoveLowercaseAndBacktick(t *testing.T) {
	m, err := ParseMove("z1`")
	if err != nil {
		t.Fatal(err)
	}
	if m != (Move{Z, Negative90, 1}) {
		t.Errorf("ParseMove(z1`) = %+v", m)
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "X", "W0", "X-1", "Xa", "X1x", "2"} {
		if _, err := ParseMove(s); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", s, err)
		}
	}
}

func TestParseMovesSequence(t *testing.T) {
	moves, err := ParseMoves("Z0 X2' Y1")
	if err != nil {
		t.Fatal(err)
	}
	want := []Move{{Z, Positive90, 0}, {X, Negative90, 2}, {Y, Positive90, 1}}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves", len(moves))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %+v, want %+v", i, moves[i], want[i])
		}
	}
	if got := FormatMoves(moves); got != "Z0 X2' Y1" {
		t.Errorf("FormatMoves = %q", got)
	}

	if _, err := ParseMoves("Z0 bogus"); err == nil {
		t.Error("ParseMoves should reject a sequence with a bad move")
	}
}

func TestMoveInverse(t *testing.T) {
	m := Move{Y, Positive90, 2}
	inv := m.Inverse()
	if inv != (Move{Y, Negative90, 2}) {
		t.Errorf("Inverse = %+v", inv)
	}
	if inv.Inverse() != m {
		t.Error("double inverse should be the original move")
	}
}

func TestMoveCompareOrdersStructurally(t *testing.T) {
	moves := []Move{
		{Z, Negative90, 1},
		{X, Positive90, 2},
		{Y, Positive90, 0},
		{X, Positive90, 0},
		{X, Negative90, 0},
		{Z, Negative90, 1}, // duplicate
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].Compare(moves[j]) < 0 })

	want := []Move{
		{X, Positive90, 0},
		{X, Positive90, 2},
		{X, Negative90, 0},
		{Y, Positive90, 0},
		{Z, Negative90, 1},
		{Z, Negative90, 1},
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("sorted[%d] = %s, want %s", i, moves[i], want[i])
		}
	}

	if (Move{X, Positive90, 1}).Compare(Move{X, Positive90, 1}) != 0 {
		t.Error("equal moves should compare as 0")
	}
}
