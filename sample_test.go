package cubeviz

import (
	"math/rand"
	"testing"
)

func TestRandomMoveValidityAndSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const samples = 10000

	axisCounts := make(map[Axis]int)
	rotCounts := make(map[Rotation]int)
	depthCounts := make(map[int]int)

	for i := 0; i < samples; i++ {
		m := RandomMove(rng, 3)
		if m.Depth < 0 || m.Depth >= 3 {
			t.Fatalf("sample %d: depth %d out of range", i, m.Depth)
		}
		if m.Axis != X && m.Axis != Y && m.Axis != Z {
			t.Fatalf("sample %d: bad axis %d", i, m.Axis)
		}
		if m.Rotation != Positive90 && m.Rotation != Negative90 {
			t.Fatalf("sample %d: bad rotation %d", i, m.Rotation)
		}
		axisCounts[m.Axis]++
		rotCounts[m.Rotation]++
		depthCounts[m.Depth]++
	}

	// Rough uniformity: every bucket within 15% of its expected share.
	checkSpread := func(name string, got, expected int) {
		t.Helper()
		lo := expected - expected*15/100
		hi := expected + expected*15/100
		if got < lo || got > hi {
			t.Errorf("%s count = %d, expected roughly %d", name, got, expected)
		}
	}
	for axis, n := range axisCounts {
		checkSpread("axis "+axis.String(), n, samples/3)
	}
	for depth, n := range depthCounts {
		checkSpread("depth "+string(rune('0'+depth)), n, samples/3)
	}
	checkSpread("positive", rotCounts[Positive90], samples/2)
	checkSpread("negative", rotCounts[Negative90], samples/2)
}

func TestRandomAxisAndRotationDomains(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seenAxis := make(map[Axis]bool)
	seenRot := make(map[Rotation]bool)
	for i := 0; i < 1000; i++ {
		seenAxis[RandomAxis(rng)] = true
		seenRot[RandomRotation(rng)] = true
	}
	if len(seenAxis) != 3 {
		t.Errorf("saw %d axes, want 3", len(seenAxis))
	}
	if len(seenRot) != 2 {
		t.Errorf("saw %d rotations, want 2", len(seenRot))
	}
}

func TestRandomMoveBetweenRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	lo := Move{Axis: Y, Rotation: Negative90, Depth: 1}
	hi := Move{Axis: Z, Rotation: Negative90, Depth: 2}

	for i := 0; i < 2000; i++ {
		m := RandomMoveBetween(rng, 4, lo, hi)
		if m.Axis < Y || m.Axis > Z {
			t.Fatalf("axis %s outside [Y, Z]", m.Axis)
		}
		if m.Rotation != Negative90 {
			t.Fatalf("rotation %d outside pinned bound", m.Rotation)
		}
		if m.Depth < 1 || m.Depth > 2 {
			t.Fatalf("depth %d outside [1, 2]", m.Depth)
		}
	}
}

func TestRandomMoveBetweenBadDepthFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	lo := Move{Axis: X, Rotation: Positive90, Depth: 2}
	hi := Move{Axis: Z, Rotation: Negative90, Depth: 7} // beyond side 3

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		m := RandomMoveBetween(rng, 3, lo, hi)
		if m.Depth < 0 || m.Depth >= 3 {
			t.Fatalf("fallback depth %d out of [0, 3)", m.Depth)
		}
		seen[m.Depth] = true
	}
	if len(seen) != 3 {
		t.Errorf("fallback should cover the full depth range, saw %v", seen)
	}
}

func TestScrambleLengthAndValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	moves := Scramble(rng, 5, 30)
	if len(moves) != 30 {
		t.Fatalf("len = %d", len(moves))
	}
	c := mustNew(t, 5)
	if _, err := c.Apply(moves...); err != nil {
		t.Errorf("scramble produced an invalid move: %v", err)
	}
}
