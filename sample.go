package cubeviz

import "math/rand"

// Move sampling draws from an explicit *rand.Rand so the caller owns
// the generator state and seeding; the package keeps no RNG of its own.

// RandomAxis draws a uniformly random axis.
func RandomAxis(rng *rand.Rand) Axis {
	return Axis(rng.Intn(3))
}

// RandomRotation draws a uniformly random turn sense.
func RandomRotation(rng *rand.Rand) Rotation {
	return Rotation(rng.Intn(2))
}

// RandomMove draws a uniformly random valid move for a cube of the
// given side length.
func RandomMove(rng *rand.Rand, side int) Move {
	return Move{
		Axis:     RandomAxis(rng),
		Rotation: RandomRotation(rng),
		Depth:    rng.Intn(side),
	}
}

// RandomMoveBetween draws a move with each sub-field sampled uniformly
// within the inclusive bounds [lo, hi]. A depth bound outside [0, side)
// or an inverted bound pair falls back to the full range for that
// field; axis and rotation bounds are handled the same way.
func RandomMoveBetween(rng *rand.Rand, side int, lo, hi Move) Move {
	return Move{
		Axis:     Axis(intBetween(rng, int(lo.Axis), int(hi.Axis), 0, 2)),
		Rotation: Rotation(intBetween(rng, int(lo.Rotation), int(hi.Rotation), 0, 1)),
		Depth:    intBetween(rng, lo.Depth, hi.Depth, 0, side-1),
	}
}

// intBetween samples uniformly from [lo, hi], falling back to
// [min, max] when the requested bounds are invalid.
func intBetween(rng *rand.Rand, lo, hi, min, max int) int {
	if lo < min || hi > max || lo > hi {
		lo, hi = min, max
	}
	return lo + rng.Intn(hi-lo+1)
}

// Scramble returns count uniformly random moves for a side-length cube.
func Scramble(rng *rand.Rand, side, count int) []Move {
	moves := make([]Move, count)
	for i := range moves {
		moves[i] = RandomMove(rng, side)
	}
	return moves
}
