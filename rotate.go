package cubeviz

import "fmt"

// Rotate returns a new cube with the single layer orthogonal to
// move.Axis at move.Depth turned 90 degrees in the given sense. The
// receiver is left untouched, and every layer other than the turned one
// is value-identical in the result.
//
// A quarter turn factors into two independent steps: the layer's NxN
// grid of cells is permuted as a 2D rotation, and each moved cell's
// four in-plane face colors are cycled to match its new facing. Doing
// these separately keeps a cell's stickers consistent with its position
// across arbitrarily long move sequences.
func (c *Cube) Rotate(move Move) (*Cube, error) {
	if move.Depth < 0 || move.Depth >= c.n {
		return nil, fmt.Errorf("%w: depth %d on a side-%d cube", ErrDepthOutOfRange, move.Depth, c.n)
	}

	out := c.Clone()
	n := c.n
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			// Positive90 is clockwise as viewed from the positive pole:
			// (u, v) -> (v, n-1-u). Negative90 is the inverse map.
			var du, dv int
			if move.Rotation == Positive90 {
				du, dv = v, n-1-u
			} else {
				du, dv = n-1-v, u
			}

			sx, sy, sz := layerCoords(move.Axis, move.Depth, u, v)
			dx, dy, dz := layerCoords(move.Axis, move.Depth, du, dv)
			out.layers[dz][dy][dx] = c.CellAt(sx, sy, sz).rotated(move.Axis, move.Rotation)
		}
	}
	return out, nil
}

// Apply runs a move sequence, returning the final cube.
func (c *Cube) Apply(moves ...Move) (*Cube, error) {
	cur := c
	for i, m := range moves {
		next, err := cur.Rotate(m)
		if err != nil {
			return nil, fmt.Errorf("applying move %d (%s): %w", i, m, err)
		}
		cur = next
	}
	return cur, nil
}
