package cubeviz

import (
	"fmt"
	"strings"
)

// Layer is an NxN grid of cells sharing one coordinate along an axis,
// indexed [row][col]. For the cube's own z-stack a layer is indexed
// [y][x].
type Layer [][]Cell

// Cube is a perfect NxNxN arrangement of cells, stored as N layers
// along the z axis with layer 0 at the negative pole. A cube is only
// ever replaced wholesale by Rotate; nothing mutates it in place.
type Cube struct {
	n      int
	layers []Layer
}

// New returns the solved cube of side length n: every boundary face
// shows its canonical color, every interior face is Hidden.
func New(n int) (*Cube, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSideLength, n)
	}

	c := &Cube{n: n, layers: make([]Layer, n)}
	for z := 0; z < n; z++ {
		layer := make(Layer, n)
		for y := 0; y < n; y++ {
			layer[y] = make([]Cell, n)
			for x := 0; x < n; x++ {
				layer[y][x] = solvedCell(n, x, y, z)
			}
		}
		c.layers[z] = layer
	}
	return c, nil
}

// solvedCell builds the cell at (x, y, z) in the solved configuration.
func solvedCell(n, x, y, z int) Cell {
	cell := Cell{Hidden, Hidden, Hidden, Hidden, Hidden, Hidden}
	if x == n-1 {
		cell[PosX] = Red
	}
	if x == 0 {
		cell[NegX] = Orange
	}
	if y == n-1 {
		cell[PosY] = White
	}
	if y == 0 {
		cell[NegY] = Yellow
	}
	if z == n-1 {
		cell[PosZ] = Blue
	}
	if z == 0 {
		cell[NegZ] = Green
	}
	return cell
}

// NewFromLayers builds a cube from externally supplied layers,
// rejecting anything that is not a perfect NxNxN arrangement.
func NewFromLayers(layers []Layer) (*Cube, error) {
	n := len(layers)
	if n < 1 {
		return nil, fmt.Errorf("%w: no layers", ErrDimensionMismatch)
	}
	for z, layer := range layers {
		if len(layer) != n {
			return nil, fmt.Errorf("%w: layer %d has %d rows, want %d", ErrDimensionMismatch, z, len(layer), n)
		}
		for y, row := range layer {
			if len(row) != n {
				return nil, fmt.Errorf("%w: layer %d row %d has %d cells, want %d", ErrDimensionMismatch, z, y, len(row), n)
			}
		}
	}

	c := &Cube{n: n, layers: make([]Layer, n)}
	for z, layer := range layers {
		c.layers[z] = cloneLayer(layer)
	}
	return c, nil
}

// Side returns the cube's side length N.
func (c *Cube) Side() int { return c.n }

// LayerAt returns the z-stack layer at the given index. The returned
// grid is shared with the cube and must be treated as read-only.
func (c *Cube) LayerAt(z int) Layer { return c.layers[z] }

// CellAt returns the cell at cube coordinates (x, y, z).
func (c *Cube) CellAt(x, y, z int) Cell { return c.layers[z][y][x] }

// layerCoords maps a grid position (u, v) on the layer orthogonal to
// axis at the given depth to cube coordinates. The in-plane axes are
// taken in cyclic order: X -> (y, z), Y -> (z, x), Z -> (x, y).
func layerCoords(axis Axis, depth, u, v int) (x, y, z int) {
	switch axis {
	case X:
		return depth, u, v
	case Y:
		return v, depth, u
	default:
		return u, v, depth
	}
}

// Face returns the NxN grid of colors visible from the given pole,
// indexed by the face's (row, col) convention (see Locus).
func (c *Cube) Face(axis Axis, pole Pole) [][]Color {
	depth := 0
	dir := negDir(axis)
	if pole == Positive {
		depth = c.n - 1
		dir = posDir(axis)
	}

	out := make([][]Color, c.n)
	for u := 0; u < c.n; u++ {
		out[u] = make([]Color, c.n)
		for v := 0; v < c.n; v++ {
			x, y, z := layerCoords(axis, depth, u, v)
			out[u][v] = c.CellAt(x, y, z).On(dir)
		}
	}
	return out
}

// ColorAt returns the sticker color addressed by a locus.
func (c *Cube) ColorAt(l Locus) Color {
	depth := 0
	dir := negDir(l.Axis)
	if l.Pole == Positive {
		depth = c.n - 1
		dir = posDir(l.Axis)
	}
	x, y, z := layerCoords(l.Axis, depth, l.Row, l.Col)
	return c.CellAt(x, y, z).On(dir)
}

func posDir(a Axis) FaceDir {
	switch a {
	case X:
		return PosX
	case Y:
		return PosY
	default:
		return PosZ
	}
}

func negDir(a Axis) FaceDir {
	return posDir(a).Opposite()
}

// Clone returns a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	out := &Cube{n: c.n, layers: make([]Layer, c.n)}
	for z, layer := range c.layers {
		out.layers[z] = cloneLayer(layer)
	}
	return out
}

func cloneLayer(layer Layer) Layer {
	out := make(Layer, len(layer))
	for y, row := range layer {
		out[y] = make([]Cell, len(row))
		copy(out[y], row)
	}
	return out
}

// Equal reports whether two cubes have identical cells everywhere.
func (c *Cube) Equal(o *Cube) bool {
	if c.n != o.n {
		return false
	}
	for z := range c.layers {
		for y := range c.layers[z] {
			for x := range c.layers[z][y] {
				if c.layers[z][y][x] != o.layers[z][y][x] {
					return false
				}
			}
		}
	}
	return true
}

// IsSolved reports whether every cell matches the solved configuration.
func (c *Cube) IsSolved() bool {
	for z := 0; z < c.n; z++ {
		for y := 0; y < c.n; y++ {
			for x := 0; x < c.n; x++ {
				if c.layers[z][y][x] != solvedCell(c.n, x, y, z) {
					return false
				}
			}
		}
	}
	return true
}

// String renders the cube as an unfolded net:
//
//	    U
//	  L F R B
//	    D
func (c *Cube) String() string {
	up := c.Face(Y, Positive)
	down := c.Face(Y, Negative)
	left := c.Face(X, Negative)
	front := c.Face(Z, Negative)
	right := c.Face(X, Positive)
	back := c.Face(Z, Positive)

	var b strings.Builder
	indent := strings.Repeat("  ", c.n)

	for r := 0; r < c.n; r++ {
		b.WriteString(indent)
		writeFaceRow(&b, up, r)
		b.WriteByte('\n')
	}
	for r := 0; r < c.n; r++ {
		for _, face := range [][][]Color{left, front, right, back} {
			writeFaceRow(&b, face, r)
		}
		b.WriteByte('\n')
	}
	for r := 0; r < c.n; r++ {
		b.WriteString(indent)
		writeFaceRow(&b, down, r)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeFaceRow(b *strings.Builder, face [][]Color, r int) {
	for col := 0; col < len(face); col++ {
		b.WriteString(face[r][col].String())
		b.WriteByte(' ')
	}
}
