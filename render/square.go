// Package render turns cube state into depth-sortable colored polygons:
// one square per exposed sticker, rotated and translated into view
// space, ready for perspective projection and painter's-algorithm
// drawing.
package render

import (
	"github.com/seamusw/cubeviz"
	"github.com/seamusw/cubeviz/geom"
)

// Square is one renderable sticker: its locus for selection lookup, the
// color shown when it faces the viewer, the color shown from behind
// (Hidden for any well-formed cube), and its polygon boundary in view
// space. Point order is fixed so the right-hand-rule normal of the
// boundary faces outward from the cube.
type Square struct {
	Locus  cubeviz.Locus
	Front  cubeviz.Color
	Back   cubeviz.Color
	Points geom.Path
}

// Transform positions the cube for viewing: rotate about the origin,
// then translate. The translation normally pushes the cube far enough
// up the z axis that every point lands in front of the viewer.
type Transform struct {
	Rotation    geom.Matrix
	Translation geom.Vec3
}

// ViewTransform builds the usual viewing transform: orientation matrix
// plus a backward offset of distance along z.
func ViewTransform(orientation geom.Matrix, distance float64) Transform {
	return Transform{Rotation: orientation, Translation: geom.V(0, 0, distance)}
}

// Apply rotates and then translates a path, order-preserving.
func (t Transform) Apply(p geom.Path) geom.Path {
	return t.Rotation.ApplyPath(p).Translate(t.Translation)
}

// CubeToSquares builds the 6*N*N squares of the cube's exposed
// stickers, positioned in model space centered on the origin and then
// passed through t. The output order is deterministic but carries no
// depth meaning; sort with SortBackToFront before drawing.
func CubeToSquares(t Transform, c *cubeviz.Cube) []Square {
	n := c.Side()
	squares := make([]Square, 0, 6*n*n)

	for _, axis := range []cubeviz.Axis{cubeviz.X, cubeviz.Y, cubeviz.Z} {
		for _, pole := range []cubeviz.Pole{cubeviz.Positive, cubeviz.Negative} {
			for u := 0; u < n; u++ {
				for v := 0; v < n; v++ {
					squares = append(squares, stickerSquare(t, c, axis, pole, u, v))
				}
			}
		}
	}
	return squares
}

func stickerSquare(t Transform, c *cubeviz.Cube, axis cubeviz.Axis, pole cubeviz.Pole, u, v int) Square {
	n := c.Side()
	locus := cubeviz.Locus{Axis: axis, Pole: pole, Row: u, Col: v}

	front := c.ColorAt(locus)
	back := stickerBack(c, axis, pole, u, v)

	// Corner offsets tracing the sticker counter-clockwise in its
	// in-plane (u, v) axes; reversed on the negative pole so the
	// right-hand-rule normal always points out of the cube.
	corners := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if pole == cubeviz.Negative {
		corners = [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	}

	half := float64(n) / 2
	s := half
	if pole == cubeviz.Negative {
		s = -half
	}

	points := make(geom.Path, 4)
	for i, corner := range corners {
		pu := float64(u+corner[0]) - half
		qv := float64(v+corner[1]) - half
		switch axis {
		case cubeviz.X:
			points[i] = geom.V(s, pu, qv)
		case cubeviz.Y:
			points[i] = geom.V(qv, s, pu)
		default:
			points[i] = geom.V(pu, qv, s)
		}
	}

	return Square{
		Locus:  locus,
		Front:  front,
		Back:   back,
		Points: t.Apply(points),
	}
}

// stickerBack returns the color on the opposite face of the same cell.
func stickerBack(c *cubeviz.Cube, axis cubeviz.Axis, pole cubeviz.Pole, u, v int) cubeviz.Color {
	opposite := cubeviz.Negative
	if pole == cubeviz.Negative {
		opposite = cubeviz.Positive
	}
	return cellOn(c, axis, pole, u, v, opposite)
}

// cellOn looks up the cell behind the sticker at (axis, pole, u, v) and
// returns its color in the direction matching dirPole on the same axis.
func cellOn(c *cubeviz.Cube, axis cubeviz.Axis, pole cubeviz.Pole, u, v int, dirPole cubeviz.Pole) cubeviz.Color {
	n := c.Side()
	depth := 0
	if pole == cubeviz.Positive {
		depth = n - 1
	}

	var x, y, z int
	switch axis {
	case cubeviz.X:
		x, y, z = depth, u, v
	case cubeviz.Y:
		x, y, z = v, depth, u
	default:
		x, y, z = u, v, depth
	}

	dir := faceDir(axis, dirPole)
	return c.CellAt(x, y, z).On(dir)
}

func faceDir(axis cubeviz.Axis, pole cubeviz.Pole) cubeviz.FaceDir {
	var d cubeviz.FaceDir
	switch axis {
	case cubeviz.X:
		d = cubeviz.PosX
	case cubeviz.Y:
		d = cubeviz.PosY
	default:
		d = cubeviz.PosZ
	}
	if pole == cubeviz.Negative {
		d = d.Opposite()
	}
	return d
}
