package render

import (
	"errors"
	"fmt"
	"sort"

	"github.com/seamusw/cubeviz/geom"
)

// ErrBehindViewer is returned by Project when a transformed point sits
// at or behind the viewer (z <= 0). The viewing transform's backward
// translation is supposed to make this unreachable, so hitting it means
// the transform upstream is misconfigured.
var ErrBehindViewer = errors.New("render: point at or behind viewer")

// Project performs the perspective divide on a square: each point
// (x, y, z) maps to (x*d/z, y*d/z, z). The z coordinate is kept so the
// depth sort can run on projected squares.
func Project(screenDistance float64, sq Square) (Square, error) {
	out := sq
	out.Points = make(geom.Path, len(sq.Points))
	for i, p := range sq.Points {
		if p.Z <= 0 {
			return Square{}, fmt.Errorf("%w: point %d of %s at z=%g", ErrBehindViewer, i, sq.Locus, p.Z)
		}
		out.Points[i] = geom.V(p.X*screenDistance/p.Z, p.Y*screenDistance/p.Z, p.Z)
	}
	return out, nil
}

// IsFacingViewer reports whether the square's front side is oriented
// toward the viewer, from the signed area of its projected boundary.
// Squares are wound counter-clockwise as seen from outside the cube,
// which appears clockwise (negative shoelace area) on screen when the
// outward normal points at the viewer. Degenerate or behind-viewer
// squares report false.
func IsFacingViewer(screenDistance float64, sq Square) bool {
	projected, err := Project(screenDistance, sq)
	if err != nil {
		return false
	}
	return shoelace(projected.Points) < 0
}

// shoelace returns twice the signed area of the polygon's xy footprint.
func shoelace(p geom.Path) float64 {
	sum := 0.0
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// Depth returns the square's minimum z coordinate. The painter's
// algorithm draws squares in descending Depth order, farthest first.
func Depth(sq Square) float64 {
	min := sq.Points[0].Z
	for _, p := range sq.Points[1:] {
		if p.Z < min {
			min = p.Z
		}
	}
	return min
}

// SortBackToFront orders squares for painter's-algorithm drawing:
// descending by minimum z, so the farthest square is drawn first.
func SortBackToFront(squares []Square) {
	sort.SliceStable(squares, func(i, j int) bool {
		return Depth(squares[i]) > Depth(squares[j])
	})
}
