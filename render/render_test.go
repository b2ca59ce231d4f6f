package render

import (
	"errors"
	"math"
	"testing"

	"github.com/seamusw/cubeviz"
	"github.com/seamusw/cubeviz/geom"
)

const viewDistance = 10.0

func solved(t *testing.T, n int) *cubeviz.Cube {
	t.Helper()
	c, err := cubeviz.New(n)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func identityView() Transform {
	return ViewTransform(geom.Identity(), viewDistance)
}

func TestCubeToSquaresCountAndColors(t *testing.T) {
	c := solved(t, 3)
	squares := CubeToSquares(identityView(), c)

	if len(squares) != 6*3*3 {
		t.Fatalf("len = %d, want 54", len(squares))
	}

	for _, sq := range squares {
		if len(sq.Points) != 4 {
			t.Errorf("square %s has %d points", sq.Locus, len(sq.Points))
		}
		if got := c.ColorAt(sq.Locus); got != sq.Front {
			t.Errorf("square %s front = %s, locus lookup gives %s", sq.Locus, sq.Front, got)
		}
		// A well-formed cube never exposes a cell's far side.
		if sq.Back != cubeviz.Hidden {
			t.Errorf("square %s back = %s, want Hidden", sq.Locus, sq.Back)
		}
	}
}

func TestCubeToSquaresAppliesTransform(t *testing.T) {
	c := solved(t, 3)
	squares := CubeToSquares(identityView(), c)

	// With the identity orientation every point sits within the cube's
	// half-extent of the translation along each axis.
	for _, sq := range squares {
		for _, p := range sq.Points {
			if math.Abs(p.X) > 1.5 || math.Abs(p.Y) > 1.5 {
				t.Fatalf("square %s point %v outside model extent", sq.Locus, p)
			}
			if p.Z < viewDistance-1.5 || p.Z > viewDistance+1.5 {
				t.Fatalf("square %s point %v not translated to view depth", sq.Locus, p)
			}
		}
	}
}

func TestProjectOnAxisPointHitsOrigin(t *testing.T) {
	sq := Square{Points: geom.Path{geom.V(0, 0, 4), geom.V(0, 0, 8), geom.V(0, 0, 12)}}
	for _, d := range []float64{0.5, 1, 25} {
		projected, err := Project(d, sq)
		if err != nil {
			t.Fatal(err)
		}
		for i, p := range projected.Points {
			if p.X != 0 || p.Y != 0 {
				t.Errorf("d=%g point %d projected to (%g, %g), want (0, 0)", d, i, p.X, p.Y)
			}
		}
	}
}

func TestProjectPreservesDepth(t *testing.T) {
	sq := Square{Points: geom.Path{geom.V(2, -1, 4), geom.V(3, 1, 5)}}
	projected, err := Project(2, sq)
	if err != nil {
		t.Fatal(err)
	}
	if projected.Points[0].Z != 4 || projected.Points[1].Z != 5 {
		t.Errorf("z not preserved: %v", projected.Points)
	}
	if projected.Points[0].X != 1 || projected.Points[0].Y != -0.5 {
		t.Errorf("perspective divide wrong: %v", projected.Points[0])
	}
	// Input square untouched.
	if sq.Points[0].X != 2 {
		t.Error("Project mutated its input")
	}
}

func TestProjectRejectsPointsBehindViewer(t *testing.T) {
	for _, z := range []float64{0, -3} {
		sq := Square{Points: geom.Path{geom.V(1, 1, 5), geom.V(1, 1, z)}}
		if _, err := Project(10, sq); !errors.Is(err, ErrBehindViewer) {
			t.Errorf("z=%g error = %v, want ErrBehindViewer", z, err)
		}
	}
}

func TestFacingViewerIdentityOrientation(t *testing.T) {
	c := solved(t, 3)
	squares := CubeToSquares(identityView(), c)

	for _, sq := range squares {
		facing := IsFacingViewer(viewDistance, sq)
		switch {
		case sq.Locus.Axis == cubeviz.Z && sq.Locus.Pole == cubeviz.Negative:
			if !facing {
				t.Errorf("near face square %s should face the viewer", sq.Locus)
			}
		default:
			// The far face points away and the side faces are edge-on.
			if facing {
				t.Errorf("square %s should not face the viewer", sq.Locus)
			}
		}
	}
}

func TestFacingViewerAfterHalfTurn(t *testing.T) {
	c := solved(t, 3)
	view := ViewTransform(geom.RotationY(math.Pi), viewDistance)
	squares := CubeToSquares(view, c)

	for _, sq := range squares {
		facing := IsFacingViewer(viewDistance, sq)
		wantFacing := sq.Locus.Axis == cubeviz.Z && sq.Locus.Pole == cubeviz.Positive
		if facing != wantFacing {
			t.Errorf("square %s facing = %v, want %v", sq.Locus, facing, wantFacing)
		}
	}
}

func TestGenericViewShowsExactlyThreeFaces(t *testing.T) {
	c := solved(t, 3)
	orientation := geom.RotationY(0.6).Compose(geom.RotationX(0.4))
	squares := CubeToSquares(ViewTransform(orientation, viewDistance), c)

	visible := make(map[cubeviz.Locus]bool)
	count := 0
	for _, sq := range squares {
		if IsFacingViewer(viewDistance, sq) {
			count++
			visible[cubeviz.Locus{Axis: sq.Locus.Axis, Pole: sq.Locus.Pole}] = true
		}
	}
	if len(visible) != 3 {
		t.Errorf("%d cube faces visible, want 3 (%v)", len(visible), visible)
	}
	if count != 3*9 {
		t.Errorf("%d squares visible, want 27", count)
	}
}

func TestSortBackToFront(t *testing.T) {
	c := solved(t, 3)
	orientation := geom.RotationY(0.6).Compose(geom.RotationX(0.4))
	squares := CubeToSquares(ViewTransform(orientation, viewDistance), c)

	SortBackToFront(squares)
	for i := 1; i < len(squares); i++ {
		if Depth(squares[i-1]) < Depth(squares[i]) {
			t.Fatalf("squares %d and %d out of paint order: %g < %g",
				i-1, i, Depth(squares[i-1]), Depth(squares[i]))
		}
	}
}

func TestDepthIsMinimumZ(t *testing.T) {
	sq := Square{Points: geom.Path{geom.V(0, 0, 9), geom.V(0, 0, 4), geom.V(0, 0, 7)}}
	if got := Depth(sq); got != 4 {
		t.Errorf("Depth = %g, want 4", got)
	}
}
