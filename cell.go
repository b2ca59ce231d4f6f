package cubeviz

// FaceDir identifies one of a cell's six face directions.
type FaceDir int

const (
	PosX FaceDir = 0
	NegX FaceDir = 1
	PosY FaceDir = 2
	NegY FaceDir = 3
	PosZ FaceDir = 4
	NegZ FaceDir = 5
)

// Opposite returns the face direction pointing the other way.
func (d FaceDir) Opposite() FaceDir {
	if d%2 == 0 {
		return d + 1
	}
	return d - 1
}

func (d FaceDir) String() string {
	switch d {
	case PosX:
		return "+x"
	case NegX:
		return "-x"
	case PosY:
		return "+y"
	case NegY:
		return "-y"
	case PosZ:
		return "+z"
	case NegZ:
		return "-z"
	default:
		return "?"
	}
}

// Cell is a single cubie: six face colors in fixed direction order
// {+x, -x, +y, -y, +z, -z}. The binding of colors to directions is the
// cell's orientation; turning a cell permutes the binding, never the
// multiset of colors.
type Cell [6]Color

// On returns the color currently facing direction d.
func (c Cell) On(d FaceDir) Color { return c[d] }

// faceCycles[axis] lists the four face directions orthogonal to that
// axis in the order colors travel under a Positive90 turn: the color on
// cycle[i] moves to cycle[i+1]. The two faces parallel to the axis are
// untouched.
var faceCycles = [3][4]FaceDir{
	X: {PosY, NegZ, NegY, PosZ},
	Y: {PosZ, NegX, NegZ, PosX},
	Z: {PosX, NegY, NegX, PosY},
}

// rotated returns the cell with its face colors cycled for a quarter
// turn about the given axis.
func (c Cell) rotated(axis Axis, r Rotation) Cell {
	cycle := faceCycles[axis]
	out := c
	for i, from := range cycle {
		var to FaceDir
		if r == Positive90 {
			to = cycle[(i+1)%4]
		} else {
			to = cycle[(i+3)%4]
		}
		out[to] = c[from]
	}
	return out
}
