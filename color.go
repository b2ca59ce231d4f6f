// Package cubeviz models an NxNxN layered twisting cube: a stack of
// layers of oriented cells that can be turned 90 degrees about any axis
// at any depth, plus uniform sampling of valid moves.
package cubeviz

// Color is one of the six sticker colors, or Hidden for cell faces that
// point into the interior of the cube.
type Color byte

const (
	White  Color = iota // +y face when solved
	Yellow              // -y face when solved
	Green               // -z face when solved
	Blue                // +z face when solved
	Red                 // +x face when solved
	Orange              // -x face when solved
	Hidden              // interior, never exposed
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Hidden:
		return "."
	default:
		return "?"
	}
}
