package cubeviz

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis is one of the three coordinate axes.
type Axis int

const (
	X Axis = 0
	Y Axis = 1
	Z Axis = 2
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// Rotation is the sense of a quarter turn about an axis.
type Rotation int

const (
	// Positive90 turns the layer clockwise as viewed from the positive
	// pole looking toward the negative pole.
	Positive90 Rotation = 0
	// Negative90 is the inverse quarter turn.
	Negative90 Rotation = 1
)

func (r Rotation) String() string {
	if r == Negative90 {
		return "'"
	}
	return ""
}

// Inverse returns the opposite sense.
func (r Rotation) Inverse() Rotation {
	if r == Positive90 {
		return Negative90
	}
	return Positive90
}

// Pole identifies one of the two cube faces orthogonal to an axis.
type Pole int

const (
	Positive Pole = 0
	Negative Pole = 1
)

func (p Pole) String() string {
	if p == Negative {
		return "-"
	}
	return "+"
}

// Locus addresses a single exposed sticker: the axis orthogonal to its
// face, the pole it sits on, and its position within that face's grid.
// Row and Col follow the cyclic in-plane convention: an X face is
// indexed (y, z), a Y face (z, x), a Z face (x, y). A Locus is a lookup
// key only; it never owns cube data.
type Locus struct {
	Axis Axis
	Pole Pole
	Row  int
	Col  int
}

func (l Locus) String() string {
	return fmt.Sprintf("%s%s[%d,%d]", l.Axis, l.Pole, l.Row, l.Col)
}

// Move is a complete turn instruction: which axis, which sense, and the
// layer depth measured from the negative pole.
type Move struct {
	Axis     Axis
	Rotation Rotation
	Depth    int
}

// Notation returns the move string: axis letter, depth, and a trailing
// apostrophe for Negative90. Examples: Z0, X2', Y1.
func (m Move) Notation() string {
	return fmt.Sprintf("%s%d%s", m.Axis, m.Depth, m.Rotation)
}

// String returns the notation string (alias for Notation).
func (m Move) String() string { return m.Notation() }

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	m.Rotation = m.Rotation.Inverse()
	return m
}

// Compare orders moves structurally: by axis, then rotation, then depth.
// It returns -1, 0, or 1. The ordering lets move sequences be
// canonicalized and deduplicated.
func (m Move) Compare(o Move) int {
	switch {
	case m.Axis != o.Axis:
		if m.Axis < o.Axis {
			return -1
		}
		return 1
	case m.Rotation != o.Rotation:
		if m.Rotation < o.Rotation {
			return -1
		}
		return 1
	case m.Depth != o.Depth:
		if m.Depth < o.Depth {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// ParseMove parses a notation string such as Z0, X2' or y1.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Move{}, ErrInvalidNotation
	}

	var axis Axis
	switch s[0] {
	case 'X', 'x':
		axis = X
	case 'Y', 'y':
		axis = Y
	case 'Z', 'z':
		axis = Z
	default:
		return Move{}, ErrInvalidNotation
	}

	rest := s[1:]
	rotation := Positive90
	if strings.HasSuffix(rest, "'") || strings.HasSuffix(rest, "`") {
		rotation = Negative90
		rest = rest[:len(rest)-1]
	}

	depth, err := strconv.Atoi(rest)
	if err != nil || depth < 0 {
		return Move{}, ErrInvalidNotation
	}

	return Move{Axis: axis, Rotation: rotation, Depth: depth}, nil
}

// ParseMoves parses a space-separated move sequence, e.g. "Z0 X2' Y1".
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", part, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move sequence as a space-separated string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
