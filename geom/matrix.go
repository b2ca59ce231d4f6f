package geom

import "math"

// Matrix is a 3x3 matrix in row-major order.
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationX returns a rotation by angle radians about the x axis.
func RotationX(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns a rotation by angle radians about the y axis.
func RotationY(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns a rotation by angle radians about the z axis.
func RotationZ(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Apply returns the matrix-vector product m * v.
func (m Matrix) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Compose returns the matrix product m * o. Applying the result to a
// vector is equivalent to applying o first and then m.
func (m Matrix) Compose(o Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// ApplyPath maps Apply over every point of p, preserving order.
func (m Matrix) ApplyPath(p Path) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = m.Apply(pt)
	}
	return out
}
