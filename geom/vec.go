// Package geom provides the small 3D vector and matrix algebra used by
// the projection pipeline.
package geom

// Vec3 is a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// V returns a Vec3 from its components.
func V(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v multiplied by the scalar s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Path is an ordered sequence of points, typically a polygon boundary.
type Path []Vec3

// Translate returns a new Path with off added to every point, in order.
func (p Path) Translate(off Vec3) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = pt.Add(off)
	}
	return out
}
