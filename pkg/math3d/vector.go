package math3d

import "math"

// Vector is a displacement in 3-space; its homogeneous w-component is
// implicitly 0, which is what distinguishes it from Point under every
// transform and every arithmetic operation below.
type Vector struct {
	X, Y, Z float64
}

// V3 creates a new Vector.
func V3(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// ZeroVector returns the zero vector.
func ZeroVector() Vector {
	return Vector{}
}

// Add returns the vector sum a + b.
func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Negate returns -a.
func (a Vector) Negate() Vector {
	return Vector{-a.X, -a.Y, -a.Z}
}

// Scale returns the scalar product a * s.
func (a Vector) Scale(s float64) Vector {
	return Vector{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vector) Div(s float64) Vector {
	return Vector{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a.b.
func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Magnitude returns the length of the vector.
func (a Vector) Magnitude() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Normalize returns the unit vector in the same direction as a.
func (a Vector) Normalize() Vector {
	m := a.Magnitude()
	if m == 0 {
		return Vector{}
	}
	return Vector{a.X / m, a.Y / m, a.Z / m}
}

// Reflect returns a reflected around normal n: a - n*2*(a.n).
func (a Vector) Reflect(n Vector) Vector {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Equal reports whether a and b are equal within Epsilon.
func (a Vector) Equal(b Vector) bool {
	return FloatEqual(a.X, b.X) && FloatEqual(a.Y, b.Y) && FloatEqual(a.Z, b.Z)
}
