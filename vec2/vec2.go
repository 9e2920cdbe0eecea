// Package vec2 implements a 2-component double-precision vector for game
// and graphics code, ported from CPML's vec2 module.
//
// The same algebra is exposed three ways: plain value methods that return
// fresh vectors, allocation-free functions that write into a caller-supplied
// output (see inplace.go), and a loosely typed operator layer that validates
// operand shapes at runtime (see dynamic.go).
//
// Degenerate floating-point results are never errors: dividing by zero or
// normalizing the zero vector propagates NaN/Inf per IEEE semantics.
package vec2

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D point or direction.
type Vec2 struct {
	X, Y float64
}

// New creates a new Vec2.
func New(x, y float64) Vec2 {
	return Vec2{x, y}
}

// FromScalar broadcasts s into both components.
func FromScalar(s float64) Vec2 {
	return Vec2{s, s}
}

// FromPair creates a Vec2 from two positional slots, in (x, y) order.
func FromPair(p [2]float64) Vec2 {
	return Vec2{p[0], p[1]}
}

// FromAngle returns the unit vector at angle theta (radians).
func FromAngle(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{cos, sin}
}

// Zero returns the zero vector.
func Zero() Vec2 {
	return Vec2{}
}

// One returns the vector (1, 1).
func One() Vec2 {
	return Vec2{1, 1}
}

// Clone returns a copy of v with no shared state.
func (v Vec2) Clone() Vec2 {
	return v
}

// Add returns the vector sum v + b.
func (v Vec2) Add(b Vec2) Vec2 {
	return Vec2{v.X + b.X, v.Y + b.Y}
}

// Sub returns the vector difference v - b.
func (v Vec2) Sub(b Vec2) Vec2 {
	return Vec2{v.X - b.X, v.Y - b.Y}
}

// Scale returns the scalar product v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns the component-wise quotient v / s. There is no special case
// for s == 0: the result follows IEEE division (±Inf or NaN).
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product v · b.
func (v Vec2) Dot(b Vec2) float64 {
	return v.X*b.X + v.Y*b.Y
}

// Cross returns the signed 2D cross product v × b, the z component of the
// 3D cross product of the two vectors embedded in the plane.
func (v Vec2) Cross(b Vec2) float64 {
	return v.X*b.Y - v.Y*b.X
}

// Len returns the length of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Len2 returns the squared length (faster, no sqrt).
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(b Vec2) float64 {
	return v.Sub(b).Len()
}

// Dist2 returns the squared distance between two points.
func (v Vec2) Dist2(b Vec2) float64 {
	return v.Sub(b).Len2()
}

// Normalize returns the unit vector with the same direction as v.
// Normalizing the zero vector yields NaN components.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	return Vec2{v.X / l, v.Y / l}
}

// Trim returns v with its magnitude clamped to min(v.Len(), maxLen),
// preserving direction. Trimming the zero vector yields NaN components.
func (v Vec2) Trim(maxLen float64) Vec2 {
	l := v.Len()
	return v.Scale(math.Min(l, maxLen) / l)
}

// Lerp returns the linear interpolation v + (b-v)*s. s is not clamped;
// values outside [0, 1] extrapolate.
func (v Vec2) Lerp(b Vec2, s float64) Vec2 {
	return Vec2{
		v.X + (b.X-v.X)*s,
		v.Y + (b.Y-v.Y)*s,
	}
}

// Rotate rotates the vector by angle theta (radians).
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{
		v.X*cos - v.Y*sin,
		v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns a perpendicular vector (90° counter-clockwise).
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Angle returns the angle of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Unpack returns the two components in (x, y) order.
func (v Vec2) Unpack() (x, y float64) {
	return v.X, v.Y
}

// String returns the canonical textual form "(+1.000,-2.500)": explicit
// sign, three decimal places, no spaces.
func (v Vec2) String() string {
	return fmt.Sprintf("(%+.3f,%+.3f)", v.X, v.Y)
}
