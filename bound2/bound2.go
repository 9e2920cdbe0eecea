// Package bound2 implements a 2D axis-aligned bounding box over vec2,
// ported from CPML's bound2 module.
package bound2

import (
	"math"

	"github.com/Bobbyjoness/cpml/vec2"
)

// Bound2 is an axis-aligned box described by its minimum and maximum
// corners. The zero value is an empty box at the origin.
type Bound2 struct {
	Min, Max vec2.Vec2
}

// New creates a Bound2 from two corners, sorting components so that
// Min <= Max on both axes.
func New(a, b vec2.Vec2) Bound2 {
	return Bound2{
		Min: vec2.New(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		Max: vec2.New(math.Max(a.X, b.X), math.Max(a.Y, b.Y)),
	}
}

// FromPoints returns the smallest box containing every point. An empty
// slice yields the zero box.
func FromPoints(pts []vec2.Vec2) Bound2 {
	if len(pts) == 0 {
		return Bound2{}
	}
	b := Bound2{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return b
}

// Center returns the center point of the box.
func (b Bound2) Center() vec2.Vec2 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box on each axis.
func (b Bound2) Size() vec2.Vec2 {
	return b.Max.Sub(b.Min)
}

// Radius returns half the diagonal length, the radius of the smallest
// circle centered on Center that contains the box.
func (b Bound2) Radius() float64 {
	return b.Size().Len() / 2
}

// Extend returns the box grown just enough to contain p.
func (b Bound2) Extend(p vec2.Vec2) Bound2 {
	return Bound2{
		Min: vec2.New(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)),
		Max: vec2.New(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)),
	}
}

// Union returns the smallest box containing both boxes.
func (b Bound2) Union(o Bound2) Bound2 {
	return b.Extend(o.Min).Extend(o.Max)
}

// Contains reports whether p lies inside the box, borders included.
func (b Bound2) Contains(p vec2.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clamp returns p constrained to the box.
func (b Bound2) Clamp(p vec2.Vec2) vec2.Vec2 {
	return vec2.New(
		math.Max(b.Min.X, math.Min(b.Max.X, p.X)),
		math.Max(b.Min.Y, math.Min(b.Max.Y, p.Y)),
	)
}

// Offset returns the box translated by v.
func (b Bound2) Offset(v vec2.Vec2) Bound2 {
	return Bound2{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Inset returns the box shrunk by d on every side. Insetting past the
// center collapses the affected axis to the center line.
func (b Bound2) Inset(d float64) Bound2 {
	c := b.Center()
	min := b.Min.Add(vec2.FromScalar(d))
	max := b.Max.Sub(vec2.FromScalar(d))
	return Bound2{
		Min: vec2.New(math.Min(min.X, c.X), math.Min(min.Y, c.Y)),
		Max: vec2.New(math.Max(max.X, c.X), math.Max(max.Y, c.Y)),
	}
}
