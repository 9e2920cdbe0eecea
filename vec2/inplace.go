package vec2

import "math"

// The functions in this file write their result into a caller-supplied
// output vector and return it, so hot loops can chain operations without
// allocating. Every operation tolerates out aliasing any of its inputs:
// component writes only depend on same-index reads, and derived quantities
// (lengths, factors) are computed before the first write.

// Add stores a + b into out and returns out.
func Add(out, a, b *Vec2) *Vec2 {
	out.X = a.X + b.X
	out.Y = a.Y + b.Y
	return out
}

// Sub stores a - b into out and returns out.
func Sub(out, a, b *Vec2) *Vec2 {
	out.X = a.X - b.X
	out.Y = a.Y - b.Y
	return out
}

// Mul stores a scaled by s into out and returns out.
func Mul(out, a *Vec2, s float64) *Vec2 {
	out.X = a.X * s
	out.Y = a.Y * s
	return out
}

// Div stores a divided component-wise by s into out and returns out.
// s == 0 is not special-cased; the result follows IEEE division.
func Div(out, a *Vec2, s float64) *Vec2 {
	out.X = a.X / s
	out.Y = a.Y / s
	return out
}

// Normalize stores the unit vector of a into out and returns out.
// A zero-length input yields NaN components.
func Normalize(out, a *Vec2) *Vec2 {
	l := a.Len()
	out.X = a.X / l
	out.Y = a.Y / l
	return out
}

// Trim clamps a's magnitude to min(a.Len(), maxLen) preserving direction,
// stores the result into out and returns out. A zero-length input yields
// NaN components.
func Trim(out, a *Vec2, maxLen float64) *Vec2 {
	l := math.Min(a.Len(), maxLen)
	Normalize(out, a)
	return Mul(out, out, l)
}

// Lerp stores a + (b-a)*s into out and returns out. s is not clamped.
func Lerp(out, a, b *Vec2, s float64) *Vec2 {
	out.X = a.X + (b.X-a.X)*s
	out.Y = a.Y + (b.Y-a.Y)*s
	return out
}
