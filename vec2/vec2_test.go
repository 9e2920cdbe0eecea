package vec2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruction(t *testing.T) {
	require.Equal(t, Vec2{}, Zero())
	require.Equal(t, Vec2{1, 1}, One())
	require.Equal(t, Vec2{3, 4}, New(3, 4))
	require.Equal(t, Vec2{5, 5}, FromScalar(5))
	require.Equal(t, Vec2{1, 2}, FromPair([2]float64{1, 2}))
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)
	assert.InDelta(t, 1, v.Len(), 1e-12)
}

func TestClone(t *testing.T) {
	a := New(1, 2)
	b := a.Clone()
	b.X = 9
	require.Equal(t, New(1, 2), a)
}

func TestAddCommutative(t *testing.T) {
	a := New(1.5, -2)
	b := New(3, 4.25)
	require.Equal(t, a.Add(b), b.Add(a))
	require.Equal(t, New(4.5, 2.25), a.Add(b))
}

func TestSubInverse(t *testing.T) {
	a := New(7, -3)
	b := New(2, 11)
	require.Equal(t, a, a.Add(b).Sub(b))
}

func TestScalarIdentity(t *testing.T) {
	a := New(3.25, -8)
	require.Equal(t, a, a.Scale(1))
	require.Equal(t, a, a.Div(1))
}

func TestDivByZero(t *testing.T) {
	v := New(1, -1).Div(0)
	assert.True(t, math.IsInf(v.X, 1))
	assert.True(t, math.IsInf(v.Y, -1))

	v = Zero().Div(0)
	assert.True(t, math.IsNaN(v.X))
	assert.True(t, math.IsNaN(v.Y))
}

func TestDotCross(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Vec2
		dot, cross float64
	}{
		{"Axes", New(1, 0), New(0, 1), 0, 1},
		{"Parallel", New(2, 3), New(4, 6), 26, 0},
		{"Opposed", New(1, 2), New(-1, -2), -5, 0},
		{"Mixed", New(3, -1), New(2, 5), 1, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dot, tt.a.Dot(tt.b))
			assert.Equal(t, tt.cross, tt.a.Cross(tt.b))
			// Cross is anti-commutative.
			assert.Equal(t, -tt.cross, tt.b.Cross(tt.a))
		})
	}
}

func TestLenConsistency(t *testing.T) {
	vs := []Vec2{New(3, 4), New(-1, 2.5), New(0, 0), New(1e3, -1e3)}
	for _, v := range vs {
		assert.InDelta(t, v.Len()*v.Len(), v.Len2(), 1e-9)
	}
	assert.Equal(t, 5.0, New(3, 4).Len())
	assert.Equal(t, 25.0, New(3, 4).Len2())
}

func TestDistSymmetry(t *testing.T) {
	a := New(1, 2)
	b := New(4, 6)
	assert.Equal(t, a.Dist(b), b.Dist(a))
	assert.Equal(t, 5.0, a.Dist(b))
	assert.Equal(t, a.Sub(b).Len2(), a.Dist2(b))
}

func TestNormalize(t *testing.T) {
	vs := []Vec2{New(3, 4), New(-0.001, 0.002), New(1e6, 1e6)}
	for _, v := range vs {
		assert.InDelta(t, 1.0, v.Normalize().Len(), 1e-12)
	}

	// Zero vector propagates NaN rather than erroring.
	n := Zero().Normalize()
	assert.True(t, math.IsNaN(n.X))
	assert.True(t, math.IsNaN(n.Y))
}

func TestTrim(t *testing.T) {
	long := New(6, 8) // length 10
	trimmed := long.Trim(5)
	assert.InDelta(t, 5.0, trimmed.Len(), 1e-12)
	// Direction preserved.
	assert.InDelta(t, 0, trimmed.Cross(long), 1e-9)

	short := New(0.3, 0.4)
	kept := short.Trim(5)
	assert.InDelta(t, short.X, kept.X, 1e-12)
	assert.InDelta(t, short.Y, kept.Y, 1e-12)

	// Zero vector propagates NaN, same as Normalize.
	z := Zero().Trim(5)
	assert.True(t, math.IsNaN(z.X))
	assert.True(t, math.IsNaN(z.Y))
}

func TestLerp(t *testing.T) {
	a := New(1, 2)
	b := New(5, -6)
	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, New(3, -2), a.Lerp(b, 0.5))
	// Unclamped: extrapolates.
	require.Equal(t, New(9, -14), a.Lerp(b, 2))
}

func TestRotate(t *testing.T) {
	v := New(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)

	require.Equal(t, New(0, 1), New(1, 0).Perpendicular())
	assert.InDelta(t, math.Pi/4, New(1, 1).Angle(), 1e-12)
}

func TestUnpack(t *testing.T) {
	x, y := New(3, -7).Unpack()
	require.Equal(t, 3.0, x)
	require.Equal(t, -7.0, y)
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Vec2
		want string
	}{
		{New(1, -2.5), "(+1.000,-2.500)"},
		{Zero(), "(+0.000,+0.000)"},
		{New(-0.0005, 12.3456), "(-0.001,+12.346)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func TestExactEquality(t *testing.T) {
	require.True(t, New(1, 2) == New(1, 2))
	require.False(t, New(1, 2) == New(1, 2.0001))
}
