package vec2

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a construction or operator call
// receives an operand of the wrong shape or type. All ArgumentError values
// unwrap to it.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected operand: the operation that rejected
// it, which operand it was, and what was expected.
type ArgumentError struct {
	Op       string // operation that rejected the operand, e.g. "Sum"
	Operand  string // "left", "right", or a named field like "x"
	Expected string // expected type, e.g. "vec2" or "number"
	Got      any    // the offending value
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("vec2.%s: %s operand: expected %s, got %T", e.Op, e.Operand, e.Expected, e.Got)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// IsVector reports whether v is a Vec2-shaped value: a Vec2 or a non-nil
// *Vec2. The operator layer uses it to validate operands before computing.
func IsVector(v any) bool {
	_, ok := asVector(v)
	return ok
}

func asVector(v any) (Vec2, bool) {
	switch t := v.(type) {
	case Vec2:
		return t, true
	case *Vec2:
		if t == nil {
			return Vec2{}, false
		}
		return *t, true
	}
	return Vec2{}, false
}

func toScalar(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}

// From builds a Vec2 from loosely typed arguments, dispatching on shape:
//
//	From()              -> (0, 0)
//	From(s)             -> (s, s) for a numeric s (broadcast)
//	From(x, y)          -> (x, y) for numeric x, y
//	From(compound)      -> the compound's components
//
// A compound argument either exposes named x/y components (Vec2, *Vec2, or a
// map with "x" and "y" keys) or two positional slots ([2]float64, []float64,
// or []any of length 2). Anything else fails with an error wrapping
// ErrInvalidArgument.
func From(args ...any) (Vec2, error) {
	const op = "From"
	switch len(args) {
	case 0:
		return Vec2{}, nil
	case 1:
		if s, ok := toScalar(args[0]); ok {
			return FromScalar(s), nil
		}
		return fromCompound(op, args[0])
	case 2:
		x, ok := toScalar(args[0])
		if !ok {
			return Vec2{}, &ArgumentError{Op: op, Operand: "x", Expected: "number", Got: args[0]}
		}
		y, ok := toScalar(args[1])
		if !ok {
			return Vec2{}, &ArgumentError{Op: op, Operand: "y", Expected: "number", Got: args[1]}
		}
		return Vec2{x, y}, nil
	}
	return Vec2{}, &ArgumentError{Op: op, Operand: "arguments", Expected: "at most 2 values", Got: args}
}

func fromCompound(op string, arg any) (Vec2, error) {
	if v, ok := asVector(arg); ok {
		return v.Clone(), nil
	}
	switch t := arg.(type) {
	case [2]float64:
		return FromPair(t), nil
	case []float64:
		if len(t) == 2 {
			return Vec2{t[0], t[1]}, nil
		}
	case []any:
		if len(t) == 2 {
			return fromSlots(op, t[0], t[1])
		}
	case map[string]float64:
		x, okX := t["x"]
		y, okY := t["y"]
		if okX && okY {
			return Vec2{x, y}, nil
		}
	case map[string]any:
		x, okX := t["x"]
		y, okY := t["y"]
		if okX && okY {
			return fromSlots(op, x, y)
		}
	}
	return Vec2{}, &ArgumentError{Op: op, Operand: "argument", Expected: "number, vec2, pair, or x/y map", Got: arg}
}

func fromSlots(op string, xv, yv any) (Vec2, error) {
	x, ok := toScalar(xv)
	if !ok {
		return Vec2{}, &ArgumentError{Op: op, Operand: "x", Expected: "number", Got: xv}
	}
	y, ok := toScalar(yv)
	if !ok {
		return Vec2{}, &ArgumentError{Op: op, Operand: "y", Expected: "number", Got: yv}
	}
	return Vec2{x, y}, nil
}

// Equal reports whether a and b are both Vec2-shaped and exactly equal,
// field by field, with no epsilon tolerance. Non-vector operands compare
// unequal rather than failing, matching upstream CPML's equality
// metamethod.
func Equal(a, b any) bool {
	va, ok := asVector(a)
	if !ok {
		return false
	}
	vb, ok := asVector(b)
	if !ok {
		return false
	}
	return va == vb
}

// Negate returns a fresh component-wise negation of v.
func Negate(v any) (Vec2, error) {
	vv, ok := asVector(v)
	if !ok {
		return Vec2{}, &ArgumentError{Op: "Negate", Operand: "operand", Expected: "vec2", Got: v}
	}
	return vv.Neg(), nil
}

// Sum returns a fresh vector sum of two Vec2-shaped operands.
func Sum(a, b any) (Vec2, error) {
	va, ok := asVector(a)
	if !ok {
		return Vec2{}, &ArgumentError{Op: "Sum", Operand: "left", Expected: "vec2", Got: a}
	}
	vb, ok := asVector(b)
	if !ok {
		return Vec2{}, &ArgumentError{Op: "Sum", Operand: "right", Expected: "vec2", Got: b}
	}
	return va.Add(vb), nil
}

// Product returns a fresh scaled vector. Exactly one operand must be
// Vec2-shaped and the other numeric; the order does not matter, a leading
// scalar is swapped with the vector before computing.
func Product(a, b any) (Vec2, error) {
	if !IsVector(a) {
		a, b = b, a
	}
	v, ok := asVector(a)
	if !ok {
		return Vec2{}, &ArgumentError{Op: "Product", Operand: "left", Expected: "vec2 or number", Got: a}
	}
	s, ok := toScalar(b)
	if !ok {
		return Vec2{}, &ArgumentError{Op: "Product", Operand: "right", Expected: "number", Got: b}
	}
	return v.Scale(s), nil
}

// Quotient returns a fresh vector divided by a scalar. Operand order is
// normalized exactly the way Product normalizes it, so Quotient(2, v)
// computes v/2, not 2/v. Division is not commutative, which makes this
// surprising, but it is the behavior upstream CPML ships and callers may
// rely on it; it is preserved here rather than fixed.
func Quotient(a, b any) (Vec2, error) {
	if !IsVector(a) {
		a, b = b, a
	}
	v, ok := asVector(a)
	if !ok {
		return Vec2{}, &ArgumentError{Op: "Quotient", Operand: "left", Expected: "vec2 or number", Got: a}
	}
	s, ok := toScalar(b)
	if !ok {
		return Vec2{}, &ArgumentError{Op: "Quotient", Operand: "right", Expected: "number", Got: b}
	}
	return v.Div(s), nil
}
