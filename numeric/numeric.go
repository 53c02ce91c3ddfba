// SPDX-License-Identifier: MIT

// Package numeric defines the element-type constraint shared by the generic
// matrix types and resolves per-type numeric limits.
//
// Purpose:
//   - One constraint (Number) for every arithmetic element type a matrix may hold.
//   - Typed limits (MaxValue/MinValue, Highest/Lowest) instead of textual
//     MIN/MAX constants, so extremum searches seed their accumulators
//     correctly for int8 as well as float64.
//
// Limits are resolved from the reflect.Kind of T, so named types
// (type Weight float32) get the limits of their underlying type.
package numeric

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is satisfied by every built-in integer and floating-point type
// (and named types derived from them). Complex numbers are excluded: the
// matrices order their values (Max/Min), which complex types cannot do.
type Number interface {
	constraints.Integer | constraints.Float
}

// kindOf returns the underlying kind of T.
func kindOf[T Number]() reflect.Kind {
	var zero T

	return reflect.TypeOf(zero).Kind()
}

// MaxValue returns the largest finite value representable by T.
// Complexity: O(1).
func MaxValue[T Number]() T {
	switch kindOf[T]() {
	case reflect.Int8:
		return fromInt[T](math.MaxInt8)
	case reflect.Int16:
		return fromInt[T](math.MaxInt16)
	case reflect.Int32:
		return fromInt[T](math.MaxInt32)
	case reflect.Int, reflect.Int64:
		return fromInt[T](math.MaxInt64 >> (64 - intWidth[T]()))
	case reflect.Uint8:
		return fromUint[T](math.MaxUint8)
	case reflect.Uint16:
		return fromUint[T](math.MaxUint16)
	case reflect.Uint32:
		return fromUint[T](math.MaxUint32)
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return fromUint[T](math.MaxUint64 >> (64 - intWidth[T]()))
	case reflect.Float32:
		return fromFloat[T](math.MaxFloat32)
	default:
		return fromFloat[T](math.MaxFloat64)
	}
}

// MinValue returns the smallest finite value representable by T
// (the most negative one for signed and floating-point types, 0 for unsigned).
// Complexity: O(1).
func MinValue[T Number]() T {
	switch kindOf[T]() {
	case reflect.Int8:
		return fromInt[T](math.MinInt8)
	case reflect.Int16:
		return fromInt[T](math.MinInt16)
	case reflect.Int32:
		return fromInt[T](math.MinInt32)
	case reflect.Int, reflect.Int64:
		return fromInt[T](math.MinInt64 >> (64 - intWidth[T]()))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return 0
	case reflect.Float32:
		return fromFloat[T](-math.MaxFloat32)
	default:
		return fromFloat[T](-math.MaxFloat64)
	}
}

// Lowest returns the least value in T's ordering: -Inf for floating-point
// types, MinValue otherwise. Every non-NaN value of T is ≥ Lowest, which
// makes it the seed of a running maximum.
func Lowest[T Number]() T {
	if IsFloat[T]() {
		return fromFloat[T](math.Inf(-1))
	}

	return MinValue[T]()
}

// Highest returns the greatest value in T's ordering: +Inf for
// floating-point types, MaxValue otherwise.
func Highest[T Number]() T {
	if IsFloat[T]() {
		return fromFloat[T](math.Inf(1))
	}

	return MaxValue[T]()
}

// IsNaN reports whether v is a NaN. Always false for integer types.
func IsNaN[T Number](v T) bool { return v != v }

// IsFloat reports whether T is a floating-point type.
// Integer division truncates while float division does not; inverse-style
// kernels use this to describe the result they produce.
func IsFloat[T Number]() bool {
	k := kindOf[T]()

	return k == reflect.Float32 || k == reflect.Float64
}

// intWidth returns the bit width of an integer kind (64 for int on 64-bit targets).
func intWidth[T Number]() uint {
	var zero T

	return uint(reflect.TypeOf(zero).Bits())
}

func fromInt[T Number](v int64) T     { return T(v) }
func fromUint[T Number](v uint64) T   { return T(v) }
func fromFloat[T Number](v float64) T { return T(v) }
