// SPDX-License-Identifier: MIT

package algebra

import (
	"math"
	"reflect"
)

// Signed is the set of signed integer domains.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer domains.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integral domains.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point domains.
type Float interface {
	~float32 | ~float64
}

// Number is every domain with additive and multiplicative structure and a
// total order (NaN aside).
type Number interface {
	Integer | Float
}

// MaxValue returns the greatest value of T: +Inf for floats, the largest
// representable value for integers. Named types resolve by their kind.
func MaxValue[T Number]() T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		return T(math.Inf(1))
	case reflect.Int:
		v := math.MaxInt
		return T(v)
	case reflect.Int8:
		v := int8(math.MaxInt8)
		return T(v)
	case reflect.Int16:
		v := int16(math.MaxInt16)
		return T(v)
	case reflect.Int32:
		v := int32(math.MaxInt32)
		return T(v)
	case reflect.Int64:
		v := int64(math.MaxInt64)
		return T(v)
	case reflect.Uint8:
		v := uint8(math.MaxUint8)
		return T(v)
	case reflect.Uint16:
		v := uint16(math.MaxUint16)
		return T(v)
	case reflect.Uint32:
		v := uint32(math.MaxUint32)
		return T(v)
	default: // uint, uint64, uintptr truncate all-ones to their width
		v := uint64(math.MaxUint64)
		return T(v)
	}
}

// MinValue returns the least value of T: -Inf for floats, zero for unsigned
// integers, the most negative value for signed integers.
func MinValue[T Number]() T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		return T(math.Inf(-1))
	case reflect.Int:
		v := math.MinInt
		return T(v)
	case reflect.Int8:
		v := int8(math.MinInt8)
		return T(v)
	case reflect.Int16:
		v := int16(math.MinInt16)
		return T(v)
	case reflect.Int32:
		v := int32(math.MinInt32)
		return T(v)
	case reflect.Int64:
		v := int64(math.MinInt64)
		return T(v)
	default: // unsigned
		return zero
	}
}
