// SPDX-License-Identifier: MIT

package algebra

import "cmp"

// BinaryOp is a pure mapping (L, R) -> Out. The two operand domains may
// differ, which is what lets a semiring multiply a bool frontier by a
// float64 adjacency matrix.
// The zero value is not a valid operator; see Valid.
type BinaryOp[L, R, Out any] struct {
	name string
	fn   func(L, R) Out
}

// NewBinaryOp wraps fn as a named binary operator. fn must be pure.
func NewBinaryOp[L, R, Out any](name string, fn func(L, R) Out) BinaryOp[L, R, Out] {
	return BinaryOp[L, R, Out]{name: name, fn: fn}
}

// Apply evaluates the operator.
func (b BinaryOp[L, R, Out]) Apply(lhs L, rhs R) Out { return b.fn(lhs, rhs) }

// Name returns the registered name of the operator.
func (b BinaryOp[L, R, Out]) Name() string { return b.name }

// Valid reports whether the operator was built by a constructor.
func (b BinaryOp[L, R, Out]) Valid() bool { return b.fn != nil }

// Func exposes the underlying function for tight loops.
func (b BinaryOp[L, R, Out]) Func() func(L, R) Out { return b.fn }

// ---------- logical ----------

// LogicalOr returns a || b.
func LogicalOr() BinaryOp[bool, bool, bool] {
	return NewBinaryOp("lor", func(a, b bool) bool { return a || b })
}

// LogicalAnd returns a && b.
func LogicalAnd() BinaryOp[bool, bool, bool] {
	return NewBinaryOp("land", func(a, b bool) bool { return a && b })
}

// LogicalXor returns a != b.
func LogicalXor() BinaryOp[bool, bool, bool] {
	return NewBinaryOp("lxor", func(a, b bool) bool { return a != b })
}

// LogicalXnor returns a == b.
func LogicalXnor() BinaryOp[bool, bool, bool] {
	return NewBinaryOp("lxnor", func(a, b bool) bool { return a == b })
}

// ---------- bitwise ----------

// BitwiseOr returns a | b.
func BitwiseOr[T Integer]() BinaryOp[T, T, T] {
	return NewBinaryOp("bor", func(a, b T) T { return a | b })
}

// BitwiseAnd returns a & b.
func BitwiseAnd[T Integer]() BinaryOp[T, T, T] {
	return NewBinaryOp("band", func(a, b T) T { return a & b })
}

// BitwiseXor returns a ^ b.
func BitwiseXor[T Integer]() BinaryOp[T, T, T] {
	return NewBinaryOp("bxor", func(a, b T) T { return a ^ b })
}

// BitwiseXnor returns ^(a ^ b).
func BitwiseXnor[T Integer]() BinaryOp[T, T, T] {
	return NewBinaryOp("bxnor", func(a, b T) T { return ^(a ^ b) })
}

// ---------- comparisons (bool output) ----------

// Equal returns a == b.
func Equal[T comparable]() BinaryOp[T, T, bool] {
	return NewBinaryOp("eq", func(a, b T) bool { return a == b })
}

// NotEqual returns a != b.
func NotEqual[T comparable]() BinaryOp[T, T, bool] {
	return NewBinaryOp("ne", func(a, b T) bool { return a != b })
}

// GreaterThan returns a > b.
func GreaterThan[T cmp.Ordered]() BinaryOp[T, T, bool] {
	return NewBinaryOp("gt", func(a, b T) bool { return a > b })
}

// LessThan returns a < b.
func LessThan[T cmp.Ordered]() BinaryOp[T, T, bool] {
	return NewBinaryOp("lt", func(a, b T) bool { return a < b })
}

// GreaterEqual returns a >= b.
func GreaterEqual[T cmp.Ordered]() BinaryOp[T, T, bool] {
	return NewBinaryOp("ge", func(a, b T) bool { return a >= b })
}

// LessEqual returns a <= b.
func LessEqual[T cmp.Ordered]() BinaryOp[T, T, bool] {
	return NewBinaryOp("le", func(a, b T) bool { return a <= b })
}

// ---------- projections ----------

// First returns its left operand and ignores the right one.
func First[L, R any]() BinaryOp[L, R, L] {
	return NewBinaryOp("first", func(a L, _ R) L { return a })
}

// Second returns its right operand and ignores the left one.
func Second[L, R any]() BinaryOp[L, R, R] {
	return NewBinaryOp("second", func(_ L, b R) R { return b })
}

// ---------- order ----------

// Min returns the smaller operand.
func Min[T cmp.Ordered]() BinaryOp[T, T, T] {
	return NewBinaryOp("min", func(a, b T) T { return min(a, b) })
}

// Max returns the larger operand.
func Max[T cmp.Ordered]() BinaryOp[T, T, T] {
	return NewBinaryOp("max", func(a, b T) T { return max(a, b) })
}

// ---------- arithmetic ----------

// Plus returns a + b. Integer overflow wraps.
func Plus[T Number]() BinaryOp[T, T, T] {
	return NewBinaryOp("plus", func(a, b T) T { return a + b })
}

// Minus returns a - b.
func Minus[T Number]() BinaryOp[T, T, T] {
	return NewBinaryOp("minus", func(a, b T) T { return a - b })
}

// Times returns a * b.
func Times[T Number]() BinaryOp[T, T, T] {
	return NewBinaryOp("times", func(a, b T) T { return a * b })
}

// Div returns a / b. Integer division by zero panics; kernels recover that
// panic and report it as an execution error.
func Div[T Number]() BinaryOp[T, T, T] {
	return NewBinaryOp("div", func(a, b T) T { return a / b })
}
