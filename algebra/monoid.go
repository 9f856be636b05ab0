// SPDX-License-Identifier: MIT

package algebra

// Monoid pairs an associative binary operator with its identity element.
// The zero value is not a valid monoid; see Valid.
type Monoid[T any] struct {
	op       BinaryOp[T, T, T]
	identity T
}

// NewMonoid builds a monoid from op and identity. The identity law
// op(identity, x) == x is the caller's responsibility for custom monoids.
func NewMonoid[T any](op BinaryOp[T, T, T], identity T) Monoid[T] {
	return Monoid[T]{op: op, identity: identity}
}

// Apply combines two values with the monoid operator.
func (m Monoid[T]) Apply(a, b T) T { return m.op.fn(a, b) }

// Identity returns the identity element.
func (m Monoid[T]) Identity() T { return m.identity }

// Op returns the underlying binary operator.
func (m Monoid[T]) Op() BinaryOp[T, T, T] { return m.op }

// Name returns the operator name.
func (m Monoid[T]) Name() string { return m.op.name }

// Valid reports whether the monoid was built by a constructor.
func (m Monoid[T]) Valid() bool { return m.op.Valid() }

// PlusMonoid is (+, 0).
func PlusMonoid[T Number]() Monoid[T] { return NewMonoid(Plus[T](), 0) }

// TimesMonoid is (*, 1).
func TimesMonoid[T Number]() Monoid[T] { return NewMonoid(Times[T](), 1) }

// MinMonoid is (min, MaxValue[T]); +Inf for floats.
func MinMonoid[T Number]() Monoid[T] { return NewMonoid(Min[T](), MaxValue[T]()) }

// MaxMonoid is (max, MinValue[T]); -Inf for floats.
func MaxMonoid[T Number]() Monoid[T] { return NewMonoid(Max[T](), MinValue[T]()) }

// LorMonoid is (||, false).
func LorMonoid() Monoid[bool] { return NewMonoid(LogicalOr(), false) }

// LandMonoid is (&&, true).
func LandMonoid() Monoid[bool] { return NewMonoid(LogicalAnd(), true) }

// LxorMonoid is (!=, false).
func LxorMonoid() Monoid[bool] { return NewMonoid(LogicalXor(), false) }

// LxnorMonoid is (==, true).
func LxnorMonoid() Monoid[bool] { return NewMonoid(LogicalXnor(), true) }

// BorMonoid is (|, 0).
func BorMonoid[T Integer]() Monoid[T] { return NewMonoid(BitwiseOr[T](), 0) }

// BandMonoid is (&, all bits set).
func BandMonoid[T Integer]() Monoid[T] {
	var zero T
	return NewMonoid(BitwiseAnd[T](), ^zero)
}

// BxorMonoid is (^, 0).
func BxorMonoid[T Integer]() Monoid[T] { return NewMonoid(BitwiseXor[T](), 0) }
