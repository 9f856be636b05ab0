// SPDX-License-Identifier: MIT

package algebra

// UnaryOp is a pure mapping In -> Out.
// The zero value is not a valid operator; see Valid.
type UnaryOp[In, Out any] struct {
	name string
	fn   func(In) Out
}

// NewUnaryOp wraps fn as a named unary operator. fn must be pure.
func NewUnaryOp[In, Out any](name string, fn func(In) Out) UnaryOp[In, Out] {
	return UnaryOp[In, Out]{name: name, fn: fn}
}

// Apply evaluates the operator.
func (u UnaryOp[In, Out]) Apply(x In) Out { return u.fn(x) }

// Name returns the registered name of the operator.
func (u UnaryOp[In, Out]) Name() string { return u.name }

// Valid reports whether the operator was built by a constructor.
func (u UnaryOp[In, Out]) Valid() bool { return u.fn != nil }

// Func exposes the underlying function for tight loops.
func (u UnaryOp[In, Out]) Func() func(In) Out { return u.fn }

// Identity returns x unchanged.
func Identity[T any]() UnaryOp[T, T] {
	return NewUnaryOp("identity", func(x T) T { return x })
}

// Abs returns |x|.
func Abs[T Signed | Float]() UnaryOp[T, T] {
	return NewUnaryOp("abs", func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// AdditiveInverse returns -x.
func AdditiveInverse[T Signed | Float]() UnaryOp[T, T] {
	return NewUnaryOp("ainv", func(x T) T { return -x })
}

// MultiplicativeInverse returns 1/x. Integral inputs are promoted so that
// 1/2 yields 0.5 rather than truncating to zero; 1/0 yields +Inf.
func MultiplicativeInverse[T Number]() UnaryOp[T, float64] {
	return NewUnaryOp("minv", func(x T) float64 { return 1 / float64(x) })
}

// LogicalNot returns !x.
func LogicalNot() UnaryOp[bool, bool] {
	return NewUnaryOp("lnot", func(x bool) bool { return !x })
}

// BitwiseNot returns ^x.
func BitwiseNot[T Integer]() UnaryOp[T, T] {
	return NewUnaryOp("bnot", func(x T) T { return ^x })
}
