// SPDX-License-Identifier: MIT

package algebra

// Semiring combines an "add" monoid over T with a "multiply" operator
// A × B -> T. Zero is the add monoid's identity. The multiplicand domains may
// differ, so selector semirings such as MinFirst can propagate one operand's
// value through a matrix of another type.
// The zero value is not a valid semiring; see Valid.
type Semiring[A, B, T any] struct {
	name string
	add  Monoid[T]
	mul  BinaryOp[A, B, T]
}

// NewSemiring builds a named semiring from an add monoid and a multiply operator.
func NewSemiring[A, B, T any](name string, add Monoid[T], mul BinaryOp[A, B, T]) Semiring[A, B, T] {
	return Semiring[A, B, T]{name: name, add: add, mul: mul}
}

// Add combines two partial results.
func (s Semiring[A, B, T]) Add(a, b T) T { return s.add.op.fn(a, b) }

// Mult multiplies a left and a right operand.
func (s Semiring[A, B, T]) Mult(a A, b B) T { return s.mul.fn(a, b) }

// Zero returns the additive identity.
func (s Semiring[A, B, T]) Zero() T { return s.add.identity }

// AddMonoid returns the add monoid.
func (s Semiring[A, B, T]) AddMonoid() Monoid[T] { return s.add }

// MultOp returns the multiply operator.
func (s Semiring[A, B, T]) MultOp() BinaryOp[A, B, T] { return s.mul }

// Name returns the semiring name, e.g. "min_plus".
func (s Semiring[A, B, T]) Name() string { return s.name }

// Valid reports whether both halves were built by constructors.
func (s Semiring[A, B, T]) Valid() bool { return s.add.Valid() && s.mul.Valid() }

// ---------- arithmetic semirings ----------

// PlusTimes is the conventional (+, *, 0) semiring.
func PlusTimes[T Number]() Semiring[T, T, T] {
	return NewSemiring("plus_times", PlusMonoid[T](), Times[T]())
}

// MinPlus is the tropical (min, +, +Inf) semiring used for shortest paths.
func MinPlus[T Number]() Semiring[T, T, T] {
	return NewSemiring("min_plus", MinMonoid[T](), Plus[T]())
}

// MaxPlus is (max, +, -Inf), used for longest/critical paths.
func MaxPlus[T Number]() Semiring[T, T, T] {
	return NewSemiring("max_plus", MaxMonoid[T](), Plus[T]())
}

// MinTimes is (min, *, +Inf).
func MinTimes[T Number]() Semiring[T, T, T] {
	return NewSemiring("min_times", MinMonoid[T](), Times[T]())
}

// MinMax is (min, max, +Inf), the bottleneck semiring.
func MinMax[T Number]() Semiring[T, T, T] {
	return NewSemiring("min_max", MinMonoid[T](), Max[T]())
}

// MaxMin is (max, min, -Inf), the widest-path semiring.
func MaxMin[T Number]() Semiring[T, T, T] {
	return NewSemiring("max_min", MaxMonoid[T](), Min[T]())
}

// MaxTimes is (max, *, -Inf).
func MaxTimes[T Number]() Semiring[T, T, T] {
	return NewSemiring("max_times", MaxMonoid[T](), Times[T]())
}

// PlusMin is (+, min, 0).
func PlusMin[T Number]() Semiring[T, T, T] {
	return NewSemiring("plus_min", PlusMonoid[T](), Min[T]())
}

// ---------- boolean semirings ----------

// LorLand is (||, &&, false), the reachability semiring.
func LorLand() Semiring[bool, bool, bool] {
	return NewSemiring("lor_land", LorMonoid(), LogicalAnd())
}

// LandLor is (&&, ||, true).
func LandLor() Semiring[bool, bool, bool] {
	return NewSemiring("land_lor", LandMonoid(), LogicalOr())
}

// LxorLand is (!=, &&, false), arithmetic over GF(2).
func LxorLand() Semiring[bool, bool, bool] {
	return NewSemiring("lxor_land", LxorMonoid(), LogicalAnd())
}

// LxorLor is (!=, ||, false).
func LxorLor() Semiring[bool, bool, bool] {
	return NewSemiring("lxor_lor", LxorMonoid(), LogicalOr())
}

// ---------- selector semirings ----------

// MinFirst keeps the smallest left operand over all stored products.
// Used for parent selection in BFS and label propagation.
func MinFirst[T Number, B any]() Semiring[T, B, T] {
	return NewSemiring("min_first", MinMonoid[T](), First[T, B]())
}

// MinSecond keeps the smallest right operand.
func MinSecond[A any, T Number]() Semiring[A, T, T] {
	return NewSemiring("min_second", MinMonoid[T](), Second[A, T]())
}

// MaxFirst keeps the largest left operand.
func MaxFirst[T Number, B any]() Semiring[T, B, T] {
	return NewSemiring("max_first", MaxMonoid[T](), First[T, B]())
}

// MaxSecond keeps the largest right operand.
func MaxSecond[A any, T Number]() Semiring[A, T, T] {
	return NewSemiring("max_second", MaxMonoid[T](), Second[A, T]())
}
