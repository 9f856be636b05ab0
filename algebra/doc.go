// SPDX-License-Identifier: MIT

// Package algebra defines the algebraic objects that parameterize every
// sparse kernel: unary and binary operators, monoids and semirings.
//
// Every object is a small immutable value holding a pure function (and, for
// monoids, an identity element). Values are cheap to copy and are passed by
// value into kernels. One generic type exists per kind of object; concrete
// algebras are produced by constructors:
//
//	plus := algebra.PlusMonoid[float64]()      // (+, 0)
//	sr := algebra.MinPlus[int64]()             // (min, +, MaxInt64)
//	bfs := algebra.LorLand()                   // (or, and, false)
//	sel := algebra.MinFirst[int, float64]()    // (min, first, MaxInt)
//
// Laws:
//   - Monoid: Apply(Identity(), x) == x for every valid x.
//   - Semiring: Zero() is the identity of the add monoid; Mult's output domain
//     equals the add monoid's domain.
//
// The engine never checks associativity or commutativity of user-supplied
// operators; reductions assume them.
//
// A small registry (MonoidByName, SemiringByName, ...) resolves the provided
// algebras by stable snake_case names.
package algebra
