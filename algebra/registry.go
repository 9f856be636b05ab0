// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"slices"
)

// Registered names. They are stable and used in logs and by the lookup
// functions below.
var (
	numericMonoidNames   = []string{"plus", "times", "min", "max"}
	booleanMonoidNames   = []string{"lor", "land", "lxor", "lxnor"}
	numericSemiringNames = []string{
		"plus_times", "min_plus", "max_plus", "min_times",
		"min_max", "max_min", "max_times", "plus_min",
		"min_first", "min_second", "max_first", "max_second",
	}
	booleanSemiringNames = []string{"lor_land", "land_lor", "lxor_land", "lxor_lor"}
)

// MonoidNames lists every registered monoid name, numeric first.
func MonoidNames() []string {
	return slices.Concat(numericMonoidNames, booleanMonoidNames)
}

// SemiringNames lists every registered semiring name, numeric first.
func SemiringNames() []string {
	return slices.Concat(numericSemiringNames, booleanSemiringNames)
}

// MonoidByName resolves a numeric monoid.
// Boolean names yield ErrDomainMismatch; anything else ErrUnknownName.
func MonoidByName[T Number](name string) (Monoid[T], error) {
	switch name {
	case "plus":
		return PlusMonoid[T](), nil
	case "times":
		return TimesMonoid[T](), nil
	case "min":
		return MinMonoid[T](), nil
	case "max":
		return MaxMonoid[T](), nil
	}

	return Monoid[T]{}, lookupErr("MonoidByName", name, booleanMonoidNames)
}

// BooleanMonoidByName resolves a monoid over bool.
func BooleanMonoidByName(name string) (Monoid[bool], error) {
	switch name {
	case "lor":
		return LorMonoid(), nil
	case "land":
		return LandMonoid(), nil
	case "lxor":
		return LxorMonoid(), nil
	case "lxnor":
		return LxnorMonoid(), nil
	}

	return Monoid[bool]{}, lookupErr("BooleanMonoidByName", name, numericMonoidNames)
}

// SemiringByName resolves a numeric semiring whose operands and result all
// live in T. Selector semirings are instantiated with both multiplicands in T.
func SemiringByName[T Number](name string) (Semiring[T, T, T], error) {
	switch name {
	case "plus_times":
		return PlusTimes[T](), nil
	case "min_plus":
		return MinPlus[T](), nil
	case "max_plus":
		return MaxPlus[T](), nil
	case "min_times":
		return MinTimes[T](), nil
	case "min_max":
		return MinMax[T](), nil
	case "max_min":
		return MaxMin[T](), nil
	case "max_times":
		return MaxTimes[T](), nil
	case "plus_min":
		return PlusMin[T](), nil
	case "min_first":
		return MinFirst[T, T](), nil
	case "min_second":
		return MinSecond[T, T](), nil
	case "max_first":
		return MaxFirst[T, T](), nil
	case "max_second":
		return MaxSecond[T, T](), nil
	}

	return Semiring[T, T, T]{}, lookupErr("SemiringByName", name, booleanSemiringNames)
}

// BooleanSemiringByName resolves a semiring over bool.
func BooleanSemiringByName(name string) (Semiring[bool, bool, bool], error) {
	switch name {
	case "lor_land":
		return LorLand(), nil
	case "land_lor":
		return LandLor(), nil
	case "lxor_land":
		return LxorLand(), nil
	case "lxor_lor":
		return LxorLor(), nil
	}

	return Semiring[bool, bool, bool]{}, lookupErr("BooleanSemiringByName", name, numericSemiringNames)
}

// lookupErr picks ErrDomainMismatch when the name belongs to the other
// domain family, ErrUnknownName otherwise.
func lookupErr(method, name string, otherDomain []string) error {
	if slices.Contains(otherDomain, name) {
		return fmt.Errorf("%s(%q): %w", method, name, ErrDomainMismatch)
	}

	return fmt.Errorf("%s(%q): %w", method, name, ErrUnknownName)
}
