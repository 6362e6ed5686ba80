package scan

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type a region can be reduced to.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds value(r) over every aggregate in seq.
func Sum[T any, N Number](seq iter.Seq[T], value func(T) N) N {
	var total N
	for r := range seq {
		total += value(r)
	}
	return total
}

// Fold reduces seq left to right starting from init.
func Fold[T, R any](seq iter.Seq[T], init R, f func(R, T) R) R {
	acc := init
	for r := range seq {
		acc = f(acc, r)
	}
	return acc
}
