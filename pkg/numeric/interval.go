// Package numeric provides closed intervals over ordered types.
package numeric

import (
	"cmp"
	"fmt"

	"github.com/ib-77/ropkit/pkg/rop"
)

// Interval is the closed range [min, max].
type Interval[T cmp.Ordered] struct {
	min T
	max T
}

// From builds an interval, swapping the bounds when they are reversed.
func From[T cmp.Ordered](min, max T) Interval[T] {
	if cmp.Less(max, min) {
		min, max = max, min
	}
	return Interval[T]{min: min, max: max}
}

func (i Interval[T]) Min() T {
	return i.min
}

func (i Interval[T]) Max() T {
	return i.max
}

func (i Interval[T]) Contains(v T) bool {
	return cmp.Compare(v, i.min) >= 0 && cmp.Compare(v, i.max) <= 0
}

func (i Interval[T]) Clamp(v T) T {
	return max(i.min, min(v, i.max))
}

// Intersect returns the overlap of both intervals, if any.
func (i Interval[T]) Intersect(other Interval[T]) rop.O[Interval[T]] {
	lo := max(i.min, other.min)
	hi := min(i.max, other.max)
	if cmp.Less(hi, lo) {
		return rop.None[Interval[T]]()
	}
	return rop.Some(Interval[T]{min: lo, max: hi})
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.min, i.max)
}
