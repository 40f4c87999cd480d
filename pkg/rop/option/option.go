package option

import "github.com/ib-77/ropkit/pkg/rop"

func To[In, Out any](input rop.O[In], onValue func(v In) Out) rop.O[Out] {
	if v, ok := input.TryGet(); ok {
		return rop.Some(onValue(v))
	}
	return rop.None[Out]()
}

func Bind[In, Out any](input rop.O[In], onValue func(v In) rop.O[Out]) rop.O[Out] {
	if v, ok := input.TryGet(); ok {
		return onValue(v)
	}
	return rop.None[Out]()
}

func Fold[T, S any](input rop.O[T], seed S, onValue func(seed S, v T) S) S {
	if v, ok := input.TryGet(); ok {
		return onValue(seed, v)
	}
	return seed
}

func Filter[T any](input rop.O[T], predicate func(v T) bool) rop.O[T] {
	if v, ok := input.TryGet(); ok && predicate(v) {
		return input
	}
	return rop.None[T]()
}

func ToSuccess[T any](input rop.O[T]) rop.RwV[T] {
	if v, ok := input.TryGet(); ok {
		return rop.Success(v)
	}
	return rop.Failure[T]()
}

// OrElse uses err as the failure payload when input is absent.
func OrElse[T, E any](input rop.O[T], err E) rop.RwVE[T, E] {
	if v, ok := input.TryGet(); ok {
		return rop.Value[T, E](v)
	}
	return rop.Fault[T](err)
}
