package either

import "github.com/ib-77/ropkit/pkg/rop"

func MapSuccess[In, Out, E any](input rop.RwVE[In, E], onSuccess func(r In) Out) rop.RwVE[Out, E] {
	if v, ok := input.TryGet(); ok {
		return rop.Value[Out, E](onSuccess(v))
	}
	return rop.Fault[Out](input.Error())
}

func MapError[T, In, Out any](input rop.RwVE[T, In], onError func(err In) Out) rop.RwVE[T, Out] {
	if e, ok := input.TryGetError(); ok {
		return rop.Fault[T](onError(e))
	}
	return rop.Value[T, Out](input.Value())
}

// Map transforms whichever branch is active.
func Map[In, Out, InE, OutE any](input rop.RwVE[In, InE],
	onSuccess func(r In) Out,
	onError func(err InE) OutE) rop.RwVE[Out, OutE] {

	if v, ok := input.TryGet(); ok {
		return rop.Value[Out, OutE](onSuccess(v))
	}
	return rop.Fault[Out](onError(input.Error()))
}

func Switch[In, Out, E any](input rop.RwVE[In, E], onSuccess func(r In) rop.RwVE[Out, E]) rop.RwVE[Out, E] {
	if v, ok := input.TryGet(); ok {
		return onSuccess(v)
	}
	return rop.Fault[Out](input.Error())
}

func Fold[T, E, S any](input rop.RwVE[T, E], seed S, onSuccess func(seed S, r T) S) S {
	if v, ok := input.TryGet(); ok {
		return onSuccess(seed, v)
	}
	return seed
}

func FoldError[T, E, S any](input rop.RwVE[T, E], seed S, onError func(seed S, err E) S) S {
	if e, ok := input.TryGetError(); ok {
		return onError(seed, e)
	}
	return seed
}

func Match[T, E, Out any](input rop.RwVE[T, E], onSuccess func(r T) Out, onError func(err E) Out) Out {
	if v, ok := input.TryGet(); ok {
		return onSuccess(v)
	}
	return onError(input.Error())
}

// FromError adds a success value to an error-only result. valueFunc is not
// invoked on failure.
func FromError[T, E any](input rop.RwE[E], valueFunc func() T) rop.RwVE[T, E] {
	if e, ok := input.TryGetError(); ok {
		return rop.Fault[T](e)
	}
	return rop.Value[T, E](valueFunc())
}

// FromPair converts a Go (value, error) return into a result.
func FromPair[T any](v T, err error) rop.RwVE[T, error] {
	if err != nil {
		return rop.Fault[T](err)
	}
	return rop.Value[T, error](v)
}

// ToPair is the inverse of FromPair.
func ToPair[T any](input rop.RwVE[T, error]) (T, error) {
	return input.Value(), input.Error()
}
