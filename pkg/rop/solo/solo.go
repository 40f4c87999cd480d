package solo

import (
	"errors"

	"github.com/ib-77/ropkit/pkg/rop"
)

// ErrNoValue is the error payload used when a failed rop.RwV is lifted into
// an error-returning context.
var ErrNoValue = errors.New("result failed without a value")

func WithError[T, E any](input rop.RwV[T], err E) rop.RwVE[T, E] {
	if v, ok := input.TryGet(); ok {
		return rop.Value[T, E](v)
	}
	return rop.Fault[T](err)
}

// WithErrorFunc calls errFunc only when input is a failure.
func WithErrorFunc[T, E any](input rop.RwV[T], errFunc func() E) rop.RwVE[T, E] {
	if v, ok := input.TryGet(); ok {
		return rop.Value[T, E](v)
	}
	return rop.Fault[T](errFunc())
}

func Map[In, Out any](input rop.RwV[In], onSuccess func(r In) Out) rop.RwV[Out] {
	if v, ok := input.TryGet(); ok {
		return rop.Success(onSuccess(v))
	}
	return rop.Failure[Out]()
}

func MapWith[In, P, Out any](input rop.RwV[In], parameter P,
	onSuccess func(r In, parameter P) Out) rop.RwV[Out] {

	if v, ok := input.TryGet(); ok {
		return rop.Success(onSuccess(v, parameter))
	}
	return rop.Failure[Out]()
}

func MapOrElse[In, Out, E any](input rop.RwV[In], onSuccess func(r In) Out, err E) rop.RwVE[Out, E] {
	if v, ok := input.TryGet(); ok {
		return rop.Value[Out, E](onSuccess(v))
	}
	return rop.Fault[Out](err)
}

func MapOrElseFunc[In, Out, E any](input rop.RwV[In], onSuccess func(r In) Out,
	errFunc func() E) rop.RwVE[Out, E] {

	if v, ok := input.TryGet(); ok {
		return rop.Value[Out, E](onSuccess(v))
	}
	return rop.Fault[Out](errFunc())
}

// Fold returns seed unchanged on failure, otherwise onSuccess(seed, value).
func Fold[T, S any](input rop.RwV[T], seed S, onSuccess func(seed S, r T) S) S {
	if v, ok := input.TryGet(); ok {
		return onSuccess(seed, v)
	}
	return seed
}

func Switch[In, Out any](input rop.RwV[In], onSuccess func(r In) rop.RwV[Out]) rop.RwV[Out] {
	if v, ok := input.TryGet(); ok {
		return onSuccess(v)
	}
	return rop.Failure[Out]()
}

func Try[In, Out any](input rop.RwV[In], onTryExecute func(r In) (Out, error)) rop.RwVE[Out, error] {
	v, ok := input.TryGet()
	if !ok {
		return rop.Fault[Out](ErrNoValue)
	}

	out, err := onTryExecute(v)
	if err != nil {
		return rop.Fault[Out](err)
	}
	return rop.Value[Out, error](out)
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) rop.RwVE[T, string] {
	return AndValidate(rop.Success(input), validate)
}

// AndValidate turns a failed input into a failure with an empty message.
func AndValidate[T any](input rop.RwV[T], validate func(in T) (isValid bool, errMsg string)) rop.RwVE[T, string] {
	v, ok := input.TryGet()
	if !ok {
		return rop.Fault[T]("")
	}

	if isValid, errMsg := validate(v); !isValid {
		return rop.Fault[T](errMsg)
	}
	return rop.Value[T, string](v)
}

func Tee[T any](input rop.RwV[T], onSuccess func(r T)) rop.RwV[T] {
	if v, ok := input.TryGet(); ok {
		onSuccess(v)
	}
	return input
}

func Finally[In, Out any](input rop.RwV[In], onSuccess func(r In) Out, onFailure func() Out) Out {
	if v, ok := input.TryGet(); ok {
		return onSuccess(v)
	}
	return onFailure()
}
