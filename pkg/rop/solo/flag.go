package solo

import "github.com/ib-77/ropkit/pkg/rop"

// FromFlag adds a success value to a flag-only result. valueFunc is not
// invoked on failure.
func FromFlag[T any](input rop.R, valueFunc func() T) rop.RwV[T] {
	if input.IsSuccess() {
		return rop.Success(valueFunc())
	}
	return rop.Failure[T]()
}

func FlagWithError[E any](input rop.R, err E) rop.RwE[E] {
	if input.IsSuccess() {
		return rop.NoError[E]()
	}
	return rop.Error(err)
}

func FlagWithErrorFunc[E any](input rop.R, errFunc func() E) rop.RwE[E] {
	if input.IsSuccess() {
		return rop.NoError[E]()
	}
	return rop.Error(errFunc())
}
