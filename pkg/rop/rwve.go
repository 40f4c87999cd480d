package rop

import (
	"fmt"

	"github.com/ib-77/ropkit/pkg/rop/async"
)

// RwVE is a result carrying a value of type T on success and an error
// payload of type E on failure. Exactly one of them is active.
type RwVE[T, E any] struct {
	value     T
	err       E
	isSuccess bool
}

func Value[T, E any](v T) RwVE[T, E] {
	return RwVE[T, E]{value: v, isSuccess: true}
}

func ValueFunc[T, E any](valueFunc func() T) RwVE[T, E] {
	return Value[T, E](valueFunc())
}

func Fault[T, E any](err E) RwVE[T, E] {
	return RwVE[T, E]{err: err}
}

func FaultFunc[T, E any](errFunc func() E) RwVE[T, E] {
	return Fault[T](errFunc())
}

func (r RwVE[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r RwVE[T, E]) HasError() bool {
	return !r.isSuccess
}

func (r RwVE[T, E]) TryGet() (T, bool) {
	return r.value, r.isSuccess
}

func (r RwVE[T, E]) TryGetError() (E, bool) {
	return r.err, !r.isSuccess
}

// Value returns the success value, or the zero value on failure.
func (r RwVE[T, E]) Value() T {
	return r.value
}

// Error returns the error payload, or the zero value on success.
func (r RwVE[T, E]) Error() E {
	return r.err
}

func (r RwVE[T, E]) ToFlag() R {
	return FromBool(r.isSuccess)
}

// ToSuccess drops the error payload.
func (r RwVE[T, E]) ToSuccess() RwV[T] {
	if r.isSuccess {
		return Success(r.value)
	}
	return Failure[T]()
}

func (r RwVE[T, E]) Equal(other RwVE[T, E]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return Equal(r.value, other.value)
	}
	return Equal(r.err, other.err)
}

func (r RwVE[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success: %v", r.value)
	}
	return fmt.Sprintf("%s: %v", errorText, r.err)
}

func (r RwVE[T, E]) ToFuture() *async.Future[RwVE[T, E]] {
	return async.Resolved(r)
}
