package rop

import (
	"fmt"

	"github.com/ib-77/ropkit/pkg/rop/async"
)

// RwV is a result whose success carries a value of type T.
// Failure carries nothing.
type RwV[T any] struct {
	value     T
	isSuccess bool
}

func Success[T any](v T) RwV[T] {
	return RwV[T]{value: v, isSuccess: true}
}

func SuccessFunc[T any](valueFunc func() T) RwV[T] {
	return Success(valueFunc())
}

func Failure[T any]() RwV[T] {
	return RwV[T]{}
}

func (r RwV[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r RwV[T]) TryGet() (T, bool) {
	return r.value, r.isSuccess
}

// Value returns the success value, or the zero value on failure.
func (r RwV[T]) Value() T {
	return r.value
}

func (r RwV[T]) ValueOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r RwV[T]) ToFlag() R {
	return FromBool(r.isSuccess)
}

func (r RwV[T]) Equal(other RwV[T]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	return !r.isSuccess || Equal(r.value, other.value)
}

func (r RwV[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success: %v", r.value)
	}
	return errorText
}

func (r RwV[T]) ToFuture() *async.Future[RwV[T]] {
	return async.Resolved(r)
}
