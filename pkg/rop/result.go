package rop

import (
	"fmt"

	"github.com/ib-77/ropkit/pkg/rop/async"
)

const errorText = "Error"

// R is a success flag without payload.
type R struct {
	isSuccess bool
}

func Succeeded() R {
	return R{isSuccess: true}
}

func Failed() R {
	return R{}
}

func FromBool(isSuccess bool) R {
	return R{isSuccess: isSuccess}
}

func (r R) IsSuccess() bool {
	return r.isSuccess
}

func (r R) Equal(other R) bool {
	return r.isSuccess == other.isSuccess
}

func (r R) String() string {
	if r.isSuccess {
		return "Success"
	}
	return errorText
}

func (r R) ToFuture() *async.Future[R] {
	return async.Resolved(r)
}

// RwE is a result whose failure carries an error payload of type E.
// Success carries nothing.
type RwE[E any] struct {
	err       E
	isSuccess bool
}

func NoError[E any]() RwE[E] {
	return RwE[E]{isSuccess: true}
}

func Error[E any](err E) RwE[E] {
	return RwE[E]{err: err}
}

func ErrorFunc[E any](errFunc func() E) RwE[E] {
	return Error(errFunc())
}

func (r RwE[E]) IsSuccess() bool {
	return r.isSuccess
}

func (r RwE[E]) HasError() bool {
	return !r.isSuccess
}

func (r RwE[E]) TryGetError() (E, bool) {
	return r.err, !r.isSuccess
}

// Error returns the error payload, or the zero value on success.
func (r RwE[E]) Error() E {
	return r.err
}

func (r RwE[E]) ToFlag() R {
	return FromBool(r.isSuccess)
}

func (r RwE[E]) Equal(other RwE[E]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	return r.isSuccess || Equal(r.err, other.err)
}

func (r RwE[E]) String() string {
	if r.isSuccess {
		return "Success"
	}
	return fmt.Sprintf("%s: %v", errorText, r.err)
}

func (r RwE[E]) ToFuture() *async.Future[RwE[E]] {
	return async.Resolved(r)
}
