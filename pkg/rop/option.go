package rop

import (
	"fmt"

	"github.com/ib-77/ropkit/pkg/rop/async"
)

type O[T any] struct {
	value    T
	hasValue bool
}

func Some[T any](v T) O[T] {
	return O[T]{value: v, hasValue: true}
}

func None[T any]() O[T] {
	return O[T]{}
}

// FromOk mirrors the comma-ok idiom of map lookups and type assertions.
func FromOk[T any](v T, ok bool) O[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr treats a nil pointer as absence.
func FromPtr[T any](p *T) O[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o O[T]) HasValue() bool {
	return o.hasValue
}

// IsSuccess is an alias of HasValue so options satisfy Discriminated.
func (o O[T]) IsSuccess() bool {
	return o.hasValue
}

func (o O[T]) TryGet() (T, bool) {
	return o.value, o.hasValue
}

// Value returns the contained value, or the zero value when absent.
func (o O[T]) Value() T {
	return o.value
}

func (o O[T]) ValueOr(fallback T) T {
	if o.hasValue {
		return o.value
	}
	return fallback
}

func (o O[T]) Equal(other O[T]) bool {
	if o.hasValue != other.hasValue {
		return false
	}
	return !o.hasValue || Equal(o.value, other.value)
}

func (o O[T]) String() string {
	if o.hasValue {
		return fmt.Sprintf("Some: %v", o.value)
	}
	return "None"
}

func (o O[T]) ToFuture() *async.Future[O[T]] {
	return async.Resolved(o)
}
