package collections

import (
	"github.com/benbjohnson/immutable"

	"github.com/ib-77/ropkit/pkg/rop"
)

// TryAdd appends the option's value if it has one.
func TryAdd[T any](list *immutable.List[T], o rop.O[T]) *immutable.List[T] {
	if v, ok := o.TryGet(); ok {
		return orEmpty(list).Append(v)
	}
	return list
}

// TryAddFault appends the error item of a failed result. A successful result
// leaves the list unchanged. It is meant for collecting the failures of
// several flag results into one list.
func TryAddFault[T any](list *immutable.List[T], r rop.RwE[T]) *immutable.List[T] {
	if e, ok := r.TryGetError(); ok {
		return orEmpty(list).Append(e)
	}
	return list
}

// TryAddValue appends the success value of r, if any.
func TryAddValue[T any](list *immutable.List[T], r rop.RwV[T]) *immutable.List[T] {
	if v, ok := r.TryGet(); ok {
		return orEmpty(list).Append(v)
	}
	return list
}

func TryAddSuccess[T, E any](list *immutable.List[T], r rop.RwVE[T, E]) *immutable.List[T] {
	if v, ok := r.TryGet(); ok {
		return orEmpty(list).Append(v)
	}
	return list
}

func TryAddError[S, T any](list *immutable.List[T], r rop.RwVE[S, T]) *immutable.List[T] {
	if e, ok := r.TryGetError(); ok {
		return orEmpty(list).Append(e)
	}
	return list
}

func orEmpty[T any](list *immutable.List[T]) *immutable.List[T] {
	if list == nil {
		return immutable.NewList[T]()
	}
	return list
}
