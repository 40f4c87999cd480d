package collections

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/ib-77/ropkit/pkg/rop"
)

// ValueList is a persistent list compared by its elements rather than by
// reference. The zero value is an empty list.
type ValueList[T any] struct {
	list *immutable.List[T]
}

// ToValueList wraps list without copying its elements.
func ToValueList[T any](list *immutable.List[T]) ValueList[T] {
	return ValueList[T]{list: list}
}

func NewValueList[T any](values ...T) ValueList[T] {
	return ToValueList(immutable.NewList(values...))
}

// List returns the underlying persistent list.
func (l ValueList[T]) List() *immutable.List[T] {
	return orEmpty(l.list)
}

func (l ValueList[T]) Len() int {
	if l.list == nil {
		return 0
	}
	return l.list.Len()
}

// Get panics if index is out of range.
func (l ValueList[T]) Get(index int) T {
	return l.List().Get(index)
}

func (l ValueList[T]) Append(v T) ValueList[T] {
	return ToValueList(l.List().Append(v))
}

func (l ValueList[T]) TryAdd(o rop.O[T]) ValueList[T] {
	return ToValueList(TryAdd(l.list, o))
}

func (l ValueList[T]) TryAddFault(r rop.RwE[T]) ValueList[T] {
	return ToValueList(TryAddFault(l.list, r))
}

func (l ValueList[T]) TryAddValue(r rop.RwV[T]) ValueList[T] {
	return ToValueList(TryAddValue(l.list, r))
}

func (l ValueList[T]) Values() []T {
	values := make([]T, 0, l.Len())
	if l.list == nil {
		return values
	}

	itr := l.list.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		values = append(values, v)
	}
	return values
}

func (l ValueList[T]) Equal(other ValueList[T]) bool {
	if l.Len() != other.Len() {
		return false
	}
	if l.list == other.list {
		return true
	}

	for i := 0; i < l.Len(); i++ {
		if !rop.Equal(l.list.Get(i), other.list.Get(i)) {
			return false
		}
	}
	return true
}

func (l ValueList[T]) String() string {
	items := make([]string, 0, l.Len())
	for _, v := range l.Values() {
		items = append(items, fmt.Sprint(v))
	}
	return "[" + strings.Join(items, ", ") + "]"
}
