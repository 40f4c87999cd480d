package async

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrNoValue is returned by Await when the producer channel closed without a value.
var ErrNoValue = errors.New("future resolved without a value")

type Future[T any] struct {
	done     chan struct{}
	value    T
	hasValue bool
}

// Resolved returns a future that is already complete with v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{
		done:     make(chan struct{}),
		value:    v,
		hasValue: true,
	}
	close(f.done)
	return f
}

// FromChan returns a future completed by the first value received from ch.
// If ch is closed before sending, the future completes without a value.
func FromChan[T any](ch <-chan T) *Future[T] {
	f := &Future[T]{
		done: make(chan struct{}),
	}

	go func() {
		defer close(f.done)

		v, ok := <-ch
		if !ok {
			return
		}
		f.value = v
		f.hasValue = true
	}()

	return f
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Poll returns the value without blocking. The boolean is false while the
// future is pending or when it completed without a value.
func (f *Future[T]) Poll() (value T, ok bool) {
	if !f.Resolved() {
		var none T
		return none, false
	}
	return f.value, f.hasValue
}

// Await blocks until the future completes or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	var none T

	select {
	case <-f.done:
		if !f.hasValue {
			return none, ErrNoValue
		}
		return f.value, nil
	case <-ctx.Done():
		return none, ctx.Err()
	}
}

// All awaits every future and returns their values in order.
func All[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	values := make([]T, len(futures))
	g, gctx := errgroup.WithContext(ctx)

	for i, f := range futures {
		i, f := i, f
		g.Go(func() error {
			v, err := f.Await(gctx)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
