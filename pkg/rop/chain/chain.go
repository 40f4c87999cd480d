package chain

import (
	"context"

	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/rop/either"
)

// Chain wraps a rop.RwVE with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.RwVE[T, E]
}

// Start creates a new chain from a rop.RwVE
func Start[T, E any](ctx context.Context, result rop.RwVE[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: rop.Value[T, E](value),
	}
}

// Result returns the underlying rop.RwVE
func (c *Chain[T, E]) Result() rop.RwVE[T, E] {
	return c.result
}

func (c *Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns rop.RwVE[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.RwVE[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: either.Switch(c.result, func(r T) rop.RwVE[U, E] {
			return onSuccess(c.ctx, r)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	return Then(c, func(ctx context.Context, r T) rop.RwVE[U, error] {
		u, err := tryOnSuccess(ctx, r)
		return either.FromPair(u, err)
	})
}

// Map chains a pure transformation of the success value
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: either.MapSuccess(c.result, func(r T) U {
			return onSuccess(c.ctx, r)
		}),
	}
}

// MapError chains a pure transformation of the error payload
func MapError[T, E, F any](c *Chain[T, E], onError func(context.Context, E) F) *Chain[T, F] {
	return &Chain[T, F]{
		ctx: c.ctx,
		result: either.MapError(c.result, func(err E) F {
			return onError(c.ctx, err)
		}),
	}
}

// Ensure performs side effects without changing the result. Nil callbacks are skipped.
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T), onError func(context.Context, E)) *Chain[T, E] {
	if v, ok := c.result.TryGet(); ok {
		if onSuccess != nil {
			onSuccess(c.ctx, v)
		}
		return c
	}

	if onError != nil {
		onError(c.ctx, c.result.Error())
	}
	return c
}

// Finally collapses the chain into a final value
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) U, onError func(context.Context, E) U) U {
	return either.Match(c.result,
		func(r T) U { return onSuccess(c.ctx, r) },
		func(err E) U { return onError(c.ctx, err) })
}
