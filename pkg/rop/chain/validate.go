package chain

import (
	"context"
	"errors"

	"github.com/ib-77/ropkit/pkg/rop"
)

type Validator[T any] func(ctx context.Context, in T) rop.RwVE[T, error]

// ValidateAll runs validators in order against the chain's value. With
// breakOnError it stops at the first failure; otherwise every validator runs
// and failures are accumulated with errors.Join. Validators are skipped once
// the chain's context is done.
func ValidateAll[T any](c *Chain[T, error], breakOnError bool, validators ...Validator[T]) *Chain[T, error] {
	v, ok := c.result.TryGet()
	if !ok || len(validators) == 0 {
		return c
	}

	var errs []error
	for _, validate := range validators {
		if c.ctx.Err() != nil {
			break
		}

		if e, failed := validate(c.ctx, v).TryGetError(); failed {
			if breakOnError {
				return Start(c.ctx, rop.Fault[T](e))
			}
			errs = append(errs, rop.GetErrors(e)...)
		}
	}

	if len(errs) > 0 {
		return Start(c.ctx, rop.Fault[T](errors.Join(errs...)))
	}
	return c
}
