package threading

import (
	"context"
	"time"

	"github.com/ib-77/ropkit/pkg/rop"
)

type CurrentThread struct{}

// Sleep blocks for d. It fails when ctx is done before d elapses.
func (CurrentThread) Sleep(ctx context.Context, d time.Duration) rop.R {
	if ctx.Err() != nil {
		return rop.Failed()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return rop.Succeeded()
	case <-ctx.Done():
		return rop.Failed()
	}
}
