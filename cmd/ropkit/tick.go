package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ib-77/ropkit/internal/config"
	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/threading"
)

var tickCmd = &cobra.Command{
	Use:   "tick",
	Short: "Print a line on every timer tick",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()

		interval := config.GetTickInterval()
		n, started := runTicks(ctx, interval, config.GetTickCount(), func(i int, at time.Time) {
			cmd.Printf("tick %d at %s\n", i, at.Format(time.RFC3339Nano))
		})
		if !started.IsSuccess() {
			return fmt.Errorf("cannot start timer with interval %v", interval)
		}
		zap.S().Infow("timer finished", "ticks", n)
		return nil
	},
}

func init() {
	tickCmd.Flags().Duration("interval", time.Second, "tick interval")
	tickCmd.Flags().Int("count", 3, "number of ticks before stopping")

	_ = viper.BindPFlag(config.TickInterval, tickCmd.Flags().Lookup("interval"))
	_ = viper.BindPFlag(config.TickCount, tickCmd.Flags().Lookup("count"))
}

// runTicks returns the number of ticks delivered before count was reached or
// ctx was done, and whether the timer could be started at all.
func runTicks(ctx context.Context, interval time.Duration, count int, onTick func(i int, at time.Time)) (int, rop.R) {
	ticks := make(chan time.Time, 1)
	timer := threading.NewTimer()
	timer.OnTick(func(*threading.Timer) {
		select {
		case ticks <- time.Now():
		default:
		}
	})

	started := timer.Start(interval)
	if !started.IsSuccess() {
		return 0, started
	}
	defer timer.Stop()

	delivered := 0
	for delivered < count {
		select {
		case <-ctx.Done():
			return delivered, started
		case at := <-ticks:
			delivered++
			onTick(delivered, at)
		}
	}
	return delivered, started
}
