package threading

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/ropkit/pkg/rop"
)

type TickHandler func(t *Timer)

type Timer struct {
	id       uuid.UUID
	mu       sync.Mutex
	handlers []TickHandler
	ticker   *time.Ticker
	stop     chan struct{}
}

func NewTimer() *Timer {
	return &Timer{id: uuid.New()}
}

func (t *Timer) ID() uuid.UUID {
	return t.id
}

// OnTick registers h. Handlers run in registration order.
func (t *Timer) OnTick(h TickHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.handlers = append(t.handlers, h)
}

func (t *Timer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ticker != nil
}

// Start fails if the timer is already running or interval is not positive.
func (t *Timer) Start(interval time.Duration) rop.R {
	if interval <= 0 {
		return rop.Failed()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ticker != nil {
		return rop.Failed()
	}

	t.ticker = time.NewTicker(interval)
	t.stop = make(chan struct{})
	go t.run(t.ticker.C, t.stop)

	zap.S().Debugw("timer started", "timer", t.id, "interval", interval)
	return rop.Succeeded()
}

// Stop fails if the timer is not running. A tick that is already being
// delivered may complete after Stop returns.
func (t *Timer) Stop() rop.R {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ticker == nil {
		return rop.Failed()
	}

	t.ticker.Stop()
	close(t.stop)
	t.ticker = nil
	t.stop = nil

	zap.S().Debugw("timer stopped", "timer", t.id)
	return rop.Succeeded()
}

func (t *Timer) run(ticks <-chan time.Time, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticks:
			select {
			case <-stop:
				return
			default:
			}
			t.fire()
		}
	}
}

func (t *Timer) fire() {
	t.mu.Lock()
	handlers := make([]TickHandler, len(t.handlers))
	copy(handlers, t.handlers)
	t.mu.Unlock()

	for _, h := range handlers {
		t.invoke(h)
	}
}

func (t *Timer) invoke(h TickHandler) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Errorw("tick handler panicked", "timer", t.id, "panic", r)
		}
	}()

	h(t)
}
