// Package threading wraps timer and sleep primitives.
//
// Timer delivers ticks to registered handlers on its own goroutine. A handler
// that panics is recovered and logged through the global zap logger so one
// faulty subscriber cannot stop the timer. CurrentThread.Sleep is a sleep
// that ends early when its context is done.
package threading
