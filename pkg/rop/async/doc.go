// Package async bridges result values into asynchronous call sites.
//
// A Future is a read-once-complete handle:
// - Resolved: a future that is complete at construction, no goroutine involved
// - FromChan: a future completed by the first value of a producer channel
// - Poll/Done/Await: non-blocking, channel and context aware consumption
// - All: await several futures, failing fast on the first cancellation
package async
