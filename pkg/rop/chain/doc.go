// Package chain provides a fluent wrapper around rop.RwVE for building
// synchronous railway-oriented chains.
//
// Key operations:
// - Start/FromValue: begin a chain from a result or a value
// - Then: switch to a new result via a function
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map/MapError: transform one branch, passing the other through
// - Ensure: run side effects without changing the result
// - ValidateAll: run several validators, optionally accumulating errors
// - Finally: collapse the chain into a final value via handlers
package chain
