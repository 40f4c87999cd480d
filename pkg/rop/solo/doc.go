// Package solo contains synchronous combinators over rop.RwV, the result that
// carries a value on success only.
//
// Highlights:
// - Map/MapWith: transform the success value; never invoked on failure
// - WithError/WithErrorFunc: attach an error payload, producing rop.RwVE
// - MapOrElse/MapOrElseFunc: map and supply the failure error in one call
// - Fold: combine a seed with the value when present
// - Switch/Try/Validate: chain result-returning, error-returning or checking functions
// - Tee/Finally: side effects and reduction to a concrete value
// - FromFlag/FlagWithError: add a payload to a flag-only rop.R
//
// Functions supplied by the caller run on the caller's goroutine; a panic
// inside them propagates unchanged.
package solo
