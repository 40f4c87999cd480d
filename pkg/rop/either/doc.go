// Package either contains synchronous combinators over rop.RwVE, the result
// that carries a payload on both branches.
//
// MapSuccess and MapError each touch one branch and pass the other through
// without invoking the supplied function. Fold, FoldError and Match reduce a
// result to a plain value.
package either
