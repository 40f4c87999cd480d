// Package option contains combinators over rop.O that introduce new type
// parameters. To is the functor map; absence propagates without invoking the
// supplied function.
package option
