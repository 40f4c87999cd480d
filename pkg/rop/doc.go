// Package rop defines the result and option value types shared by the rest of
// the module.
//
// - O[T]: zero or one value
// - R: success or failure, no payload
// - RwE[E]: failure carries an error payload
// - RwV[T]: success carries a value
// - RwVE[T, E]: both branches carry a payload
//
// All types are immutable values with unexported fields. The inactive payload
// cannot be observed: accessors return the zero value and false instead.
// Combinators that introduce new type parameters live in solo, either and option.
package rop
