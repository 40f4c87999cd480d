// Package collections contains helpers that conditionally append the payload
// of an option or result to a persistent list.
//
// Lists are *immutable.List values from github.com/benbjohnson/immutable:
// every append returns a new list sharing structure with the original, which
// is left untouched. When nothing is appended the helpers return the list
// they were given.
//
// ValueList wraps a list with structural equality.
package collections
