package rop

// Discriminated is implemented by every result and option type.
type Discriminated interface {
	// IsSuccess reports which branch is active. For options it reports presence.
	IsSuccess() bool
}

// ValueProvider defines types that may carry a success value
type ValueProvider[T any] interface {
	Discriminated
	// TryGet returns the success value and true, or the zero value and false
	TryGet() (T, bool)
}

// ErrorProvider defines types that may carry an error payload
type ErrorProvider[E any] interface {
	Discriminated
	// HasError reports whether the error payload is active
	HasError() bool
	// TryGetError returns the error payload and true, or the zero value and false
	TryGetError() (E, bool)
}

// WithError defines types that carry a payload on both branches
type WithError[T, E any] interface {
	ValueProvider[T]
	ErrorProvider[E]
}

var (
	_ ValueProvider[int]     = O[int]{}
	_ ValueProvider[int]     = RwV[int]{}
	_ ErrorProvider[string]  = RwE[string]{}
	_ WithError[int, string] = RwVE[int, string]{}
	_ Discriminated          = R{}
)
