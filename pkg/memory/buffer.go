// Package memory holds sizing heuristics for growable buffers.
package memory

import (
	"math"

	"github.com/ib-77/ropkit/pkg/numeric"
)

// StartIndexInterval bounds the offset at which a buffer reserves room for prepending.
var StartIndexInterval = numeric.From(10, 128)

const minCapacity = 16

// StartIndex proposes a prepend offset of a quarter of capacity, clamped to StartIndexInterval.
func StartIndex(capacity int) int {
	return StartIndexInterval.Clamp(capacity / 4)
}

// GrowCapacity doubles current until required fits. When doubling would
// overflow int, required is returned as is.
func GrowCapacity(current, required int) int {
	if current >= required {
		return current
	}

	next := max(current, minCapacity)
	for next < required {
		if next > math.MaxInt/2 {
			return required
		}
		next *= 2
	}
	return next
}
