package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	t.Parallel()

	i := From(10, 128)
	assert.Equal(t, 10, i.Min())
	assert.Equal(t, 128, i.Max())

	swapped := From(5.5, -1.0)
	assert.Equal(t, -1.0, swapped.Min())
	assert.Equal(t, 5.5, swapped.Max())
	assert.Equal(t, "[-1, 5.5]", swapped.String())
}

func TestContainsAndClamp(t *testing.T) {
	t.Parallel()

	i := From(10, 20)
	for _, tc := range []struct {
		v        int
		contains bool
		clamped  int
	}{
		{v: 9, contains: false, clamped: 10},
		{v: 10, contains: true, clamped: 10},
		{v: 15, contains: true, clamped: 15},
		{v: 20, contains: true, clamped: 20},
		{v: 21, contains: false, clamped: 20},
	} {
		assert.Equal(t, tc.contains, i.Contains(tc.v), "contains %d", tc.v)
		assert.Equal(t, tc.clamped, i.Clamp(tc.v), "clamp %d", tc.v)
	}
}

func TestIntersect(t *testing.T) {
	t.Parallel()

	overlap, ok := From(0, 10).Intersect(From(5, 15)).TryGet()
	assert.True(t, ok)
	assert.Equal(t, From(5, 10), overlap)

	assert.False(t, From(0, 1).Intersect(From(2, 3)).HasValue())
	assert.True(t, From("a", "m").Intersect(From("k", "z")).Equal(From("k", "m").Intersect(From("a", "z"))))
}
