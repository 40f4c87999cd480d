package collections

import (
	"fmt"
	"testing"

	"github.com/benbjohnson/immutable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropkit/pkg/rop"
)

func TestTryAdd_Option(t *testing.T) {
	t.Parallel()

	empty := immutable.NewList[int]()
	out := TryAdd(empty, rop.Some(5))

	assert.True(t, ToValueList(out).Equal(NewValueList(5)))
	assert.Equal(t, 0, empty.Len(), "original list must not change")
}

func TestTryAdd_AbsentOption(t *testing.T) {
	t.Parallel()

	s := immutable.NewList(1, 2, 3)
	out := TryAdd(s, rop.None[int]())

	assert.True(t, ToValueList(out).Equal(ToValueList(s)))
	assert.Same(t, s, out)
}

func TestTryAdd_NilList(t *testing.T) {
	t.Parallel()

	var s *immutable.List[string]
	out := TryAdd(s, rop.Some("a"))
	require.NotNil(t, out)
	assert.Equal(t, []string{"a"}, ToValueList(out).Values())
	assert.Nil(t, TryAdd(s, rop.None[string]()))
}

func TestTryAddFault(t *testing.T) {
	t.Parallel()

	s := immutable.NewList[string]()
	s = TryAddFault(s, rop.Error("first"))
	s = TryAddFault(s, rop.NoError[string]())
	s = TryAddFault(s, rop.Error("second"))

	assert.Equal(t, []string{"first", "second"}, ToValueList(s).Values())
}

func TestTryAddValue(t *testing.T) {
	t.Parallel()

	s := immutable.NewList[int]()
	s = TryAddValue(s, rop.Success(1))
	s = TryAddValue(s, rop.Failure[int]())

	assert.Equal(t, []int{1}, ToValueList(s).Values())
}

func tenResults() []rop.RwVE[int, string] {
	results := make([]rop.RwVE[int, string], 0, 10)
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			results = append(results, rop.Value[int, string](i))
		} else {
			results = append(results, rop.Fault[int](fmt.Sprintf("e%d", i)))
		}
	}
	return results
}

func TestTryAddSuccessAndError_Partition(t *testing.T) {
	t.Parallel()

	successes := immutable.NewList[int]()
	errs := immutable.NewList[string]()
	for _, r := range tenResults() {
		successes = TryAddSuccess(successes, r)
		errs = TryAddError(errs, r)
	}

	assert.Equal(t, []int{0, 2, 4, 6, 8}, ToValueList(successes).Values())
	assert.Equal(t, []string{"e1", "e3", "e5", "e7", "e9"}, ToValueList(errs).Values())
}

func TestTryAddSuccess_LeavesOriginalUnchanged(t *testing.T) {
	t.Parallel()

	s := immutable.NewList(1)
	out := TryAddSuccess(s, rop.Value[int, string](2))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, out.Len())
	assert.Same(t, s, TryAddSuccess(s, rop.Fault[int]("x")))

	errs := immutable.NewList[string]()
	assert.Same(t, errs, TryAddError(errs, rop.Value[int, string](1)))
}
