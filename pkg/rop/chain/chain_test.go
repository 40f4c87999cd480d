package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/ropkit/pkg/rop"
)

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, rop.Value[int, error](10))
	out := c.Result()
	if v, ok := out.TryGet(); !ok || v != 10 {
		t.Fatalf("expected success with 10, got %v", out)
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	c := FromValue[int, string](context.Background(), 7)
	if !c.Result().Equal(rop.Value[int, string](7)) {
		t.Fatalf("expected success with 7, got %v", c.Result())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, rop.Fault[int]("boom"))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) rop.RwVE[string, string] {
		called = true
		return rop.Value[string, string]("ok")
	})
	if !c2.Result().Equal(rop.Fault[string]("boom")) {
		t.Fatalf("expected failure 'boom', got %v", c2.Result())
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	c := Then(FromValue[int, string](context.Background(), 3),
		func(ctx context.Context, v int) rop.RwVE[int, string] { return rop.Value[int, string](v * 2) })
	if !c.Result().Equal(rop.Value[int, string](6)) {
		t.Fatalf("expected 6, got %v", c.Result())
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := ThenTry(FromValue[string, error](ctx, "12"), func(ctx context.Context, v string) (int, error) {
		return strconv.Atoi(v)
	})
	if v, has := ok.Result().TryGet(); !has || v != 12 {
		t.Fatalf("expected 12, got %v", ok.Result())
	}

	expectedErr := errors.New("bad input")
	bad := ThenTry(FromValue[string, error](ctx, "12"), func(ctx context.Context, v string) (int, error) {
		return 0, expectedErr
	})
	if !errors.Is(bad.Result().Error(), expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, bad.Result())
	}
}

func TestMap_PassesFailureThrough(t *testing.T) {
	t.Parallel()
	c := Map(Start(context.Background(), rop.Fault[int]("fail")),
		func(ctx context.Context, n int) int { return n * 100 })
	if !c.Result().Equal(rop.Fault[int]("fail")) {
		t.Fatalf("expected failure to pass through, got %v", c.Result())
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()
	c := MapError(Start(context.Background(), rop.Fault[int]("fail")),
		func(ctx context.Context, e string) int { return len(e) })
	if !c.Result().Equal(rop.Fault[int](4)) {
		t.Fatalf("expected Fault(4), got %v", c.Result())
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalled, fCalled := false, false
	out := FromValue[int, string](ctx, 11).
		Ensure(func(ctx context.Context, v int) { sCalled = true }, func(ctx context.Context, err string) { fCalled = true }).
		Result()
	if !out.Equal(rop.Value[int, string](11)) || !sCalled || fCalled {
		t.Fatalf("expected success side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	sCalled, fCalled = false, false
	Start(ctx, rop.Fault[int]("bad")).
		Ensure(func(ctx context.Context, v int) { sCalled = true }, func(ctx context.Context, err string) { fCalled = true })
	if sCalled || !fCalled {
		t.Fatalf("expected failure side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	// nil callbacks should be safe
	if !FromValue[int, string](ctx, 1).Ensure(nil, nil).Result().IsSuccess() {
		t.Fatalf("expected unchanged success result")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Finally(FromValue[int, string](ctx, 3),
		func(ctx context.Context, v int) int { return v + 100 },
		func(ctx context.Context, err string) int { return -1 })
	f := Finally(Start(ctx, rop.Fault[int]("x")),
		func(ctx context.Context, v int) int { return v },
		func(ctx context.Context, err string) int { return -1 })

	if s != 103 || f != -1 {
		t.Fatalf("expected 103 and -1, got %d and %d", s, f)
	}
}

func TestChain_ContextIsPassed(t *testing.T) {
	t.Parallel()
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	var seen any
	Map(FromValue[int, string](ctx, 1), func(ctx context.Context, n int) int {
		seen = ctx.Value(key{})
		return n
	})
	if seen != "v" {
		t.Fatalf("expected context value to reach the callback, got %v", seen)
	}
}
