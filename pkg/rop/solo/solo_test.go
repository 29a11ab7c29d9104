package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/roplist/pkg/rop"
)

func TestMap_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, Succeed(3), func(ctx context.Context, n int) string { return strconv.Itoa(n * 2) })
	if !out.IsSuccess() || out.Result() != "6" {
		t.Fatalf("expected success with \"6\", got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	in := Fail[int](errors.New("boom"))

	called := false
	out := Map(ctx, in, func(ctx context.Context, n int) int {
		called = true
		return n
	})

	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if out.Id() != in.Id() {
		t.Fatalf("failure should keep its id")
	}
	if called {
		t.Fatalf("onSuccess should not be called when input is failure")
	}
}

func TestTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res1 := Try(ctx, Succeed("42"), func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	if !res1.IsSuccess() || res1.Result() != 42 {
		t.Fatalf("expected success 42, got: success=%v val=%v err=%v", res1.IsSuccess(), res1.Result(), res1.Err())
	}

	res2 := Try(ctx, Succeed("x"), func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	if res2.IsSuccess() || res2.Err() == nil {
		t.Fatalf("expected failure, got success=%v", res2.IsSuccess())
	}
}

func TestTry_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	expectedErr := errors.New("earlier")

	res := Try(ctx, rop.Fail[int](expectedErr), func(ctx context.Context, n int) (int, error) {
		t.Fatalf("should not be called")
		return 0, nil
	})
	if !errors.Is(res.Err(), expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, res.Err())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, n int) string { return "ok:" + strconv.Itoa(n) }
	onError := func(ctx context.Context, err error) string { return "err:" + err.Error() }

	if got := Finally(ctx, Succeed(1), onSuccess, onError); got != "ok:1" {
		t.Fatalf("expected ok:1, got %s", got)
	}
	if got := Finally(ctx, Fail[int](errors.New("bad")), onSuccess, onError); got != "err:bad" {
		t.Fatalf("expected err:bad, got %s", got)
	}
}
