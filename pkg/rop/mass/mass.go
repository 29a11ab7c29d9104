package mass

import (
	"context"

	"github.com/ib-77/roplist/pkg/rop"
	"github.com/ib-77/roplist/pkg/rop/solo"
)

// Mapping starts one goroutine applying mapOnSuccess to input and returns the
// channel its single result is delivered on.
func Mapping[In, Out any](ctx context.Context, input In,
	mapOnSuccess func(ctx context.Context, r In) Out) <-chan rop.Result[Out] {

	return spawn(func() rop.Result[Out] {
		return solo.Map[In, Out](ctx, solo.Succeed(input), mapOnSuccess)
	})
}

// Trying is Mapping for functions that can fail. A returned error becomes
// the unit's failed result.
func Trying[In, Out any](ctx context.Context, input In,
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan rop.Result[Out] {

	return spawn(func() rop.Result[Out] {
		return solo.Try[In, Out](ctx, solo.Succeed(input), onTryExecute)
	})
}

// spawn runs unit on its own goroutine. The returned channel has room for
// exactly one result, so the goroutine never blocks on a receiver that
// gave up waiting. A panic in unit is sent as a failure wrapping
// rop.ErrPanic instead of crashing the process.
func spawn[Out any](unit func() rop.Result[Out]) <-chan rop.Result[Out] {
	out := make(chan rop.Result[Out], 1)

	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				out <- rop.Fail[Out](rop.Recovered(r))
			}
		}()

		out <- unit()
	}()

	return out
}
