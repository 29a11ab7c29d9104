package core

import (
	"context"
	"errors"

	"github.com/ib-77/roplist/pkg/rop"
)

// ErrNoResult is reported when a unit's channel closes without delivering.
var ErrNoResult = errors.New("unit closed without a result")

// Await blocks until the unit behind out delivers its result. There is no
// timeout: a unit that never finishes keeps the caller waiting.
func Await[T any](out <-chan rop.Result[T]) rop.Result[T] {
	res, ok := <-out
	if !ok {
		return rop.Fail[T](ErrNoResult)
	}
	return res
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
