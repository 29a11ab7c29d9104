package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ib-77/roplist/pkg/rop"
	"github.com/ib-77/roplist/pkg/rop/core"
	"github.com/ib-77/roplist/pkg/rop/mass"
	"github.com/ib-77/roplist/pkg/rop/solo"
)

var (
	ErrTransform    = errors.New("transformation failed")
	ErrNilTransform = errors.New("transformation function is nil")
)

type spawner func(ctx context.Context, v int) <-chan rop.Result[int]

// Map is MapConcurrent with a background context.
func (l *List) Map(f func(int) int) error {
	return l.MapConcurrent(context.Background(), f)
}

// MapConcurrent replaces every value v with f(v). Each node gets its own
// goroutine and f runs exactly once per node. All units are started before
// any is waited on; values are written tail first.
//
// ctx only supplies options such as the logger (see core.WithLogger). The
// call cannot be cancelled and blocks for as long as the slowest f.
//
// If f panics for some node the returned error wraps ErrTransform and
// rop.ErrPanic, and the list is left partially mapped.
func (l *List) MapConcurrent(ctx context.Context, f func(int) int) error {
	if f == nil {
		return ErrNilTransform
	}
	return l.mapWith(ctx, func(ctx context.Context, v int) <-chan rop.Result[int] {
		return mass.Mapping(ctx, v, func(_ context.Context, in int) int {
			return f(in)
		})
	})
}

// TryMapConcurrent is MapConcurrent for transformations that report errors.
// The first failure found while unwinding from the tail is returned wrapped
// in ErrTransform.
func (l *List) TryMapConcurrent(ctx context.Context, f func(int) (int, error)) error {
	if f == nil {
		return ErrNilTransform
	}
	return l.mapWith(ctx, func(ctx context.Context, v int) <-chan rop.Result[int] {
		return mass.Trying(ctx, v, func(_ context.Context, in int) (int, error) {
			return f(in)
		})
	})
}

func (l *List) mapWith(ctx context.Context, start spawner) error {
	logger := core.GetLogger(ctx, slog.Default())
	return mapNode(ctx, logger, l.Head(), 0, start)
}

func mapNode(ctx context.Context, logger *slog.Logger, n *Node, index int, start spawner) error {
	if n == nil {
		return nil
	}

	// the unit gets a copy; n itself is written below once the tail is done
	v := n.value
	pending := start(ctx, v)
	logger.Debug("unit spawned", "index", index, "value", v)

	if err := mapNode(ctx, logger, n.tail, index+1, start); err != nil {
		return err
	}

	res := core.Await(pending)
	logger.Debug("unit settled", "index", index, "id", res.Id(), "success", res.IsSuccess())

	return solo.Finally(ctx, res,
		func(_ context.Context, out int) error {
			n.value = out
			return nil
		},
		func(_ context.Context, err error) error {
			return fmt.Errorf("%w: node %d (value %d): %w", ErrTransform, index, v, err)
		})
}
