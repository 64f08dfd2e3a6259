package repository

import "context"

// CounterRepository hands out gap-free sequence numbers. Next must be
// called inside the transaction that persists the numbered record so a
// rollback releases the number together with everything else.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
