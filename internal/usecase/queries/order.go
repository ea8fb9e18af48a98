package queries

import (
	"context"
)

type OrderReadStore interface {
	ViewByReference(ctx context.Context, reference string) (*OrderView, error)
}
