package readstore

import (
	"context"

	"gym-booking/internal/domain/order"
	"gym-booking/internal/infra"
	"gym-booking/internal/infra/repository"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/usecase/queries"
)

type OrderReadQueries interface {
	GetOrderViewByReference(ctx context.Context, db sqlc.DBTX, providerReference string) (sqlc.GetOrderViewByReferenceRow, error)
	GetOrderByReference(ctx context.Context, db sqlc.DBTX, providerReference string) (sqlc.Orders, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) ViewByReference(ctx context.Context, reference string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderViewByReference(ctx, r.db, reference)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}

	return &queries.OrderView{
		ID:              row.ID,
		OwnerID:         pgconv.UUIDPtrFromPgtype(row.OwnerID),
		Reference:       row.ProviderReference,
		Status:          row.Status,
		TotalMinor:      row.TotalMinor,
		Currency:        row.Currency,
		PaidAt:          pgconv.TimePtrFromPgtype(row.PaidAt),
		IsCreditPackage: row.CreditPackageID.Valid,
		ContactEmail:    row.ContactEmail,
		ContactName:     row.ContactName,
	}, nil
}

// OrderByReference loads the order without items or locks, for pre-transaction checks.
func (r *OrderReadStore) OrderByReference(ctx context.Context, reference string) (*order.Order, error) {
	row, err := r.queries.GetOrderByReference(ctx, r.db, reference)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	return repository.ToOrder(row, nil)
}
