package repository

import (
	"context"
	"time"

	"gym-booking/internal/domain/order"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	InsertOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderParams) error
	InsertOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderItemParams) error
	LockOrderByReference(ctx context.Context, db sqlc.DBTX, providerReference string) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	MarkOrderPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOrderPaidParams) (int64, error)
	MarkOrderFailed(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	LinkOrderOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkOrderOwnerParams) error
	ListStalePendingOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStalePendingOrdersParams) ([]string, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	params := sqlc.InsertOrderParams{
		ID:                 o.ID(),
		OwnerID:            pgconv.UUIDPtrToPgtype(o.OwnerID()),
		TotalMinor:         o.TotalMinor(),
		Currency:           o.Currency(),
		ProviderCheckoutID: o.ProviderCheckoutID(),
		ProviderReference:  o.Reference(),
		Status:             o.Status().String(),
		CreditPackageID:    pgconv.UUIDPtrToPgtype(o.CreditPackageID()),
		CreatedAt:          pgconv.TimeToPgtype(o.CreatedAt()),
	}
	if g := o.Guest(); g != nil && o.OwnerID() == nil {
		params.GuestEmail = pgconv.StringToPgtype(g.Email.Value())
		params.GuestName = pgconv.StringToPgtype(g.Name)
	}

	if err := r.queries.InsertOrder(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, it := range o.Items() {
		err := r.queries.InsertOrderItem(ctx, tx, sqlc.InsertOrderItemParams{
			OrderID:           o.ID(),
			SessionTemplateID: it.TemplateID,
			SessionDate:       pgconv.DateToPgtype(it.Date),
			PriceMinor:        it.PriceMinor,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

// LockByReference loads the order with its items and holds the row lock until the tx ends.
func (r *OrderRepository) LockByReference(ctx context.Context, tx sqlc.DBTX, reference string) (*order.Order, error) {
	row, err := r.queries.LockOrderByReference(ctx, tx, reference)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	items, err := r.queries.ListOrderItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	return ToOrder(row, items)
}

func (r *OrderRepository) MarkPaid(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paidAt time.Time) (bool, error) {
	affected, err := r.queries.MarkOrderPaid(ctx, tx, sqlc.MarkOrderPaidParams{
		PaidAt: pgconv.TimeToPgtype(paidAt),
		ID:     id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order paid", err)
	}
	return affected > 0, nil
}

func (r *OrderRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	affected, err := r.queries.MarkOrderFailed(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order failed", err)
	}
	return affected > 0, nil
}

func (r *OrderRepository) LinkOwner(ctx context.Context, tx sqlc.DBTX, id, ownerID uuid.UUID) error {
	err := r.queries.LinkOrderOwner(ctx, tx, sqlc.LinkOrderOwnerParams{
		OwnerID: pgconv.UUIDToPgtype(ownerID),
		ID:      id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to link order owner", err)
	}
	return nil
}

func (r *OrderRepository) ListStalePending(ctx context.Context, tx sqlc.DBTX, olderThan, newerThan time.Time, limit int32) ([]string, error) {
	refs, err := r.queries.ListStalePendingOrders(ctx, tx, sqlc.ListStalePendingOrdersParams{
		OlderThan: pgconv.TimeToPgtype(olderThan),
		NewerThan: pgconv.TimeToPgtype(newerThan),
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending orders", err)
	}
	return refs, nil
}

func ToOrder(row sqlc.Orders, items []sqlc.OrderItems) (*order.Order, error) {
	snap := order.Snapshot{
		ID:                 row.ID,
		OwnerID:            pgconv.UUIDPtrFromPgtype(row.OwnerID),
		GuestEmail:         pgconv.StringPtrFromPgtype(row.GuestEmail),
		GuestName:          pgconv.StringPtrFromPgtype(row.GuestName),
		TotalMinor:         row.TotalMinor,
		Currency:           row.Currency,
		ProviderCheckoutID: row.ProviderCheckoutID,
		Reference:          row.ProviderReference,
		Status:             row.Status,
		CreditPackageID:    pgconv.UUIDPtrFromPgtype(row.CreditPackageID),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		PaidAt:             pgconv.TimePtrFromPgtype(row.PaidAt),
	}
	for _, it := range items {
		snap.Items = append(snap.Items, order.Item{
			TemplateID: it.SessionTemplateID,
			Date:       pgconv.DateFromPgtype(it.SessionDate),
			PriceMinor: it.PriceMinor,
		})
	}
	return order.Reconstruct(snap)
}
