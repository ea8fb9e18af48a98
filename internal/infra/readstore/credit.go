package readstore

import (
	"context"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/credit"
	"gym-booking/internal/infra"
	"gym-booking/internal/infra/repository"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreditReadQueries interface {
	ListUsableCreditBatches(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsableCreditBatchesParams) ([]sqlc.CreditBatches, error)
	ListCreditPurchases(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCreditPurchasesParams) ([]sqlc.ListCreditPurchasesRow, error)
	ListRecentCreditUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentCreditUsageParams) ([]sqlc.ListRecentCreditUsageRow, error)
}

type CreditReadStore struct {
	queries CreditReadQueries
	db      sqlc.DBTX
}

func NewCreditReadStore(queries CreditReadQueries, db sqlc.DBTX) *CreditReadStore {
	return &CreditReadStore{
		queries: queries,
		db:      db,
	}
}

// UsableBatches reads without locking; callers that mutate must use the repository's LockUsable.
func (r *CreditReadStore) UsableBatches(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*credit.Batch, error) {
	rows, err := r.queries.ListUsableCreditBatches(ctx, r.db, sqlc.ListUsableCreditBatchesParams{
		OwnerID: ownerID,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list credit batches", err)
	}
	return repository.ToCreditBatches(rows)
}

func (r *CreditReadStore) ActivePurchases(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]queries.CreditPurchaseView, error) {
	rows, err := r.queries.ListCreditPurchases(ctx, r.db, sqlc.ListCreditPurchasesParams{
		OwnerID: ownerID,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list credit purchases", err)
	}

	views := make([]queries.CreditPurchaseView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.CreditPurchaseView{
			ID:               row.ID,
			PackageName:      row.PackageName,
			CreditsIssued:    int(row.CreditsIssued),
			CreditsRemaining: int(row.CreditsRemaining),
			ExpiresAt:        pgconv.TimeFromPgtype(row.ExpiresAt),
			PurchasedAt:      pgconv.TimeFromPgtype(row.IssuedAt),
		})
	}
	return views, nil
}

func (r *CreditReadStore) RecentUsage(ctx context.Context, ownerID uuid.UUID, limit int32) ([]queries.CreditUsageView, error) {
	rows, err := r.queries.ListRecentCreditUsage(ctx, r.db, sqlc.ListRecentCreditUsageParams{
		OwnerID:  ownerID,
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list credit usage", err)
	}

	views := make([]queries.CreditUsageView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.CreditUsageView{
			ID:          row.ID,
			CreditsUsed: int(row.CreditsUsed),
			UsedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
			SessionType: row.SessionType,
			SessionDate: pgconv.DateFromPgtype(row.SessionDate).Format(booking.DateLayout),
		})
	}
	return views, nil
}
