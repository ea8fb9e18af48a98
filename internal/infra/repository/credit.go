package repository

import (
	"context"
	"time"

	"gym-booking/internal/domain/credit"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var (
	errBatchUnderflow = errs.Mark(errs.New("credit batch has no remaining credits"), errs.ErrIntegrity)
	errBatchOverflow  = errs.Mark(errs.New("credit batch restore exceeds issued credits"), errs.ErrIntegrity)
)

type CreditWriteQueries interface {
	LockUsableCreditBatches(ctx context.Context, db sqlc.DBTX, arg sqlc.LockUsableCreditBatchesParams) ([]sqlc.CreditBatches, error)
	DecrementCreditBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementCreditBatchParams) (int64, error)
	IncrementCreditBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementCreditBatchParams) (int64, error)
	InsertCreditBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCreditBatchParams) (int64, error)
	InsertCreditUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCreditUsageParams) error
	DeleteCreditUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.DeleteCreditUsageRow, error)
}

type CreditRepository struct {
	queries CreditWriteQueries
	db      sqlc.DBTX
}

func NewCreditRepository(queries CreditWriteQueries, db sqlc.DBTX) *CreditRepository {
	return &CreditRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CreditRepository) LockUsable(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, now time.Time) ([]*credit.Batch, error) {
	rows, err := r.queries.LockUsableCreditBatches(ctx, tx, sqlc.LockUsableCreditBatchesParams{
		OwnerID: ownerID,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock credit batches", err)
	}
	return ToCreditBatches(rows)
}

// Debit fails with an integrity error instead of letting the balance go negative.
func (r *CreditRepository) Debit(ctx context.Context, tx sqlc.DBTX, batchID uuid.UUID, n int) error {
	affected, err := r.queries.DecrementCreditBatch(ctx, tx, sqlc.DecrementCreditBatchParams{
		Credits: int32(n), // #nosec G115 -- credits per booking is 1
		ID:      batchID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to debit credit batch", err)
	}
	if affected == 0 {
		return errs.Wrapf(errBatchUnderflow, "batch %s", batchID)
	}
	return nil
}

func (r *CreditRepository) Restore(ctx context.Context, tx sqlc.DBTX, batchID uuid.UUID, n int) error {
	affected, err := r.queries.IncrementCreditBatch(ctx, tx, sqlc.IncrementCreditBatchParams{
		Credits: int32(n), // #nosec G115 -- bounded by credits_issued
		ID:      batchID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to restore credit batch", err)
	}
	if affected == 0 {
		return errs.Wrapf(errBatchOverflow, "batch %s", batchID)
	}
	return nil
}

func (r *CreditRepository) Issue(ctx context.Context, tx sqlc.DBTX, b *credit.Batch) (bool, error) {
	affected, err := r.queries.InsertCreditBatch(ctx, tx, sqlc.InsertCreditBatchParams{
		ID:               b.ID(),
		OwnerID:          b.OwnerID(),
		PackageID:        pgconv.UUIDPtrToPgtype(b.PackageID()),
		SourceOrderID:    pgconv.UUIDPtrToPgtype(b.SourceOrderID()),
		CreditsIssued:    int32(b.Issued()),    // #nosec G115 -- package sizes are small
		CreditsRemaining: int32(b.Remaining()), // #nosec G115 -- bounded by issued
		ExpiresAt:        pgconv.TimeToPgtype(b.ExpiresAt()),
		IssuedAt:         pgconv.TimeToPgtype(b.IssuedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to issue credit batch", err)
	}
	return affected > 0, nil
}

func (r *CreditRepository) RecordUsage(ctx context.Context, tx sqlc.DBTX, u *credit.Usage) error {
	err := r.queries.InsertCreditUsage(ctx, tx, sqlc.InsertCreditUsageParams{
		ID:            u.ID(),
		CreditBatchID: u.BatchID(),
		BookingID:     u.BookingID(),
		CreditsUsed:   int32(u.CreditsUsed()), // #nosec G115 -- always 1
		CreatedAt:     pgconv.TimeToPgtype(u.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record credit usage", err)
	}
	return nil
}

func (r *CreditRepository) ReleaseUsage(ctx context.Context, tx sqlc.DBTX, usageID uuid.UUID) (uuid.UUID, int, error) {
	row, err := r.queries.DeleteCreditUsage(ctx, tx, usageID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, 0, infra.WrapRepoErr("credit usage not found", err, infra.KindNotFound)
		}
		return uuid.Nil, 0, infra.WrapRepoErr("failed to delete credit usage", err)
	}
	return row.CreditBatchID, int(row.CreditsUsed), nil
}

// ToCreditBatches rebuilds domain batches; a row outside the ledger invariant is an integrity error.
func ToCreditBatches(rows []sqlc.CreditBatches) ([]*credit.Batch, error) {
	out := make([]*credit.Batch, 0, len(rows))
	for _, row := range rows {
		b, err := credit.Reconstruct(
			row.ID,
			row.OwnerID,
			pgconv.UUIDPtrFromPgtype(row.SourceOrderID),
			pgconv.UUIDPtrFromPgtype(row.PackageID),
			int(row.CreditsIssued),
			int(row.CreditsRemaining),
			pgconv.TimeFromPgtype(row.ExpiresAt),
			pgconv.TimeFromPgtype(row.IssuedAt),
		)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
