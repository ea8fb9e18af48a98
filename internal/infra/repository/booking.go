package repository

import (
	"context"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingParams) error
	InsertBookingSkipTaken(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingSkipTakenParams) (int64, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CountBookingsByOrder(ctx context.Context, db sqlc.DBTX, orderID pgtype.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the booking; a taken slot surfaces as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	err := r.queries.InsertBooking(ctx, tx, sqlc.InsertBookingParams(toBookingParams(b)))
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) CreateIfFree(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (bool, error) {
	affected, err := r.queries.InsertBookingSkipTaken(ctx, tx, toBookingParams(b))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create order booking", err)
	}
	return affected > 0, nil
}

func (r *BookingRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return ToBooking(row)
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) CountByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (int, error) {
	n, err := r.queries.CountBookingsByOrder(ctx, tx, pgconv.UUIDToPgtype(orderID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count order bookings", err)
	}
	return int(n), nil
}

func toBookingParams(b *booking.Booking) sqlc.InsertBookingSkipTakenParams {
	p := sqlc.InsertBookingSkipTakenParams{
		ID:                b.ID(),
		SessionTemplateID: b.Slot().TemplateID(),
		SessionDate:       pgconv.DateToPgtype(b.Slot().Date()),
		FundingKind:       string(b.Funding().Kind()),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt()),
	}
	if id, ok := b.Funding().OrderID(); ok {
		p.OrderID = pgconv.UUIDToPgtype(id)
	}
	if id, ok := b.Funding().CreditUsageID(); ok {
		p.CreditUsageID = pgconv.UUIDToPgtype(id)
	}
	return p
}

func ToBooking(row sqlc.Bookings) (*booking.Booking, error) {
	slot, err := booking.NewSlot(row.SessionTemplateID, pgconv.DateFromPgtype(row.SessionDate))
	if err != nil {
		return nil, err
	}
	funding, err := booking.ReconstructFunding(
		row.FundingKind,
		pgconv.UUIDPtrFromPgtype(row.OrderID),
		pgconv.UUIDPtrFromPgtype(row.CreditUsageID),
	)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(row.ID, slot, funding, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
