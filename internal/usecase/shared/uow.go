package shared

import (
	"context"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/catalog"
	"gym-booking/internal/domain/credit"
	"gym-booking/internal/domain/order"
	"gym-booking/internal/domain/user"
	sqlc "gym-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Credits() CreditRepository
	Bookings() BookingRepository
	Orders() OrderRepository
	Users() UserRepository
	Notifications() NotificationRepository
	WebhookEvents() WebhookEventRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups write paths validate against. Inside a Tx they see
// the transaction's snapshot.
type CommandReads interface {
	TemplatesByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Template, error)
	SessionPriceMinor(ctx context.Context) (int64, error)
	ActivePackage(ctx context.Context, id uuid.UUID) (*catalog.Package, error)
	// PackageByID ignores the active flag; paid orders keep their package after it is retired.
	PackageByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error)
	BookedSlots(ctx context.Context, slots []booking.Slot) (map[string]struct{}, error)
	UsableBatches(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*credit.Batch, error)
	OrderByReference(ctx context.Context, reference string) (*order.Order, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type CreditRepository interface {
	// LockUsable loads the owner's usable batches in consumption order and row-locks them.
	LockUsable(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, now time.Time) ([]*credit.Batch, error)
	Debit(ctx context.Context, tx sqlc.DBTX, batchID uuid.UUID, n int) error
	Restore(ctx context.Context, tx sqlc.DBTX, batchID uuid.UUID, n int) error
	// Issue reports false when a batch for the batch's source order already exists.
	Issue(ctx context.Context, tx sqlc.DBTX, b *credit.Batch) (bool, error)
	RecordUsage(ctx context.Context, tx sqlc.DBTX, u *credit.Usage) error
	ReleaseUsage(ctx context.Context, tx sqlc.DBTX, usageID uuid.UUID) (batchID uuid.UUID, creditsUsed int, err error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// CreateIfFree reports false when the slot is already booked.
	CreateIfFree(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (bool, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	CountByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (int, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	LockByReference(ctx context.Context, tx sqlc.DBTX, reference string) (*order.Order, error)
	MarkPaid(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	LinkOwner(ctx context.Context, tx sqlc.DBTX, id, ownerID uuid.UUID) error
	ListStalePending(ctx context.Context, tx sqlc.DBTX, olderThan, newerThan time.Time, limit int32) ([]string, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	// FindOrCreate returns the id registered for the user's email, inserting u when absent.
	FindOrCreate(ctx context.Context, tx sqlc.DBTX, u *user.User) (id uuid.UUID, created bool, err error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, runAt time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, now time.Time) error
}

type WebhookEventRepository interface {
	// Record reports false when the event was already seen.
	Record(ctx context.Context, tx sqlc.DBTX, ev WebhookEventRecord) (bool, error)
}
