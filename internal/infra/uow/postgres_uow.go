package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/catalog"
	"gym-booking/internal/domain/credit"
	"gym-booking/internal/domain/order"
	"gym-booking/internal/infra/readstore"
	"gym-booking/internal/infra/repository"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool              *pgxpool.Pool
	q                 *sqlc.Queries
	defaultPriceMinor int64
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return &PostgresUoW{
		pool:              pool,
		q:                 q,
		defaultPriceMinor: cfg.Credit.DefaultSessionPrice,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	creditRepo       shared.CreditRepository
	bookingRepo      shared.BookingRepository
	orderRepo        shared.OrderRepository
	userRepo         shared.UserRepository
	notificationRepo shared.NotificationRepository
	webhookEventRepo shared.WebhookEventRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Credits() shared.CreditRepository {
	if t.creditRepo == nil {
		t.creditRepo = repository.NewCreditRepository(t.uow.q, t.dbtx)
	}
	return t.creditRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.uow.q, t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) WebhookEvents() shared.WebhookEventRepository {
	if t.webhookEventRepo == nil {
		t.webhookEventRepo = repository.NewWebhookEventRepository(t.uow.q, t.dbtx)
	}
	return t.webhookEventRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	catalogStore *readstore.CatalogReadStore
	creditStore  *readstore.CreditReadStore
	orderStore   *readstore.OrderReadStore
	userStore    *readstore.UserReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx, r.uow.defaultPriceMinor)
	}
	return r.catalogStore
}

func (r *commandReads) TemplatesByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Template, error) {
	return r.catalog().TemplatesByIDs(ctx, ids)
}

func (r *commandReads) SessionPriceMinor(ctx context.Context) (int64, error) {
	return r.catalog().SessionPriceMinor(ctx)
}

func (r *commandReads) ActivePackage(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	return r.catalog().ActivePackage(ctx, id)
}

func (r *commandReads) PackageByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	return r.catalog().Package(ctx, id)
}

func (r *commandReads) BookedSlots(ctx context.Context, slots []booking.Slot) (map[string]struct{}, error) {
	return r.catalog().BookedSlots(ctx, slots)
}

func (r *commandReads) UsableBatches(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*credit.Batch, error) {
	if r.creditStore == nil {
		r.creditStore = readstore.NewCreditReadStore(r.uow.q, r.dbtx)
	}
	return r.creditStore.UsableBatches(ctx, ownerID, now)
}

func (r *commandReads) OrderByReference(ctx context.Context, reference string) (*order.Order, error) {
	if r.orderStore == nil {
		r.orderStore = readstore.NewOrderReadStore(r.uow.q, r.dbtx)
	}
	return r.orderStore.OrderByReference(ctx, reference)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}

	u, hash, err := r.userStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.UserSnapshot{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: hash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		IsActive:     u.IsActive,
	}
	return snapshot, nil
}
