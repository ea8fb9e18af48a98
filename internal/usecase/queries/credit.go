package queries

import (
	"context"
	"time"

	"gym-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	DefaultExpiringSoonWindow = 30 * 24 * time.Hour
	DefaultRecentUsageLimit   = 10
)

type CreditQueries interface {
	Summary(ctx context.Context, customerID uuid.UUID) (*CreditSummaryView, error)
}

type CreditReadStore interface {
	// ActivePurchases lists batches with credits left that have not expired, soonest expiry first.
	ActivePurchases(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]CreditPurchaseView, error)
	RecentUsage(ctx context.Context, ownerID uuid.UUID, limit int32) ([]CreditUsageView, error)
}

type creditQueriesImpl struct {
	readStore    CreditReadStore
	clock        clock.Clock
	expiringSoon time.Duration
	recentLimit  int32
}

func NewCreditQueries(readStore CreditReadStore, clk clock.Clock, expiringSoon time.Duration, recentLimit int32) CreditQueries {
	if expiringSoon <= 0 {
		expiringSoon = DefaultExpiringSoonWindow
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentUsageLimit
	}
	return &creditQueriesImpl{
		readStore:    readStore,
		clock:        clk,
		expiringSoon: expiringSoon,
		recentLimit:  recentLimit,
	}
}

func (q *creditQueriesImpl) Summary(ctx context.Context, customerID uuid.UUID) (*CreditSummaryView, error) {
	now := q.clock.Now()

	purchases, err := q.readStore.ActivePurchases(ctx, customerID, now)
	if err != nil {
		return nil, err
	}
	usage, err := q.readStore.RecentUsage(ctx, customerID, q.recentLimit)
	if err != nil {
		return nil, err
	}

	view := &CreditSummaryView{
		Purchases:   purchases,
		RecentUsage: usage,
	}
	if view.Purchases == nil {
		view.Purchases = []CreditPurchaseView{}
	}
	if view.RecentUsage == nil {
		view.RecentUsage = []CreditUsageView{}
	}

	horizon := now.Add(q.expiringSoon)
	expiring := &ExpiringCreditsView{}
	for _, p := range purchases {
		view.TotalCredits += p.CreditsRemaining
		if p.ExpiresAt.After(horizon) {
			continue
		}
		if expiring.Count == 0 || p.ExpiresAt.Before(expiring.Date) {
			expiring.Date = p.ExpiresAt
		}
		expiring.Count += p.CreditsRemaining
	}
	if expiring.Count > 0 {
		view.ExpiringCredits = expiring
	}
	return view, nil
}
