//go:build unit

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCounters(t *testing.T) {
	r := New()

	r.BookingsCreated("credit", 2)
	r.BookingsCreated("card", 1)
	r.CreditsConsumed(2)
	r.CreditsRestored(1)
	r.OrderTransition("PENDING", "PAID", "webhook")
	r.OrderTransition("PENDING", "PAID", "webhook")
	r.OutboxFailed("order.paid", false)
	r.OutboxFailed("order.paid", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.bookings.WithLabelValues("credit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.bookings.WithLabelValues("card")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.creditsUsed))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.creditsBack))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.creditsIssued))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.orderMoves.WithLabelValues("PENDING", "PAID", "webhook")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.outboxFailed.WithLabelValues("order.paid", "true")))
}

func TestObserveHTTP(t *testing.T) {
	r := New()

	r.ObserveHTTP("/api/orders/:reference", "GET", 404, 15*time.Millisecond)
	r.ObserveHTTP("/api/orders/:reference", "GET", 200, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("/api/orders/:reference", "GET", "404")))

	n, err := testutil.GatherAndCount(r.Gatherer(), "gym_booking_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
