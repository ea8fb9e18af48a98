//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gym-booking/internal/domain/order"
	"gym-booking/internal/infra/payment"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *payment.SumUpClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return payment.NewSumUpClient(config.PaymentConfig{
		APIURL:       srv.URL,
		APIKey:       "sk_test",
		MerchantCode: "MTEST",
		AppURL:       "https://gym.example/",
		Timeout:      2 * time.Second,
		ProviderName: "sumup",
	})
}

func TestSumUpClient_CreateCheckout(t *testing.T) {
	var got map[string]any
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkouts", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chk_1","checkout_reference":"HPT-1","status":"PENDING","hosted_checkout_url":"https://pay.example/chk_1"}`))
	})

	checkout, err := client.CreateCheckout(context.Background(), commands.CheckoutRequest{
		Reference:   "HPT-1",
		AmountMinor: 3000,
		Currency:    "GBP",
		Description: "Session Booking - 2 sessions",
	})

	require.NoError(t, err)
	assert.Equal(t, "chk_1", checkout.ID)
	assert.Equal(t, "https://pay.example/chk_1", checkout.URL)

	assert.InDelta(t, 30.0, got["amount"], 0.0001)
	assert.Equal(t, "GBP", got["currency"])
	assert.Equal(t, "HPT-1", got["checkout_reference"])
	assert.Equal(t, "MTEST", got["merchant_code"])
	assert.Equal(t, "https://gym.example/checkout/success?ref=HPT-1", got["redirect_url"])
	assert.Equal(t, map[string]any{"enabled": true}, got["hosted_checkout"])
}

func TestSumUpClient_CreateCheckoutRejected(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_code":"INVALID"}`))
	})

	_, err := client.CreateCheckout(context.Background(), commands.CheckoutRequest{Reference: "HPT-2", AmountMinor: 1500, Currency: "GBP"})

	require.Error(t, err)
	assert.True(t, errs.Is(err, payment.ErrProviderRejected))
	assert.Contains(t, err.Error(), "status 400")
}

func TestSumUpClient_GetCheckout(t *testing.T) {
	testCases := []struct {
		name   string
		status string
		want   order.ProviderStatus
	}{
		{name: "paid", status: "PAID", want: order.ProviderPaid},
		{name: "failed", status: "FAILED", want: order.ProviderFailed},
		{name: "pending", status: "PENDING", want: order.ProviderPending},
		{name: "unrecognised status is unknown", status: "EXPIRED", want: order.ProviderUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/checkouts/chk_9", r.URL.Path)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"id":                 "chk_9",
					"checkout_reference": "HPT-9",
					"status":             tc.status,
				})
			})

			status, err := client.GetCheckout(context.Background(), "chk_9", "HPT-9")

			require.NoError(t, err)
			assert.Equal(t, tc.want, status.Status)
			assert.Equal(t, "HPT-9", status.Reference)
			assert.Equal(t, tc.status, status.Raw)
		})
	}
}

func TestSumUpClient_GetCheckoutReferenceMismatch(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":                 "chk_9",
			"checkout_reference": "HPT-OTHER",
			"status":             "PAID",
		})
	})

	status, err := client.GetCheckout(context.Background(), "chk_9", "HPT-9")

	require.Error(t, err)
	assert.Nil(t, status)
	assert.True(t, errs.Is(err, payment.ErrMalformedReply))
	assert.Contains(t, err.Error(), "HPT-OTHER")
}

func TestSumUpClient_GetCheckoutServerError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.GetCheckout(context.Background(), "chk_9", "HPT-9")

	require.Error(t, err)
	assert.True(t, errs.Is(err, payment.ErrProviderRejected))
}

func TestSumUpClient_GetCheckoutMalformed(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.GetCheckout(context.Background(), "chk_9", "HPT-9")

	require.Error(t, err)
	assert.True(t, errs.Is(err, payment.ErrMalformedReply))
}

func TestMinorToMajor(t *testing.T) {
	assert.InDelta(t, 15.0, payment.MinorToMajor(1500), 0.0001)
	assert.InDelta(t, 0.99, payment.MinorToMajor(99), 0.0001)
}
