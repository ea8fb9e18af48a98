package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"gym-booking/internal/domain/order"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	ErrProviderRejected = errs.New("payment provider rejected the request")
	ErrMalformedReply   = errs.New("payment provider returned an unreadable reply")
)

// maxErrorBody caps how much of a failed reply is kept for logs.
const maxErrorBody = 2048

type createCheckoutBody struct {
	Amount            float64        `json:"amount"`
	Currency          string         `json:"currency"`
	CheckoutReference string         `json:"checkout_reference"`
	Description       string         `json:"description"`
	MerchantCode      string         `json:"merchant_code"`
	RedirectURL       string         `json:"redirect_url"`
	HostedCheckout    hostedCheckout `json:"hosted_checkout"`
}

type hostedCheckout struct {
	Enabled bool `json:"enabled"`
}

type checkoutReply struct {
	ID                string  `json:"id"`
	CheckoutReference string  `json:"checkout_reference"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	Status            string  `json:"status"`
	HostedCheckoutURL string  `json:"hosted_checkout_url"`
}

// SumUpClient talks to the SumUp hosted checkout API.
type SumUpClient struct {
	http         *http.Client
	baseURL      string
	apiKey       string
	merchantCode string
	appURL       string
	name         string
}

func NewSumUpClient(cfg config.PaymentConfig) *SumUpClient {
	return &SumUpClient{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:      strings.TrimRight(cfg.APIURL, "/"),
		apiKey:       cfg.APIKey,
		merchantCode: cfg.MerchantCode,
		appURL:       strings.TrimRight(cfg.AppURL, "/"),
		name:         cfg.ProviderName,
	}
}

func (c *SumUpClient) Name() string {
	return c.name
}

func (c *SumUpClient) CreateCheckout(ctx context.Context, req commands.CheckoutRequest) (*commands.Checkout, error) {
	body := createCheckoutBody{
		Amount:            MinorToMajor(req.AmountMinor),
		Currency:          req.Currency,
		CheckoutReference: req.Reference,
		Description:       req.Description,
		MerchantCode:      c.merchantCode,
		RedirectURL:       c.SuccessURL(req.Reference),
		HostedCheckout:    hostedCheckout{Enabled: true},
	}

	var reply checkoutReply
	if err := c.do(ctx, http.MethodPost, "/checkouts", body, &reply); err != nil {
		return nil, errs.Wrapf(err, "create checkout %s", req.Reference)
	}
	if reply.ID == "" {
		return nil, errs.Wrap(ErrMalformedReply, "checkout id missing")
	}
	return &commands.Checkout{ID: reply.ID, URL: reply.HostedCheckoutURL}, nil
}

func (c *SumUpClient) GetCheckout(ctx context.Context, checkoutID, reference string) (*commands.CheckoutStatus, error) {
	var reply checkoutReply
	if err := c.do(ctx, http.MethodGet, "/checkouts/"+url.PathEscape(checkoutID), nil, &reply); err != nil {
		return nil, errs.Wrapf(err, "get checkout %s", checkoutID)
	}
	if reply.CheckoutReference != reference {
		return nil, errs.Wrapf(ErrMalformedReply, "checkout %s belongs to %q, not %q", checkoutID, reply.CheckoutReference, reference)
	}
	return &commands.CheckoutStatus{
		ID:        reply.ID,
		Reference: reply.CheckoutReference,
		Status:    order.ParseProviderStatus(reply.Status),
		Raw:       reply.Status,
	}, nil
}

// SuccessURL is where the hosted checkout sends the buyer back to.
func (c *SumUpClient) SuccessURL(reference string) string {
	return c.appURL + "/checkout/success?ref=" + url.QueryEscape(reference)
}

func (c *SumUpClient) do(ctx context.Context, method, path string, in, out any) error {
	var payload io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errs.Wrapf(ErrProviderRejected, "status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(err, ErrMalformedReply)
	}
	return nil
}

// MinorToMajor converts pence to pounds as the API expects decimal amounts.
func MinorToMajor(minor int64) float64 {
	return float64(minor) / 100
}

var _ commands.PaymentProvider = (*SumUpClient)(nil)
