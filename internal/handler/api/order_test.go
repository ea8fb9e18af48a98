//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"gym-booking/internal/handler/api"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"
	"gym-booking/tests/common/httptest"
	commandsmock "gym-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	checkout   *commandsmock.MockCheckoutCommands
	reconciler *commandsmock.MockReconciler
	customerID uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.checkout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.reconciler = commandsmock.NewMockReconciler(s.mockCtrl)
	s.customerID = uuid.New()

	orders := api.NewOrderHandler(s.checkout, s.reconciler)
	webhooks := api.NewWebhookHandler(s.reconciler)

	s.router.POST("/checkout", orders.Checkout)
	s.router.GET("/orders/:reference", orders.Get)
	s.router.GET("/orders/:reference/await", orders.Await)
	s.router.POST("/webhooks/payments", webhooks.Payments)

	authed := s.router.Group("/me", withUser(s.customerID))
	authed.POST("/checkout", orders.Checkout)
	authed.GET("/orders/:reference", orders.Get)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestCheckout() {
	templateID := uuid.New()
	items := []map[string]any{{"template_id": templateID.String(), "date": "2025-03-17"}}
	result := &commands.CheckoutResult{CheckoutURL: "https://pay.example/c", Reference: "HPT-1"}

	s.Run("success: guest checkout", func() {
		s.checkout.EXPECT().CreateCardOrder(gomock.Any(), (*uuid.UUID)(nil), commands.CardOrderRequest{
			Items:      []commands.SlotRequest{{TemplateID: templateID, Date: "2025-03-17"}},
			GuestEmail: "guest@example.com",
			GuestName:  "Jo Bloggs",
		}).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", map[string]any{
			"items": items,
			"guest": map[string]any{"email": "guest@example.com", "name": "Jo Bloggs "},
		}, "")

		var res resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("HPT-1", res.Reference)
		s.Equal("https://pay.example/c", res.CheckoutURL)
	})

	s.Run("success: signed-in customer needs no guest details", func() {
		s.checkout.EXPECT().CreateCardOrder(gomock.Any(), &s.customerID, gomock.Any()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/me/checkout", map[string]any{"items": items}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: anonymous caller without guest details", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", map[string]any{"items": items}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Guest name and email are required")
	})

	s.Run("error: invalid guest email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", map[string]any{
			"items": items,
			"guest": map[string]any{"email": "nope", "name": "Jo"},
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: session already booked", func() {
		s.checkout.EXPECT().CreateCardOrder(gomock.Any(), &s.customerID, gomock.Any()).
			Return(nil, errs.Wrapf(commands.ErrAlreadyBooked, "1 of 1 sessions taken"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/me/checkout", map[string]any{"items": items}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "just booked by someone else")
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("success: guest order by reference", func() {
		s.reconciler.EXPECT().ReconcileByReference(gomock.Any(), "HPT-1", (*uuid.UUID)(nil)).
			Return(&queries.OrderView{Reference: "HPT-1", Status: "PAID", TotalMinor: 1500, Currency: "GBP"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/HPT-1", nil, "")

		var view queries.OrderView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal("PAID", view.Status)
	})

	s.Run("success: caller identity is forwarded", func() {
		s.reconciler.EXPECT().ReconcileByReference(gomock.Any(), "HPT-2", &s.customerID).
			Return(&queries.OrderView{Reference: "HPT-2", Status: "PENDING"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/orders/HPT-2", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown or foreign order", func() {
		s.reconciler.EXPECT().ReconcileByReference(gomock.Any(), "HPT-3", gomock.Any()).
			Return(nil, errs.Wrapf(commands.ErrOrderNotFound, "reference HPT-3"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/HPT-3", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: provider unreachable while polling", func() {
		s.reconciler.EXPECT().ReconcileByReference(gomock.Any(), "HPT-4", gomock.Any()).
			Return(nil, errs.Mark(errors.New("timeout"), commands.ErrProviderUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/HPT-4", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment provider unavailable")
	})
}

func (s *OrderHandlerTestSuite) TestAwait() {
	s.Run("success: returns the last observed state", func() {
		s.reconciler.EXPECT().AwaitSettlement(gomock.Any(), "HPT-5", (*uuid.UUID)(nil)).
			Return(&queries.OrderView{Reference: "HPT-5", Status: "PENDING"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/HPT-5/await", nil, "")

		var view queries.OrderView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal("PENDING", view.Status)
	})
}

func (s *OrderHandlerTestSuite) TestWebhook() {
	url := "/webhooks/payments"

	s.Run("success: acknowledges and reconciles", func() {
		s.reconciler.EXPECT().HandleWebhook(gomock.Any(), commands.WebhookEvent{
			EventID:   "evt_1",
			EventType: "checkout.status.updated",
			Reference: "HPT-1",
			Status:    "PAID",
		}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"id":         "evt_1",
			"event_type": "checkout.status.updated",
			"payload": map[string]any{
				"checkout_reference": "HPT-1",
				"status":             "PAID",
				"merchant_extra":     "ignored",
			},
		}, "")

		var ack resdto.WebhookAck
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
		s.True(ack.Received)
	})

	s.Run("error: malformed body", func() {
		req := nethttptest.NewRequest(http.MethodPost, url, bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook payload")
	})

	s.Run("error: missing reference", func() {
		s.reconciler.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).Return(commands.ErrMissingReference)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"id": "evt_2"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "checkout reference is required")
	})

	s.Run("error: provider down asks the sender to retry", func() {
		s.reconciler.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("timeout"), commands.ErrProviderUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"id":      "evt_3",
			"payload": map[string]any{"checkout_reference": "HPT-1"},
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment provider unavailable")
	})
}
