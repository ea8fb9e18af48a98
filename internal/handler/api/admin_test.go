//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gym-booking/internal/handler/api"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"
	"gym-booking/tests/common/httptest"
	commandsmock "gym-booking/tests/mock/commands"
	queriesmock "gym-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	bookings *commandsmock.MockBookingAdminCommands
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.bookings = commandsmock.NewMockBookingAdminCommands(s.mockCtrl)

	h := api.NewAdminHandler(s.bookings)
	s.router.DELETE("/admin/bookings/:id", h.CancelBooking)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestCancelBooking() {
	s.Run("success: credit returned to its batch", func() {
		bookingID, batchID := uuid.New(), uuid.New()
		s.bookings.EXPECT().CancelBooking(gomock.Any(), bookingID).Return(&commands.CancelResult{
			BookingID:       bookingID,
			CreditsRestored: 1,
			RestoredBatchID: &batchID,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/"+bookingID.String(), nil, "")

		var res resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(bookingID, res.BookingID)
		s.Equal(1, res.CreditsRestored)
		s.Require().NotNil(res.RestoredBatchID)
		s.Equal(batchID, *res.RestoredBatchID)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: booking not found", func() {
		id := uuid.New()
		s.bookings.EXPECT().CancelBooking(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("no rows"), commands.ErrBookingNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

type CatalogHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	queries  *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.queries = queriesmock.NewMockCatalogQueries(s.mockCtrl)

	h := api.NewCatalogHandler(s.queries)
	s.router.GET("/sessions", h.Sessions)
	s.router.GET("/credit-packages", h.CreditPackages)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestSessions() {
	s.Run("success: forwards the date range", func() {
		s.queries.EXPECT().Sessions(gomock.Any(), queries.SessionFilter{StartDate: "2025-03-10", EndDate: "2025-03-16"}).
			Return(&queries.SessionsView{
				SessionsByDate: map[string][]queries.SessionView{
					"2025-03-10": {{Date: "2025-03-10", StartTime: "18:00", IsBooked: true}},
				},
				StartDate: "2025-03-10",
				EndDate:   "2025-03-16",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions?start_date=2025-03-10&end_date=2025-03-16", nil, "")

		var view queries.SessionsView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Require().Len(view.SessionsByDate["2025-03-10"], 1)
		s.True(view.SessionsByDate["2025-03-10"][0].IsBooked)
	})

	s.Run("error: inverted range", func() {
		s.queries.EXPECT().Sessions(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrapf(queries.ErrInvalidDateRange, "end before start"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions?start_date=2025-03-16&end_date=2025-03-10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}

func (s *CatalogHandlerTestSuite) TestCreditPackages() {
	s.queries.EXPECT().CreditPackages(gomock.Any()).Return([]queries.CreditPackageView{
		{ID: uuid.New(), Name: "10 Pack", SessionCount: 10, PriceMinor: 12000},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/credit-packages", nil, "")

	var res struct {
		Packages []queries.CreditPackageView `json:"packages"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Require().Len(res.Packages, 1)
	s.Equal("10 Pack", res.Packages[0].Name)
}
