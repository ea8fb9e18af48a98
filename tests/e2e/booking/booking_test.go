//go:build e2e

package booking_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"gym-booking/internal/domain/user"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/usecase/queries"
	"gym-booking/tests/common/authtest"
	"gym-booking/tests/common/dbtest"
	"gym-booking/tests/common/httptest"
	"gym-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	useCreditURL = "/api/bookings/use-credit"
	creditsURL   = "/api/credits"
	adminURL     = "/api/admin/bookings/"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

type customer struct {
	id    uuid.UUID
	token string
}

func (s *bookingSuite) newCustomer(email string) customer {
	token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, string(user.RoleCustomer))
	id := dbtest.CreateTestUser(s.T(), s.DB, email, string(user.RoleCustomer))
	return customer{id: id, token: token}
}

// slotsNextWeek creates one template per requested slot, all on the same date a week ahead.
func (s *bookingSuite) slotsNextWeek(n int) []map[string]any {
	day := s.Clock.Now().AddDate(0, 0, 7)
	slots := make([]map[string]any, 0, n)
	for i := range n {
		start := time.Date(0, 1, 1, 8+i, 0, 0, 0, time.UTC)
		templateID := dbtest.CreateSessionTemplate(s.T(), s.DB, day.Weekday(),
			start.Format("15:04"), start.Add(time.Hour).Format("15:04"))
		slots = append(slots, map[string]any{
			"template_id": templateID.String(),
			"date":        day.Format("2006-01-02"),
		})
	}
	return slots
}

func (s *bookingSuite) batch(owner uuid.UUID, credits int, expiresIn time.Duration) uuid.UUID {
	now := s.Clock.Now()
	return dbtest.CreateCreditBatch(s.T(), s.DB, owner, credits, now.Add(-time.Hour), now.Add(expiresIn))
}

func (s *bookingSuite) useCredit(token string, slots []map[string]any) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, useCreditURL, map[string]any{"sessions": slots}, token)
}

func (s *bookingSuite) TestUseCredit() {
	s.Run("soonest expiring batch is drawn first", func() {
		t := s.T()
		c := s.newCustomer("fifo@example.com")
		later := s.batch(c.id, 3, 90*24*time.Hour)
		sooner := s.batch(c.id, 2, 20*24*time.Hour)

		rec := s.useCredit(c.token, s.slotsNextWeek(1))

		var res resdto.UseCreditResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.True(t, res.Success)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, 1, res.CreditsUsed)
		assert.Equal(t, 4, res.CreditsRemaining)
		assert.Equal(t, 1, dbtest.CreditsRemaining(t, s.DB, sooner))
		assert.Equal(t, 3, dbtest.CreditsRemaining(t, s.DB, later))
	})

	s.Run("a booking that exhausts one batch continues on the next", func() {
		t := s.T()
		c := s.newCustomer("spill@example.com")
		first := s.batch(c.id, 1, 10*24*time.Hour)
		second := s.batch(c.id, 5, 40*24*time.Hour)

		rec := s.useCredit(c.token, s.slotsNextWeek(3))

		var res resdto.UseCreditResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Equal(t, 3, res.CreditsUsed)
		assert.Equal(t, 0, dbtest.CreditsRemaining(t, s.DB, first))
		assert.Equal(t, 3, dbtest.CreditsRemaining(t, s.DB, second))
		assert.Equal(t, 3, dbtest.Count(t, s.DB, "SELECT count(*) FROM credit_usages"))
	})

	s.Run("one credit short books nothing", func() {
		t := s.T()
		c := s.newCustomer("short@example.com")
		b := s.batch(c.id, 2, 30*24*time.Hour)

		rec := s.useCredit(c.token, s.slotsNextWeek(3))

		var detail resdto.InsufficientCreditsDetail
		httptest.AssertErrorDetail(t, rec, http.StatusBadRequest, "Insufficient credits", &detail)
		assert.Equal(t, resdto.InsufficientCreditsDetail{Available: 2, Required: 3}, detail)
		assert.Equal(t, 2, dbtest.CreditsRemaining(t, s.DB, b))
		assert.Zero(t, dbtest.Count(t, s.DB, "SELECT count(*) FROM bookings"))
	})

	s.Run("expired credits do not count", func() {
		t := s.T()
		c := s.newCustomer("expired@example.com")
		now := s.Clock.Now()
		dbtest.CreateCreditBatch(t, s.DB, c.id, 5, now.AddDate(-1, 0, -1), now.Add(-time.Minute))

		rec := s.useCredit(c.token, s.slotsNextWeek(1))

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Insufficient credits")
		assert.Zero(t, dbtest.Count(t, s.DB, "SELECT count(*) FROM bookings"))
	})

	s.Run("slots booked by others are skipped", func() {
		t := s.T()
		first := s.newCustomer("first@example.com")
		second := s.newCustomer("second@example.com")
		s.batch(first.id, 1, 30*24*time.Hour)
		b := s.batch(second.id, 5, 30*24*time.Hour)
		slots := s.slotsNextWeek(2)

		httptest.AssertSuccessResponse(t, s.useCredit(first.token, slots[:1]), http.StatusOK, nil)

		var res resdto.UseCreditResponse
		httptest.AssertSuccessResponse(t, s.useCredit(second.token, slots), http.StatusOK, &res)
		require.Len(t, res.Bookings, 1)
		assert.Equal(t, slots[1]["template_id"], res.Bookings[0].TemplateID.String())
		assert.Equal(t, 4, dbtest.CreditsRemaining(t, s.DB, b))
	})

	s.Run("every slot already taken", func() {
		t := s.T()
		first := s.newCustomer("taken1@example.com")
		second := s.newCustomer("taken2@example.com")
		s.batch(first.id, 1, 30*24*time.Hour)
		b := s.batch(second.id, 1, 30*24*time.Hour)
		slots := s.slotsNextWeek(1)

		httptest.AssertSuccessResponse(t, s.useCredit(first.token, slots), http.StatusOK, nil)

		rec := s.useCredit(second.token, slots)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "just booked by someone else")
		assert.Equal(t, 1, dbtest.CreditsRemaining(t, s.DB, b))
	})

	s.Run("date on the wrong weekday", func() {
		t := s.T()
		c := s.newCustomer("weekday@example.com")
		s.batch(c.id, 1, 30*24*time.Hour)
		slots := s.slotsNextWeek(1)
		slots[0]["date"] = s.Clock.Now().AddDate(0, 0, 8).Format("2006-01-02")

		rec := s.useCredit(c.token, slots)
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	s.Run("requires a signed-in customer", func() {
		rec := s.useCredit("", s.slotsNextWeek(1))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// Two customers race for the same slot; the unique slot constraint lets exactly one through.
func (s *bookingSuite) TestSlotRace() {
	s.Run("exactly one winner", func() {
		t := s.T()
		const racers = 6

		customers := make([]customer, racers)
		for i := range customers {
			customers[i] = s.newCustomer(uuid.NewString()[:8] + "@example.com")
			s.batch(customers[i].id, 1, 30*24*time.Hour)
		}
		slots := s.slotsNextWeek(1)

		codes := make([]int, racers)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i, c := range customers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				codes[i] = s.useCredit(c.token, slots).Code
			}()
		}
		close(start)
		wg.Wait()

		won, lost := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusOK:
				won++
			case http.StatusConflict:
				lost++
			}
		}
		assert.Equal(t, 1, won, "codes: %v", codes)
		assert.Equal(t, racers-1, lost, "codes: %v", codes)
		assert.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM bookings"))
		assert.Equal(t, racers-1, dbtest.Count(t, s.DB, "SELECT coalesce(sum(credits_remaining), 0) FROM credit_batches"))
	})
}

func (s *bookingSuite) TestCancelRestoresCredit() {
	s.Run("credit returns to the originating batch", func() {
		t := s.T()
		c := s.newCustomer("cancel@example.com")
		admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		keep := s.batch(c.id, 2, 60*24*time.Hour)
		drawn := s.batch(c.id, 1, 10*24*time.Hour)

		var booked resdto.UseCreditResponse
		httptest.AssertSuccessResponse(t, s.useCredit(c.token, s.slotsNextWeek(1)), http.StatusOK, &booked)
		require.Len(t, booked.Bookings, 1)
		require.Equal(t, 0, dbtest.CreditsRemaining(t, s.DB, drawn))

		rec := httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+booked.Bookings[0].ID.String(), nil, admin)

		var res resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Equal(t, 1, res.CreditsRestored)
		require.NotNil(t, res.RestoredBatchID)
		assert.Equal(t, drawn, *res.RestoredBatchID)
		assert.Equal(t, 1, dbtest.CreditsRemaining(t, s.DB, drawn))
		assert.Equal(t, 2, dbtest.CreditsRemaining(t, s.DB, keep))
		assert.Zero(t, dbtest.Count(t, s.DB, "SELECT count(*) FROM bookings"))
		assert.Zero(t, dbtest.Count(t, s.DB, "SELECT count(*) FROM credit_usages"))

		var summary queries.CreditSummaryView
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, creditsURL, nil, c.token), http.StatusOK, &summary)
		assert.Equal(t, 3, summary.TotalCredits)
	})

	s.Run("customers cannot cancel", func() {
		t := s.T()
		c := s.newCustomer("notadmin@example.com")

		rec := httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+uuid.NewString(), nil, c.token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("unknown booking", func() {
		t := s.T()
		admin := authtest.CreateAndLogin(t, s.DB, s.Router, "admin2@example.com", string(user.RoleAdmin))

		rec := httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+uuid.NewString(), nil, admin)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *bookingSuite) TestCreditSummary() {
	s.Run("reports balance, expiring credits and usage", func() {
		t := s.T()
		c := s.newCustomer("summary@example.com")
		s.batch(c.id, 4, 10*24*time.Hour)
		s.batch(c.id, 6, 200*24*time.Hour)
		now := s.Clock.Now()
		dbtest.CreateCreditBatch(t, s.DB, c.id, 3, now.AddDate(-1, 0, 0), now.Add(-time.Hour))

		httptest.AssertSuccessResponse(t, s.useCredit(c.token, s.slotsNextWeek(1)), http.StatusOK, nil)

		var summary queries.CreditSummaryView
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, creditsURL, nil, c.token), http.StatusOK, &summary)
		assert.Equal(t, 9, summary.TotalCredits)
		require.NotNil(t, summary.ExpiringCredits)
		assert.Equal(t, 3, summary.ExpiringCredits.Count)
		assert.Len(t, summary.RecentUsage, 1)
	})
}
