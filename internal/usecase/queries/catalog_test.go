//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/catalog"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/queries"
	queriesmock "gym-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogSessions(t *testing.T) {
	tpl := catalog.Template{
		ID:        uuid.New(),
		TypeID:    uuid.New(),
		TypeName:  "Personal Training",
		DayOfWeek: time.Monday,
		StartTime: "18:00",
		EndTime:   "19:00",
	}

	t.Run("marks booked slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockCatalogReadStore(ctrl)

		booked, err := booking.ParseSlot(tpl.ID, "2025-03-17")
		require.NoError(t, err)

		rs.EXPECT().ActiveTemplates(gomock.Any()).Return([]catalog.Template{tpl}, nil)
		rs.EXPECT().BookedSlotsBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string]struct{}{booked.Key(): {}}, nil)
		rs.EXPECT().SessionTypes(gomock.Any()).Return([]queries.SessionTypeView{{ID: tpl.TypeID, Name: tpl.TypeName}}, nil)
		rs.EXPECT().SessionPriceMinor(gomock.Any()).Return(int64(1500), nil)

		q := queries.NewCatalogQueries(rs, clock.NewMockClock(now), time.UTC, 60)
		view, err := q.Sessions(context.Background(), queries.SessionFilter{StartDate: "2025-03-10", EndDate: "2025-03-24"})

		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", view.StartDate)
		assert.Equal(t, "2025-03-24", view.EndDate)
		assert.Equal(t, int64(1500), view.SessionPriceMinor)
		require.Len(t, view.SessionsByDate["2025-03-10"], 1, "today's evening session has not started")
		assert.False(t, view.SessionsByDate["2025-03-10"][0].IsBooked)
		require.Len(t, view.SessionsByDate["2025-03-17"], 1)
		assert.True(t, view.SessionsByDate["2025-03-17"][0].IsBooked)
		assert.False(t, view.SessionsByDate["2025-03-24"][0].IsBooked)
	})

	t.Run("defaults to the booking window from today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockCatalogReadStore(ctrl)
		rs.EXPECT().ActiveTemplates(gomock.Any()).Return(nil, nil)
		rs.EXPECT().BookedSlotsBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		rs.EXPECT().SessionTypes(gomock.Any()).Return(nil, nil)
		rs.EXPECT().SessionPriceMinor(gomock.Any()).Return(int64(1500), nil)

		q := queries.NewCatalogQueries(rs, clock.NewMockClock(now), time.UTC, 60)
		view, err := q.Sessions(context.Background(), queries.SessionFilter{})

		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", view.StartDate)
		assert.Equal(t, "2025-05-09", view.EndDate)
	})

	t.Run("rejects bad ranges", func(t *testing.T) {
		cases := map[string]queries.SessionFilter{
			"malformed start": {StartDate: "10-03-2025"},
			"inverted":        {StartDate: "2025-03-20", EndDate: "2025-03-10"},
			"too wide":        {StartDate: "2025-03-10", EndDate: "2026-03-10"},
		}
		for name, filter := range cases {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				rs := queriesmock.NewMockCatalogReadStore(ctrl)

				q := queries.NewCatalogQueries(rs, clock.NewMockClock(now), time.UTC, 60)
				_, err := q.Sessions(context.Background(), filter)

				require.Error(t, err)
				assert.True(t, errs.Is(err, queries.ErrInvalidDateRange))
			})
		}
	})
}

func TestCatalogCreditPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	rs := queriesmock.NewMockCatalogReadStore(ctrl)
	pkg := catalog.Package{ID: uuid.New(), Name: "10 Pack", SessionCount: 10, PriceMinor: 12000, IsActive: true}
	rs.EXPECT().ActivePackages(gomock.Any()).Return([]catalog.Package{pkg}, nil)
	rs.EXPECT().SessionPriceMinor(gomock.Any()).Return(int64(1500), nil)

	q := queries.NewCatalogQueries(rs, clock.NewMockClock(now), time.UTC, 60)
	views, err := q.CreditPackages(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(15000), views[0].StandardMinor)
	assert.Equal(t, int64(3000), views[0].SavingsMinor)
	assert.Equal(t, 20, views[0].SavingsPercent)
}
