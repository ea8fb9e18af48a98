package queries

import (
	"context"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/catalog"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
)

var ErrInvalidDateRange = errs.Validation(errs.New("invalid date range"))

type CatalogQueries interface {
	Sessions(ctx context.Context, filter SessionFilter) (*SessionsView, error)
	CreditPackages(ctx context.Context) ([]CreditPackageView, error)
}

// SessionFilter dates are YYYY-MM-DD; empty means today and today plus the window.
type SessionFilter struct {
	StartDate string
	EndDate   string
}

type CatalogReadStore interface {
	ActiveTemplates(ctx context.Context) ([]catalog.Template, error)
	SessionTypes(ctx context.Context) ([]SessionTypeView, error)
	SessionPriceMinor(ctx context.Context) (int64, error)
	ActivePackages(ctx context.Context) ([]catalog.Package, error)
	BookedSlotsBetween(ctx context.Context, from, to time.Time) (map[string]struct{}, error)
}

type catalogQueriesImpl struct {
	readStore  CatalogReadStore
	clock      clock.Clock
	loc        *time.Location
	windowDays int
}

func NewCatalogQueries(readStore CatalogReadStore, clk clock.Clock, loc *time.Location, windowDays int) CatalogQueries {
	if loc == nil {
		loc = time.UTC
	}
	if windowDays <= 0 {
		windowDays = catalog.DefaultWindowDays
	}
	return &catalogQueriesImpl{
		readStore:  readStore,
		clock:      clk,
		loc:        loc,
		windowDays: windowDays,
	}
}

func (q *catalogQueriesImpl) Sessions(ctx context.Context, filter SessionFilter) (*SessionsView, error) {
	now := q.clock.Now()
	from, to, err := q.resolveRange(filter, now)
	if err != nil {
		return nil, err
	}

	templates, err := q.readStore.ActiveTemplates(ctx)
	if err != nil {
		return nil, err
	}
	instances, err := catalog.Expand(templates, from, to, now, q.loc)
	if err != nil {
		return nil, err
	}
	booked, err := q.readStore.BookedSlotsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	types, err := q.readStore.SessionTypes(ctx)
	if err != nil {
		return nil, err
	}
	price, err := q.readStore.SessionPriceMinor(ctx)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]SessionView, len(instances))
	for date, list := range instances {
		views := make([]SessionView, 0, len(list))
		for _, in := range list {
			slot, err := booking.NewSlot(in.ID, in.Date)
			if err != nil {
				return nil, err
			}
			_, taken := booked[slot.Key()]
			views = append(views, SessionView{
				TemplateID:  in.ID,
				TypeID:      in.TypeID,
				TypeName:    in.TypeName,
				Date:        date,
				StartTime:   in.StartTime,
				EndTime:     in.EndTime,
				StartsAt:    in.StartsAt,
				MaxCapacity: in.MaxCapacity,
				IsPrivate:   in.IsPrivate,
				IsBooked:    taken,
			})
		}
		byDate[date] = views
	}

	return &SessionsView{
		SessionsByDate:    byDate,
		SessionTypes:      types,
		SessionPriceMinor: price,
		StartDate:         from.Format(booking.DateLayout),
		EndDate:           to.Format(booking.DateLayout),
	}, nil
}

func (q *catalogQueriesImpl) resolveRange(filter SessionFilter, now time.Time) (time.Time, time.Time, error) {
	today := clock.StartOfDay(now, q.loc)
	from, to := today, today.AddDate(0, 0, q.windowDays)

	if filter.StartDate != "" {
		d, err := time.ParseInLocation(booking.DateLayout, filter.StartDate, q.loc)
		if err != nil {
			return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDateRange)
		}
		from = d
	}
	if filter.EndDate != "" {
		d, err := time.ParseInLocation(booking.DateLayout, filter.EndDate, q.loc)
		if err != nil {
			return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDateRange)
		}
		to = d
	}
	if to.Before(from) || to.Sub(from) > time.Duration(q.windowDays)*24*time.Hour*2 {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return from, to, nil
}

func (q *catalogQueriesImpl) CreditPackages(ctx context.Context) ([]CreditPackageView, error) {
	packages, err := q.readStore.ActivePackages(ctx)
	if err != nil {
		return nil, err
	}
	price, err := q.readStore.SessionPriceMinor(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CreditPackageView, 0, len(packages))
	for _, p := range packages {
		offer := catalog.NewOffer(p, price)
		views = append(views, CreditPackageView{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			SessionCount:   p.SessionCount,
			PriceMinor:     p.PriceMinor,
			StandardMinor:  offer.StandardMinor,
			SavingsMinor:   offer.SavingsMinor,
			SavingsPercent: offer.SavingsPercent,
		})
	}
	return views, nil
}
