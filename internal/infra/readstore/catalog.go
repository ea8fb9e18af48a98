package readstore

import (
	"context"
	"strconv"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/catalog"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const sessionPriceSettingKey = "session_price_minor"

type CatalogReadQueries interface {
	ListActiveSessionTemplates(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListActiveSessionTemplatesRow, error)
	GetSessionTemplatesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.GetSessionTemplatesByIDsRow, error)
	ListSessionTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.SessionTypes, error)
	GetSettingValue(ctx context.Context, db sqlc.DBTX, key string) (string, error)
	ListActiveCreditPackages(ctx context.Context, db sqlc.DBTX) ([]sqlc.CreditPackages, error)
	GetActiveCreditPackage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CreditPackages, error)
	GetCreditPackage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CreditPackages, error)
	ListBookedSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedSlotsParams) ([]sqlc.ListBookedSlotsRow, error)
	ListBookedSlotsBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedSlotsBetweenParams) ([]sqlc.ListBookedSlotsBetweenRow, error)
}

type CatalogReadStore struct {
	queries           CatalogReadQueries
	db                sqlc.DBTX
	defaultPriceMinor int64
}

// NewCatalogReadStore falls back to defaultPriceMinor when the price setting is missing or malformed.
func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX, defaultPriceMinor int64) *CatalogReadStore {
	if defaultPriceMinor <= 0 {
		defaultPriceMinor = catalog.DefaultSessionPriceMinor
	}
	return &CatalogReadStore{
		queries:           queries,
		db:                db,
		defaultPriceMinor: defaultPriceMinor,
	}
}

func (r *CatalogReadStore) ActiveTemplates(ctx context.Context) ([]catalog.Template, error) {
	rows, err := r.queries.ListActiveSessionTemplates(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session templates", err)
	}
	out := make([]catalog.Template, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTemplate(sqlc.GetSessionTemplatesByIDsRow(row)))
	}
	return out, nil
}

func (r *CatalogReadStore) TemplatesByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Template, error) {
	rows, err := r.queries.GetSessionTemplatesByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get session templates", err)
	}
	out := make([]catalog.Template, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTemplate(row))
	}
	return out, nil
}

func (r *CatalogReadStore) SessionTypes(ctx context.Context) ([]queries.SessionTypeView, error) {
	rows, err := r.queries.ListSessionTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session types", err)
	}
	out := make([]queries.SessionTypeView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.SessionTypeView{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Color:       row.Color,
		})
	}
	return out, nil
}

func (r *CatalogReadStore) SessionPriceMinor(ctx context.Context) (int64, error) {
	value, err := r.queries.GetSettingValue(ctx, r.db, sessionPriceSettingKey)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return r.defaultPriceMinor, nil
		}
		return 0, infra.WrapRepoErr("failed to read session price", err)
	}
	price, err := strconv.ParseInt(value, 10, 64)
	if err != nil || price <= 0 {
		return r.defaultPriceMinor, nil
	}
	return price, nil
}

func (r *CatalogReadStore) ActivePackages(ctx context.Context) ([]catalog.Package, error) {
	rows, err := r.queries.ListActiveCreditPackages(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list credit packages", err)
	}
	out := make([]catalog.Package, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPackage(row))
	}
	return out, nil
}

func (r *CatalogReadStore) ActivePackage(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	row, err := r.queries.GetActiveCreditPackage(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("credit package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get credit package", err)
	}
	p := toPackage(row)
	return &p, nil
}

func (r *CatalogReadStore) Package(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	row, err := r.queries.GetCreditPackage(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("credit package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get credit package", err)
	}
	p := toPackage(row)
	return &p, nil
}

// BookedSlots returns the keys of the given slots that already have a booking.
func (r *CatalogReadStore) BookedSlots(ctx context.Context, slots []booking.Slot) (map[string]struct{}, error) {
	params := sqlc.ListBookedSlotsParams{
		TemplateIds: make([]uuid.UUID, 0, len(slots)),
		Dates:       make([]pgtype.Date, 0, len(slots)),
	}
	for _, s := range slots {
		params.TemplateIds = append(params.TemplateIds, s.TemplateID())
		params.Dates = append(params.Dates, pgconv.DateToPgtype(s.Date()))
	}

	rows, err := r.queries.ListBookedSlots(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slots", err)
	}
	taken := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if s, err := booking.NewSlot(row.SessionTemplateID, pgconv.DateFromPgtype(row.SessionDate)); err == nil {
			taken[s.Key()] = struct{}{}
		}
	}
	return taken, nil
}

func (r *CatalogReadStore) BookedSlotsBetween(ctx context.Context, from, to time.Time) (map[string]struct{}, error) {
	rows, err := r.queries.ListBookedSlotsBetween(ctx, r.db, sqlc.ListBookedSlotsBetweenParams{
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slots", err)
	}
	taken := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if s, err := booking.NewSlot(row.SessionTemplateID, pgconv.DateFromPgtype(row.SessionDate)); err == nil {
			taken[s.Key()] = struct{}{}
		}
	}
	return taken, nil
}

func toTemplate(row sqlc.GetSessionTemplatesByIDsRow) catalog.Template {
	return catalog.Template{
		ID:          row.ID,
		TypeID:      row.SessionTypeID,
		TypeName:    row.TypeName,
		DayOfWeek:   time.Weekday(row.DayOfWeek),
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		MaxCapacity: int(row.MaxCapacity),
		IsPrivate:   row.IsPrivate,
	}
}

func toPackage(row sqlc.CreditPackages) catalog.Package {
	return catalog.Package{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		SessionCount: int(row.SessionCount),
		PriceMinor:   row.PriceMinor,
		IsActive:     row.IsActive,
		SortOrder:    int(row.SortOrder),
	}
}
