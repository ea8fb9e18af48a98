package repository

import (
	"context"

	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/usecase/shared"
)

type WebhookEventWriteQueries interface {
	InsertWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertWebhookEventParams) (int64, error)
}

type WebhookEventRepository struct {
	queries WebhookEventWriteQueries
	db      sqlc.DBTX
}

func NewWebhookEventRepository(queries WebhookEventWriteQueries, db sqlc.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WebhookEventRepository) Record(ctx context.Context, tx sqlc.DBTX, ev shared.WebhookEventRecord) (bool, error) {
	affected, err := r.queries.InsertWebhookEvent(ctx, tx, sqlc.InsertWebhookEventParams{
		Provider:          ev.Provider,
		ProviderEventID:   ev.EventID,
		EventType:         ev.EventType,
		CheckoutReference: ev.CheckoutReference,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return affected > 0, nil
}
