package commands

import (
	"context"
	"fmt"
	"log/slog"

	"gym-booking/internal/domain/order"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCreditPackageNotFound = errs.New("credit package not found or inactive")
	ErrProviderUnavailable   = errs.New("payment provider unavailable")
)

// CardOrderRequest carries guest contact details only when the buyer is not signed in.
type CardOrderRequest struct {
	Items      []SlotRequest
	GuestEmail string
	GuestName  string
}

type CheckoutResult struct {
	CheckoutURL string
	Reference   string
}

type CheckoutCommands interface {
	CreateCardOrder(ctx context.Context, actorID *uuid.UUID, req CardOrderRequest) (*CheckoutResult, error)
	CreateCreditOrder(ctx context.Context, customerID, packageID uuid.UUID) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow         shared.UnitOfWork
	provider    PaymentProvider
	clock       clock.Clock
	currency    string
	description string
}

func NewCheckoutCommands(uow shared.UnitOfWork, provider PaymentProvider, clk clock.Clock, cfg config.Config) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:         uow,
		provider:    provider,
		clock:       clk,
		currency:    cfg.Payment.Currency,
		description: cfg.Payment.Description,
	}
}

func (uc *checkoutCommandsImpl) CreateCardOrder(ctx context.Context, actorID *uuid.UUID, req CardOrderRequest) (*CheckoutResult, error) {
	var guest *order.GuestContact
	if actorID == nil {
		g, err := order.NewGuestContact(req.GuestEmail, req.GuestName)
		if err != nil {
			return nil, err
		}
		guest = g
	}

	slots, err := parseSlots(req.Items)
	if err != nil {
		return nil, err
	}
	reads := uc.uow.CommandReads()
	if _, err = loadTemplates(ctx, reads, slots); err != nil {
		return nil, err
	}

	taken, err := reads.BookedSlots(ctx, slots)
	if err != nil {
		return nil, err
	}
	if len(taken) > 0 {
		return nil, errs.Wrapf(ErrAlreadyBooked, "%d of %d sessions taken", len(taken), len(slots))
	}

	price, err := reads.SessionPriceMinor(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]order.Item, 0, len(slots))
	for _, s := range slots {
		items = append(items, order.Item{
			TemplateID: s.TemplateID(),
			Date:       s.Date(),
			PriceMinor: price,
		})
	}

	o, err := order.NewSessionOrder(actorID, guest, items, uc.currency, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return uc.open(ctx, o, sessionDescription(uc.description, len(items)))
}

func (uc *checkoutCommandsImpl) CreateCreditOrder(ctx context.Context, customerID, packageID uuid.UUID) (*CheckoutResult, error) {
	pkg, err := uc.uow.CommandReads().ActivePackage(ctx, packageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCreditPackageNotFound)
		}
		return nil, err
	}

	o, err := order.NewCreditPackageOrder(customerID, pkg.ID, pkg.PriceMinor, uc.currency, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return uc.open(ctx, o, fmt.Sprintf("%s - %s", uc.description, pkg.Name))
}

// open creates the hosted checkout first and persists the order only once the provider accepted it.
func (uc *checkoutCommandsImpl) open(ctx context.Context, o *order.Order, description string) (*CheckoutResult, error) {
	checkout, err := uc.provider.CreateCheckout(ctx, CheckoutRequest{
		Reference:   o.Reference(),
		AmountMinor: o.TotalMinor(),
		Currency:    o.Currency(),
		Description: description,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrProviderUnavailable)
	}
	o.AttachCheckout(checkout.ID)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().Create(ctx, tx.DB(), o)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("checkout opened",
		"reference", o.Reference(),
		"checkout_id", checkout.ID,
		"total_minor", o.TotalMinor(),
		"credit_package", o.IsCreditPackage(),
		"guest", o.IsGuest())

	return &CheckoutResult{
		CheckoutURL: checkout.URL,
		Reference:   o.Reference(),
	}, nil
}

func sessionDescription(prefix string, n int) string {
	if n == 1 {
		return fmt.Sprintf("%s - 1 session", prefix)
	}
	return fmt.Sprintf("%s - %d sessions", prefix, n)
}

