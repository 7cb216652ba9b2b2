package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"tripcart/internal/domain/cart"
	reqdto "tripcart/internal/handler/dto/request"
	"tripcart/internal/pkg/clock"
	"tripcart/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

const topicPayment = "payment"

type WebhookUseCase interface {
	ProcessNotification(ctx context.Context, notification reqdto.WebhookNotification) error
}

type webhookUseCaseImpl struct {
	cartRepo CartLineRepository
	gateway  PaymentGateway
	clock    clock.Clock
	db       TxBeginner
}

func NewWebhookUseCase(
	cartRepo CartLineRepository,
	paymentGateway PaymentGateway,
	clock clock.Clock,
	db TxBeginner,
) WebhookUseCase {
	return &webhookUseCaseImpl{
		cartRepo: cartRepo,
		gateway:  paymentGateway,
		clock:    clock,
		db:       db,
	}
}

// ProcessNotification applies one asynchronous payment notification to the
// cart lines sharing its external reference: resolve the matching line ids,
// then overwrite status and payment id in a single batched update, both
// inside one transaction. The overwrite is unconditional, so redelivering the
// same notification converges on the same row state.
//
// The handler acknowledges deliveries regardless of the outcome here; errors
// returned from this method exist for logging, not for NACKing the gateway.
func (w *webhookUseCaseImpl) ProcessNotification(ctx context.Context, notification reqdto.WebhookNotification) error {
	if notification.Topic != topicPayment {
		slog.Info("ignoring non-payment notification", "topic", notification.Topic)
		return nil
	}

	payment, err := w.gateway.GetPayment(ctx, notification.ID.String())
	if err != nil {
		return errs.Wrap(err, "failed to fetch payment details")
	}

	if payment.ExternalReference == "" {
		slog.Warn("payment notification without external reference",
			"payment_id", payment.ID)
		return nil
	}

	tx, err := w.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrCheckoutDatabaseFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			// Only log rollback errors for uncommitted transactions
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	ids, err := w.cartRepo.IDsByExternalReference(ctx, tx, payment.ExternalReference)
	if err != nil {
		return errs.Wrap(err, "failed to resolve cart lines for external reference")
	}

	if len(ids) == 0 {
		slog.Warn("no matching cart lines for external reference",
			"external_reference", payment.ExternalReference,
			"payment_id", payment.ID)
		return nil
	}

	status := cart.PaymentStatus(payment.Status)

	var purchasedAt *time.Time
	if status == cart.StatusApproved {
		now := w.clock.Now()
		purchasedAt = &now
	}

	paymentID := strconv.FormatInt(payment.ID, 10)
	if err := w.cartRepo.ApplyPaymentStatusByIDs(ctx, tx, ids, status, paymentID, purchasedAt); err != nil {
		return errs.Wrap(err, "failed to apply payment status")
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit payment status update")
	}

	slog.Info("payment notification applied",
		"external_reference", payment.ExternalReference,
		"payment_id", paymentID,
		"status", payment.Status,
		"lines", len(ids))

	return nil
}
