package usecase

import (
	"context"
	"errors"
	"log/slog"

	"tripcart/internal/domain/cart"
	reqdto "tripcart/internal/handler/dto/request"
	"tripcart/internal/infra"
	"tripcart/internal/infra/gateway"
	"tripcart/internal/pkg/config"
	"tripcart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNoValidItems   = errors.New("no valid items to process for payment")
	ErrGatewayFailure = errors.New("payment gateway rejected the preference")

	ErrCheckoutDatabaseFailed = errors.New("checkout database operation failed")
)

// placeholderPayerEmail stands in when the account has no usable email, so
// the gateway never rejects the preference over a missing payer.
const placeholderPayerEmail = "test_user@example.com"

type PaymentGateway interface {
	CreatePreference(ctx context.Context, req gateway.PreferenceRequest) (*gateway.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (*gateway.Payment, error)
	CurrencyID() string
}

type CheckoutResult struct {
	InitPoint         string
	PreferenceID      string
	ExternalReference string
}

type CheckoutUseCase interface {
	CreateCheckout(ctx context.Context, userID uuid.UUID, req reqdto.CreateCheckoutRequest) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	cartRepo        CartLineRepository
	destinationRepo DestinationRepository
	userRepo        UserRepository
	gateway         PaymentGateway
	publicBaseURL   string
	db              TxBeginner
}

func NewCheckoutUseCase(
	cartRepo CartLineRepository,
	destinationRepo DestinationRepository,
	userRepo UserRepository,
	paymentGateway PaymentGateway,
	serverCfg config.ServerConfig,
	db TxBeginner,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		cartRepo:        cartRepo,
		destinationRepo: destinationRepo,
		userRepo:        userRepo,
		gateway:         paymentGateway,
		publicBaseURL:   serverCfg.PublicBaseURL,
		db:              db,
	}
}

// CreateCheckout turns the caller's cart into a hosted checkout session.
//
// One correlation id covers the whole attempt. Items that cannot be matched
// to a cart_active line are skipped rather than failing the attempt; lines
// that do match move to in_process inside a single transaction. The gateway
// call happens with that transaction still open: on success the preference id
// commits together with the status changes, on failure the compensating
// revert commits instead. There is never a state where only some lines of a
// correlation id carry the preference id.
func (c *checkoutUseCaseImpl) CreateCheckout(ctx context.Context, userID uuid.UUID, req reqdto.CreateCheckoutRequest) (*CheckoutResult, error) {
	userRM, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrCheckoutDatabaseFailed)
	}

	payerEmail := userRM.Email
	if payerEmail == "" {
		payerEmail = placeholderPayerEmail
	}

	externalReference := cart.NewExternalReference(userID)

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutDatabaseFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			// Only log rollback errors for uncommitted transactions
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	var items []gateway.PreferenceItem
	var lineIDs []uuid.UUID

	for _, item := range req.Items {
		quantity, err := cart.NewQuantity(item.Quantity)
		if err != nil {
			slog.Warn("skipping checkout item with invalid quantity",
				"destination_id", item.DestinationID, "quantity", item.Quantity)
			continue
		}

		destination, err := c.destinationRepo.FindByID(ctx, item.DestinationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("skipping checkout item for unknown destination",
					"destination_id", item.DestinationID)
				continue
			}
			return nil, errs.Mark(err, ErrCheckoutDatabaseFailed)
		}

		line, err := c.cartRepo.FindActiveByUserAndDestination(ctx, tx, userID, destination.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("skipping checkout item without an active cart line",
					"user_id", userID, "destination_id", destination.ID)
				continue
			}
			return nil, errs.Mark(err, ErrCheckoutDatabaseFailed)
		}

		if err := c.cartRepo.MarkInProcess(ctx, tx, line.ID, quantity, externalReference); err != nil {
			return nil, errs.Mark(err, ErrCheckoutDatabaseFailed)
		}

		lineIDs = append(lineIDs, line.ID)
		items = append(items, gateway.PreferenceItem{
			ID:          destination.ID.String(),
			Title:       destination.Name,
			Description: destination.Description,
			PictureURL:  destination.ImageURL,
			Quantity:    quantity.Value(),
			CurrencyID:  c.gateway.CurrencyID(),
			UnitPrice:   destination.UnitPrice,
		})
	}

	// Rolling back here discards the in_process marks, so a failed attempt
	// leaves the cart untouched.
	if len(items) == 0 {
		return nil, ErrNoValidItems
	}

	preference, err := c.gateway.CreatePreference(ctx, c.buildPreferenceRequest(items, payerEmail, externalReference, userID))
	if err != nil {
		if revertErr := c.cartRepo.RevertToCartActiveByIDs(ctx, tx, lineIDs); revertErr != nil {
			return nil, errs.Mark(revertErr, ErrCheckoutDatabaseFailed)
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			return nil, errs.Mark(commitErr, ErrCheckoutDatabaseFailed)
		}
		slog.Warn("preference creation failed, cart lines reverted",
			"external_reference", externalReference, "error", err)
		return nil, errs.Mark(err, ErrGatewayFailure)
	}

	if err := c.cartRepo.UpdatePreferenceByIDs(ctx, tx, lineIDs, preference.ID); err != nil {
		return nil, errs.Mark(err, ErrCheckoutDatabaseFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrCheckoutDatabaseFailed)
	}

	slog.Info("checkout preference created",
		"external_reference", externalReference,
		"preference_id", preference.ID,
		"lines", len(lineIDs))

	return &CheckoutResult{
		InitPoint:         preference.InitPoint,
		PreferenceID:      preference.ID,
		ExternalReference: externalReference,
	}, nil
}

func (c *checkoutUseCaseImpl) buildPreferenceRequest(
	items []gateway.PreferenceItem,
	payerEmail, externalReference string,
	userID uuid.UUID,
) gateway.PreferenceRequest {
	return gateway.PreferenceRequest{
		Items: items,
		Payer: gateway.Payer{Email: payerEmail},
		BackURLs: gateway.BackURLs{
			Success: c.publicBaseURL + "/api/payments/success",
			Failure: c.publicBaseURL + "/api/payments/failure",
			Pending: c.publicBaseURL + "/api/payments/pending",
		},
		AutoReturn:        "approved",
		NotificationURL:   c.publicBaseURL + "/api/payments/notifications",
		ExternalReference: externalReference,
		BinaryMode:        false,
		Metadata:          map[string]string{"user_id": userID.String()},
	}
}
