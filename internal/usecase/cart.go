package usecase

import (
	"context"
	"errors"
	"time"

	"tripcart/internal/domain/cart"
	reqdto "tripcart/internal/handler/dto/request"
	"tripcart/internal/infra"
	"tripcart/internal/infra/repository"
	"tripcart/internal/pkg/errs"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrMissingDate      = errors.New("departure date is required")
	ErrNoPaymentMethods = errors.New("no payment methods configured")

	ErrCartDatabaseFailed = errors.New("cart database operation failed")
)

type CartLineRepository interface {
	Create(ctx context.Context, userID, destinationID uuid.UUID, paymentMethodID *uuid.UUID, quantity cart.Quantity, departureDate *time.Time) (uuid.UUID, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.CartLineRM, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.CartLineRM, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*readmodel.CartLineRM, error)
	UpdateQuantity(ctx context.Context, id, userID uuid.UUID, quantity cart.Quantity) error
	UpdateDepartureDate(ctx context.Context, id, userID uuid.UUID, date time.Time) error
	Delete(ctx context.Context, id, userID uuid.UUID) error

	FindActiveByUserAndDestination(ctx context.Context, tx repository.DBTX, userID, destinationID uuid.UUID) (*readmodel.CartLineRM, error)
	MarkInProcess(ctx context.Context, tx repository.DBTX, id uuid.UUID, quantity cart.Quantity, externalReference string) error
	IDsByExternalReference(ctx context.Context, tx repository.DBTX, externalReference string) ([]uuid.UUID, error)
	UpdatePreferenceByIDs(ctx context.Context, tx repository.DBTX, ids []uuid.UUID, preferenceID string) error
	RevertToCartActiveByIDs(ctx context.Context, tx repository.DBTX, ids []uuid.UUID) error
	ApplyPaymentStatusByIDs(ctx context.Context, tx repository.DBTX, ids []uuid.UUID, status cart.PaymentStatus, paymentID string, purchasedAt *time.Time) error
}

type CartUseCase interface {
	GetCart(ctx context.Context, userID uuid.UUID) ([]*readmodel.CartLineRM, error)
	AddLine(ctx context.Context, userID uuid.UUID, req reqdto.AddCartLineRequest) (*readmodel.CartLineRM, error)
	RemoveLine(ctx context.Context, userID, lineID uuid.UUID) error
	UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int32) (*readmodel.CartLineRM, error)
	UpdateDepartureDate(ctx context.Context, userID, lineID uuid.UUID, date *time.Time) (*readmodel.CartLineRM, error)
	GetPurchases(ctx context.Context, userID uuid.UUID) ([]*readmodel.CartLineRM, error)
}

type cartUseCaseImpl struct {
	cartRepo          CartLineRepository
	destinationRepo   DestinationRepository
	paymentMethodRepo PaymentMethodRepository
}

func NewCartUseCase(
	cartRepo CartLineRepository,
	destinationRepo DestinationRepository,
	paymentMethodRepo PaymentMethodRepository,
) CartUseCase {
	return &cartUseCaseImpl{
		cartRepo:          cartRepo,
		destinationRepo:   destinationRepo,
		paymentMethodRepo: paymentMethodRepo,
	}
}

func (c *cartUseCaseImpl) GetCart(ctx context.Context, userID uuid.UUID) ([]*readmodel.CartLineRM, error) {
	lines, err := c.cartRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartDatabaseFailed)
	}
	return lines, nil
}

func (c *cartUseCaseImpl) AddLine(ctx context.Context, userID uuid.UUID, req reqdto.AddCartLineRequest) (*readmodel.CartLineRM, error) {
	quantity, err := cart.NewQuantity(req.EffectiveQuantity())
	if err != nil {
		return nil, ErrInvalidQuantity
	}

	destination, err := c.destinationRepo.FindByID(ctx, req.DestinationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, errs.Mark(err, ErrCartDatabaseFailed)
	}

	paymentMethodID, err := c.resolvePaymentMethod(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	departureDate := req.DepartureDate
	if departureDate == nil {
		departureDate = destination.DepartureDate
	}

	lineID, err := c.cartRepo.Create(ctx, userID, destination.ID, paymentMethodID, quantity, departureDate)
	if err != nil {
		return nil, errs.Mark(err, ErrCartDatabaseFailed)
	}

	return c.findLine(ctx, lineID, userID)
}

func (c *cartUseCaseImpl) RemoveLine(ctx context.Context, userID, lineID uuid.UUID) error {
	if err := c.cartRepo.Delete(ctx, lineID, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCartLineNotFound
		}
		return errs.Mark(err, ErrCartDatabaseFailed)
	}
	return nil
}

func (c *cartUseCaseImpl) UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int32) (*readmodel.CartLineRM, error) {
	q, err := cart.NewQuantity(quantity)
	if err != nil {
		return nil, ErrInvalidQuantity
	}

	if err := c.cartRepo.UpdateQuantity(ctx, lineID, userID, q); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartLineNotFound
		}
		return nil, errs.Mark(err, ErrCartDatabaseFailed)
	}

	return c.findLine(ctx, lineID, userID)
}

func (c *cartUseCaseImpl) UpdateDepartureDate(ctx context.Context, userID, lineID uuid.UUID, date *time.Time) (*readmodel.CartLineRM, error) {
	if date == nil {
		return nil, ErrMissingDate
	}

	if err := c.cartRepo.UpdateDepartureDate(ctx, lineID, userID, *date); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartLineNotFound
		}
		return nil, errs.Mark(err, ErrCartDatabaseFailed)
	}

	return c.findLine(ctx, lineID, userID)
}

// GetPurchases returns every line the user has ever created, whatever its
// payment status. The storefront's dashboard filters client-side.
func (c *cartUseCaseImpl) GetPurchases(ctx context.Context, userID uuid.UUID) ([]*readmodel.CartLineRM, error) {
	lines, err := c.cartRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartDatabaseFailed)
	}
	return lines, nil
}

func (c *cartUseCaseImpl) resolvePaymentMethod(ctx context.Context, requested *uuid.UUID) (*uuid.UUID, error) {
	if requested != nil {
		method, err := c.paymentMethodRepo.FindByID(ctx, *requested)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrPaymentMethodNotFound
			}
			return nil, errs.Mark(err, ErrCartDatabaseFailed)
		}
		return &method.ID, nil
	}

	method, err := c.paymentMethodRepo.FindDefault(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoPaymentMethods
		}
		return nil, errs.Mark(err, ErrCartDatabaseFailed)
	}
	return &method.ID, nil
}

func (c *cartUseCaseImpl) findLine(ctx context.Context, lineID, userID uuid.UUID) (*readmodel.CartLineRM, error) {
	line, err := c.cartRepo.FindByIDForUser(ctx, lineID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartLineNotFound
		}
		return nil, errs.Mark(err, ErrCartDatabaseFailed)
	}
	return line, nil
}
