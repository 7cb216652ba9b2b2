package usecase

import (
	"context"
	"errors"
	"log/slog"

	"tripcart/internal/domain/catalog"
	reqdto "tripcart/internal/handler/dto/request"
	"tripcart/internal/infra"
	"tripcart/internal/pkg/errs"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrDestinationNotFound   = errors.New("destination not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrAboutEntryNotFound    = errors.New("about entry not found")
	ErrInvalidReference      = errors.New("referenced category or payment method does not exist")
	ErrDestinationInUse      = errors.New("destination is referenced by cart lines")

	ErrCatalogDomainValidation = errors.New("catalog domain validation failed")
	ErrCatalogDatabaseFailed   = errors.New("catalog database operation failed")
)

type DestinationRepository interface {
	Create(ctx context.Context, d *catalog.Destination) (*readmodel.DestinationRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.DestinationRM, error)
	List(ctx context.Context) ([]*readmodel.DestinationRM, error)
	Update(ctx context.Context, id uuid.UUID, d *catalog.Destination) (*readmodel.DestinationRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentMethodRepository interface {
	List(ctx context.Context) ([]*readmodel.PaymentMethodRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.PaymentMethodRM, error)
	FindDefault(ctx context.Context) (*readmodel.PaymentMethodRM, error)
}

type AboutRepository interface {
	List(ctx context.Context) ([]*readmodel.AboutEntryRM, error)
	Create(ctx context.Context, fullName string, github, linkedin, imageURL *string) (*readmodel.AboutEntryRM, error)
	Update(ctx context.Context, id uuid.UUID, fullName string, github, linkedin, imageURL *string) (*readmodel.AboutEntryRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogCache fronts the destination list; a nil, nil return is a miss.
type CatalogCache interface {
	GetDestinations(ctx context.Context) ([]*readmodel.DestinationRM, error)
	SetDestinations(ctx context.Context, destinations []*readmodel.DestinationRM) error
	InvalidateDestinations(ctx context.Context) error
}

type CatalogUseCase interface {
	ListDestinations(ctx context.Context) ([]*readmodel.DestinationRM, error)
	GetDestination(ctx context.Context, id uuid.UUID) (*readmodel.DestinationRM, error)
	CreateDestination(ctx context.Context, req reqdto.DestinationRequest) (*readmodel.DestinationRM, error)
	UpdateDestination(ctx context.Context, id uuid.UUID, req reqdto.DestinationRequest) (*readmodel.DestinationRM, error)
	DeleteDestination(ctx context.Context, id uuid.UUID) error

	ListPaymentMethods(ctx context.Context) ([]*readmodel.PaymentMethodRM, error)
	GetPaymentMethod(ctx context.Context, id uuid.UUID) (*readmodel.PaymentMethodRM, error)

	ListAboutEntries(ctx context.Context) ([]*readmodel.AboutEntryRM, error)
	CreateAboutEntry(ctx context.Context, req reqdto.AboutEntryRequest) (*readmodel.AboutEntryRM, error)
	UpdateAboutEntry(ctx context.Context, id uuid.UUID, req reqdto.AboutEntryRequest) (*readmodel.AboutEntryRM, error)
	DeleteAboutEntry(ctx context.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	destinationRepo   DestinationRepository
	paymentMethodRepo PaymentMethodRepository
	aboutRepo         AboutRepository
	cache             CatalogCache
}

func NewCatalogUseCase(
	destinationRepo DestinationRepository,
	paymentMethodRepo PaymentMethodRepository,
	aboutRepo AboutRepository,
	cache CatalogCache,
) CatalogUseCase {
	return &catalogUseCaseImpl{
		destinationRepo:   destinationRepo,
		paymentMethodRepo: paymentMethodRepo,
		aboutRepo:         aboutRepo,
		cache:             cache,
	}
}

// ListDestinations serves the public catalog through the cache. Cache errors
// degrade to a database read rather than failing the request.
func (c *catalogUseCaseImpl) ListDestinations(ctx context.Context) ([]*readmodel.DestinationRM, error) {
	cached, err := c.cache.GetDestinations(ctx)
	if err != nil {
		slog.Warn("destination cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	destinations, err := c.destinationRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogDatabaseFailed)
	}

	if err := c.cache.SetDestinations(ctx, destinations); err != nil {
		slog.Warn("destination cache write failed", "error", err)
	}

	return destinations, nil
}

func (c *catalogUseCaseImpl) GetDestination(ctx context.Context, id uuid.UUID) (*readmodel.DestinationRM, error) {
	rm, err := c.destinationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, errs.Mark(err, ErrCatalogDatabaseFailed)
	}
	return rm, nil
}

func (c *catalogUseCaseImpl) CreateDestination(ctx context.Context, req reqdto.DestinationRequest) (*readmodel.DestinationRM, error) {
	entity, err := req.ToDomain(uuid.Nil)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogDomainValidation)
	}

	rm, err := c.destinationRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrInvalidReference
		}
		return nil, errs.Mark(err, ErrCatalogDatabaseFailed)
	}

	c.invalidateDestinations(ctx)
	return rm, nil
}

func (c *catalogUseCaseImpl) UpdateDestination(ctx context.Context, id uuid.UUID, req reqdto.DestinationRequest) (*readmodel.DestinationRM, error) {
	entity, err := req.ToDomain(id)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogDomainValidation)
	}

	rm, err := c.destinationRepo.Update(ctx, id, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDestinationNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrInvalidReference
		}
		return nil, errs.Mark(err, ErrCatalogDatabaseFailed)
	}

	c.invalidateDestinations(ctx)
	return rm, nil
}

func (c *catalogUseCaseImpl) DeleteDestination(ctx context.Context, id uuid.UUID) error {
	if err := c.destinationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDestinationNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrDestinationInUse
		}
		return errs.Mark(err, ErrCatalogDatabaseFailed)
	}

	c.invalidateDestinations(ctx)
	return nil
}

func (c *catalogUseCaseImpl) ListPaymentMethods(ctx context.Context) ([]*readmodel.PaymentMethodRM, error) {
	methods, err := c.paymentMethodRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogDatabaseFailed)
	}
	return methods, nil
}

func (c *catalogUseCaseImpl) GetPaymentMethod(ctx context.Context, id uuid.UUID) (*readmodel.PaymentMethodRM, error) {
	rm, err := c.paymentMethodRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, errs.Mark(err, ErrCatalogDatabaseFailed)
	}
	return rm, nil
}

func (c *catalogUseCaseImpl) ListAboutEntries(ctx context.Context) ([]*readmodel.AboutEntryRM, error) {
	entries, err := c.aboutRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogDatabaseFailed)
	}
	return entries, nil
}

func (c *catalogUseCaseImpl) CreateAboutEntry(ctx context.Context, req reqdto.AboutEntryRequest) (*readmodel.AboutEntryRM, error) {
	rm, err := c.aboutRepo.Create(ctx, req.FullName, req.GitHub, req.LinkedIn, req.ImageURL)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogDatabaseFailed)
	}
	return rm, nil
}

func (c *catalogUseCaseImpl) UpdateAboutEntry(ctx context.Context, id uuid.UUID, req reqdto.AboutEntryRequest) (*readmodel.AboutEntryRM, error) {
	rm, err := c.aboutRepo.Update(ctx, id, req.FullName, req.GitHub, req.LinkedIn, req.ImageURL)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAboutEntryNotFound
		}
		return nil, errs.Mark(err, ErrCatalogDatabaseFailed)
	}
	return rm, nil
}

func (c *catalogUseCaseImpl) DeleteAboutEntry(ctx context.Context, id uuid.UUID) error {
	if err := c.aboutRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAboutEntryNotFound
		}
		return errs.Mark(err, ErrCatalogDatabaseFailed)
	}
	return nil
}

func (c *catalogUseCaseImpl) invalidateDestinations(ctx context.Context) {
	if err := c.cache.InvalidateDestinations(ctx); err != nil {
		slog.Warn("destination cache invalidation failed", "error", err)
	}
}
