package components

import (
	"tripcart/internal/infra/cache"
	repo_impl "tripcart/internal/infra/repository"
	"tripcart/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(usecase.ProfileRepository)),
			fx.As(new(usecase.ProfileCreator)),
		),
		fx.Annotate(
			repo_impl.NewDestinationRepository,
			fx.As(new(usecase.DestinationRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentMethodRepository,
			fx.As(new(usecase.PaymentMethodRepository)),
		),
		fx.Annotate(
			repo_impl.NewAboutRepository,
			fx.As(new(usecase.AboutRepository)),
		),
		fx.Annotate(
			repo_impl.NewCartLineRepository,
			fx.As(new(usecase.CartLineRepository)),
		),
		fx.Annotate(
			func(c *cache.RedisCache) *cache.RedisCache { return c },
			fx.As(new(usecase.CatalogCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
