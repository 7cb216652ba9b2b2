package components

import (
	"tripcart/internal/infra/gateway"
	"tripcart/internal/pkg/clock"
	"tripcart/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewTxBeginner,
		fx.Annotate(
			func(c *gateway.Client) *gateway.Client { return c },
			fx.As(new(usecase.PaymentGateway)),
		),
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewProfileUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewCartUseCase,
		usecase.NewCheckoutUseCase,
		usecase.NewWebhookUseCase,
	),
)

func NewTxBeginner(pool *pgxpool.Pool) usecase.TxBeginner {
	return pool
}
