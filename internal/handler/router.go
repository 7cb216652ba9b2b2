package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tripcart/internal/handler/api"
	"tripcart/internal/handler/middleware"
	"tripcart/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, profileHandler, catalogHandler, cartHandler, checkoutHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		profiles := apiGroup.Group("/profiles")
		profiles.Use(authMiddleware.RequireAuth())
		{
			addRoutes(profiles, []route{
				{Method: http.MethodGet, Path: "/me", Handler: profileHandler.GetMe},
				{Method: http.MethodPatch, Path: "/me", Handler: profileHandler.UpdateMe},
			})

			admin := profiles.Group("")
			admin.Use(authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "", Handler: profileHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: profileHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: profileHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: profileHandler.Delete},
			})
		}

		destinations := apiGroup.Group("/destinations")
		{
			addRoutes(destinations, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListDestinations},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetDestination},
			})

			admin := destinations.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateDestination},
				{Method: http.MethodPut, Path: "/:id", Handler: catalogHandler.UpdateDestination},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteDestination},
			})
		}

		paymentMethods := apiGroup.Group("/payment-methods")
		addRoutes(paymentMethods, []route{
			{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListPaymentMethods},
			{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetPaymentMethod},
		})

		about := apiGroup.Group("/about")
		{
			addRoutes(about, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListAboutEntries},
			})

			authed := about.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateAboutEntry},
				{Method: http.MethodPut, Path: "/:id", Handler: catalogHandler.UpdateAboutEntry},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteAboutEntry},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodPost, Path: "/add", Handler: cartHandler.AddLine},
				{Method: http.MethodDelete, Path: "/remove/:id", Handler: cartHandler.RemoveLine},
				{Method: http.MethodPut, Path: "/:id/update-quantity", Handler: cartHandler.UpdateQuantity},
				{Method: http.MethodPut, Path: "/:id/update-date", Handler: cartHandler.UpdateDepartureDate},
			})
		}

		purchases := apiGroup.Group("/purchases")
		purchases.Use(authMiddleware.RequireAuth())
		addRoutes(purchases, []route{
			{Method: http.MethodGet, Path: "", Handler: cartHandler.GetPurchases},
		})

		payments := apiGroup.Group("/payments")
		{
			// The gateway calls these endpoints directly; they carry no
			// bearer token.
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "/notifications", Handler: webhookHandler.Probe},
				{Method: http.MethodPost, Path: "/notifications", Handler: webhookHandler.ReceiveNotification},
				{Method: http.MethodGet, Path: "/success", Handler: webhookHandler.PaymentSuccess},
				{Method: http.MethodGet, Path: "/failure", Handler: webhookHandler.PaymentFailure},
				{Method: http.MethodGet, Path: "/pending", Handler: webhookHandler.PaymentPending},
			})

			authed := payments.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.CreateCheckout},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
