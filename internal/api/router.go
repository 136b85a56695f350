package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/atcnextgen/catalog-api/internal/api/handler"
	"github.com/atcnextgen/catalog-api/internal/api/middleware"
	"github.com/atcnextgen/catalog-api/internal/core/ports"
	"github.com/atcnextgen/catalog-api/internal/core/service"
)

// Deps bundles everything the router needs. Repositories are built against
// either backend at startup; the router never sees a concrete store.
type Deps struct {
	Auth        ports.AuthService
	Products    ports.ProductService
	Users       ports.UserRepository
	Tokens      *service.TokenService
	Development bool
	// Metrics overrides the Prometheus registerer; nil means the default
	// registry. Tests inject a fresh registry per router instance.
	Metrics prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, deps.Development)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	registerer := deps.Metrics
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "catalog",
		Registerer: registerer,
	}))

	// --- Handlers ---
	statusHandler := handler.NewStatusHandler()
	authHandler := handler.NewAuthHandler(deps.Auth)
	productHandler := handler.NewProductHandler(deps.Products, log)
	authGuard := middleware.Auth(deps.Tokens, deps.Users)

	// --- Public routes ---
	e.GET("/api/status", statusHandler.Status)
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected product routes ---
	// Static paths are listed before /:id; echo resolves static segments
	// first either way, so low-stock and total-value can never be shadowed.
	products := e.Group("/api/products", authGuard)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.GET("/low-stock", productHandler.LowStock)
	products.GET("/total-value", productHandler.TotalValue)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Catch-all ---
	e.RouteNotFound("/*", statusHandler.NotFound)

	return e
}
