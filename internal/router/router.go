package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/iliyamo/business-insights/internal/handler"    // handlers implementing the business logic
	"github.com/iliyamo/business-insights/internal/middleware" // JWT authentication and rate limiting middleware
)

// Handlers bundles every handler the router needs so main only passes
// one value around.
type Handlers struct {
	Auth      *handler.AuthHandler
	Users     *handler.UserHandler
	Business  *handler.BusinessHandler
	Inventory *handler.InventoryHandler
	Sales     *handler.SalesHandler
	Insights  *handler.InsightHandler
}

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes. These are public by
// definition, so instead of JWT they sit behind the rate limiter to slow
// down credential stuffing and OTP guessing.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/auth")
	if limiter != nil {
		g.Use(limiter)
	}
	// Registration creates a pending account and emails an OTP.
	g.POST("/register", a.Register)
	// OTP verification activates the pending account.
	g.POST("/verify_otp", a.VerifyOTP)
	// Login exchanges credentials for a signed session token.
	g.POST("/login", a.Login)
}

// RegisterAPI registers every protected route. All handlers registered
// here execute the JWTAuth middleware before being invoked.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string) {
	api := e.Group("")
	api.Use(middleware.JWTAuth(jwtSecret))

	api.GET("/users", h.Users.List)
	api.POST("/users", h.Users.Create)

	api.GET("/businesses/:user_id", h.Business.ListByUser)
	api.POST("/business", h.Business.Create)

	api.GET("/inventory/:business_id", h.Inventory.ListByBusiness)
	api.POST("/inventory", h.Inventory.Create)

	api.POST("/sales", h.Sales.Create)

	// The static segments (total_revenue, ...) are matched before the
	// bare :business_id history route.
	api.GET("/insights/:business_id", h.Insights.List)
	api.GET("/insights/total_revenue/:business_id", h.Insights.Revenue)
	api.GET("/insights/total_profit/:business_id", h.Insights.Profit)
	api.GET("/insights/inventory_value/:business_id", h.Insights.InventoryValue)
	api.GET("/insights/comprehensive/:business_id", h.Insights.Comprehensive)
}
