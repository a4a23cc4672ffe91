package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chillout-web/internal/backend"
	"chillout-web/internal/checkout"
	"chillout-web/internal/config"
	"chillout-web/internal/domain"
)

type menuService interface {
	List(ctx context.Context, category, search string) ([]domain.MenuItem, error)
	Invalidate(ctx context.Context)
}

type cartStore interface {
	Get(ctx context.Context, sessionID string) domain.CartState
	Add(ctx context.Context, sessionID, menuItemID string) (domain.CartState, error)
	Remove(ctx context.Context, sessionID, menuItemID string) (domain.CartState, error)
}

type checkoutDispatcher interface {
	Submit(ctx context.Context, sessionID string, details domain.CustomerDetails, method domain.PaymentMethod) (checkout.Outcome, error)
	ConfirmPayment(ctx context.Context, sessionID string) (string, error)
}

type sessionStore interface {
	Snapshot(ctx context.Context, sessionID string) (domain.OrderSnapshot, error)
	SaveAdminCredential(ctx context.Context, sessionID, password string) error
	AdminCredential(ctx context.Context, sessionID string) (string, error)
	ClearAdminCredential(ctx context.Context, sessionID string) error
}

type adminClient interface {
	Login(ctx context.Context, password string) (bool, error)
	FetchOrders(ctx context.Context, password string) ([]domain.OrderSummary, error)
	UpdateOrderStatus(ctx context.Context, password, orderID, status string) error
	AdminConfirmPayment(ctx context.Context, password, orderID string) error
	CreateMenuItem(ctx context.Context, password string, in backend.MenuItemInput) error
	UpdateMenuItem(ctx context.Context, password, itemID string, in backend.MenuItemInput) error
	DeleteMenuItem(ctx context.Context, password, itemID string) error
}

// Deps carries the components the handlers orchestrate.
type Deps struct {
	Menu       menuService
	Carts      cartStore
	Dispatcher checkoutDispatcher
	Sessions   sessionStore
	Admin      adminClient
	Bank       config.BankDetails
	Origins    []string
	SessionTTL time.Duration
}

// buildRouter wires routes for the web client.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.Origins) == 1 && deps.Origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.Origins
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Content-Type")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)

	h := &handlers{deps: deps, logger: logger}

	withSession := router.Group("/", sessionMiddleware(deps.SessionTTL))

	api := withSession.Group("/api")
	{
		api.GET("/menu", h.listMenu)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.POST("/cart/remove", h.removeCartItem)

		api.POST("/checkout", h.submitCheckout)
		api.POST("/checkout/confirm-payment", h.confirmPayment)
		api.GET("/confirmation", h.confirmation)

		admin := api.Group("/admin")
		{
			admin.POST("/login", h.adminLogin)
			admin.POST("/logout", h.adminLogout)

			guarded := admin.Group("/", h.requireAdmin)
			guarded.GET("/orders", h.adminListOrders)
			guarded.PUT("/orders/:id/status", h.adminUpdateOrderStatus)
			guarded.POST("/orders/:id/confirm-payment", h.adminConfirmPayment)
			guarded.POST("/menu", h.adminCreateMenuItem)
			guarded.PUT("/menu/:id", h.adminUpdateMenuItem)
			guarded.DELETE("/menu/:id", h.adminDeleteMenuItem)
		}
	}

	// Post-redirect landing routes. A missing orderId bounces back to
	// the menu.
	withSession.GET("/order-success", h.orderSuccess)
	withSession.GET("/payment-success", h.paymentSuccess)

	return router, nil
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
