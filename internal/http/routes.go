package http

import "github.com/gin-gonic/gin"

// RouteGroup registers a set of related routes on a router group.
type RouteGroup interface {
	Register(group *gin.RouterGroup)
}

// CatalogRoutes registers the product catalog routes.
type CatalogRoutes struct {
	handler *Handler
}

// NewCatalogRoutes creates the catalog route group.
func NewCatalogRoutes(handler *Handler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

// Register registers catalog routes on the group.
func (r *CatalogRoutes) Register(group *gin.RouterGroup) {
	group.GET("/products", r.handler.ListProducts)
	group.GET("/products/:itemID", r.handler.GetProduct)
}

// CartRoutes registers the cart lifecycle routes.
type CartRoutes struct {
	handler *Handler
}

// NewCartRoutes creates the cart route group.
func NewCartRoutes(handler *Handler) *CartRoutes {
	return &CartRoutes{handler: handler}
}

// Register registers cart routes on the group.
func (r *CartRoutes) Register(group *gin.RouterGroup) {
	group.POST("/carts", r.handler.CreateCart)
	group.GET("/carts/:cartID", r.handler.GetCart)
	group.DELETE("/carts/:cartID", r.handler.ClearCart)
	group.PUT("/carts/:cartID/items/:itemID", r.handler.SetLineQuantity)
	group.DELETE("/carts/:cartID/items/:itemID", r.handler.RemoveLine)
	group.GET("/carts/:cartID/invoice", r.handler.GetCartInvoice)
}

// RiskRoutes registers the risk-gate routes. Direct item adds go through
// the gate: there is intentionally no bare add-to-cart endpoint.
type RiskRoutes struct {
	handler *Handler
}

// NewRiskRoutes creates the risk route group.
func NewRiskRoutes(handler *Handler) *RiskRoutes {
	return &RiskRoutes{handler: handler}
}

// Register registers risk-gate routes on the group.
func (r *RiskRoutes) Register(group *gin.RouterGroup) {
	group.POST("/risk/analyses", r.handler.OpenGate)
	group.POST("/risk/analyses/:gateID/confirm", r.handler.ConfirmGate)
	group.DELETE("/risk/analyses/:gateID", r.handler.CancelGate)
}

// CheckoutRoutes registers the checkout route.
type CheckoutRoutes struct {
	handler *Handler
}

// NewCheckoutRoutes creates the checkout route group.
func NewCheckoutRoutes(handler *Handler) *CheckoutRoutes {
	return &CheckoutRoutes{handler: handler}
}

// Register registers the checkout route on the group.
func (r *CheckoutRoutes) Register(group *gin.RouterGroup) {
	group.POST("/checkout", r.handler.Checkout)
}

// PreferenceRoutes registers the preference routes.
type PreferenceRoutes struct {
	handler *Handler
}

// NewPreferenceRoutes creates the preference route group.
func NewPreferenceRoutes(handler *Handler) *PreferenceRoutes {
	return &PreferenceRoutes{handler: handler}
}

// Register registers preference routes on the group.
func (r *PreferenceRoutes) Register(group *gin.RouterGroup) {
	group.GET("/preferences/:ownerID/theme", r.handler.GetTheme)
	group.PUT("/preferences/:ownerID/theme", r.handler.SetTheme)
}

// registerStorefrontRoutes wires every storefront route group onto the API
// group.
func registerStorefrontRoutes(api *gin.RouterGroup, handler *Handler) {
	groups := []RouteGroup{
		NewCatalogRoutes(handler),
		NewCartRoutes(handler),
		NewRiskRoutes(handler),
		NewCheckoutRoutes(handler),
		NewPreferenceRoutes(handler),
	}
	for _, g := range groups {
		g.Register(api)
	}
}
