// Package http provides the HTTP transport layer for the storefront service.
package http

import (
	"errors"
	"net/http"

	"github.com/smartreturn/storefront-service/internal/i18n"
	"github.com/smartreturn/storefront-service/internal/service"
)

// Handler provides HTTP handlers for the storefront routes.
type Handler struct {
	catalog     service.Catalog
	carts       service.CartService
	riskGate    service.RiskGateService
	checkout    service.CheckoutService
	preferences service.PreferencesService
	invoices    service.InvoiceGenerator
}

// NewHandler creates a new Handler instance.
func NewHandler(
	catalog service.Catalog,
	carts service.CartService,
	riskGate service.RiskGateService,
	checkout service.CheckoutService,
	preferences service.PreferencesService,
	invoices service.InvoiceGenerator,
) *Handler {
	return &Handler{
		catalog:     catalog,
		carts:       carts,
		riskGate:    riskGate,
		checkout:    checkout,
		preferences: preferences,
		invoices:    invoices,
	}
}

// serviceErrorStatus maps service sentinel errors to HTTP statuses and
// translation keys. Unrecognized errors fall through to 500.
func serviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		return http.StatusNotFound, i18n.ErrKeyCartNotFound
	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound, i18n.ErrKeyItemNotFound
	case errors.Is(err, service.ErrGateNotFound):
		return http.StatusNotFound, i18n.ErrKeyGateNotFound
	case errors.Is(err, service.ErrCartEmpty):
		return http.StatusUnprocessableEntity, i18n.ErrKeyCartEmpty
	case errors.Is(err, service.ErrCheckoutInFlight):
		return http.StatusConflict, i18n.ErrKeyCheckoutInFlight
	case errors.Is(err, service.ErrSettlementFailed):
		return http.StatusBadGateway, i18n.ErrKeySettlementFailed
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}
