package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartreturn/storefront-service/internal/domain/dto"
	"github.com/smartreturn/storefront-service/internal/i18n"
	"github.com/smartreturn/storefront-service/internal/service"
)

// Checkout handles settling a cart into an order.
// @Summary Check out a cart
// @Description Settles the cart into an order. Split mode divides the total between buyer and co-buyer and issues a signed payment invitation for the co-buyer's share.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Buyer details and optional split"
// @Success 201 {object} dto.SuccessResponse{data=model.Order}
// @Failure 400 {object} dto.ErrorResponse "Missing buyer details or invalid mode"
// @Failure 404 {object} dto.ErrorResponse "Cart not found"
// @Failure 409 {object} dto.ErrorResponse "Checkout already in flight for this cart"
// @Failure 422 {object} dto.ErrorResponse "Cart is empty"
// @Failure 502 {object} dto.ErrorResponse "Settlement failed; safe to retry"
// @Router /api/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CheckoutRequest](c)
	if err != nil {
		respBuilder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		respBuilder.Error(http.StatusBadRequest, validationErrorKey(err), err)
		return
	}

	order, err := h.checkout.Checkout(c.Request.Context(), service.CheckoutInput{
		CartID:       req.CartID,
		BuyerName:    req.BuyerName,
		BuyerEmail:   req.BuyerEmail,
		Mode:         req.CheckoutMode(),
		CoBuyerEmail: req.CoBuyerEmail,
		BuyerPercent: req.SplitPercent,
	})
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessCreated(order)
}

// validationErrorKey maps checkout validation errors to translation keys.
func validationErrorKey(err error) string {
	switch {
	case errors.Is(err, dto.ErrMissingBuyerInfo):
		return i18n.ErrKeyMissingBuyerInfo
	case errors.Is(err, dto.ErrMissingCoBuyerInfo):
		return i18n.ErrKeyMissingCoBuyerInfo
	default:
		return i18n.ErrKeyInvalidRequest
	}
}
