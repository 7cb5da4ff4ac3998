package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartreturn/storefront-service/internal/domain/dto"
	"github.com/smartreturn/storefront-service/internal/i18n"
)

// CreateCart handles cart creation.
// @Summary Create a cart
// @Description Creates a new empty cart and returns it
// @Tags carts
// @Produce json
// @Success 201 {object} dto.SuccessResponse{data=model.Cart}
// @Failure 429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Router /api/carts [post]
func (h *Handler) CreateCart(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	cart, err := h.carts.Create(c.Request.Context())
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessCreated(cart)
}

// GetCart handles fetching a cart by ID.
// @Summary Get a cart
// @Description Returns the cart with its lines and derived totals
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Success 200 {object} dto.SuccessResponse{data=model.Cart}
// @Failure 404 {object} dto.ErrorResponse "Cart not found"
// @Router /api/carts/{cartID} [get]
func (h *Handler) GetCart(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	cart, err := h.carts.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessOK(cart)
}

// ClearCart handles emptying a cart.
// @Summary Clear a cart
// @Description Removes every line from the cart
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Success 200 {object} dto.SuccessResponse{data=model.Cart}
// @Failure 404 {object} dto.ErrorResponse "Cart not found"
// @Router /api/carts/{cartID} [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	cart, err := h.carts.Clear(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessOK(cart)
}

// SetLineQuantity handles setting a cart line to an exact quantity.
// @Summary Set a line quantity
// @Description Sets the line for the item to an exact quantity; zero or below removes the line
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param itemID path string true "Item ID"
// @Param request body dto.SetQuantityRequest true "Exact quantity"
// @Success 200 {object} dto.SuccessResponse{data=model.Cart}
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Cart not found"
// @Router /api/carts/{cartID}/items/{itemID} [put]
func (h *Handler) SetLineQuantity(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SetQuantityRequest](c)
	if err != nil {
		respBuilder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.carts.SetQuantity(c.Request.Context(), c.Param("cartID"), c.Param("itemID"), req.Quantity)
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessOK(cart)
}

// RemoveLine handles removing a cart line.
// @Summary Remove a cart line
// @Description Removes the line for the item from the cart
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} dto.SuccessResponse{data=model.Cart}
// @Failure 404 {object} dto.ErrorResponse "Cart not found"
// @Router /api/carts/{cartID}/items/{itemID} [delete]
func (h *Handler) RemoveLine(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	cart, err := h.carts.RemoveItem(c.Request.Context(), c.Param("cartID"), c.Param("itemID"))
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessOK(cart)
}

// GetCartInvoice handles rendering the cart as a PDF invoice.
// @Summary Download a cart invoice
// @Description Renders the cart as an itemized PDF invoice
// @Tags carts
// @Produce application/pdf
// @Param cartID path string true "Cart ID"
// @Success 200 {file} binary "PDF invoice"
// @Failure 404 {object} dto.ErrorResponse "Cart not found"
// @Router /api/carts/{cartID}/invoice [get]
func (h *Handler) GetCartInvoice(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	cart, err := h.carts.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	pdf, err := h.invoices.Generate(cart)
	if err != nil {
		respBuilder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", cart.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
