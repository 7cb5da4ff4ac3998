package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartreturn/storefront-service/internal/i18n"
)

// ListProducts handles product catalog listing and search.
// @Summary List catalog products
// @Description Returns the product catalog, optionally filtered by a case-insensitive search over name and category
// @Tags products
// @Produce json
// @Param q query string false "Search query over name and category"
// @Success 200 {object} dto.SuccessResponse{data=[]model.Item}
// @Failure 429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Router /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	query := c.Query("q")
	items := h.catalog.Search(query)

	respBuilder.SuccessOK(items)
}

// GetProduct handles fetching a single product by ID.
// @Summary Get a product
// @Description Returns a single catalog product by its ID
// @Tags products
// @Produce json
// @Param itemID path string true "Product ID"
// @Success 200 {object} dto.SuccessResponse{data=model.Item}
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Router /api/products/{itemID} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	itemID := c.Param("itemID")
	item, ok := h.catalog.Get(itemID)
	if !ok {
		respBuilder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, nil)
		return
	}

	respBuilder.SuccessOK(item)
}
