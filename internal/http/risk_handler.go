package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartreturn/storefront-service/internal/domain/dto"
	"github.com/smartreturn/storefront-service/internal/i18n"
)

// OpenGate handles opening a risk-gate analysis for an item.
// @Summary Analyze an item's return risk
// @Description Runs the advisory return-risk analysis for an item and opens a gate awaiting confirmation. Opening a new gate for a cart supersedes any gate already open for it.
// @Tags risk
// @Accept json
// @Produce json
// @Param request body dto.OpenGateRequest true "Cart and item to analyze"
// @Success 201 {object} dto.SuccessResponse{data=service.Gate}
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Cart or item not found"
// @Router /api/risk/analyses [post]
func (h *Handler) OpenGate(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.OpenGateRequest](c)
	if err != nil {
		respBuilder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	gate, err := h.riskGate.Open(c.Request.Context(), req.CartID, req.ItemID)
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessCreated(gate)
}

// ConfirmGate handles confirming a resolved gate.
// @Summary Confirm a risk gate
// @Description Closes the gate and adds the chosen item to the cart. An empty item_id confirms the analyzed item; otherwise it must name the analyzed item or one of the listed alternatives.
// @Tags risk
// @Accept json
// @Produce json
// @Param gateID path string true "Gate ID"
// @Param request body dto.ConfirmGateRequest false "Optional alternative selection"
// @Success 200 {object} dto.SuccessResponse{data=model.Cart}
// @Failure 404 {object} dto.ErrorResponse "Gate or item not found"
// @Router /api/risk/analyses/{gateID}/confirm [post]
func (h *Handler) ConfirmGate(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	var req dto.ConfirmGateRequest
	if c.Request.ContentLength > 0 {
		if err := NewRequestBuilder(c).Bind(&req); err != nil {
			respBuilder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
	}

	cart, err := h.riskGate.Confirm(c.Request.Context(), c.Param("gateID"), req.ItemID)
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessOK(cart)
}

// CancelGate handles discarding a gate without touching the cart.
// @Summary Cancel a risk gate
// @Description Discards the gate; the cart is left unchanged
// @Tags risk
// @Produce json
// @Param gateID path string true "Gate ID"
// @Success 200 {object} dto.SuccessResponse{data=object}
// @Failure 404 {object} dto.ErrorResponse "Gate not found"
// @Router /api/risk/analyses/{gateID} [delete]
func (h *Handler) CancelGate(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	if err := h.riskGate.Cancel(c.Param("gateID")); err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessOK(gin.H{"cancelled": true})
}
