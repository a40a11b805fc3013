package handler

import (
	"fmt"
	"net/http"

	model "storefront-engine/internal/models"
	"storefront-engine/services/storefront/helpers"
	"storefront-engine/utils"

	"github.com/gin-gonic/gin"
)

type CartServiceInterface interface {
	Refresh() error
	Lines() []model.CartLine
	Add(storeID, productID string, quantity int) error
	UpdateQuantity(productID string, newQuantity int) error
	Remove(productID string) error
	Total() float64
	TotalSavings() float64
}

type CartHandler struct {
	service CartServiceInterface
}

func NewCartHandler(service CartServiceInterface) *CartHandler {
	return &CartHandler{service: service}
}

// cartResponse builds the priced cart payload from the current snapshot
func (h *CartHandler) cartResponse() helpers.CartResponse {
	lines := h.service.Lines()
	if lines == nil {
		lines = []model.CartLine{}
	}
	return helpers.CartResponse{
		Lines:        lines,
		Total:        h.service.Total(),
		TotalSavings: h.service.TotalSavings(),
	}
}

// GetCartHandler handles GET /cart. A failed refresh falls back to the
// last known snapshot rather than failing the view.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	if err := h.service.Refresh(); err != nil {
		utils.Warn("GetCartHandler: refresh failed, serving last known cart", map[string]any{
			"error": err.Error(),
		})
	}

	utils.JSONResponse(c, http.StatusOK, h.cartResponse(), "cart retrieved successfully")
}

// AddCartItemHandler handles POST /cart/items
func (h *CartHandler) AddCartItemHandler(c *gin.Context) {
	var req helpers.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCartItemHandler", err)
		return
	}

	if err := h.service.Add(req.StoreID, req.ProductID, req.Quantity); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddCartItemHandler: add failed", map[string]any{
			"product_id": req.ProductID,
			"store_id":   req.StoreID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, h.cartResponse(), "item added to cart")
	helpers.LogSuccess("AddCartItemHandler", "item added to cart", map[string]any{
		"product_id": req.ProductID,
		"store_id":   req.StoreID,
		"quantity":   req.Quantity,
	})
}

// UpdateCartItemHandler handles PUT /cart/items/:product_id
func (h *CartHandler) UpdateCartItemHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCartItemHandler", err)
		return
	}

	if err := h.service.UpdateQuantity(productID, req.Quantity); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateCartItemHandler: update failed", map[string]any{
			"product_id": productID,
			"quantity":   req.Quantity,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, h.cartResponse(), "cart updated")
	helpers.LogSuccess("UpdateCartItemHandler", "cart updated", map[string]any{
		"product_id": productID,
		"quantity":   req.Quantity,
	})
}

// RemoveCartItemHandler handles DELETE /cart/items/:product_id
func (h *CartHandler) RemoveCartItemHandler(c *gin.Context) {
	productID := c.Param("product_id")

	if err := h.service.Remove(productID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveCartItemHandler: remove failed", map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, h.cartResponse(), "item removed from cart")
	helpers.LogSuccess("RemoveCartItemHandler", "item removed from cart", map[string]any{
		"product_id": productID,
	})
}
