package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"parlour-backend-go/internal/core"
	"parlour-backend-go/internal/models"
)

// CartHandler handles cart-related API endpoints.
type CartHandler struct {
	cartService core.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs core.CartService, logger *zap.Logger) *CartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartHandler{cartService: cs, logger: logger}
}

// Add handles POST /carts.
func (h *CartHandler) Add(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	item, err := h.cartService.Add(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("cart insert failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add cart item", Details: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListByOwner handles GET /carts?email=... . A missing email yields an
// empty list; a mismatched email was already rejected by the gate.
func (h *CartHandler) ListByOwner(c *gin.Context) {
	email := c.Query("email")
	items, err := h.cartService.ListByOwner(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("cart listing failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cart items", Details: err.Error()})
		return
	}
	if items == nil {
		items = []*models.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /carts/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.cartService.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, core.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Cart item not found"})
			return
		}
		h.logger.Error("cart deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete cart item", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, DeleteResult{DeletedCount: 1})
}
