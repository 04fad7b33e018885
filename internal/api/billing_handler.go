package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"parlour-backend-go/internal/core"
	"parlour-backend-go/internal/models"
)

// BillingHandler handles payment-intent creation against the upstream
// processor.
type BillingHandler struct {
	billingService core.BillingService
	logger         *zap.Logger
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(bs core.BillingService, logger *zap.Logger) *BillingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingHandler{billingService: bs, logger: logger}
}

// CreateIntent handles POST /payment-intent. Processor failures surface
// as a bad-gateway response; there is no retry.
func (h *BillingHandler) CreateIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	clientSecret, err := h.billingService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.logger.Error("payment intent creation failed", zap.Float64("price", req.Price), zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to create payment intent", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}
