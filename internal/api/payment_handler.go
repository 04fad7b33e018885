package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"parlour-backend-go/internal/core"
	"parlour-backend-go/internal/middleware"
	"parlour-backend-go/internal/models"
)

// PaymentHandler handles payment history and settlement submission.
type PaymentHandler struct {
	settlementService core.SettlementService
	logger            *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ss core.SettlementService, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{settlementService: ss, logger: logger}
}

// History handles GET /payments/:email. The gate has already confirmed the
// caller owns the email or is an admin.
func (h *PaymentHandler) History(c *gin.Context) {
	email := c.Param("email")
	payments, err := h.settlementService.HistoryByEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("payment history lookup failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load payment history", Details: err.Error()})
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

// Settle handles POST /payments. The body's email must match the
// authenticated Principal: the signed claim decides ownership, never the
// body alone. A response whose deleteResult is narrower than the requested
// cart IDs reports a committed payment with incomplete cart cleanup.
func (h *PaymentHandler) Settle(c *gin.Context) {
	var req models.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	if req.Email != principal.Email {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden access"})
		return
	}

	result, err := h.settlementService.Settle(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrPersistPayment) {
			h.logger.Error("settlement aborted: payment not persisted", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Payment was not recorded; no cart item was touched", Details: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Settlement rejected", Details: err.Error()})
		return
	}

	if len(result.FailedCartIDs) > 0 {
		h.logger.Warn("partial settlement: payment committed with cart items remaining",
			zap.String("paymentId", result.Payment.ID),
			zap.Strings("failedCartIds", result.FailedCartIDs),
		)
	}

	c.JSON(http.StatusOK, SettlementResponse{
		PaymentResult: InsertResult{InsertedID: result.Payment.ID},
		DeleteResult: DeleteResult{
			DeletedCount:  len(result.RemovedCartIDs),
			FailedCartIDs: result.FailedCartIDs,
		},
	})
}
