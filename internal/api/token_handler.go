package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"parlour-backend-go/internal/auth"
	"parlour-backend-go/internal/models"
)

// TokenHandler issues bearer tokens for the client to present on
// protected routes.
type TokenHandler struct {
	secret []byte
	logger *zap.Logger
}

// NewTokenHandler creates a new TokenHandler signing with secret.
func NewTokenHandler(secret []byte, logger *zap.Logger) *TokenHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenHandler{secret: secret, logger: logger}
}

// IssueToken handles POST /auth/token. The signed token carries the email
// claim and a fixed one-hour expiry.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	token, err := auth.Issue(req.Email, h.secret, auth.TokenTTL)
	if err != nil {
		h.logger.Error("token issuance failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
