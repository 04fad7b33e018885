package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"parlour-backend-go/internal/core"
	"parlour-backend-go/internal/models"
)

// UserHandler handles user-related API endpoints.
type UserHandler struct {
	userService core.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{userService: us, logger: logger}
}

// List handles GET /users (admin only; the gate has already rejected
// everyone else).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("user listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list users", Details: err.Error()})
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// Register handles POST /users. Registration is idempotent by email: a
// repeat call reports "already exists" without writing.
func (h *UserHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	user, created, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("user registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user", Details: err.Error()})
		return
	}
	if !created {
		c.JSON(http.StatusOK, MessageResponse{Message: "already exists"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// AdminStatus handles GET /users/admin/:email. A missing user record
// simply reports admin=false.
func (h *UserHandler) AdminStatus(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.userService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("admin status lookup failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve admin status", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, AdminStatusResponse{Admin: isAdmin})
}

// Promote handles PATCH /users/admin/:id, setting the admin role on a
// user record.
func (h *UserHandler) Promote(c *gin.Context) {
	id := c.Param("id")
	if err := h.userService.Promote(c.Request.Context(), id); err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		h.logger.Error("user promotion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to promote user", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, UpdateResult{ModifiedCount: 1})
}

// Remove handles DELETE /users/:id.
func (h *UserHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.userService.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		h.logger.Error("user deletion failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete user", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, DeleteResult{DeletedCount: 1})
}
