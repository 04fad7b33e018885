package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"parlour-backend-go/internal/auth"
)

// ErrorResponse is a local definition for sending standardized error messages.
// It mirrors the one in internal/api/dto_models.go to avoid import cycles.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// principalKey is the gin context key the gate stores the verified
// Principal under. Private so handlers go through PrincipalFrom.
const principalKey = "authPrincipal"

// RoleLookup resolves the role of a user record by email. Authorization is
// always decided against the signed claim plus this lookup, never against a
// client-supplied parameter alone.
type RoleLookup interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// EmailExtractor pulls the resource-owner email a route is scoped to.
type EmailExtractor func(c *gin.Context) string

// PathEmail extracts the owner email from a path parameter.
func PathEmail(param string) EmailExtractor {
	return func(c *gin.Context) string { return c.Param(param) }
}

// QueryEmail extracts the owner email from a query parameter.
func QueryEmail(key string) EmailExtractor {
	return func(c *gin.Context) string { return c.Query(key) }
}

// AccessGate is the authorization pipeline every protected route passes
// through before its handler runs. Handlers never re-check authorization.
type AccessGate struct {
	secret []byte
	roles  RoleLookup
	logger *zap.Logger
}

// NewAccessGate creates an AccessGate verifying tokens against secret and
// resolving admin status through roles.
func NewAccessGate(secret []byte, roles RoleLookup, logger *zap.Logger) *AccessGate {
	if len(secret) == 0 {
		panic("AccessGate requires a non-empty token secret")
	}
	if roles == nil {
		panic("AccessGate requires a RoleLookup")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccessGate{secret: secret, roles: roles, logger: logger}
}

// PrincipalFrom returns the Principal the gate attached to the request
// context, if any.
func PrincipalFrom(c *gin.Context) (*auth.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*auth.Principal)
	return p, ok
}

// RequireAuth verifies the bearer token on the request and attaches the
// resulting Principal to the gin context. Verification failures halt the
// request with 401 and no side effects.
func (g *AccessGate) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}

		principal, err := auth.Verify(parts[1], g.secret)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication token has expired"})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid authentication token"})
			}
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin rejects with 403 unless the authenticated Principal's user
// record carries the admin role. Must run after RequireAuth.
func (g *AccessGate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.admitAdmin(c) {
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin admits the request when the extracted resource email
// matches the Principal's email, and otherwise falls back to the admin
// check. An empty extracted email is admitted; the handler decides what an
// unscoped request means (for cart listing, an empty result).
func (g *AccessGate) RequireSelfOrAdmin(extract EmailExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}

		resourceEmail := extract(c)
		if resourceEmail == "" || resourceEmail == principal.Email {
			c.Next()
			return
		}

		if !g.admitAdmin(c) {
			return
		}
		c.Next()
	}
}

// admitAdmin runs the role lookup for the request's Principal. It aborts
// the request and returns false unless the lookup reports admin.
func (g *AccessGate) admitAdmin(c *gin.Context) bool {
	principal, ok := PrincipalFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return false
	}

	isAdmin, err := g.roles.IsAdmin(c.Request.Context(), principal.Email)
	if err != nil {
		g.logger.Error("role lookup failed", zap.String("email", principal.Email), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve caller role"})
		return false
	}
	if !isAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden access"})
		return false
	}
	return true
}
