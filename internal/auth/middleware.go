package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/domain"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

const principalKey = "auth_principal"

// SessionCookieName is the cookie the presentation layer stores the session
// token under. The Authorization header takes precedence when both are set.
const SessionCookieName = "portal_session"

// Principal represents the authenticated caller.
type Principal struct {
	UserID int64
	Role   domain.Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == domain.RoleAdmin
}

// Resolver maps an opaque session token back to its principal.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*Principal, error)
}

// Middleware validates session tokens and loads principals.
type Middleware struct {
	resolver Resolver
}

// NewMiddleware constructs middleware.
func NewMiddleware(resolver Resolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := TokenFromRequest(c)
	if token == "" {
		return apperrors.NewUnauthenticated("missing session token")
	}

	principal, err := m.resolver.Resolve(c.UserContext(), token)
	if err != nil {
		return err
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// TokenFromRequest extracts the session token from the Authorization header
// or, failing that, the session cookie. A header that does not parse as
// Bearer does not block the cookie fallback.
func TokenFromRequest(c *fiber.Ctx) string {
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return c.Cookies(SessionCookieName)
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
