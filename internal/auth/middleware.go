package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/query-service/internal/domain"
	"github.com/spec-kit/query-service/internal/repository"
	apperrors "github.com/spec-kit/query-service/pkg/util"
)

const userContextKey = "auth_user"

// Middleware validates bearer tokens and attaches the account to the
// request context. It is only installed when AUTH_ENABLED is set.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces a valid bearer token.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return apperrors.NewUnauthorized("missing bearer token")
	}
	claims, err := m.tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return apperrors.NewUnauthorized("unknown account")
	}
	c.Locals(userContextKey, user)
	return c.Next()
}

// UserFromContext retrieves the authenticated user, when present.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(userContextKey).(*domain.User)
	return user, ok
}
