package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/pricing-web/internal/models"
	"github.com/sefazor/pricing-web/pkg/backend"
	jwtPkg "github.com/sefazor/pricing-web/pkg/jwt"
)

const (
	scopeKey      = "scope"
	tokenCookie   = "token"
	companyCookie = "company"
)

// ScopeMiddleware collects the caller's bearer token and company into a
// backend.Scope stored in the request locals. Handlers read it back with
// ScopeFrom instead of reaching for cookies themselves.
func ScopeMiddleware() fiber.Handler {
	return scopeMiddleware(time.Now)
}

func scopeMiddleware(now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, problem := bearerToken(c)
		if problem != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(problem))
		}

		if err := jwtPkg.CheckExpiry(token, now()); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Token has expired"))
		}

		c.Locals(scopeKey, backend.Scope{
			Token:   token,
			Company: c.Cookies(companyCookie),
		})

		return c.Next()
	}
}

// ScopeFrom returns the scope stored by ScopeMiddleware.
func ScopeFrom(c *fiber.Ctx) (backend.Scope, bool) {
	scope, ok := c.Locals(scopeKey).(backend.Scope)
	return scope, ok
}

// bearerToken returns the token, or a message describing why there is none.
func bearerToken(c *fiber.Ctx) (string, string) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		if token := c.Cookies(tokenCookie); token != "" {
			return token, ""
		}
		return "", "Authorization header is required"
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", "Invalid authorization header format"
	}
	return token, ""
}
