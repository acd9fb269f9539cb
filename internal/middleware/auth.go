package middleware

import (
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/config"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey    = "user"
	identityKey = "identity"
)

// JWTProtected rejects requests without a valid HS256 bearer token.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		ContextKey: tokenKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			authErr := apperr.Authentication("Could not validate credentials")
			authErr.Err = err
			return authErr
		},
	})
}

// Identity loads the stored user named by the token that JWTProtected
// accepted. It must run after JWTProtected.
func Identity(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals(tokenKey).(*jwt.Token)
		if !ok || token == nil {
			return apperr.Authentication("Could not validate credentials")
		}
		user, err := auth.ResolveIdentity(c.UserContext(), token.Raw)
		if err != nil {
			return err
		}
		c.Locals(identityKey, user)
		return c.Next()
	}
}

// CurrentUser returns the identity stored by Identity, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(identityKey).(*models.User); ok {
		return user
	}
	return nil
}
