// Package auth validates JWT bearer tokens and resolves the caller identity.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Config holds configuration for JWT validation.
type Config struct {
	// Secret is the HMAC key used to sign and verify tokens.
	Secret string `mapstructure:"secret" default:""`
	// TokenTTLHours is the lifetime applied to issued tokens.
	TokenTTLHours int `mapstructure:"token_ttl_hours" default:"72"`
}

// UserIDKey is the fiber locals key under which the authenticated user id is stored.
const UserIDKey = "user_id"

// GenerateToken creates a signed JWT for the given user id.
// Exposed for tests and for an external login service sharing the secret.
func GenerateToken(cfg Config, userID uint) (string, error) {
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	claims := jwt.MapClaims{
		"sub": float64(userID),
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken parses a token string and returns the user id from its subject claim.
func ValidateToken(cfg Config, tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, errors.New("invalid subject claim")
	}
	return uint(sub), nil
}

// New returns a middleware that rejects requests without a valid bearer token
// and stores the authenticated user id in the request locals.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		userID, err := ValidateToken(cfg, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID extracts the authenticated user id from the request locals.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(UserIDKey).(uint)
	return id, ok && id > 0
}
