// Package middleware holds the Fiber middleware for bearer-token auth and
// request metrics.
package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/davipay/wallet/pkg/config"
	"github.com/davipay/wallet/webapi/common"
)

// Protected guards a route group with JWT bearer authentication.
func Protected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return common.ErrorJSON(c, "UNAUTHORIZED", "Token no proporcionado", nil, fiber.StatusUnauthorized)
	}
	return common.ErrorJSON(c, "INVALID_TOKEN", "Token inválido o expirado", nil, fiber.StatusUnauthorized)
}

// UserID extracts the authenticated account id from the verified token. The
// id is read from the credential only; request payloads never name the
// source account.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("no verified token in request context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected claims type")
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("token has no user_id claim")
	}
	return uuid.Parse(raw)
}
