// Package common holds the response envelope and request binding helpers
// shared by all handlers.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/davipay/wallet/pkg/domain"
)

// Response is the success envelope: {"success":true,"data":...,"message":...}.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ErrorBody carries the machine-readable error code alongside the
// human-readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessJSON writes the success envelope with status 200.
func SuccessJSON(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ErrorJSON writes the failure envelope with the given code and status.
func ErrorJSON(c *fiber.Ctx, code, message string, details any, status int) error {
	if details == nil {
		details = fiber.Map{}
	}
	return c.Status(status).JSON(ErrorResponse{
		Error: ErrorBody{Code: code, Message: message, Details: details},
	})
}

// DomainErrorJSON maps a service error to its envelope code, Spanish message
// and HTTP status.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return ErrorJSON(c, "VALIDATION_ERROR", "Datos inválidos", err.Error(), fiber.StatusBadRequest)
	case errors.Is(err, domain.ErrDestinationNotFound):
		return ErrorJSON(c, "DESTINO_NO_EXISTE", "El número destino no existe", nil, fiber.StatusNotFound)
	case errors.Is(err, domain.ErrSelfTransfer):
		return ErrorJSON(c, "SELF_TRANSFER_NOT_ALLOWED", "No puedes transferirte dinero a ti mismo", nil, fiber.StatusBadRequest)
	case errors.Is(err, domain.ErrInsufficientFunds):
		return ErrorJSON(c, "SALDO_INSUFICIENTE", "No tienes saldo suficiente", nil, fiber.StatusBadRequest)
	case errors.Is(err, domain.ErrAccountNotFound):
		return ErrorJSON(c, "USER_NOT_FOUND", "Usuario no encontrado", nil, fiber.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidOTP):
		return ErrorJSON(c, "INVALID_OTP", "OTP incorrecto", nil, fiber.StatusUnauthorized)
	default:
		return ErrorJSON(c, "INTERNAL_ERROR", "Error interno", nil, fiber.StatusInternalServerError)
	}
}

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure it writes the VALIDATION_ERROR envelope
// and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, "VALIDATION_ERROR", "Datos inválidos", err.Error(), fiber.StatusBadRequest)
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ErrorJSON(c, "VALIDATION_ERROR", "Datos inválidos", err.Error(), fiber.StatusBadRequest)
	}
	return &input, nil
}
