// Package auth exposes the login and OTP verification endpoints.
package auth

import (
	"github.com/gofiber/fiber/v2"

	authsvc "github.com/davipay/wallet/pkg/service/auth"
	"github.com/davipay/wallet/webapi/common"
)

// Routes registers the public authentication endpoints.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/login", Login(authSvc))
	app.Post("/otp", VerifyOTP(authSvc))
}

// Login provisions the account for a phone number and triggers OTP dispatch.
//
//	@Summary		Login de usuario
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginInput	true	"Número de celular"
//	@Success		200		{object}	common.Response
//	@Failure		400		{object}	common.ErrorResponse
//	@Failure		500		{object}	common.ErrorResponse
//	@Router			/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		if err := authSvc.Login(c.Context(), input.Celular); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.Map{"celular": input.Celular}, "OTP enviado ****56")
	}
}

// VerifyOTP validates the one-time code and issues a bearer token.
//
//	@Summary		Validar OTP
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		OTPInput	true	"Celular y código"
//	@Success		200		{object}	common.Response{data=TokenOutput}
//	@Failure		400		{object}	common.ErrorResponse
//	@Failure		401		{object}	common.ErrorResponse
//	@Failure		404		{object}	common.ErrorResponse
//	@Router			/otp [post]
func VerifyOTP(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OTPInput](c)
		if input == nil {
			return err
		}
		token, err := authSvc.VerifyOTP(c.Context(), input.Celular, input.Otp)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, TokenOutput{Token: token}, "Autenticación exitosa")
	}
}
