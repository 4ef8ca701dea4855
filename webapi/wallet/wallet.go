// Package wallet exposes the authenticated balance, transfer and history
// endpoints.
package wallet

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davipay/wallet/pkg/config"
	transfersvc "github.com/davipay/wallet/pkg/service/transfer"
	walletsvc "github.com/davipay/wallet/pkg/service/wallet"
	"github.com/davipay/wallet/webapi/common"
	"github.com/davipay/wallet/webapi/middleware"
)

// Routes registers the authenticated wallet endpoints.
func Routes(
	app *fiber.App,
	walletSvc *walletsvc.Service,
	transferSvc *transfersvc.Service,
	jwtCfg *config.Jwt,
) {
	protected := middleware.Protected(jwtCfg)
	app.Get("/saldo", protected, GetBalance(walletSvc))
	app.Post("/transferir", protected, Transfer(transferSvc))
	app.Get("/transferencias", protected, GetHistory(walletSvc))
}

// GetBalance returns the caller's current balance.
//
//	@Summary		Consultar saldo
//	@Tags			Usuario
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	common.Response{data=BalanceOutput}
//	@Failure		401	{object}	common.ErrorResponse
//	@Failure		404	{object}	common.ErrorResponse
//	@Router			/saldo [get]
func GetBalance(walletSvc *walletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, "INVALID_TOKEN", "Token inválido o expirado", nil, fiber.StatusUnauthorized)
		}
		balance, err := walletSvc.GetBalance(c.Context(), userID)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c,
			BalanceOutput{Saldo: balance.InexactFloat64()},
			"Saldo consultado correctamente")
	}
}

// Transfer moves funds from the caller to the destination phone number.
//
//	@Summary		Realizar transferencia
//	@Tags			Transferencias
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TransferInput	true	"Destino y monto"
//	@Success		200		{object}	common.Response{data=BalanceOutput}
//	@Failure		400		{object}	common.ErrorResponse
//	@Failure		401		{object}	common.ErrorResponse
//	@Failure		404		{object}	common.ErrorResponse
//	@Router			/transferir [post]
func Transfer(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, "INVALID_TOKEN", "Token inválido o expirado", nil, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[TransferInput](c)
		if input == nil {
			return err
		}
		newBalance, err := transferSvc.Transfer(c.Context(), userID, input.CelularDestino, input.Monto)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c,
			BalanceOutput{Saldo: newBalance.InexactFloat64()},
			"Transferencia realizada exitosamente")
	}
}

// GetHistory returns one page of the caller's transfer history.
//
//	@Summary		Consultar historial de transferencias
//	@Tags			Transferencias
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Número de página"
//	@Param			limit	query		int	false	"Resultados por página"
//	@Success		200		{object}	common.Response{data=HistoryOutput}
//	@Failure		401		{object}	common.ErrorResponse
//	@Router			/transferencias [get]
func GetHistory(walletSvc *walletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return common.ErrorJSON(c, "INVALID_TOKEN", "Token inválido o expirado", nil, fiber.StatusUnauthorized)
		}
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", walletsvc.DefaultPageSize)

		history, err := walletSvc.GetHistory(c.Context(), userID, page, limit)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, toHistoryOutput(history), "Historial de transferencias")
	}
}
