// Package webapi assembles the HTTP surface of the wallet service.
package webapi

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	_ "github.com/davipay/wallet/docs"
	"github.com/davipay/wallet/pkg/config"
	"github.com/davipay/wallet/pkg/repository"
	authsvc "github.com/davipay/wallet/pkg/service/auth"
	transfersvc "github.com/davipay/wallet/pkg/service/transfer"
	walletsvc "github.com/davipay/wallet/pkg/service/wallet"
	"github.com/davipay/wallet/webapi/auth"
	"github.com/davipay/wallet/webapi/common"
	"github.com/davipay/wallet/webapi/middleware"
	"github.com/davipay/wallet/webapi/wallet"
)

// New builds all services and returns the Fiber app.
//
//	@title			Davipay Wallet API
//	@version		1.0
//	@description	Custodial wallet: phone login, OTP verification, balance, transfers and history.
//	@securityDefinitions.apikey	BearerAuth
//	@in				header
//	@name			Authorization
func New(cfg *config.App, uow repository.UnitOfWork, logger *slog.Logger) *fiber.App {
	authSvc := authsvc.New(uow, cfg.Auth, cfg.Wallet, logger)
	transferSvc := transfersvc.New(uow, logger)
	walletSvc := walletsvc.New(uow, logger)

	app := fiber.New(fiber.Config{
		AppName:               "davipay-wallet",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
				code := "VALIDATION_ERROR"
				switch fe.Code {
				case fiber.StatusNotFound:
					code = "NOT_FOUND"
				case fiber.StatusMethodNotAllowed:
					code = "METHOD_NOT_ALLOWED"
				}
				return common.ErrorJSON(c, code, fe.Message, nil, fe.Code)
			}
			logger.Error("unhandled request error", "path", c.Path(), "error", err)
			return common.ErrorJSON(c, "INTERNAL_ERROR", "Error interno", nil, fiber.StatusInternalServerError)
		},
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.Metrics())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
	}))

	app.Get("/health", Health)
	app.Get("/metrics", middleware.MetricsHandler())
	app.Get("/swagger/*", swagger.HandlerDefault)

	auth.Routes(app, authSvc)
	wallet.Routes(app, walletSvc, transferSvc, cfg.Auth.Jwt)

	return app
}

// Health reports service liveness.
//
//	@Summary	Health check
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	common.Response
//	@Router		/health [get]
func Health(c *fiber.Ctx) error {
	return common.SuccessJSON(c, fiber.Map{"status": "ok"}, "The service is healthy")
}
