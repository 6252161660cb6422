// Package webapi exposes the ledger over HTTP using Fiber. It is a thin
// front end: every business rule lives in the ledger and account packages,
// the handlers only bind, validate and translate errors.
package webapi

import (
	"log/slog"

	"github.com/amirasaad/bankledger/pkg/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SetupApp builds the Fiber application with all routes and middleware.
func SetupApp(l *ledger.Ledger, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "bankledger",
	})
	app.Use(requestid.New())
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return SuccessResponseJSON(c, fiber.StatusOK, "bankledger is running", nil)
	})

	Routes(app, l, logger)
	return app
}
