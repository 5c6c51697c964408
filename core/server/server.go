package server

import (
	"errors"

	"inventory-seeder/core/loader"
	"inventory-seeder/core/logger"
	"inventory-seeder/core/middleware/auth"
	"inventory-seeder/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIPrefix is the mount point of every feature.
const APIPrefix = "/api"

// New builds the Fiber application: ray id, request logging and token auth,
// then every enabled feature mounted under /api.
func New(cfg Config, l *zap.Logger, mgr *loader.Manager) (*fiber.App, error) {
	if l == nil {
		l = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		rl := logger.WithRayID(l, c)
		err := c.Next()
		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		}
		if err != nil {
			rl.Warn("Request error", append(fields, zap.Error(err))...)
			return err
		}
		rl.Debug("Request handled", fields...)
		return nil
	})

	api := app.Group(APIPrefix, auth.New(auth.Config{Token: cfg.Token}))
	if err := mgr.LoadAll(api); err != nil {
		return nil, err
	}
	return app, nil
}

// errorHandler renders errors as {"detail": "..."} bodies.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"detail": err.Error()})
}
