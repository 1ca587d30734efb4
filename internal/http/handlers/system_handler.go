package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "pawmart/internal/log"
)

// Pinger is the slice of the storage handle the health probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	Store Pinger
}

// Root serves the service metadata and route map.
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":  "PawMart Server is Running!",
		"database": "Connected to MongoDB",
		"status":   "Active",
		"api": fiber.Map{
			"listings": fiber.Map{
				"getAll":        "GET /api/listings",
				"getRecent":     "GET /api/listings/recent",
				"getByCategory": "GET /api/listings/category/:category",
				"getByUser":     "GET /api/listings/user/:email",
				"search":        "GET /api/listings/search/:query",
				"getSingle":     "GET /api/listings/:id",
				"create":        "POST /api/listings",
				"update":        "PUT /api/listings/:id",
				"delete":        "DELETE /api/listings/:id",
			},
			"orders": fiber.Map{
				"getAll":    "GET /api/orders",
				"getByUser": "GET /api/orders/user/:email",
				"create":    "POST /api/orders",
			},
		},
	})
}

// Health answers 200 only while the store responds to a liveness ping.
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		applog.Error(c, "health.ping", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":    "Error",
			"database":  "Disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(fiber.Map{
		"status":    "OK",
		"database":  "Connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
