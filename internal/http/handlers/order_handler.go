package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pawmart/internal/log"
	"pawmart/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	orders, err := h.Orders.ListAll(ctx)
	if err != nil {
		applog.Error(c, "orders.list", err, nil)
		return failErr(c, err, fiber.StatusInternalServerError)
	}
	return ok(c, fiber.StatusOK, orders)
}

func (h *OrderHandler) ByOwner(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	orders, err := h.Orders.ListByOwner(ctx, param(c, "email"))
	if err != nil {
		applog.Error(c, "orders.byowner", err, nil)
		return failErr(c, err, fiber.StatusInternalServerError)
	}
	return ok(c, fiber.StatusOK, orders)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in services.OrderInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "orders.create.badbody", map[string]any{"error": err.Error()})
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := storeCtx(c)
	defer cancel()
	o, err := h.Orders.Create(ctx, in)
	if err != nil {
		return failErr(c, err, fiber.StatusBadRequest)
	}
	applog.Audit(c, "orders.place", map[string]any{
		"id":        o.ID.Hex(),
		"productId": o.ProductID.Hex(),
		"quantity":  o.Quantity,
	})
	return okMsg(c, fiber.StatusCreated, o, "Order placed successfully")
}
