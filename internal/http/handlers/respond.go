package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"pawmart/internal/errs"
)

// Every store call runs under a bounded deadline so a stuck database
// can't pin request goroutines forever.
const storeTimeout = 10 * time.Second

func storeCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), storeTimeout)
}

// ok writes the success envelope: { success: true, data: ... }.
func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{"success": true, "data": data})
}

// okMsg is ok plus a human-readable message; data may be nil (update/delete).
func okMsg(c *fiber.Ctx, status int, data any, msg string) error {
	body := fiber.Map{"success": true, "message": msg}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}

// failErr maps the error taxonomy onto HTTP statuses. storeStatus carries the
// historical asymmetry of this API: store failures answer 500 on reads and
// deletes but 400 on creates and updates.
func failErr(c *fiber.Ctx, err error, storeStatus int) error {
	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindInvalidID:
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errs.KindNotFound:
		return fail(c, fiber.StatusNotFound, err.Error())
	default:
		return fail(c, storeStatus, err.Error())
	}
}
