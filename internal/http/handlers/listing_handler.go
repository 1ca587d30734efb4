package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	applog "pawmart/internal/log"
	"pawmart/internal/services"
)

type ListingHandler struct {
	Listings *services.ListingService
}

// param returns a decoded route parameter; categories like "Care Products"
// arrive percent-encoded.
func param(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func (h *ListingHandler) List(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	listings, err := h.Listings.ListAll(ctx)
	if err != nil {
		applog.Error(c, "listings.list", err, nil)
		return failErr(c, err, fiber.StatusInternalServerError)
	}
	return ok(c, fiber.StatusOK, listings)
}

func (h *ListingHandler) Recent(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	listings, err := h.Listings.ListRecent(ctx)
	if err != nil {
		applog.Error(c, "listings.recent", err, nil)
		return failErr(c, err, fiber.StatusInternalServerError)
	}
	return ok(c, fiber.StatusOK, listings)
}

func (h *ListingHandler) ByCategory(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	listings, err := h.Listings.ListByCategory(ctx, param(c, "category"))
	if err != nil {
		applog.Error(c, "listings.bycategory", err, nil)
		return failErr(c, err, fiber.StatusInternalServerError)
	}
	return ok(c, fiber.StatusOK, listings)
}

func (h *ListingHandler) ByOwner(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	listings, err := h.Listings.ListByOwner(ctx, param(c, "email"))
	if err != nil {
		applog.Error(c, "listings.byowner", err, nil)
		return failErr(c, err, fiber.StatusInternalServerError)
	}
	return ok(c, fiber.StatusOK, listings)
}

func (h *ListingHandler) Search(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	listings, err := h.Listings.Search(ctx, param(c, "query"))
	if err != nil {
		applog.Error(c, "listings.search", err, nil)
		return failErr(c, err, fiber.StatusInternalServerError)
	}
	return ok(c, fiber.StatusOK, listings)
}

func (h *ListingHandler) Get(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	l, err := h.Listings.Get(ctx, c.Params("id"))
	if err != nil {
		return failErr(c, err, fiber.StatusInternalServerError)
	}
	return ok(c, fiber.StatusOK, l)
}

func (h *ListingHandler) Create(c *fiber.Ctx) error {
	var in services.ListingInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "listings.create.badbody", map[string]any{"error": err.Error()})
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := storeCtx(c)
	defer cancel()
	l, err := h.Listings.Create(ctx, in)
	if err != nil {
		return failErr(c, err, fiber.StatusBadRequest)
	}
	applog.Audit(c, "listings.create", map[string]any{"id": l.ID.Hex(), "category": l.Category})
	return okMsg(c, fiber.StatusCreated, l, "Listing created successfully")
}

func (h *ListingHandler) Update(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		applog.Security(c, "listings.update.badbody", map[string]any{"error": err.Error()})
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := storeCtx(c)
	defer cancel()
	if err := h.Listings.Update(ctx, c.Params("id"), fields); err != nil {
		return failErr(c, err, fiber.StatusBadRequest)
	}
	applog.Audit(c, "listings.update", map[string]any{"id": c.Params("id")})
	return okMsg(c, fiber.StatusOK, nil, "Listing updated successfully")
}

func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	if err := h.Listings.Delete(ctx, c.Params("id")); err != nil {
		return failErr(c, err, fiber.StatusInternalServerError)
	}
	applog.Audit(c, "listings.delete", map[string]any{"id": c.Params("id")})
	return okMsg(c, fiber.StatusOK, nil, "Listing deleted successfully")
}
