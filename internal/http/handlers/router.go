package handlers

import "github.com/gofiber/fiber/v2"

// Register is the dispatch table: method+path to contract operation, nothing
// else. Literal segments (/recent, /category, /user, /search) are registered
// before /:id so they never parse as identifiers.
func Register(app *fiber.App, deps *Deps) {
	app.Get("/", deps.SystemHandler.Root)
	app.Get("/health", deps.SystemHandler.Health)

	listings := app.Group("/api/listings")
	listings.Get("/", deps.ListingHandler.List)
	listings.Get("/recent", deps.ListingHandler.Recent)
	listings.Get("/category/:category", deps.ListingHandler.ByCategory)
	listings.Get("/user/:email", deps.ListingHandler.ByOwner)
	listings.Get("/search/:query", deps.ListingHandler.Search)
	listings.Get("/:id", deps.ListingHandler.Get)
	listings.Post("/", deps.ListingHandler.Create)
	listings.Put("/:id", deps.ListingHandler.Update)
	listings.Delete("/:id", deps.ListingHandler.Delete)

	orders := app.Group("/api/orders")
	orders.Get("/", deps.OrderHandler.List)
	orders.Get("/user/:email", deps.OrderHandler.ByOwner)
	orders.Post("/", deps.OrderHandler.Create)
}
