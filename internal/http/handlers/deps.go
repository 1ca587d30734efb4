package handlers

import (
	"pawmart/internal/services"
)

type Deps struct {
	ListingHandler *ListingHandler
	OrderHandler   *OrderHandler
	SystemHandler  *SystemHandler
}

// NewDeps wires the contract services from store implementations. Taking the
// store interfaces (not the Mongo repos) lets tests register the same routes
// against in-memory stores.
func NewDeps(listings services.ListingStore, orders services.OrderStore, store Pinger) *Deps {
	return &Deps{
		ListingHandler: &ListingHandler{Listings: services.NewListingService(listings)},
		OrderHandler:   &OrderHandler{Orders: services.NewOrderService(orders)},
		SystemHandler:  &SystemHandler{Store: store},
	}
}
