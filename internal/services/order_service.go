package services

import (
	"context"
	"strings"
	"time"

	"pawmart/internal/domain"
	"pawmart/internal/errs"
	"pawmart/internal/validate"
)

// OrderStore is the persistence surface of the order contract.
// Orders are append-only: no update, no delete.
type OrderStore interface {
	All(ctx context.Context) ([]domain.Order, error)
	ByOwner(ctx context.Context, email string) ([]domain.Order, error)
	Insert(ctx context.Context, o domain.Order) (domain.Order, error)
}

type OrderInput struct {
	ProductID       string   `json:"productId"`
	ProductName     string   `json:"productName"`
	Category        string   `json:"category"`
	BuyerName       string   `json:"buyerName"`
	Email           string   `json:"email"`
	Quantity        int      `json:"quantity"`
	Price           *float64 `json:"price"`
	Address         string   `json:"address"`
	Phone           string   `json:"phone"`
	Date            string   `json:"date"`
	AdditionalNotes string   `json:"additionalNotes"`
}

type OrderService struct {
	Store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{Store: store}
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.Store.All(ctx)
}

func (s *OrderService) ListByOwner(ctx context.Context, email string) ([]domain.Order, error) {
	return s.Store.ByOwner(ctx, email)
}

// Create checks fields in contract order. The productId reference is format
// checked only; whether the listing still exists is not this API's concern.
func (s *OrderService) Create(ctx context.Context, in OrderInput) (domain.Order, error) {
	if in.ProductID == "" {
		return domain.Order{}, errs.Validation("Product ID is required")
	}
	pid, ok := validate.ObjectID(in.ProductID)
	if !ok {
		return domain.Order{}, errs.InvalidID("Invalid product ID")
	}
	switch {
	case !validate.Present(in.ProductName):
		return domain.Order{}, errs.Validation("Product name is required")
	case !validate.Present(in.BuyerName):
		return domain.Order{}, errs.Validation("Buyer name is required")
	case in.Email == "":
		return domain.Order{}, errs.Validation("Email is required")
	case in.Quantity < 1:
		return domain.Order{}, errs.Validation("Valid quantity is required")
	case in.Category == "Pets" && in.Quantity != 1:
		return domain.Order{}, errs.Validation("Pet adoption quantity must be 1")
	case in.Price == nil || *in.Price < 0:
		return domain.Order{}, errs.Validation("Valid price is required")
	case !validate.Present(in.Address):
		return domain.Order{}, errs.Validation("Address is required")
	case in.Phone == "":
		return domain.Order{}, errs.Validation("Phone number is required")
	case in.Date == "":
		return domain.Order{}, errs.Validation("Pickup date is required")
	}

	o := domain.Order{
		ProductID:       pid,
		ProductName:     strings.TrimSpace(in.ProductName),
		Category:        in.Category,
		BuyerName:       strings.TrimSpace(in.BuyerName),
		Email:           in.Email,
		Quantity:        in.Quantity,
		Price:           *in.Price,
		Address:         strings.TrimSpace(in.Address),
		Phone:           in.Phone,
		Date:            coerceDate(in.Date),
		AdditionalNotes: in.AdditionalNotes, // empty string when omitted
		CreatedAt:       time.Now().UTC(),
	}
	return s.Store.Insert(ctx, o)
}
