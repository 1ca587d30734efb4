package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart/internal/domain"
	"pawmart/internal/errs"
	"pawmart/internal/validate"
)

const recentLimit = 6

// ListingStore is what the listing contract needs from persistence. The Mongo
// repo implements it in production; the memory repo implements it for tests.
type ListingStore interface {
	All(ctx context.Context) ([]domain.Listing, error)
	Recent(ctx context.Context, limit int64) ([]domain.Listing, error)
	ByCategory(ctx context.Context, category string) ([]domain.Listing, error)
	ByOwner(ctx context.Context, email string) ([]domain.Listing, error)
	SearchName(ctx context.Context, q string) ([]domain.Listing, error)
	Get(ctx context.Context, id primitive.ObjectID) (domain.Listing, error)
	Insert(ctx context.Context, l domain.Listing) (domain.Listing, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ListingInput carries the client-supplied fields of a create request.
// Price is a pointer so "absent" and "0" stay distinguishable.
type ListingInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Email       string   `json:"email"`
	Date        string   `json:"date"`
}

type ListingService struct {
	Store ListingStore
}

func NewListingService(store ListingStore) *ListingService {
	return &ListingService{Store: store}
}

func (s *ListingService) ListAll(ctx context.Context) ([]domain.Listing, error) {
	return s.Store.All(ctx)
}

func (s *ListingService) ListRecent(ctx context.Context) ([]domain.Listing, error) {
	return s.Store.Recent(ctx, recentLimit)
}

func (s *ListingService) ListByCategory(ctx context.Context, category string) ([]domain.Listing, error) {
	return s.Store.ByCategory(ctx, category)
}

func (s *ListingService) ListByOwner(ctx context.Context, email string) ([]domain.Listing, error) {
	return s.Store.ByOwner(ctx, email)
}

func (s *ListingService) Search(ctx context.Context, q string) ([]domain.Listing, error) {
	return s.Store.SearchName(ctx, q)
}

func (s *ListingService) Get(ctx context.Context, idHex string) (domain.Listing, error) {
	id, ok := validate.ObjectID(idHex)
	if !ok {
		return domain.Listing{}, errs.InvalidID("Invalid listing ID")
	}
	return s.Store.Get(ctx, id)
}

// Create validates field by field, short-circuiting on the first failure so
// the client always sees the message for the earliest broken rule.
func (s *ListingService) Create(ctx context.Context, in ListingInput) (domain.Listing, error) {
	switch {
	case !validate.Present(in.Name):
		return domain.Listing{}, errs.Validation("Product/Pet name is required")
	case !validate.Category(in.Category):
		return domain.Listing{}, errs.Validation("Valid category is required")
	case in.Price == nil || *in.Price < 0:
		return domain.Listing{}, errs.Validation("Valid price is required")
	case in.Category == "Pets" && *in.Price != 0:
		return domain.Listing{}, errs.Validation("Pets must be free for adoption (price: 0)")
	case !validate.Present(in.Location):
		return domain.Listing{}, errs.Validation("Location is required")
	case in.Description == "":
		return domain.Listing{}, errs.Validation("Description is required")
	case in.Image == "":
		return domain.Listing{}, errs.Validation("Image URL is required")
	case in.Email == "":
		return domain.Listing{}, errs.Validation("Email is required")
	case in.Date == "":
		return domain.Listing{}, errs.Validation("Pickup date is required")
	}

	now := time.Now().UTC()
	l := domain.Listing{
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Price:       *in.Price,
		Location:    strings.TrimSpace(in.Location),
		Description: in.Description,
		Image:       in.Image,
		Email:       in.Email,
		Date:        coerceDate(in.Date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.Store.Insert(ctx, l)
}

// Update merges the supplied fields as-is, without re-running creation rules.
// The merge is deliberately permissive; only the identifier and creation time
// are off-limits, and updatedAt always refreshes.
func (s *ListingService) Update(ctx context.Context, idHex string, fields map[string]any) error {
	id, ok := validate.ObjectID(idHex)
	if !ok {
		return errs.InvalidID("Invalid listing ID")
	}

	merged := bson.M{}
	for k, v := range fields {
		switch k {
		case "_id", "id", "createdAt":
			// immutable
		case "date":
			if raw, ok := v.(string); ok {
				merged[k] = coerceDate(raw)
			} else {
				merged[k] = v
			}
		default:
			merged[k] = v
		}
	}
	merged["updatedAt"] = time.Now().UTC()

	return s.Store.Update(ctx, id, merged)
}

func (s *ListingService) Delete(ctx context.Context, idHex string) error {
	id, ok := validate.ObjectID(idHex)
	if !ok {
		return errs.InvalidID("Invalid listing ID")
	}
	return s.Store.Delete(ctx, id)
}

// coerceDate accepts the date layouts clients actually send. Anything else
// becomes the zero time rather than an error, matching the permissive
// behavior this API always had.
func coerceDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
