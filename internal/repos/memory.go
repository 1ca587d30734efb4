package repos

// In-memory implementations of the store interfaces. They back the service and
// HTTP tests and double as a local fixture when no Mongo instance is around.
// Semantics mirror the Mongo repos: newest-first ordering with insertion order
// on timestamp ties, the same not-found errors, permissive field merges.

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart/internal/domain"
	"pawmart/internal/errs"
)

type MemListingRepo struct {
	mu    sync.RWMutex
	items []domain.Listing
}

func NewMemListingRepo() *MemListingRepo { return &MemListingRepo{} }

func (r *MemListingRepo) snapshot(keep func(domain.Listing) bool, limit int64) []domain.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Listing{}
	for _, l := range r.items {
		if keep == nil || keep(l) {
			out = append(out, l)
		}
	}
	// Stable sort over the insertion-ordered slice: ties stay in insertion order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

func (r *MemListingRepo) All(ctx context.Context) ([]domain.Listing, error) {
	return r.snapshot(nil, 0), nil
}

func (r *MemListingRepo) Recent(ctx context.Context, limit int64) ([]domain.Listing, error) {
	return r.snapshot(nil, limit), nil
}

func (r *MemListingRepo) ByCategory(ctx context.Context, category string) ([]domain.Listing, error) {
	return r.snapshot(func(l domain.Listing) bool { return l.Category == category }, 0), nil
}

func (r *MemListingRepo) ByOwner(ctx context.Context, email string) ([]domain.Listing, error) {
	return r.snapshot(func(l domain.Listing) bool { return l.Email == email }, 0), nil
}

func (r *MemListingRepo) SearchName(ctx context.Context, q string) ([]domain.Listing, error) {
	q = strings.ToLower(q)
	return r.snapshot(func(l domain.Listing) bool {
		return strings.Contains(strings.ToLower(l.Name), q)
	}, 0), nil
}

func (r *MemListingRepo) Get(ctx context.Context, id primitive.ObjectID) (domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.items {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Listing{}, errs.NotFound("Listing not found")
}

func (r *MemListingRepo) Insert(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	r.items = append(r.items, l)
	return l, nil
}

func (r *MemListingRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			applyListingFields(&r.items[i], fields)
			return nil
		}
	}
	return errs.NotFound("Listing not found")
}

func (r *MemListingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errs.NotFound("Listing not found")
}

// applyListingFields is the struct-world stand-in for Mongo's $set merge.
// Unknown keys are dropped; the typed document has nowhere to put them.
func applyListingFields(l *domain.Listing, fields bson.M) {
	for k, v := range fields {
		switch k {
		case "name":
			if s, ok := v.(string); ok {
				l.Name = s
			}
		case "category":
			if s, ok := v.(string); ok {
				l.Category = s
			}
		case "price":
			switch n := v.(type) {
			case float64:
				l.Price = n
			case int:
				l.Price = float64(n)
			}
		case "location":
			if s, ok := v.(string); ok {
				l.Location = s
			}
		case "description":
			if s, ok := v.(string); ok {
				l.Description = s
			}
		case "image":
			if s, ok := v.(string); ok {
				l.Image = s
			}
		case "email":
			if s, ok := v.(string); ok {
				l.Email = s
			}
		case "date":
			if t, ok := v.(time.Time); ok {
				l.Date = t
			}
		case "updatedAt":
			if t, ok := v.(time.Time); ok {
				l.UpdatedAt = t
			}
		}
	}
}

type MemOrderRepo struct {
	mu    sync.RWMutex
	items []domain.Order
}

func NewMemOrderRepo() *MemOrderRepo { return &MemOrderRepo{} }

func (r *MemOrderRepo) snapshot(keep func(domain.Order) bool) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Order{}
	for _, o := range r.items {
		if keep == nil || keep(o) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *MemOrderRepo) All(ctx context.Context) ([]domain.Order, error) {
	return r.snapshot(nil), nil
}

func (r *MemOrderRepo) ByOwner(ctx context.Context, email string) ([]domain.Order, error) {
	return r.snapshot(func(o domain.Order) bool { return o.Email == email }), nil
}

func (r *MemOrderRepo) Insert(ctx context.Context, o domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	r.items = append(r.items, o)
	return o, nil
}
