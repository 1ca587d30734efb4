package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawmart/internal/domain"
	"pawmart/internal/errs"
	"pawmart/internal/repos"
	"pawmart/internal/services"
)

func newListingService() (*services.ListingService, *repos.MemListingRepo) {
	repo := repos.NewMemListingRepo()
	return services.NewListingService(repo), repo
}

func f64(v float64) *float64 { return &v }

func validListing() services.ListingInput {
	return services.ListingInput{
		Name:        "Bowl",
		Category:    "Food",
		Price:       f64(9.5),
		Location:    "College Park",
		Description: "Stainless steel bowl",
		Image:       "http://img.example/bowl.jpg",
		Email:       "seller@pawmart.test",
		Date:        "2024-01-01",
	}
}

func TestListingCreateGetRoundtrip(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validListing())
	if err != nil {
		t.Fatal(err)
	}
	if created.ID.IsZero() {
		t.Fatal("no id assigned")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not stamped: %+v", created)
	}

	got, err := svc.Get(ctx, created.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if got != created {
		t.Fatalf("roundtrip mismatch:\n created=%+v\n got=%+v", created, got)
	}
	if got.Price != 9.5 || got.Name != "Bowl" || got.Category != "Food" {
		t.Fatalf("bad fields: %+v", got)
	}
	if got.Date != time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("date not coerced: %v", got.Date)
	}
}

func TestListingCreateTrimsFields(t *testing.T) {
	svc, _ := newListingService()
	in := validListing()
	in.Name = "  Bowl  "
	in.Location = " College Park "

	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if created.Name != "Bowl" || created.Location != "College Park" {
		t.Fatalf("fields not trimmed: %+v", created)
	}
}

// First broken rule wins; omitting several fields reports the earliest one.
func TestListingCreateValidationOrder(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*services.ListingInput)
		want   string
	}{
		{"missing name", func(in *services.ListingInput) { in.Name = "" }, "Product/Pet name is required"},
		{"blank name", func(in *services.ListingInput) { in.Name = "   " }, "Product/Pet name is required"},
		{"missing name and category", func(in *services.ListingInput) { in.Name = ""; in.Category = "" }, "Product/Pet name is required"},
		{"bad category", func(in *services.ListingInput) { in.Category = "Toys" }, "Valid category is required"},
		{"missing price", func(in *services.ListingInput) { in.Price = nil }, "Valid price is required"},
		{"negative price", func(in *services.ListingInput) { in.Price = f64(-1) }, "Valid price is required"},
		{"pets with price", func(in *services.ListingInput) { in.Category = "Pets"; in.Price = f64(25) }, "Pets must be free for adoption (price: 0)"},
		{"missing location", func(in *services.ListingInput) { in.Location = "" }, "Location is required"},
		{"missing description", func(in *services.ListingInput) { in.Description = "" }, "Description is required"},
		{"missing image", func(in *services.ListingInput) { in.Image = "" }, "Image URL is required"},
		{"missing email", func(in *services.ListingInput) { in.Email = "" }, "Email is required"},
		{"missing date", func(in *services.ListingInput) { in.Date = "" }, "Pickup date is required"},
	}

	svc, _ := newListingService()
	for _, tc := range cases {
		in := validListing()
		tc.mutate(&in)
		_, err := svc.Create(context.Background(), in)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if err.Error() != tc.want {
			t.Fatalf("%s: want %q, got %q", tc.name, tc.want, err.Error())
		}
		if k := errs.KindOf(err); k != errs.KindValidation {
			t.Fatalf("%s: wrong kind %v", tc.name, k)
		}
	}
}

func TestListingCreateFreePetAllowed(t *testing.T) {
	svc, _ := newListingService()
	in := validListing()
	in.Name = "Milo"
	in.Category = "Pets"
	in.Price = f64(0)

	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if created.Price != 0 {
		t.Fatalf("pet price = %v", created.Price)
	}
}

func TestListingGetInvalidIDSkipsStore(t *testing.T) {
	// nil store: any store call would panic, proving the format check
	// happens first
	svc := services.NewListingService(nil)
	_, err := svc.Get(context.Background(), "not-a-hex-id")
	if err == nil || err.Error() != "Invalid listing ID" {
		t.Fatalf("want Invalid listing ID, got %v", err)
	}
	if errs.KindOf(err) != errs.KindInvalidID {
		t.Fatalf("wrong kind for %v", err)
	}
}

func TestListingGetNotFound(t *testing.T) {
	svc, _ := newListingService()
	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

// The merge is permissive on purpose: fields pass through without the
// creation rules, so even category/price invariants can drift.
func TestListingUpdatePermissiveMerge(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validListing())
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(time.Millisecond)
	err = svc.Update(ctx, created.ID.Hex(), map[string]any{
		"category": "Pets",
		"price":    99.0,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(ctx, created.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if got.Category != "Pets" || got.Price != 99.0 {
		t.Fatalf("merge not applied: %+v", got)
	}
	if got.Name != "Bowl" {
		t.Fatalf("untouched field changed: %+v", got)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updatedAt not refreshed: %v -> %v", created.UpdatedAt, got.UpdatedAt)
	}
	if got.CreatedAt != created.CreatedAt {
		t.Fatalf("createdAt drifted: %v -> %v", created.CreatedAt, got.CreatedAt)
	}
}

func TestListingUpdateMissingAndMalformedID(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	if err := svc.Update(ctx, "zzz", map[string]any{"price": 1.0}); errs.KindOf(err) != errs.KindInvalidID {
		t.Fatalf("want invalid id, got %v", err)
	}
	err := svc.Update(ctx, primitive.NewObjectID().Hex(), map[string]any{"price": 1.0})
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestListingDeleteSecondTimeNotFound(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validListing())
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, created.ID.Hex()); err != nil {
		t.Fatal(err)
	}
	err = svc.Delete(ctx, created.ID.Hex())
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("second delete: want not found, got %v", err)
	}
}

func TestListingSearch(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	for _, name := range []string{"Dog Bowl", "Cat Tree", "bowling set"} {
		in := validListing()
		in.Name = name
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	all, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("empty query should match everything, got %d", len(all))
	}

	bowls, err := svc.Search(ctx, "BOWL")
	if err != nil {
		t.Fatal(err)
	}
	if len(bowls) != 2 {
		t.Fatalf("case-insensitive substring: want 2, got %d", len(bowls))
	}
	for _, l := range bowls {
		if !strings.Contains(strings.ToLower(l.Name), "bowl") {
			t.Fatalf("unexpected match %q", l.Name)
		}
	}
}

func TestListingOrderingNewestFirst(t *testing.T) {
	svc, repo := newListingService()
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []domain.Listing{
		{Name: "oldest", Category: "Food", CreatedAt: base},
		{Name: "tie-a", Category: "Food", CreatedAt: base.Add(time.Hour)},
		{Name: "tie-b", Category: "Food", CreatedAt: base.Add(time.Hour)},
		{Name: "newest", Category: "Food", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, l := range seed {
		if _, err := repo.Insert(ctx, l); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"newest", "tie-a", "tie-b", "oldest"}
	if len(got) != len(want) {
		t.Fatalf("want %d listings, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: want %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestListingRecentCapsAtSix(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		if _, err := svc.Create(ctx, validListing()); err != nil {
			t.Fatal(err)
		}
	}
	recent, err := svc.ListRecent(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 6 {
		t.Fatalf("recent cap: want 6, got %d", len(recent))
	}
}

func TestListingFiltersExactMatch(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	a := validListing()
	a.Category = "Care Products"
	a.Email = "a@pawmart.test"
	b := validListing()
	b.Email = "b@pawmart.test"
	for _, in := range []services.ListingInput{a, b} {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	care, err := svc.ListByCategory(ctx, "Care Products")
	if err != nil {
		t.Fatal(err)
	}
	if len(care) != 1 || care[0].Email != "a@pawmart.test" {
		t.Fatalf("category filter: %+v", care)
	}
	mine, err := svc.ListByOwner(ctx, "b@pawmart.test")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].Email != "b@pawmart.test" {
		t.Fatalf("owner filter: %+v", mine)
	}
}
