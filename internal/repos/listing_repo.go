package repos

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawmart/internal/domain"
	"pawmart/internal/errs"
)

type ListingRepo struct{ col *mongo.Collection }

func NewListingRepo(s *Store) *ListingRepo { return &ListingRepo{col: s.Listings} }

// newestFirst sorts by creation time descending; ObjectIDs ascend with
// insertion, so the _id tie-break keeps equal timestamps in insertion order.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}

func (r *ListingRepo) find(ctx context.Context, filter bson.M, limit int64) ([]domain.Listing, error) {
	opts := options.Find().SetSort(newestFirst)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	out := []domain.Listing{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ListingRepo) All(ctx context.Context) ([]domain.Listing, error) {
	return r.find(ctx, bson.M{}, 0)
}

func (r *ListingRepo) Recent(ctx context.Context, limit int64) ([]domain.Listing, error) {
	return r.find(ctx, bson.M{}, limit)
}

func (r *ListingRepo) ByCategory(ctx context.Context, category string) ([]domain.Listing, error) {
	return r.find(ctx, bson.M{"category": category}, 0)
}

func (r *ListingRepo) ByOwner(ctx context.Context, email string) ([]domain.Listing, error) {
	return r.find(ctx, bson.M{"email": email}, 0)
}

// SearchName matches the fragment as a literal, case-insensitive substring.
// QuoteMeta keeps user input from acting as a regex pattern.
func (r *ListingRepo) SearchName(ctx context.Context, q string) ([]domain.Listing, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}}
	return r.find(ctx, filter, 0)
}

func (r *ListingRepo) Get(ctx context.Context, id primitive.ObjectID) (domain.Listing, error) {
	var l domain.Listing
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Listing{}, errs.NotFound("Listing not found")
	}
	return l, err
}

func (r *ListingRepo) Insert(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	res, err := r.col.InsertOne(ctx, l)
	if err != nil {
		return domain.Listing{}, err
	}
	l.ID = res.InsertedID.(primitive.ObjectID)
	return l, nil
}

func (r *ListingRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("Listing not found")
	}
	return nil
}

func (r *ListingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("Listing not found")
	}
	return nil
}
