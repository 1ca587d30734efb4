package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawmart/internal/domain"
)

type OrderRepo struct{ col *mongo.Collection }

func NewOrderRepo(s *Store) *OrderRepo { return &OrderRepo{col: s.Orders} }

func (r *OrderRepo) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	out := []domain.Order{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderRepo) All(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepo) ByOwner(ctx context.Context, email string) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *OrderRepo) Insert(ctx context.Context, o domain.Order) (domain.Order, error) {
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return o, nil
}
