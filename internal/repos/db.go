package repos

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"pawmart/internal/config"
)

const connectTimeout = 10 * time.Second

// Store holds the live Mongo connection and the two collections every request
// works against. Built once at startup, read-only after that, safe for
// concurrent use by in-flight requests.
type Store struct {
	client   *mongo.Client
	Listings *mongo.Collection
	Orders   *mongo.Collection
}

// Open connects, pings, and resolves the listings/orders collections.
// A dead database means no usable Store; the caller decides how fatal that is.
func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(cfg.DBName)
	return &Store{
		client:   client,
		Listings: db.Collection("listings"),
		Orders:   db.Collection("orders"),
	}, nil
}

// Ping is the liveness probe behind /health.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
