package mongo

import (
	"context"
	"fmt"

	"github.com/eventbook/server/internal/domain/events"
	"github.com/eventbook/server/internal/domain/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	eventsCollection = "events"
	usersCollection  = "users"
)

// Connect establishes the process-wide client. It is called once at
// startup; every repository shares the returned client's connection
// pool.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

type Repository struct {
	db *mongo.Database
}

func NewRepository(db *mongo.Database) (*Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo repository: database is nil")
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Events() events.Repository {
	return &EventRepository{coll: r.db.Collection(eventsCollection)}
}

func (r *Repository) Users() users.Repository {
	return &UserRepository{coll: r.db.Collection(usersCollection)}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the unique index on users.email. The index is
// what actually holds the no-duplicate-emails invariant: the service's
// pre-insert check alone is a read-then-write and loses under
// concurrent registration of the same address.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}
