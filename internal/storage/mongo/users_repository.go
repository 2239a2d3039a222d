package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventbook/server/internal/domain/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	coll *mongo.Collection
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (r *UserRepository) FindAll(ctx context.Context) ([]users.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	items := make([]users.User, 0, len(docs))
	for _, doc := range docs {
		items = append(items, userFromDocument(doc))
	}
	return items, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (users.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return users.User{}, users.ErrNotFound
	}
	if err != nil {
		return users.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return userFromDocument(doc), nil
}

func (r *UserRepository) Insert(ctx context.Context, user users.User) (users.User, error) {
	result, err := r.coll.InsertOne(ctx, userToDocument(user))
	if err != nil {
		return users.User{}, mapInsertError(err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return users.User{}, fmt.Errorf("insert user: unexpected id type %T", result.InsertedID)
	}
	user.ID = oid.Hex()
	return user, nil
}

// mapInsertError turns a unique-index violation on users.email into
// ErrDuplicateEmail so concurrent registrations that slip past the
// service's pre-check still surface as the same conflict.
func mapInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return users.ErrDuplicateEmail
	}
	return fmt.Errorf("insert user: %w", err)
}

func userToDocument(user users.User) userDocument {
	return userDocument{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

func userFromDocument(doc userDocument) users.User {
	return users.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}
}
