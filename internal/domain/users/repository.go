package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by FindByEmail when no user has the email.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an email is already registered,
	// either by the pre-insert check or by the store's unique index.
	ErrDuplicateEmail = errors.New("email is already registered")
)

// Repository is the user collection accessor implemented by the storage
// layer. Insert returns ErrDuplicateEmail when the store enforces email
// uniqueness and the email is taken.
type Repository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Insert(ctx context.Context, user User) (User, error)
}
