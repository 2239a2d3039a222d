package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost factor for bcrypt password hashing.
const BcryptCost = 12

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every stored user, password hashes included.
func (s *Service) List(ctx context.Context) ([]User, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}

// Create registers a new user with a bcrypt-hashed password. The
// duplicate-email pre-check and the insert are separate store
// operations; on its own the check is racy under concurrent calls with
// the same email, so the storage layer backs it with a unique index and
// Insert reports the conflict as ErrDuplicateEmail too.
func (s *Service) Create(ctx context.Context, input UserInput) (User, error) {
	_, findErr := s.repo.FindByEmail(ctx, input.Email)
	if findErr != nil && !errors.Is(findErr, ErrNotFound) {
		return User{}, fmt.Errorf("check email: %w", findErr)
	}

	// The hash is computed before the duplicate verdict so the call
	// takes the same time either way.
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), BcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	if findErr == nil {
		return User{}, ErrDuplicateEmail
	}

	user := User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return User{}, ErrDuplicateEmail
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}
