package storage

import (
	"context"

	"github.com/eventbook/server/internal/domain/events"
	"github.com/eventbook/server/internal/domain/users"
)

// Repository groups data access by domain.
type Repository interface {
	Events() events.Repository
	Users() users.Repository

	// Ping verifies the store connection is alive.
	Ping(ctx context.Context) error
}
