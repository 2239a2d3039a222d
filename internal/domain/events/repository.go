package events

import "context"

// Repository is the event collection accessor implemented by the storage
// layer. FindAll returns events in store-native order; no ordering is
// guaranteed across calls. Insert returns the event with its
// store-assigned ID filled in.
type Repository interface {
	FindAll(ctx context.Context) ([]Event, error)
	Insert(ctx context.Context, event Event) (Event, error)
}
