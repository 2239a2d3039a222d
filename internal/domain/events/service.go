package events

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every stored event. Store read failures propagate
// unchanged; there is no retry and no partial result.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

// Create persists a new event built from input. Price and date are
// coerced, never rejected: a malformed price becomes NaN and a
// malformed date the zero time, and both are stored as such. Identical
// inputs always produce distinct events.
func (s *Service) Create(ctx context.Context, input EventInput) (Event, error) {
	event := Event{
		Title:       input.Title,
		Description: input.Description,
		Price:       CoercePrice(input.Price),
		Date:        ParseDate(input.Date),
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, event)
	if err != nil {
		return Event{}, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}
