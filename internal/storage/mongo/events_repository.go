package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/eventbook/server/internal/domain/events"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository struct {
	coll *mongo.Collection
}

type eventDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Date        time.Time          `bson:"date"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// FindAll returns the collection in store-native order; no sort is
// applied, so ordering is not guaranteed across calls.
func (r *EventRepository) FindAll(ctx context.Context) ([]events.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []eventDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	items := make([]events.Event, 0, len(docs))
	for _, doc := range docs {
		items = append(items, eventFromDocument(doc))
	}
	return items, nil
}

func (r *EventRepository) Insert(ctx context.Context, event events.Event) (events.Event, error) {
	result, err := r.coll.InsertOne(ctx, eventToDocument(event))
	if err != nil {
		return events.Event{}, fmt.Errorf("insert event: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return events.Event{}, fmt.Errorf("insert event: unexpected id type %T", result.InsertedID)
	}
	event.ID = oid.Hex()
	return event, nil
}

func eventToDocument(event events.Event) eventDocument {
	return eventDocument{
		Title:       event.Title,
		Description: event.Description,
		Price:       event.Price,
		Date:        event.Date,
		CreatedAt:   event.CreatedAt,
	}
}

func eventFromDocument(doc eventDocument) events.Event {
	return events.Event{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Price:       doc.Price,
		Date:        doc.Date,
		CreatedAt:   doc.CreatedAt,
	}
}
