package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/dashboard/internal/core/domain"
)

type TimeEntryRepository struct {
	col *mongo.Collection
}

func NewTimeEntryRepository(db *mongo.Database) *TimeEntryRepository {
	return &TimeEntryRepository{col: db.Collection(collectionTimeEntries)}
}

func (r *TimeEntryRepository) List(ctx context.Context) ([]domain.TimeEntry, error) {
	return findAll[domain.TimeEntry](ctx, r.col)
}

// Append inserts e as a new document and assigns its ID.
func (r *TimeEntryRepository) Append(ctx context.Context, e *domain.TimeEntry) error {
	doc := *e
	doc.ID = newID()
	if err := insert(ctx, r.col, doc); err != nil {
		return err
	}
	e.ID = doc.ID
	return nil
}

func (r *TimeEntryRepository) FindByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.TimeEntry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTimeEntryNotFound
		}
		return nil, fmt.Errorf("find time entry: %w", err)
	}
	return &e, nil
}
