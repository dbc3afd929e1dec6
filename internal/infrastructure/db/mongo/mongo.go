package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancehub/dashboard/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

const (
	collectionClients     = "clients"
	collectionProjects    = "projects"
	collectionTimeEntries = "time_entries"
	collectionInvoices    = "invoices"
	collectionUsers       = "users"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// NewStore wires every repository onto db.
func NewStore(db *mongo.Database) ports.Store {
	return ports.Store{
		Clients:     NewClientRepository(db),
		Projects:    NewProjectRepository(db),
		TimeEntries: NewTimeEntryRepository(db),
		Invoices:    NewInvoiceRepository(db),
		Users:       NewUserRepository(db),
	}
}

// EnsureIndexes creates the unique and lookup indexes of every collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		collectionClients:     {{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique}},
		collectionUsers:       {{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique}},
		collectionProjects:    {{Keys: bson.D{{Key: "client_id", Value: 1}}}},
		collectionTimeEntries: {{Keys: bson.D{{Key: "project_id", Value: 1}}}},
		collectionInvoices:    {{Keys: bson.D{{Key: "project_id", Value: 1}}}},
	}
	for coll, indexes := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}

// newID returns a fresh string _id. ObjectID hex sorts in creation order, so
// listing by _id ascending yields insertion order.
func newID() string {
	return primitive.NewObjectID().Hex()
}

// findAll decodes every document of col in insertion order.
func findAll[T any](ctx context.Context, col *mongo.Collection) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return out, nil
}

func insert(ctx context.Context, col *mongo.Collection, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", col.Name(), err)
	}
	return nil
}
