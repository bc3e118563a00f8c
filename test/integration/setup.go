package integration

import (
	"context"
	"testing"
	"time"

	"jewelstore/internal/model"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDB represents a document store test instance.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	DB        *mongo.Database
}

// SetupTestDB starts a MongoDB test container and connects a client to it.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(connStr))
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		t.Fatalf("failed to ping mongodb: %v", err)
	}

	return &TestDB{
		Container: container,
		Client:    client,
		DB:        client.Database("jewelstore_test"),
	}
}

// Teardown disconnects the client and terminates the container.
func (tdb *TestDB) Teardown(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	if err := tdb.Client.Disconnect(ctx); err != nil {
		t.Logf("failed to disconnect client: %v", err)
	}
	if err := tdb.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// SeedProducts inserts products into the product collection and returns
// their assigned hex ids in insertion order.
func (tdb *TestDB) SeedProducts(t *testing.T, products []model.Product) []string {
	t.Helper()

	ctx := context.Background()
	ids := make([]string, 0, len(products))
	for _, p := range products {
		doc := bson.M{
			"title":        p.Title,
			"description":  p.Description,
			"price":        p.Price,
			"category":     p.Category,
			"images":       p.Images,
			"in_stock":     p.InStock,
			"stock_qty":    p.StockQty,
			"rating":       p.Rating,
			"anti_tarnish": p.AntiTarnish,
			"color_tone":   p.ColorTone,
			"highlights":   p.Highlights,
		}
		res, err := tdb.DB.Collection("product").InsertOne(ctx, doc)
		if err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
		ids = append(ids, res.InsertedID.(primitive.ObjectID).Hex())
	}
	return ids
}

// ClearCollections empties the product and order collections between tests.
func (tdb *TestDB) ClearCollections(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	for _, name := range []string{"product", "order"} {
		if _, err := tdb.DB.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			t.Fatalf("failed to clear collection %s: %v", name, err)
		}
	}
}
