package repository

import (
	"context"
	"errors"
	"fmt"

	"jewelstore/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRecord pairs the store-native identifier with the product fields so
// the ObjectID can be substituted into the model's string id on the way out.
type productRecord struct {
	OID     primitive.ObjectID `bson:"_id,omitempty"`
	Product model.Product      `bson:",inline"`
}

func (r *productRecord) toModel() model.Product {
	p := r.Product
	p.ID = r.OID.Hex()
	return p
}

// productRepository implements ProductRepository against the document store.
type productRepository struct {
	db     *mongo.Database
	logger zerolog.Logger
}

// NewProductRepository creates a document-store-backed product repository.
// The database handle may be nil, in which case every call reports the
// gateway as unavailable.
func NewProductRepository(db *mongo.Database, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Query retrieves products, optionally filtered by category, capped at limit.
func (r *productRepository) Query(ctx context.Context, category string, limit int) ([]model.Product, error) {
	if r.db == nil {
		return nil, model.ErrGatewayUnavailable
	}

	// The driver treats a zero limit as unbounded; callers mean "nothing".
	if limit <= 0 {
		return []model.Product{}, nil
	}

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.db.Collection(ProductCollection).Find(ctx, filter,
		options.Find().SetLimit(int64(limit)))
	if err != nil {
		r.logger.Error().Err(err).
			Str("category", category).
			Int("limit", limit).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []model.Product
	for cursor.Next(ctx) {
		var rec productRecord
		if err := cursor.Decode(&rec); err != nil {
			r.logger.Error().Err(err).Msg("failed to decode product document")
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, rec.toModel())
	}

	if err := cursor.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product documents")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its 24-character hex id.
func (r *productRepository) GetByID(ctx context.Context, hexID string) (*model.Product, error) {
	if r.db == nil {
		return nil, model.ErrGatewayUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		r.logger.Debug().Str("product_id", hexID).Msg("id is not a store identifier")
		return nil, model.ErrProductNotFound
	}

	var rec productRecord
	err = r.db.Collection(ProductCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("product_id", hexID).Msg("product not found")
			return nil, model.ErrProductNotFound
		}
		r.logger.Error().Err(err).Str("product_id", hexID).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	product := rec.toModel()
	return &product, nil
}

// GetByIDs retrieves products matching any of the given hex ids.
func (r *productRepository) GetByIDs(ctx context.Context, hexIDs []string) ([]model.Product, error) {
	if r.db == nil {
		return nil, model.ErrGatewayUnavailable
	}

	oids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, id := range hexIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []model.Product{}, nil
	}

	cursor, err := r.db.Collection(ProductCollection).Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(oids)).Msg("failed to query products by ids")
		return nil, fmt.Errorf("failed to query products by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var products []model.Product
	for cursor.Next(ctx) {
		var rec productRecord
		if err := cursor.Decode(&rec); err != nil {
			r.logger.Error().Err(err).Msg("failed to decode product document")
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, rec.toModel())
	}

	if err := cursor.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product documents")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
