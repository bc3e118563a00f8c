package repository

import (
	"context"
	"fmt"

	"jewelstore/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// orderRecord mirrors productRecord for the order collection.
type orderRecord struct {
	OID   primitive.ObjectID `bson:"_id,omitempty"`
	Order model.Order        `bson:",inline"`
}

// orderRepository implements OrderRepository against the document store.
type orderRepository struct {
	db     *mongo.Database
	logger zerolog.Logger
}

// NewOrderRepository creates a document-store-backed order repository. The
// database handle may be nil, in which case Create reports the gateway as
// unavailable.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		db:     db,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create persists an order and returns the store-assigned id.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (string, error) {
	if r.db == nil {
		return "", model.ErrGatewayUnavailable
	}

	res, err := r.db.Collection(OrderCollection).InsertOne(ctx, orderRecord{Order: *order})
	if err != nil {
		r.logger.Error().Err(err).
			Int("item_count", len(order.Items)).
			Msg("failed to insert order")
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	r.logger.Info().
		Str("order_id", oid.Hex()).
		Float64("total", order.Total).
		Msg("order persisted")

	return oid.Hex(), nil
}
