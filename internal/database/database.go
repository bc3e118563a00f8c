package database

import (
	"context"
	"fmt"
	"time"

	"jewelstore/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect establishes a connection to the document store. It returns nil
// (not an error) when the store is unconfigured, so the caller can run in
// fallback mode.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*mongo.Database, error) {
	if !cfg.Configured() {
		logger.Warn().Msg("document store not configured, running with fallback catalogue only")
		return nil, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	logger.Info().
		Str("database", cfg.Name).
		Msg("document store client created")

	return client.Database(cfg.Name), nil
}

// Health exposes connectivity checks over the document store for the
// diagnostics endpoint. All methods are safe to call when the store was
// never connected.
type Health struct {
	db *mongo.Database
}

// NewHealth creates a Health over a possibly-nil database handle.
func NewHealth(db *mongo.Database) *Health {
	return &Health{db: db}
}

// Connected reports whether a database handle exists at all.
func (h *Health) Connected() bool {
	return h.db != nil
}

// Name returns the configured database name, or "" when disconnected.
func (h *Health) Name() string {
	if h.db == nil {
		return ""
	}
	return h.db.Name()
}

// Ping verifies the store answers round trips.
func (h *Health) Ping(ctx context.Context) error {
	if h.db == nil {
		return fmt.Errorf("document store not connected")
	}
	return h.db.Client().Ping(ctx, nil)
}

// Collections lists up to limit collection names.
func (h *Health) Collections(ctx context.Context, limit int) ([]string, error) {
	if h.db == nil {
		return nil, fmt.Errorf("document store not connected")
	}
	names, err := h.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
