package service

import (
	"context"
	"errors"

	"jewelstore/internal/model"
	"jewelstore/internal/repository"

	"github.com/rs/zerolog"
)

// catalogueService implements CatalogueService.
type catalogueService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogueService creates a new catalogue service.
func NewCatalogueService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogueService {
	return &catalogueService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalogue").Logger(),
	}
}

// List retrieves products, optionally filtered by category, capped at limit.
// Any document store failure degrades to the seeded fallback catalogue with
// the same filter and truncation semantics; an empty-but-successful store
// result is returned as-is.
func (s *catalogueService) List(ctx context.Context, category string, limit int) ([]model.Product, error) {
	if limit < 0 {
		limit = 0
	}

	products, err := s.productRepo.Query(ctx, category, limit)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("category", category).
			Msg("document store query failed, serving seeded catalogue")
		return filterSeeds(category, limit), nil
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", category).
		Int("limit", limit).
		Msg("listed products")

	return products, nil
}

// Get retrieves a single product by id. A 24-character id is tried against
// the document store first: a definitive miss is a NotFound, while a store
// failure silently falls through to the seeded catalogue.
func (s *catalogueService) Get(ctx context.Context, id string) (*model.Product, error) {
	if len(id) == repository.ObjectIDHexLen {
		product, err := s.productRepo.GetByID(ctx, id)
		if err == nil {
			return product, nil
		}
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.ErrProductNotFound
		}
		s.logger.Warn().Err(err).
			Str("product_id", id).
			Msg("document store lookup failed, searching seeded catalogue")
	}

	// Mirror the listing path so store-backed products remain addressable
	// even when the direct lookup was skipped.
	products, err := s.List(ctx, "", DefaultListLimit)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}

	s.logger.Debug().Str("product_id", id).Msg("product not found")
	return nil, model.ErrProductNotFound
}

// filterSeeds applies the listing filter and truncation semantics to the
// seeded catalogue.
func filterSeeds(category string, limit int) []model.Product {
	seeds := seedCatalogue()
	filtered := make([]model.Product, 0, len(seeds))
	for _, p := range seeds {
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
