package service

import (
	"context"
	"fmt"
	"math"

	"jewelstore/internal/model"
	"jewelstore/internal/repository"

	"github.com/rs/zerolog"
)

// Checkout pricing rules.
const (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = 100.0

	// FlatShippingFee applies below the free shipping threshold.
	FlatShippingFee = 6.0

	// DefaultItemPrice and DefaultItemTitle price items whose product id
	// resolves neither in the store nor in the seeded catalogue. Checkout
	// never rejects an unknown product.
	DefaultItemPrice = 50.0
	DefaultItemTitle = "Jewellery Piece"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout prices the cart, persists the order best-effort and returns the
// receipt. Document store failures never fail the request: pricing falls
// back to the seeded catalogue or the default item, and a failed persist
// simply leaves the receipt's order id null.
func (s *checkoutService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutReceipt, error) {
	if req == nil {
		return nil, &model.ValidationError{Field: "body", Message: "checkout payload is required"}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resolved := s.resolveStoreProducts(ctx, req.Items)

	var subtotal float64
	orderItems := make([]model.OrderItem, 0, len(req.Items))
	for _, ci := range req.Items {
		price, title, image := s.priceItem(ci.ProductID, resolved)
		subtotal += price * float64(ci.Quantity)
		orderItems = append(orderItems, model.OrderItem{
			ProductID: ci.ProductID,
			Title:     title,
			Price:     price,
			Quantity:  ci.Quantity,
			Image:     image,
		})
	}

	shipping := FlatShippingFee
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}
	total := round2(subtotal + shipping)

	order := &model.Order{
		Items:         orderItems,
		Subtotal:      round2(subtotal),
		Shipping:      shipping,
		Total:         total,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		Notes:         req.Notes,
	}
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("constructed order failed validation: %w", err)
	}

	var orderID *string
	if id, err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Warn().Err(err).
			Float64("total", order.Total).
			Msg("order not persisted, returning receipt without id")
	} else {
		orderID = &id
	}

	s.logger.Info().
		Int("item_count", len(orderItems)).
		Float64("subtotal", order.Subtotal).
		Float64("total", order.Total).
		Bool("persisted", orderID != nil).
		Msg("checkout completed")

	return &model.CheckoutReceipt{
		OrderID:  orderID,
		Subtotal: order.Subtotal,
		Shipping: order.Shipping,
		Total:    order.Total,
	}, nil
}

// resolveStoreProducts batch-fetches every requested id with the shape of a
// store identifier. Store failures are swallowed here; pricing falls back
// per item instead.
func (s *checkoutService) resolveStoreProducts(ctx context.Context, items []model.CartItem) map[string]model.Product {
	hexIDs := make([]string, 0, len(items))
	for _, ci := range items {
		if len(ci.ProductID) == repository.ObjectIDHexLen {
			hexIDs = append(hexIDs, ci.ProductID)
		}
	}

	resolved := make(map[string]model.Product, len(hexIDs))
	if len(hexIDs) == 0 {
		return resolved
	}

	products, err := s.productRepo.GetByIDs(ctx, hexIDs)
	if err != nil {
		s.logger.Warn().Err(err).
			Int("count", len(hexIDs)).
			Msg("batch product resolution failed, pricing from fallbacks")
		return resolved
	}
	for _, p := range products {
		resolved[p.ID] = p
	}
	return resolved
}

// priceItem resolves price, title and image for a product id with the
// precedence: store record, seeded catalogue, default item.
func (s *checkoutService) priceItem(productID string, resolved map[string]model.Product) (float64, string, *string) {
	if p, ok := resolved[productID]; ok {
		return p.Price, p.Title, firstImage(p.Images)
	}
	if seed := findSeed(productID); seed != nil {
		return seed.Price, seed.Title, firstImage(seed.Images)
	}
	return DefaultItemPrice, DefaultItemTitle, nil
}

func firstImage(images []string) *string {
	if len(images) == 0 {
		return nil
	}
	return &images[0]
}

// round2 rounds to two decimal places for receipt amounts.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
