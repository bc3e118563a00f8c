package service

import (
	"context"
	"errors"
	"testing"

	"jewelstore/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func checkoutRequest(items ...model.CartItem) *model.CheckoutRequest {
	return &model.CheckoutRequest{
		Items:         items,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		AddressLine1:  "1 Analytical Way",
		City:          "London",
		State:         "LDN",
		PostalCode:    "E1 6AN",
	}
}

func TestCheckoutService_Checkout_SeedPricing(t *testing.T) {
	// Two Luna Halo Rings at 59.0 cross the free shipping threshold.
	logger := zerolog.Nop()
	ctx := context.Background()

	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	mockOrders.On("Create", ctx, mock.Anything).Return("", model.ErrGatewayUnavailable)

	svc := NewCheckoutService(mockOrders, mockProducts, logger)
	receipt, err := svc.Checkout(ctx, checkoutRequest(model.CartItem{ProductID: "seed-0", Quantity: 2}))

	require.NoError(t, err)
	assert.Nil(t, receipt.OrderID)
	assert.Equal(t, 118.0, receipt.Subtotal)
	assert.Equal(t, 0.0, receipt.Shipping)
	assert.Equal(t, 118.0, receipt.Total)

	// No item had a store-shaped id, so no batch lookup happened.
	mockProducts.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	mockOrders.AssertExpectations(t)
}

func TestCheckoutService_Checkout_DefaultPricing(t *testing.T) {
	// An id resolving nowhere still checks out at the default price.
	logger := zerolog.Nop()
	ctx := context.Background()

	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	mockOrders.On("Create", ctx, mock.Anything).Return("", errors.New("insert failed"))

	svc := NewCheckoutService(mockOrders, mockProducts, logger)
	receipt, err := svc.Checkout(ctx, checkoutRequest(model.CartItem{ProductID: "mystery", Quantity: 1}))

	require.NoError(t, err)
	assert.Nil(t, receipt.OrderID)
	assert.Equal(t, 50.0, receipt.Subtotal)
	assert.Equal(t, 6.0, receipt.Shipping)
	assert.Equal(t, 56.0, receipt.Total)

	// The persisted order carries the default title.
	order := mockOrders.Calls[0].Arguments.Get(1).(*model.Order)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Jewellery Piece", order.Items[0].Title)
	assert.Nil(t, order.Items[0].Image)
}

func TestCheckoutService_Checkout_StorePricing(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	storeProduct := model.Product{
		ID:       storeHexID,
		Title:    "Orbit Bangle",
		Price:    75.5,
		Category: "Bracelets",
		Images:   []string{"https://example.com/bangle.jpg"},
	}

	mockProducts := new(MockProductRepository)
	mockProducts.On("GetByIDs", ctx, []string{storeHexID}).
		Return([]model.Product{storeProduct}, nil)

	mockOrders := new(MockOrderRepository)
	mockOrders.On("Create", ctx, mock.Anything).Return("64b0c8f2a1d2e3f405060709", nil)

	svc := NewCheckoutService(mockOrders, mockProducts, logger)
	receipt, err := svc.Checkout(ctx, checkoutRequest(model.CartItem{ProductID: storeHexID, Quantity: 1}))

	require.NoError(t, err)
	require.NotNil(t, receipt.OrderID)
	assert.Equal(t, "64b0c8f2a1d2e3f405060709", *receipt.OrderID)
	assert.Equal(t, 75.5, receipt.Subtotal)
	assert.Equal(t, 6.0, receipt.Shipping)
	assert.Equal(t, 81.5, receipt.Total)

	order := mockOrders.Calls[0].Arguments.Get(1).(*model.Order)
	assert.Equal(t, "Orbit Bangle", order.Items[0].Title)
	require.NotNil(t, order.Items[0].Image)
	assert.Equal(t, "https://example.com/bangle.jpg", *order.Items[0].Image)

	mockProducts.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestCheckoutService_Checkout_BatchResolutionFailureFallsBack(t *testing.T) {
	// A failing batch lookup degrades every store-shaped id to defaults
	// rather than rejecting the checkout.
	logger := zerolog.Nop()
	ctx := context.Background()

	mockProducts := new(MockProductRepository)
	mockProducts.On("GetByIDs", ctx, []string{storeHexID}).
		Return(nil, errors.New("connection refused"))

	mockOrders := new(MockOrderRepository)
	mockOrders.On("Create", ctx, mock.Anything).Return("", model.ErrGatewayUnavailable)

	svc := NewCheckoutService(mockOrders, mockProducts, logger)
	receipt, err := svc.Checkout(ctx, checkoutRequest(model.CartItem{ProductID: storeHexID, Quantity: 2}))

	require.NoError(t, err)
	assert.Nil(t, receipt.OrderID)
	assert.Equal(t, 100.0, receipt.Subtotal)
	assert.Equal(t, 0.0, receipt.Shipping)
	assert.Equal(t, 100.0, receipt.Total)
}

func TestCheckoutService_Checkout_MixedCart(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	storeProduct := model.Product{ID: storeHexID, Title: "Orbit Bangle", Price: 10.0, Category: "Bracelets"}

	mockProducts := new(MockProductRepository)
	mockProducts.On("GetByIDs", ctx, []string{storeHexID}).
		Return([]model.Product{storeProduct}, nil)

	mockOrders := new(MockOrderRepository)
	mockOrders.On("Create", ctx, mock.Anything).Return("64b0c8f2a1d2e3f40506070a", nil)

	svc := NewCheckoutService(mockOrders, mockProducts, logger)
	receipt, err := svc.Checkout(ctx, checkoutRequest(
		model.CartItem{ProductID: storeHexID, Quantity: 1}, // 10.0
		model.CartItem{ProductID: "seed-3", Quantity: 1},   // 45.0
		model.CartItem{ProductID: "unknown", Quantity: 1},  // 50.0 default
	))

	require.NoError(t, err)
	assert.Equal(t, 105.0, receipt.Subtotal)
	assert.Equal(t, 0.0, receipt.Shipping)
	assert.Equal(t, 105.0, receipt.Total)
	require.NotNil(t, receipt.OrderID)
}

func TestCheckoutService_Checkout_TotalsInvariant(t *testing.T) {
	// total == round2(subtotal + shipping) with shipping in {0, 6.0} and the
	// threshold at a subtotal of exactly 100.
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name             string
		quantity         int    // of the default-priced item (50.0 each)
		expectedShipping float64
	}{
		{"Below threshold", 1, 6.0},
		{"At threshold", 2, 0.0},
		{"Above threshold", 3, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProducts := new(MockProductRepository)
			mockOrders := new(MockOrderRepository)
			mockOrders.On("Create", ctx, mock.Anything).Return("", model.ErrGatewayUnavailable)

			svc := NewCheckoutService(mockOrders, mockProducts, logger)
			receipt, err := svc.Checkout(ctx, checkoutRequest(
				model.CartItem{ProductID: "unknown", Quantity: tt.quantity},
			))

			require.NoError(t, err)
			assert.Equal(t, tt.expectedShipping, receipt.Shipping)
			assert.Equal(t, round2(receipt.Subtotal+receipt.Shipping), receipt.Total)
		})
	}
}

func TestCheckoutService_Checkout_ValidationFailures(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *model.CheckoutRequest
	}{
		{"Nil request", nil},
		{"No items", checkoutRequest()},
		{
			"Zero quantity",
			checkoutRequest(model.CartItem{ProductID: "seed-0", Quantity: 0}),
		},
		{
			"Missing customer details",
			&model.CheckoutRequest{Items: []model.CartItem{{ProductID: "seed-0", Quantity: 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProducts := new(MockProductRepository)
			mockOrders := new(MockOrderRepository)

			svc := NewCheckoutService(mockOrders, mockProducts, logger)
			receipt, err := svc.Checkout(ctx, tt.req)

			require.Error(t, err)
			var verr *model.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Nil(t, receipt)

			// Validation failures never reach the document store.
			mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}
