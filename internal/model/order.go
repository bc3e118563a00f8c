package model

import "fmt"

// DefaultCountry is applied when a checkout request omits the country.
const DefaultCountry = "US"

// OrderItem is a priced line item inside a persisted order.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title" bson:"title"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Image     *string `json:"image" bson:"image"`
}

// Order represents a customer order as persisted in the document store.
// Orders are written exactly once per checkout and never mutated.
type Order struct {
	ID            string      `json:"id,omitempty" bson:"-"`
	Items         []OrderItem `json:"items" bson:"items"`
	Subtotal      float64     `json:"subtotal" bson:"subtotal"`
	Shipping      float64     `json:"shipping" bson:"shipping"`
	Total         float64     `json:"total" bson:"total"`
	CustomerName  string      `json:"customer_name" bson:"customer_name"`
	CustomerEmail string      `json:"customer_email" bson:"customer_email"`
	AddressLine1  string      `json:"address_line1" bson:"address_line1"`
	AddressLine2  string      `json:"address_line2,omitempty" bson:"address_line2,omitempty"`
	City          string      `json:"city" bson:"city"`
	State         string      `json:"state" bson:"state"`
	PostalCode    string      `json:"postal_code" bson:"postal_code"`
	Country       string      `json:"country" bson:"country"`
	Notes         string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Validate checks the order against the schema constraints before it is
// handed to the document store.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return &ValidationError{Field: "items", Message: "order must contain at least one item"}
	}
	for i, item := range o.Items {
		if item.Quantity < 1 {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be at least 1",
			}
		}
		if item.Price < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].price", i),
				Message: "price must be non-negative",
			}
		}
		if item.Image != nil {
			if err := validateImageURL(*item.Image); err != nil {
				return &ValidationError{
					Field:   fmt.Sprintf("items[%d].image", i),
					Message: err.Error(),
				}
			}
		}
	}
	if o.Subtotal < 0 || o.Shipping < 0 || o.Total < 0 {
		return &ValidationError{Field: "total", Message: "totals must be non-negative"}
	}
	return nil
}

// CartItem is a single requested item in a checkout payload.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the inbound payload for POST /api/checkout.
type CheckoutRequest struct {
	Items         []CartItem `json:"items"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	AddressLine1  string     `json:"address_line1"`
	AddressLine2  string     `json:"address_line2,omitempty"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	PostalCode    string     `json:"postal_code"`
	Country       string     `json:"country,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// Validate checks the checkout payload and applies the country default.
func (r *CheckoutRequest) Validate() error {
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Message: "at least one item is required"}
	}
	for i, item := range r.Items {
		if item.ProductID == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].product_id", i),
				Message: "product_id is required",
			}
		}
		if item.Quantity < 1 {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be at least 1",
			}
		}
	}
	required := []struct {
		field, value string
	}{
		{"customer_name", r.CustomerName},
		{"customer_email", r.CustomerEmail},
		{"address_line1", r.AddressLine1},
		{"city", r.City},
		{"state", r.State},
		{"postal_code", r.PostalCode},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field, Message: f.field + " is required"}
		}
	}
	if r.Country == "" {
		r.Country = DefaultCountry
	}
	return nil
}

// CheckoutReceipt is the response payload for a successful checkout.
// OrderID is null when the order could not be persisted.
type CheckoutReceipt struct {
	OrderID  *string `json:"order_id"`
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
