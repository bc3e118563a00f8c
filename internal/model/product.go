package model

import (
	"fmt"
	"net/url"
)

// Product represents a jewellery piece in the catalogue.
//
// The ID is either a 24-character hex string assigned by the document store
// or a synthetic "seed-<n>" id when the product is served from the seeded
// fallback catalogue. It is never stored as a document field; the store's
// native identifier is substituted in on the way out.
type Product struct {
	ID          string   `json:"id" bson:"-"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64  `json:"price" bson:"price"`
	Category    string   `json:"category" bson:"category"`
	Images      []string `json:"images" bson:"images"`
	InStock     bool     `json:"in_stock" bson:"in_stock"`
	StockQty    int      `json:"stock_qty" bson:"stock_qty"`
	Rating      float64  `json:"rating" bson:"rating"`
	AntiTarnish bool     `json:"anti_tarnish" bson:"anti_tarnish"`
	ColorTone   string   `json:"color_tone,omitempty" bson:"color_tone,omitempty"`
	Highlights  []string `json:"highlights" bson:"highlights"`
}

// Product field defaults.
const (
	DefaultRating    = 4.8
	DefaultColorTone = "rose-gold"
)

// ApplyDefaults fills zero-valued optional fields with their documented
// defaults. InStock and AntiTarnish also default to true, but a zero bool is
// indistinguishable from "explicitly false", so constructors set those
// directly.
func (p *Product) ApplyDefaults() {
	if p.Rating == 0 {
		p.Rating = DefaultRating
	}
	if p.ColorTone == "" {
		p.ColorTone = DefaultColorTone
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Highlights == nil {
		p.Highlights = []string{}
	}
}

// Validate checks the product against the schema constraints.
func (p *Product) Validate() error {
	if p.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if p.Category == "" {
		return &ValidationError{Field: "category", Message: "category is required"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Message: "price must be non-negative"}
	}
	if p.StockQty < 0 {
		return &ValidationError{Field: "stock_qty", Message: "stock quantity must be non-negative"}
	}
	if p.Rating < 0 || p.Rating > 5 {
		return &ValidationError{Field: "rating", Message: "rating must be between 0 and 5"}
	}
	for i, img := range p.Images {
		if err := validateImageURL(img); err != nil {
			return &ValidationError{
				Field:   fmt.Sprintf("images[%d]", i),
				Message: err.Error(),
			}
		}
	}
	return nil
}

// validateImageURL checks that an image reference is an absolute http(s) URL.
func validateImageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("URL must be absolute http or https: %q", raw)
	}
	return nil
}
