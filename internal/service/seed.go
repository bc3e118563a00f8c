package service

import (
	"fmt"

	"jewelstore/internal/model"
)

// seedCatalogue returns the fixed fallback catalogue served when the
// document store is unreachable. Ids are synthesized as "seed-<index>" so
// the storefront can still link to product pages.
func seedCatalogue() []model.Product {
	products := []model.Product{
		{
			Title:       "Luna Halo Ring",
			Description: "Anti-tarnish sterling silver ring with cubic zirconia halo.",
			Price:       59.0,
			Category:    "Rings",
			Images: []string{
				"https://images.unsplash.com/photo-1520962918287-7448c2878f65?q=80&w=1200&auto=format&fit=crop",
			},
			StockQty:   25,
			ColorTone:  "rose-gold",
			Highlights: []string{"Anti-tarnish coat", "Hypoallergenic", "Shimmer finish"},
		},
		{
			Title:       "Aurora Tennis Bracelet",
			Description: "Dainty bracelet with brilliant shine and long-lasting finish.",
			Price:       89.0,
			Category:    "Bracelets",
			Images: []string{
				"https://images.unsplash.com/photo-1599643477877-530eb83abc8e?q=80&w=1200&auto=format&fit=crop",
			},
			StockQty:   18,
			ColorTone:  "platinum",
			Highlights: []string{"Water resistant", "Nickel-free", "Everyday wear"},
		},
		{
			Title:       "Celeste Pendant Necklace",
			Description: "Minimal pendant that catches light like a star.",
			Price:       72.0,
			Category:    "Necklaces",
			Images: []string{
				"https://images.unsplash.com/photo-1617038260897-1039e0c1f16f?q=80&w=1200&auto=format&fit=crop",
			},
			StockQty:   30,
			ColorTone:  "rose-gold",
			Highlights: []string{"Anti-tarnish", "Lightweight", "Gift-ready"},
		},
		{
			Title:       "Nova Stud Earrings",
			Description: "Classic studs with mirror polish and protective finish.",
			Price:       45.0,
			Category:    "Earrings",
			Images: []string{
				"https://images.unsplash.com/photo-1616400619175-5beda3a97703?q=80&w=1200&auto=format&fit=crop",
			},
			StockQty:   40,
			ColorTone:  "platinum",
			Highlights: []string{"Secure clasp", "Daily wear", "Anti-tarnish"},
		},
	}

	for i := range products {
		products[i].ID = fmt.Sprintf("seed-%d", i)
		products[i].InStock = true
		products[i].AntiTarnish = true
		products[i].ApplyDefaults()
	}

	return products
}

// findSeed returns the seeded product with the given id, or nil.
func findSeed(id string) *model.Product {
	for _, p := range seedCatalogue() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
