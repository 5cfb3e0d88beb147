package cart

import "github.com/shopspring/decimal"

// Product is a shop item. The catalog is a fixed in-code list: the merch
// line changes a few times a year and ships with a deploy, so there is no
// product admin surface.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Catalog is ordered the way the shop page renders it.
var Catalog = []Product{
	{ID: "classic-tee", Name: "Classic Logo Tee", Category: "apparel", Price: price("29.99"), ImageURL: "/shop/classic-tee.jpg"},
	{ID: "tour-hoodie", Name: "Tour Hoodie", Category: "apparel", Price: price("49.99"), ImageURL: "/shop/tour-hoodie.jpg"},
	{ID: "snapback-cap", Name: "Snapback Cap", Category: "apparel", Price: price("24.99"), ImageURL: "/shop/snapback-cap.jpg"},
	{ID: "collectors-box", Name: "Collector's Vinyl Box Set", Category: "music", Price: price("129.99"), ImageURL: "/shop/collectors-box.jpg"},
	{ID: "signed-vinyl", Name: "Signed Vinyl LP", Category: "music", Price: price("59.99"), ImageURL: "/shop/signed-vinyl.jpg"},
	{ID: "sticker-pack", Name: "Sticker Pack", Category: "accessories", Price: price("14.99"), ImageURL: "/shop/sticker-pack.jpg"},
	{ID: "longsleeve", Name: "Longsleeve Shirt", Category: "apparel", Price: price("39.99"), ImageURL: "/shop/longsleeve.jpg"},
	{ID: "tote-bag", Name: "Canvas Tote Bag", Category: "accessories", Price: price("19.99"), ImageURL: "/shop/tote-bag.jpg"},
	{ID: "bomber-jacket", Name: "Bomber Jacket", Category: "apparel", Price: price("99.99"), ImageURL: "/shop/bomber-jacket.jpg"},
}

// FindProduct looks a product up by id.
func FindProduct(id string) (Product, bool) {
	for _, p := range Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
