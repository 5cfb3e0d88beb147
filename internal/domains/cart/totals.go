package cart

import "github.com/shopspring/decimal"

// Pricing holds the shop's shipping rule: orders strictly over the
// threshold ship free, everything else pays the flat fee.
type Pricing struct {
	FreeShippingOver decimal.Decimal
	FlatShippingFee  decimal.Decimal
}

// DefaultPricing matches the shop page copy: free shipping over 100.
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingOver: decimal.RequireFromString("100"),
		FlatShippingFee:  decimal.RequireFromString("9.99"),
	}
}

// Line is one priced cart row.
type Line struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// View is the priced cart handed to clients.
type View struct {
	Items    []Line          `json:"items"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Price resolves the document against the catalog. Lines whose product id
// no longer exists are skipped, not errors: a stale cart from a previous
// merch drop should still check out with what remains.
func (pr Pricing) Price(d *Document) View {
	view := View{Items: []Line{}}
	subtotal := decimal.Zero

	for _, it := range d.Items {
		p, ok := FindProduct(it.ProductID)
		if !ok {
			continue
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		view.Items = append(view.Items, Line{
			Product:  p,
			Quantity: it.Quantity,
			Subtotal: lineTotal,
		})
		view.Count += it.Quantity
	}

	view.Subtotal = subtotal
	view.Shipping = pr.shippingFor(subtotal, len(view.Items))
	view.Total = subtotal.Add(view.Shipping)

	return view
}

func (pr Pricing) shippingFor(subtotal decimal.Decimal, lines int) decimal.Decimal {
	if lines == 0 {
		return decimal.Zero
	}
	if subtotal.GreaterThan(pr.FreeShippingOver) {
		return decimal.Zero
	}
	return pr.FlatShippingFee
}
