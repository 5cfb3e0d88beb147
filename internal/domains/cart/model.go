package cart

// SchemaVersion is stamped into every stored cart document. Documents
// with a different version are discarded on read instead of half-parsed.
const SchemaVersion = 1

// MaxQuantity caps a single line so a typo cannot order 10000 hoodies.
const MaxQuantity = 99

// Item is one cart line: a product reference and a count.
type Item struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

// Document is the cart as stored: just ids and quantities. Prices are
// resolved from the catalog at read time so a price change never leaves a
// stale total in storage.
type Document struct {
	SchemaVersion int    `json:"schema_version"`
	Items         []Item `json:"items"`
}

// NewDocument returns an empty cart at the current schema version.
func NewDocument() *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Items:         []Item{},
	}
}

// Add merges quantity into the line for productID, creating the line when
// absent. Quantities below 1 are treated as 1.
func (d *Document) Add(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range d.Items {
		if d.Items[i].ProductID == productID {
			d.Items[i].Quantity += quantity
			if d.Items[i].Quantity > MaxQuantity {
				d.Items[i].Quantity = MaxQuantity
			}
			return
		}
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}
	d.Items = append(d.Items, Item{ProductID: productID, Quantity: quantity})
}

// SetQuantity pins the line for productID to quantity. Anything below 1
// removes the line, matching what a quantity stepper does at zero.
func (d *Document) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		d.Remove(productID)
		return
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}
	for i := range d.Items {
		if d.Items[i].ProductID == productID {
			d.Items[i].Quantity = quantity
			return
		}
	}
	d.Items = append(d.Items, Item{ProductID: productID, Quantity: quantity})
}

// Remove drops the line for productID. Unknown ids are a no-op.
func (d *Document) Remove(productID string) {
	for i := range d.Items {
		if d.Items[i].ProductID == productID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (d *Document) Clear() {
	d.Items = []Item{}
}

// Count sums the line quantities, the number badge on the cart icon.
func (d *Document) Count() int {
	n := 0
	for _, it := range d.Items {
		n += it.Quantity
	}
	return n
}
