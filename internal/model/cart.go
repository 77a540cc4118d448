package model

// CartLine is one entry in the shopping cart: a value copy of the listing
// taken at add time plus a quantity. The copy is deliberate — price and
// condition are frozen when the line is added, and later catalog mutations
// (including marking the listing Sold) do not reach into an existing line.
// Quantity is always 1 in practice since every listing is unique stock.
type CartLine struct {
	Listing
	Quantity int `json:"quantity"`
}

// NewCartLine snapshots a listing into a cart line with quantity 1.
func NewCartLine(l Listing) CartLine {
	return CartLine{Listing: l, Quantity: 1}
}
