package models

import "github.com/shopspring/decimal"

// Cart is the session cart resolved against the catalog. It is a value
// assembled per request, never persisted: ids whose product no longer exists
// are dropped during resolution and contribute nothing to the total.
type Cart struct {
	Items []CartItem
	Total decimal.Decimal
}

// CartItem is one line of a resolved cart. The same product appears once per
// occurrence of its id in the session sequence.
type CartItem struct {
	Product Product
}
