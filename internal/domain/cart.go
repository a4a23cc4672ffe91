package domain

// CartItem associates a session's cart with a menu item. Its ID is
// assigned by the backend and is distinct from the menu item's ID.
type CartItem struct {
	ID       string   `json:"id"`
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}

// CartState is the session-local mirror of the remote cart. It always
// reflects the last successful fetch; it is never computed locally.
type CartState struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
	Count     int        `json:"count"`
}

// NewCartState builds a CartState from a fetched item set, deriving the
// count as the sum of quantities.
func NewCartState(sessionID string, items []CartItem) CartState {
	if items == nil {
		items = []CartItem{}
	}
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return CartState{SessionID: sessionID, Items: items, Count: count}
}

// Total returns the cart value as the sum of price*quantity over items.
func (s CartState) Total() int64 {
	var total int64
	for _, it := range s.Items {
		total += it.MenuItem.Price * int64(it.Quantity)
	}
	return total
}
