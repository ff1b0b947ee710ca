package entity

// CartItem carries a denormalized snapshot of the menu item taken at
// add-time, so a later catalog change never rewrites a cart or an order.
type CartItem struct {
	ItemID      string `json:"itemId"`
	CanteenID   string `json:"canteenId"`
	Name        string `json:"name"`
	CanteenName string `json:"canteenName"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

// LineTotal is price times quantity for this line.
func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}
