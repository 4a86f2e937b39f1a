package model

// EditKey identifies one editable stock cell: a color variant of a product.
type EditKey struct {
	ProductID  string `json:"product_id" validate:"required"`
	ColorIndex int    `json:"color_index" validate:"gte=0"`
}

// StockUpdate is one pending edit as submitted by the admin console. Value
// carries the raw input field contents; non-numeric input is coerced to 0
// at commit time rather than rejected.
type StockUpdate struct {
	ProductID  string `json:"product_id" validate:"required"`
	ColorIndex int    `json:"color_index" validate:"gte=0"`
	Value      string `json:"value"`
}

// Key returns the edit key the update targets.
func (u StockUpdate) Key() EditKey {
	return EditKey{ProductID: u.ProductID, ColorIndex: u.ColorIndex}
}

// InventoryStats is the fixed-shape output of the inventory aggregator.
// InStock and LowStock are not mutually exclusive: a product with one
// available low variant counts in both.
type InventoryStats struct {
	TotalProducts int `json:"total_products"`
	TotalItems    int `json:"total_items"`
	InStock       int `json:"in_stock"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`
}
