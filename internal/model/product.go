package model

// Product is a read-only snapshot of one catalog document as served by the
// storefront API. JSON tags follow the upstream field names.
type Product struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	CategoryName string         `json:"categoryName"`
	Price        int64          `json:"price"`
	Colors       []ColorVariant `json:"colors"`
}

// ColorVariant is one purchasable color option of a product.
type ColorVariant struct {
	Name    string   `json:"name"`
	Hex     string   `json:"hexColor"`
	InStock bool     `json:"inStock"`
	Stock   int      `json:"stock"`
	Images  []string `json:"images,omitempty"`
}

// Available reports whether the variant can currently be sold.
// A variant is available iff it is flagged in stock AND has units left.
func (v ColorVariant) Available() bool {
	return v.InStock && v.Stock > 0
}

// LowStock reports whether the variant is still available but at or below
// the given threshold.
func (v ColorVariant) LowStock(threshold int) bool {
	return v.Available() && v.Stock <= threshold
}

// AnyAvailable reports whether at least one color variant is available.
func (p Product) AnyAvailable() bool {
	for _, v := range p.Colors {
		if v.Available() {
			return true
		}
	}
	return false
}

// FullyOutOfStock reports whether every color variant is unavailable.
func (p Product) FullyOutOfStock() bool {
	return !p.AnyAvailable()
}

// LowStockAt reports whether at least one available variant sits at or
// below the threshold. Low stock is derived, never stored.
func (p Product) LowStockAt(threshold int) bool {
	for _, v := range p.Colors {
		if v.LowStock(threshold) {
			return true
		}
	}
	return false
}

// TotalUnits sums the stock counts across all variants.
func (p Product) TotalUnits() int {
	total := 0
	for _, v := range p.Colors {
		total += v.Stock
	}
	return total
}
