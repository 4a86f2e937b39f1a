package model

// StockStatus is the closed set of display states for a variant or product.
// Dispatch is by enum value with total label/style lookups, never by
// checking booleans in a particular order.
type StockStatus string

const (
	StockStatusIn  StockStatus = "IN_STOCK"
	StockStatusLow StockStatus = "LOW_STOCK"
	StockStatusOut StockStatus = "OUT_OF_STOCK"
)

var stockStatusLabels = map[StockStatus]string{
	StockStatusIn:  "In stock",
	StockStatusLow: "Low stock",
	StockStatusOut: "Out of stock",
}

var stockStatusStyles = map[StockStatus]string{
	StockStatusIn:  "badge-success",
	StockStatusLow: "badge-warning",
	StockStatusOut: "badge-danger",
}

// Label returns the display label for the status.
func (s StockStatus) Label() string {
	if l, ok := stockStatusLabels[s]; ok {
		return l
	}
	return stockStatusLabels[StockStatusOut]
}

// StyleClass returns the style variant for the status.
func (s StockStatus) StyleClass() string {
	if c, ok := stockStatusStyles[s]; ok {
		return c
	}
	return stockStatusStyles[StockStatusOut]
}

// VariantStatus classifies a single color variant at the given threshold.
func VariantStatus(v ColorVariant, threshold int) StockStatus {
	switch {
	case !v.Available():
		return StockStatusOut
	case v.Stock <= threshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// ProductStatus classifies a product: out when no variant is available,
// low when any available variant is at or below the threshold.
func ProductStatus(p Product, threshold int) StockStatus {
	if p.FullyOutOfStock() {
		return StockStatusOut
	}
	if p.LowStockAt(threshold) {
		return StockStatusLow
	}
	return StockStatusIn
}

// NoticeLevel classifies a user-facing notification.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

var noticeStyles = map[NoticeLevel]string{
	NoticeSuccess: "toast-success",
	NoticeError:   "toast-error",
	NoticeInfo:    "toast-info",
}

// StyleClass returns the style variant for the notice level.
func (l NoticeLevel) StyleClass() string {
	if c, ok := noticeStyles[l]; ok {
		return c
	}
	return noticeStyles[NoticeInfo]
}
