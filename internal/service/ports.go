package service

import (
	"time"

	"go-stock-admin/internal/model"
)

// CatalogSource supplies the full product snapshot. The storefront API owns
// the data; the view only ever holds a read-only copy.
type CatalogSource interface {
	FetchProducts() ([]model.Product, error)
}

// StockGateway persists a single color's stock count upstream. Two outcomes
// only; the caller does not interpret transport details.
type StockGateway interface {
	UpdateStock(productID string, colorIndex, stock int) error
}

// Notifier surfaces success/error toasts to connected admin consoles.
type Notifier interface {
	Notify(level model.NoticeLevel, message string)
}

// Clock abstracts time for the snapshot cooldown so tests are deterministic.
type Clock func() time.Time

// Actor is the authenticated admin performing an edit, taken from the
// verified token claims.
type Actor struct {
	ID    string
	Name  string
	Email string
}
