package service

import "go-stock-admin/internal/model"

// Aggregate derives inventory statistics from the product snapshot in one
// pass. Pure function of its inputs; an empty snapshot yields all zeros.
//
// InStock and LowStock overlap: a product with one available variant at or
// below the threshold is counted in both.
func Aggregate(products []model.Product, threshold int) model.InventoryStats {
	stats := model.InventoryStats{TotalProducts: len(products)}

	for _, p := range products {
		anyAvailable := false
		anyLow := false
		for _, v := range p.Colors {
			stats.TotalItems += v.Stock
			if v.Available() {
				anyAvailable = true
				if v.Stock <= threshold {
					anyLow = true
				}
			}
		}
		if anyAvailable {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		if anyLow {
			stats.LowStock++
		}
	}

	return stats
}
