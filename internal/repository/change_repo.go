package repository

import (
	"time"

	"go-stock-admin/internal/model"

	"gorm.io/gorm"
)

type StockChangeRepository interface {
	Record(change *model.StockChange) error
	Recent(limit int) ([]model.StockChange, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
}

// StockMovementData is one day's aggregated unit movement for chart data.
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type stockChangeRepo struct {
	db *gorm.DB
}

func NewStockChangeRepo(db *gorm.DB) StockChangeRepository {
	return &stockChangeRepo{db}
}

func (r *stockChangeRepo) Record(change *model.StockChange) error {
	return r.db.Create(change).Error
}

func (r *stockChangeRepo) Recent(limit int) ([]model.StockChange, error) {
	var changes []model.StockChange
	err := r.db.Order("created_at DESC").Limit(limit).Find(&changes).Error
	return changes, err
}

func (r *stockChangeRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Model(&model.StockChange{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN new_stock > old_stock THEN new_stock - old_stock ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN new_stock < old_stock THEN old_stock - new_stock ELSE 0 END), 0) as outbound
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		var date time.Time
		if err := rows.Scan(&date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		data.Date = date.Format("2006-01-02")
		results = append(results, data)
	}

	return results, rows.Err()
}
