package service

import (
	"time"

	"go-stock-admin/internal/model"
	"go-stock-admin/internal/repository"
)

type DashboardService interface {
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	GetRecentChanges(limit int) ([]model.StockChange, error)
}

type dashboardService struct {
	changes repository.StockChangeRepository
}

func NewDashboardService(changes repository.StockChangeRepository) DashboardService {
	return &dashboardService{changes: changes}
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.changes.GetStockMovement(startDate, endDate)
}

func (s *dashboardService) GetRecentChanges(limit int) ([]model.StockChange, error) {
	return s.changes.Recent(limit)
}
