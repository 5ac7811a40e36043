package service

import (
	"go-farmpet-api/internal/repository"
)

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	purchaseRepo      repository.PurchaseRepository
	lowStockThreshold int
}

func NewDashboardService(purchaseRepo repository.PurchaseRepository, lowStockThreshold int) DashboardService {
	return &dashboardService{purchaseRepo: purchaseRepo, lowStockThreshold: lowStockThreshold}
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	stats, err := s.purchaseRepo.GetDashboardStats(s.lowStockThreshold)
	if err != nil {
		return nil, persistence("dashboard stats", err)
	}
	return stats, nil
}
