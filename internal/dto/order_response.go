package dto

import "github.com/shopright/backend/internal/domain"

type OrderResponse struct {
	domain.Order
	HasReviewed bool `json:"hasReviewed"`
}

type DashboardStatsResponse struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalCustomers int64   `json:"totalCustomers"`
	TotalProducts  int64   `json:"totalProducts"`
}
