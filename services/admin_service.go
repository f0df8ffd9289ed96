package services

import (
	"context"
	"fmt"

	"canteen-api/models"
)

// AdminService is the read-only aggregator over the order store. The
// figures are recomputed on every call; there is no cached state.
type AdminService struct {
	orders OrderStore
}

func NewAdminService(orders OrderStore) *AdminService {
	return &AdminService{orders: orders}
}

func (s *AdminService) Analytics(ctx context.Context) (*models.Analytics, error) {
	total, err := s.orders.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	pending, err := s.orders.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}

	completed, err := s.orders.CountByStatus(ctx, models.StatusDelivered)
	if err != nil {
		return nil, fmt.Errorf("count delivered: %w", err)
	}

	revenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	return &models.Analytics{
		TotalOrders:     total,
		PendingOrders:   pending,
		CompletedOrders: completed,
		TotalRevenue:    revenue,
	}, nil
}
