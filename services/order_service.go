package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canteen-api/models"
	"canteen-api/repositories"
)

// orderIDAttempts bounds the retry loop around order-id collisions.
const orderIDAttempts = 3

// OrderStore is the order record store surface the workflow needs.
type OrderStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context, status, email string) ([]models.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// Create persists a new order with a generated id. Ids embed the
// creation time and a running count; concurrent creations can race to
// the same count, so the unique constraint on order_id plus a bounded
// retry closes the gap.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if req.StudentEmail == "" || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{
			MenuID:   item.MenuID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	order := &models.Order{
		StudentEmail:  req.StudentEmail,
		Items:         items,
		TotalAmount:   req.TotalAmount,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		Notes:         req.Notes,
	}

	for attempt := 0; attempt < orderIDAttempts; attempt++ {
		count, err := s.orders.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count orders: %w", err)
		}

		order.OrderID = fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), count+1)

		err = s.orders.Create(ctx, order)
		if errors.Is(err, repositories.ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create order: %w", err)
		}
		return order, nil
	}

	return nil, fmt.Errorf("%w: could not allocate a unique order id", ErrConflict)
}

// List returns all orders newest-first, optionally filtered by status
// and student email.
func (s *OrderService) List(ctx context.Context, status, email string) ([]models.Order, error) {
	orders, err := s.orders.List(ctx, status, email)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orders.FindByOrderID(ctx, orderID)
	if errors.Is(err, repositories.ErrNoRows) {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

func (s *OrderService) GetByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.List(ctx, "", email)
}

// UpdateStatus moves an order to any status in the defined enum. There
// is deliberately no transition-order enforcement.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: invalid status", ErrValidation)
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, repositories.ErrNoRows) {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return order, nil
}
