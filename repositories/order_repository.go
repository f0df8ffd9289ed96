package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"canteen-api/models"
)

type OrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, order_id, student_email, items, total_amount, status, payment_status, delivery_time, notes, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (*models.Order, error) {
	order := &models.Order{}
	var itemsJSON []byte
	err := row.Scan(
		&order.ID,
		&order.OrderID,
		&order.StudentEmail,
		&itemsJSON,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentStatus,
		&order.DeliveryTime,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return order, nil
}

// Count returns the number of stored orders. Order-id generation reads
// this, so concurrent creations can observe the same count; Create's
// unique constraint is what catches the resulting collisions.
func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`INSERT INTO orders (order_id, student_email, items, total_amount, status, payment_status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		order.OrderID, order.StudentEmail, itemsJSON, order.TotalAmount,
		order.Status, order.PaymentStatus, order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// List returns orders newest-first, optionally filtered by status and
// student email.
func (r *OrderRepository) List(ctx context.Context, status, email string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	argIndex := 1

	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}
	if email != "" {
		if argIndex == 1 {
			query += fmt.Sprintf(" WHERE student_email = $%d", argIndex)
		} else {
			query += fmt.Sprintf(" AND student_email = $%d", argIndex)
		}
		args = append(args, email)
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	return scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, orderID))
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	return scanOrder(r.db.QueryRow(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3
		 RETURNING `+orderColumns,
		status, time.Now(), orderID))
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *OrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders`).Scan(&total)
	return total, err
}
