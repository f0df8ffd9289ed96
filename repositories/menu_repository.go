package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"canteen-api/models"
)

type MenuRepository struct {
	db DB
}

func NewMenuRepository(db DB) *MenuRepository {
	return &MenuRepository{db: db}
}

const menuColumns = `external_id, name, category, price, image, description, available, preparation_time, created_at, updated_at`

func scanMenuItem(row interface{ Scan(dest ...any) error }) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Price,
		&item.Image,
		&item.Description,
		&item.Available,
		&item.PreparationTime,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// List returns items sorted by category. An empty category means no
// category filter; availableOnly restricts to items currently on sale.
func (r *MenuRepository) List(ctx context.Context, category string, availableOnly bool) ([]models.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items`
	conditions := []string{}
	args := []any{}

	if category != "" {
		args = append(args, category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if availableOnly {
		conditions = append(conditions, "available = TRUE")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY category, external_id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *MenuRepository) FindByID(ctx context.Context, externalID int) (*models.MenuItem, error) {
	return scanMenuItem(r.db.QueryRow(ctx,
		`SELECT `+menuColumns+` FROM menu_items WHERE external_id = $1`, externalID))
}

func (r *MenuRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT category FROM menu_items ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO menu_items (external_id, name, category, price, image, description, available, preparation_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		item.ID, item.Name, item.Category, item.Price, item.Image,
		item.Description, item.Available, item.PreparationTime,
	).Scan(&item.CreatedAt, &item.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// Update applies a partial patch and returns the updated item.
func (r *MenuRepository) Update(ctx context.Context, externalID int, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	sets := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Category != nil {
		addSet("category", *req.Category)
	}
	if req.Price != nil {
		addSet("price", *req.Price)
	}
	if req.Image != nil {
		addSet("image", *req.Image)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Available != nil {
		addSet("available", *req.Available)
	}
	if req.PreparationTime != nil {
		addSet("preparation_time", *req.PreparationTime)
	}
	addSet("updated_at", time.Now())

	args = append(args, externalID)
	query := fmt.Sprintf(
		`UPDATE menu_items SET %s WHERE external_id = $%d RETURNING `+menuColumns,
		strings.Join(sets, ", "), len(args))

	return scanMenuItem(r.db.QueryRow(ctx, query, args...))
}

func (r *MenuRepository) Delete(ctx context.Context, externalID int) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM menu_items WHERE external_id = $1`, externalID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

// SetImage updates only the image reference, used by the admin upload.
func (r *MenuRepository) SetImage(ctx context.Context, externalID int, image string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE menu_items SET image = $1, updated_at = $2 WHERE external_id = $3`,
		image, time.Now(), externalID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}
