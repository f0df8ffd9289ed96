package services

import (
	"context"
	"errors"
	"fmt"

	"canteen-api/models"
	"canteen-api/repositories"
)

// MenuStore is the catalog record store surface.
type MenuStore interface {
	List(ctx context.Context, category string, availableOnly bool) ([]models.MenuItem, error)
	FindByID(ctx context.Context, externalID int) (*models.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, externalID int, req models.UpdateMenuItemRequest) (*models.MenuItem, error)
	Delete(ctx context.Context, externalID int) error
	SetImage(ctx context.Context, externalID int, image string) error
}

type MenuService struct {
	menu MenuStore
}

func NewMenuService(menu MenuStore) *MenuService {
	return &MenuService{menu: menu}
}

// List returns catalog items sorted by category. "All" (the synthetic
// category the frontend shows) means no filter.
func (s *MenuService) List(ctx context.Context, category string, availableOnly bool) ([]models.MenuItem, error) {
	if category == "All" {
		category = ""
	}
	items, err := s.menu.List(ctx, category, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (s *MenuService) GetByID(ctx context.Context, externalID int) (*models.MenuItem, error) {
	item, err := s.menu.FindByID(ctx, externalID)
	if errors.Is(err, repositories.ErrNoRows) {
		return nil, fmt.Errorf("%w: menu item not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return item, nil
}

// Categories returns the sorted distinct categories prefixed with "All".
func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.menu.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return append([]string{"All"}, categories...), nil
}

func (s *MenuService) Create(ctx context.Context, req models.CreateMenuItemRequest) (*models.MenuItem, error) {
	if req.ID == 0 || req.Name == "" || req.Category == "" || req.Price == 0 {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	prepTime := req.PreparationTime
	if prepTime == 0 {
		prepTime = 15
	}

	item := &models.MenuItem{
		ID:              req.ID,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Image:           req.Image,
		Description:     req.Description,
		Available:       true,
		PreparationTime: prepTime,
	}

	err := s.menu.Create(ctx, item)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, fmt.Errorf("%w: menu item id already exists", ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, externalID int, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.menu.Update(ctx, externalID, req)
	if errors.Is(err, repositories.ErrNoRows) {
		return nil, fmt.Errorf("%w: menu item not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, externalID int) error {
	err := s.menu.Delete(ctx, externalID)
	if errors.Is(err, repositories.ErrNoRows) {
		return fmt.Errorf("%w: menu item not found", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

// SetImage points an item's image reference at a newly uploaded file.
func (s *MenuService) SetImage(ctx context.Context, externalID int, image string) error {
	err := s.menu.SetImage(ctx, externalID, image)
	if errors.Is(err, repositories.ErrNoRows) {
		return fmt.Errorf("%w: menu item not found", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("set menu image: %w", err)
	}
	return nil
}
