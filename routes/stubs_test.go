package routes

import (
	"context"
	"sort"
	"time"

	"canteen-api/models"
	"canteen-api/repositories"
)

// Minimal in-memory stores backing the service layer for router tests.

type memUserStore struct {
	users  map[string]*models.User
	nextID int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*models.User{}}
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repositories.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) FindByID(_ context.Context, id int) (*models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNoRows
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.Email]; ok {
		return repositories.ErrDuplicate
	}
	s.nextID++
	user.ID = s.nextID
	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *memUserStore) UpdateForPinRequest(_ context.Context, user *models.User) error {
	stored, ok := s.users[user.Email]
	if !ok {
		return repositories.ErrNoRows
	}
	stored.Name = user.Name
	stored.DOB = user.DOB
	stored.VerificationPin = user.VerificationPin
	stored.PinExpiry = user.PinExpiry
	return nil
}

func (s *memUserStore) MarkVerified(_ context.Context, id int) error {
	for _, user := range s.users {
		if user.ID == id {
			user.Verified = true
			user.VerificationPin = nil
			user.PinExpiry = nil
			return nil
		}
	}
	return repositories.ErrNoRows
}

type memOrderStore struct {
	orders []*models.Order
	nextID int
}

func (s *memOrderStore) Count(context.Context) (int, error) {
	return len(s.orders), nil
}

func (s *memOrderStore) Create(_ context.Context, order *models.Order) error {
	for _, existing := range s.orders {
		if existing.OrderID == order.OrderID {
			return repositories.ErrDuplicate
		}
	}
	s.nextID++
	order.ID = s.nextID
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	copied := *order
	s.orders = append(s.orders, &copied)
	return nil
}

func (s *memOrderStore) List(_ context.Context, status, email string) ([]models.Order, error) {
	result := []models.Order{}
	for i := len(s.orders) - 1; i >= 0; i-- {
		order := s.orders[i]
		if status != "" && order.Status != status {
			continue
		}
		if email != "" && order.StudentEmail != email {
			continue
		}
		result = append(result, *order)
	}
	return result, nil
}

func (s *memOrderStore) FindByOrderID(_ context.Context, orderID string) (*models.Order, error) {
	for _, order := range s.orders {
		if order.OrderID == orderID {
			copied := *order
			return &copied, nil
		}
	}
	return nil, repositories.ErrNoRows
}

func (s *memOrderStore) UpdateStatus(_ context.Context, orderID, status string) (*models.Order, error) {
	for _, order := range s.orders {
		if order.OrderID == orderID {
			order.Status = status
			copied := *order
			return &copied, nil
		}
	}
	return nil, repositories.ErrNoRows
}

func (s *memOrderStore) CountByStatus(_ context.Context, status string) (int, error) {
	count := 0
	for _, order := range s.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *memOrderStore) TotalRevenue(context.Context) (float64, error) {
	total := 0.0
	for _, order := range s.orders {
		total += order.TotalAmount
	}
	return total, nil
}

type memMenuStore struct {
	items map[int]*models.MenuItem
}

func newMemMenuStore() *memMenuStore {
	return &memMenuStore{items: map[int]*models.MenuItem{}}
}

func (s *memMenuStore) List(_ context.Context, category string, availableOnly bool) ([]models.MenuItem, error) {
	result := []models.MenuItem{}
	for _, item := range s.items {
		if category != "" && item.Category != category {
			continue
		}
		if availableOnly && !item.Available {
			continue
		}
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *memMenuStore) FindByID(_ context.Context, externalID int) (*models.MenuItem, error) {
	item, ok := s.items[externalID]
	if !ok {
		return nil, repositories.ErrNoRows
	}
	copied := *item
	return &copied, nil
}

func (s *memMenuStore) Categories(context.Context) ([]string, error) {
	seen := map[string]bool{}
	categories := []string{}
	for _, item := range s.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *memMenuStore) Create(_ context.Context, item *models.MenuItem) error {
	if _, ok := s.items[item.ID]; ok {
		return repositories.ErrDuplicate
	}
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *memMenuStore) Update(_ context.Context, externalID int, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, ok := s.items[externalID]
	if !ok {
		return nil, repositories.ErrNoRows
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}
	copied := *item
	return &copied, nil
}

func (s *memMenuStore) Delete(_ context.Context, externalID int) error {
	if _, ok := s.items[externalID]; !ok {
		return repositories.ErrNoRows
	}
	delete(s.items, externalID)
	return nil
}

func (s *memMenuStore) SetImage(_ context.Context, externalID int, image string) error {
	item, ok := s.items[externalID]
	if !ok {
		return repositories.ErrNoRows
	}
	item.Image = image
	return nil
}
