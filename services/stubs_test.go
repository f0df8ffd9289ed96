package services

import (
	"context"
	"sort"
	"time"

	"canteen-api/models"
	"canteen-api/repositories"
)

// In-memory stand-ins for the record stores, mirroring the Postgres
// repositories' observable behavior.

func ptr[T any](v T) *T { return &v }

type userStoreStub struct {
	users  map[string]*models.User
	nextID int
}

func newUserStoreStub() *userStoreStub {
	return &userStoreStub{users: map[string]*models.User{}}
}

func (s *userStoreStub) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repositories.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (s *userStoreStub) FindByID(_ context.Context, id int) (*models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNoRows
}

func (s *userStoreStub) Create(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.Email]; ok {
		return repositories.ErrDuplicate
	}
	s.nextID++
	user.ID = s.nextID
	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *userStoreStub) UpdateForPinRequest(_ context.Context, user *models.User) error {
	stored, ok := s.users[user.Email]
	if !ok {
		return repositories.ErrNoRows
	}
	stored.Name = user.Name
	stored.DOB = user.DOB
	stored.VerificationPin = user.VerificationPin
	stored.PinExpiry = user.PinExpiry
	stored.UpdatedAt = time.Now()
	return nil
}

func (s *userStoreStub) MarkVerified(_ context.Context, id int) error {
	for _, user := range s.users {
		if user.ID == id {
			user.Verified = true
			user.VerificationPin = nil
			user.PinExpiry = nil
			user.UpdatedAt = time.Now()
			return nil
		}
	}
	return repositories.ErrNoRows
}

// setExpiry rewrites a stored pin expiry, simulating clock advance.
func (s *userStoreStub) setExpiry(email string, expiry time.Time) {
	if user, ok := s.users[email]; ok {
		user.PinExpiry = &expiry
	}
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type mailerStub struct {
	sent []sentMail
	err  error
}

func (m *mailerStub) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type orderStoreStub struct {
	orders   []*models.Order
	nextID   int
	failDups int // force ErrDuplicate on the next N creates
}

func newOrderStoreStub() *orderStoreStub {
	return &orderStoreStub{}
}

func (s *orderStoreStub) Count(context.Context) (int, error) {
	return len(s.orders), nil
}

func (s *orderStoreStub) Create(_ context.Context, order *models.Order) error {
	if s.failDups > 0 {
		s.failDups--
		return repositories.ErrDuplicate
	}
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

func (s *orderStoreStub) List(_ context.Context, status, email string) ([]models.Order, error) {
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

func (s *orderStoreStub) FindByOrderID(_ context.Context, orderID string) (*models.Order, error) {
	for _, order := range s.orders {
		if order.OrderID == orderID {
			copied := *order
			return &copied, nil
		}
	}
	return nil, repositories.ErrNoRows
}

func (s *orderStoreStub) UpdateStatus(_ context.Context, orderID, status string) (*models.Order, error) {
	for _, order := range s.orders {
		if order.OrderID == orderID {
			order.Status = status
			order.UpdatedAt = time.Now()
			copied := *order
			return &copied, nil
		}
	}
	return nil, repositories.ErrNoRows
}

func (s *orderStoreStub) CountByStatus(_ context.Context, status string) (int, error) {
	count := 0
	for _, order := range s.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *orderStoreStub) TotalRevenue(context.Context) (float64, error) {
	total := 0.0
	for _, order := range s.orders {
		total += order.TotalAmount
	}
	return total, nil
}

type menuStoreStub struct {
	items map[int]*models.MenuItem
}

func newMenuStoreStub() *menuStoreStub {
	return &menuStoreStub{items: map[int]*models.MenuItem{}}
}

func (s *menuStoreStub) List(_ context.Context, category string, availableOnly bool) ([]models.MenuItem, error) {
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

func (s *menuStoreStub) FindByID(_ context.Context, externalID int) (*models.MenuItem, error) {
	item, ok := s.items[externalID]
	if !ok {
		return nil, repositories.ErrNoRows
	}
	copied := *item
	return &copied, nil
}

func (s *menuStoreStub) Categories(context.Context) ([]string, error) {
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

func (s *menuStoreStub) Create(_ context.Context, item *models.MenuItem) error {
	if _, ok := s.items[item.ID]; ok {
		return repositories.ErrDuplicate
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *menuStoreStub) Update(_ context.Context, externalID int, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
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
	item.UpdatedAt = time.Now()
	copied := *item
	return &copied, nil
}

func (s *menuStoreStub) Delete(_ context.Context, externalID int) error {
	if _, ok := s.items[externalID]; !ok {
		return repositories.ErrNoRows
	}
	delete(s.items, externalID)
	return nil
}

func (s *menuStoreStub) SetImage(_ context.Context, externalID int, image string) error {
	item, ok := s.items[externalID]
	if !ok {
		return repositories.ErrNoRows
	}
	item.Image = image
	item.UpdatedAt = time.Now()
	return nil
}
