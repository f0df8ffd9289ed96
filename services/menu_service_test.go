package services

import (
	"context"
	"testing"

	"canteen-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMenuStub(t *testing.T, svc *MenuService) {
	t.Helper()
	for _, req := range []models.CreateMenuItemRequest{
		{ID: 1, Name: "Idli", Category: "Breakfast", Price: 40},
		{ID: 2, Name: "Samosa", Category: "Snacks", Price: 30},
		{ID: 3, Name: "Dosa", Category: "Breakfast", Price: 60},
		{ID: 4, Name: "Tea", Category: "Beverages", Price: 15},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}
}

func TestMenuListAndCategoryFilter(t *testing.T) {
	svc := NewMenuService(newMenuStoreStub())
	seedMenuStub(t, svc)

	all, err := svc.List(context.Background(), "", true)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	snacks, err := svc.List(context.Background(), "Snacks", true)
	require.NoError(t, err)
	require.Len(t, snacks, 1)
	assert.Equal(t, "Samosa", snacks[0].Name)

	// "All" is the synthetic frontend category, not a real filter.
	viaAll, err := svc.List(context.Background(), "All", true)
	require.NoError(t, err)
	assert.Len(t, viaAll, 4)
}

func TestMenuListHidesUnavailable(t *testing.T) {
	svc := NewMenuService(newMenuStoreStub())
	seedMenuStub(t, svc)

	_, err := svc.Update(context.Background(), 2, models.UpdateMenuItemRequest{Available: ptr(false)})
	require.NoError(t, err)

	visible, err := svc.List(context.Background(), "", true)
	require.NoError(t, err)
	assert.Len(t, visible, 3)

	// The admin view lists everything.
	everything, err := svc.List(context.Background(), "", false)
	require.NoError(t, err)
	assert.Len(t, everything, 4)
}

func TestMenuCategoriesPrefixedWithAll(t *testing.T) {
	svc := NewMenuService(newMenuStoreStub())
	seedMenuStub(t, svc)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Beverages", "Breakfast", "Snacks"}, categories)
}

func TestMenuCreateDefaults(t *testing.T) {
	svc := NewMenuService(newMenuStoreStub())

	item, err := svc.Create(context.Background(), models.CreateMenuItemRequest{
		ID: 9, Name: "Poha", Category: "Breakfast", Price: 35,
	})
	require.NoError(t, err)
	assert.True(t, item.Available)
	assert.Equal(t, 15, item.PreparationTime)
}

func TestMenuCreateValidationAndConflict(t *testing.T) {
	svc := NewMenuService(newMenuStoreStub())
	seedMenuStub(t, svc)

	_, err := svc.Create(context.Background(), models.CreateMenuItemRequest{ID: 5, Name: "Juice"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), models.CreateMenuItemRequest{
		ID: 1, Name: "Idli Again", Category: "Breakfast", Price: 40,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMenuGetUpdateDeleteNotFound(t *testing.T) {
	svc := NewMenuService(newMenuStoreStub())

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), 42, models.UpdateMenuItemRequest{Price: ptr(50.0)})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrNotFound)
	assert.ErrorIs(t, svc.SetImage(context.Background(), 42, "/uploads/x.png"), ErrNotFound)
}

func TestMenuPartialUpdate(t *testing.T) {
	svc := NewMenuService(newMenuStoreStub())
	seedMenuStub(t, svc)

	updated, err := svc.Update(context.Background(), 3, models.UpdateMenuItemRequest{
		Price:       ptr(65.0),
		Description: ptr("Crispy, served with sambar"),
	})
	require.NoError(t, err)
	assert.Equal(t, 65.0, updated.Price)
	assert.Equal(t, "Dosa", updated.Name, "unset fields must be untouched")

	require.NoError(t, svc.Delete(context.Background(), 3))
	_, err = svc.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotFound)
}
