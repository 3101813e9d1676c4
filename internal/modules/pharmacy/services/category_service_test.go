package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/store"
)

func TestListCategoriesSeeded(t *testing.T) {
	svc := NewCategoryService(newTestStore(t))
	assert.Equal(t, store.DefaultCategories, svc.ListCategories())
}

func TestAddCategory(t *testing.T) {
	svc := NewCategoryService(newTestStore(t))

	got, err := svc.AddCategory("Sérum")
	require.NoError(t, err)
	assert.Contains(t, got, "Sérum")
	assert.Len(t, got, len(store.DefaultCategories)+1)

	// Duplicates return the list unchanged; matching is case-sensitive.
	got, err = svc.AddCategory("Sérum")
	require.NoError(t, err)
	assert.Len(t, got, len(store.DefaultCategories)+1)

	got, err = svc.AddCategory("sérum")
	require.NoError(t, err)
	assert.Len(t, got, len(store.DefaultCategories)+2)
}

func TestAddCategoryEmptyName(t *testing.T) {
	svc := NewCategoryService(newTestStore(t))
	_, err := svc.AddCategory("")
	assert.ErrorIs(t, err, ErrCategoryNameRequired)
}
