package services

import (
	"errors"

	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/store"
)

var ErrCategoryNameRequired = errors.New("name required")

type CategoryService struct {
	store *store.Store
}

func NewCategoryService(s *store.Store) *CategoryService {
	return &CategoryService{store: s}
}

func (s *CategoryService) ListCategories() []string {
	return s.store.Categories()
}

// AddCategory appends the name unless an exact (case-sensitive) match exists
// and returns the resulting list either way.
func (s *CategoryService) AddCategory(name string) ([]string, error) {
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	return s.store.AddCategory(name), nil
}
