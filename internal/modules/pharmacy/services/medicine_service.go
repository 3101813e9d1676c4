package services

import (
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/models"
	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/store"
)

var ErrMedicineNotFound = errors.New("medicine not found")

var lastMedicineID int64

// nextMedicineID returns the current UnixMilli, bumped past the previous id
// when two creations land in the same millisecond. Ids stay timestamp-derived
// and opaque to callers.
func nextMedicineID() int64 {
	for {
		id := time.Now().UnixMilli()
		last := atomic.LoadInt64(&lastMedicineID)
		if id <= last {
			id = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastMedicineID, last, id) {
			return id
		}
	}
}

// dataURIPrefix is the only accepted embedded image format.
const dataURIPrefix = "data:image"

type MedicineService struct {
	store *store.Store
}

func NewMedicineService(s *store.Store) *MedicineService {
	return &MedicineService{store: s}
}

func (s *MedicineService) ListMedicines() []models.Medicine {
	return s.store.Medicines()
}

// CreateMedicine assigns a timestamp id, coerces price and stock (stock
// defaults to 0 on parse failure), derives originalPrice from price when not
// supplied, and keeps the image only when it is an inline data-URI.
func (s *MedicineService) CreateMedicine(req *models.CreateMedicineRequest) models.Medicine {
	price, _ := req.Price.Float64()
	stock, _ := req.Stock.Int()

	m := models.Medicine{
		ID:            nextMedicineID(),
		Name:          req.Name,
		Category:      req.Category,
		Price:         price,
		Stock:         stock,
		Dosage:        req.Dosage,
		Manufacturer:  req.Manufacturer,
		OriginalPrice: price,
	}
	if op, ok := req.OriginalPrice.Float64(); ok {
		m.OriginalPrice = op
	}
	if strings.HasPrefix(req.Image, dataURIPrefix) {
		m.Image = req.Image
	}

	s.store.AppendMedicine(m)
	return m
}

// UpdateMedicine merges only the supplied fields over the stored record,
// with the same coercion rules as create. Supplying an empty or null image
// removes the field entirely.
func (s *MedicineService) UpdateMedicine(id int64, req *models.UpdateMedicineRequest) (models.Medicine, error) {
	updated, ok := s.store.UpdateMedicine(id, func(m *models.Medicine) {
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Category != nil {
			m.Category = *req.Category
		}
		if req.Price != nil {
			m.Price, _ = req.Price.Float64()
		}
		if req.Stock != nil {
			m.Stock, _ = req.Stock.Int()
		}
		if req.Dosage != nil {
			m.Dosage = *req.Dosage
		}
		if req.Manufacturer != nil {
			m.Manufacturer = *req.Manufacturer
		}
		if req.OriginalPrice != nil {
			if op, ok := req.OriginalPrice.Float64(); ok {
				m.OriginalPrice = op
			}
		}
		if req.Image.Set {
			switch {
			case strings.HasPrefix(req.Image.Value, dataURIPrefix):
				m.Image = req.Image.Value
			case req.Image.Null || req.Image.Value == "":
				m.Image = ""
			}
		}
	})
	if !ok {
		return models.Medicine{}, ErrMedicineNotFound
	}
	return updated, nil
}

func (s *MedicineService) DeleteMedicine(id int64) error {
	if !s.store.DeleteMedicine(id) {
		return ErrMedicineNotFound
	}
	return nil
}

// SearchMedicines does a case-insensitive substring match against name,
// category and manufacturer. An empty query returns the full list.
func (s *MedicineService) SearchMedicines(query string) []models.Medicine {
	meds := s.store.Medicines()
	q := strings.ToLower(query)
	if q == "" {
		return meds
	}

	matches := make([]models.Medicine, 0)
	for _, m := range meds {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Category), q) ||
			strings.Contains(strings.ToLower(m.Manufacturer), q) {
			matches = append(matches, m)
		}
	}
	return matches
}
