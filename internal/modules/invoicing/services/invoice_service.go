package services

import (
	"errors"
	"fmt"

	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/repositories"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrNothingToUpdate = errors.New("no valid fields to update")
)

type InvoiceService struct {
	invoiceRepo repositories.InvoiceRepo
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepo) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

func (s *InvoiceService) ListInvoices() ([]models.InvoiceRow, error) {
	return s.invoiceRepo.List()
}

func (s *InvoiceService) GetInvoice(id uint) (*models.InvoiceDetail, error) {
	row, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	items, err := s.invoiceRepo.ItemsByInvoice(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}

	detail := &models.InvoiceDetail{
		InvoiceRow: *row,
		Items:      make([]models.InvoiceItemPayload, 0, len(items)),
	}
	for _, item := range items {
		detail.Items = append(detail.Items, item.ToPayload())
	}
	return detail, nil
}

// CreateInvoice inserts the invoice and all its items atomically and returns
// the generated id. Paid defaults to false when omitted; zero items is fine.
func (s *InvoiceService) CreateInvoice(req *models.CreateInvoiceRequest) (uint, error) {
	invoice := &models.Invoice{
		CompanyID: req.CompanyID,
		ClientID:  req.ClientID,
		Number:    req.Number,
		Date:      req.Date,
		Subtotal:  req.Subtotal,
		TaxTotal:  req.TaxTotal,
		Total:     req.Total,
	}
	if req.Paid != nil {
		invoice.Paid = *req.Paid
	}

	items := make([]models.InvoiceItem, 0, len(req.Items))
	for _, p := range req.Items {
		items = append(items, p.ToItem(0))
	}

	if err := s.invoiceRepo.CreateWithItems(invoice, items); err != nil {
		return 0, fmt.Errorf("failed to save invoice: %w", err)
	}
	return invoice.ID, nil
}

// UpdateInvoice patches only the supplied scalar fields. A present items
// array (even empty) replaces the whole item set; a request carrying neither
// fields nor items is rejected. An unknown id is a no-op, not an error.
func (s *InvoiceService) UpdateInvoice(id uint, req *models.UpdateInvoiceRequest) error {
	fields := req.Fields()
	if len(fields) == 0 && req.Items == nil {
		return ErrNothingToUpdate
	}

	var items []models.InvoiceItem
	if req.Items != nil {
		items = make([]models.InvoiceItem, 0, len(*req.Items))
		for _, p := range *req.Items {
			items = append(items, p.ToItem(id))
		}
	}

	if err := s.invoiceRepo.Update(id, fields, items, req.Items != nil); err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return nil
}

func (s *InvoiceService) DeleteInvoice(id uint) error {
	affected, err := s.invoiceRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}
