package repositories

import (
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"gorm.io/gorm"
)

type InvoiceRepo interface {
	List() ([]models.InvoiceRow, error)
	GetByID(id uint) (*models.InvoiceRow, error)
	ItemsByInvoice(id uint) ([]models.InvoiceItem, error)
	CreateWithItems(invoice *models.Invoice, items []models.InvoiceItem) error
	Update(id uint, fields map[string]interface{}, items []models.InvoiceItem, replaceItems bool) error
	Delete(id uint) (int64, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepo {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) List() ([]models.InvoiceRow, error) {
	var rows []models.InvoiceRow
	err := r.db.Table("invoices").
		Select("invoices.*, clients.name AS client_name, companies.name AS company_name").
		Joins("LEFT JOIN clients ON invoices.client_id = clients.id").
		Joins("LEFT JOIN companies ON invoices.company_id = companies.id").
		Order("invoices.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *invoiceRepo) GetByID(id uint) (*models.InvoiceRow, error) {
	var row models.InvoiceRow
	err := r.db.Table("invoices").
		Select("invoices.*, clients.name AS client_name, companies.name AS company_name").
		Joins("LEFT JOIN clients ON invoices.client_id = clients.id").
		Joins("LEFT JOIN companies ON invoices.company_id = companies.id").
		Where("invoices.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *invoiceRepo) ItemsByInvoice(id uint) ([]models.InvoiceItem, error) {
	var items []models.InvoiceItem
	err := r.db.Where("invoice_id = ?", id).Order("id").Find(&items).Error
	return items, err
}

// CreateWithItems inserts the invoice row and its items in one transaction;
// a failing item insert rolls the whole invoice back.
func (r *invoiceRepo) CreateWithItems(invoice *models.Invoice, items []models.InvoiceItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		return tx.Create(&items).Error
	})
}

// Update patches only the supplied columns. When replaceItems is set the
// existing item set is dropped and the given one inserted, in the same
// transaction as the column update.
func (r *invoiceRepo) Update(id uint, fields map[string]interface{}, items []models.InvoiceItem, replaceItems bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&models.Invoice{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}
		if !replaceItems {
			return nil
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].InvoiceID = id
		}
		return tx.Create(&items).Error
	})
}

// Delete removes the items first, then the invoice row. The affected count
// reflects the invoice row only, so a missing invoice reports zero even if
// stray items were cleaned up.
func (r *invoiceRepo) Delete(id uint) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Invoice{}, "id = ?", id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
