package repositories

import (
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"gorm.io/gorm"
)

type StatsRepo interface {
	CountInvoices() (int64, error)
	CountClients() (int64, error)
	CountCompanies() (int64, error)
	CountInvoicesByPaid(paid bool) (int64, error)
	CountInvoicesSince(date string) (int64, error)
	TotalRevenue() (float64, error)
	PaymentTotals() (*models.PaymentStats, error)
	RevenueRowsSince(date string) ([]RevenueRow, error)
	TopClients(limit int) ([]models.ClientStats, error)
}

// RevenueRow is a raw (date, total) pair; monthly grouping happens in the
// service so the query stays dialect-neutral.
type RevenueRow struct {
	Date  *string
	Total *float64
}

type statsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &statsRepo{db: db}
}

func (r *statsRepo) CountInvoices() (int64, error) {
	var n int64
	err := r.db.Model(&models.Invoice{}).Count(&n).Error
	return n, err
}

func (r *statsRepo) CountClients() (int64, error) {
	var n int64
	err := r.db.Model(&models.Client{}).Count(&n).Error
	return n, err
}

func (r *statsRepo) CountCompanies() (int64, error) {
	var n int64
	err := r.db.Model(&models.Company{}).Count(&n).Error
	return n, err
}

func (r *statsRepo) CountInvoicesByPaid(paid bool) (int64, error) {
	var n int64
	err := r.db.Model(&models.Invoice{}).Where("paid = ?", paid).Count(&n).Error
	return n, err
}

func (r *statsRepo) CountInvoicesSince(date string) (int64, error) {
	var n int64
	err := r.db.Model(&models.Invoice{}).Where("date >= ?", date).Count(&n).Error
	return n, err
}

func (r *statsRepo) TotalRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Invoice{}).Select("COALESCE(SUM(total), 0)").Scan(&total).Error
	return total, err
}

func (r *statsRepo) PaymentTotals() (*models.PaymentStats, error) {
	var stats models.PaymentStats
	err := r.db.Model(&models.Invoice{}).
		Select(`COALESCE(SUM(CASE WHEN paid THEN 1 ELSE 0 END), 0) AS paid_count,
			COALESCE(SUM(CASE WHEN paid THEN 0 ELSE 1 END), 0) AS unpaid_count,
			COUNT(*) AS total_count,
			COALESCE(SUM(CASE WHEN paid THEN total ELSE 0 END), 0) AS paid_amount,
			COALESCE(SUM(CASE WHEN paid THEN 0 ELSE total END), 0) AS unpaid_amount`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepo) RevenueRowsSince(date string) ([]RevenueRow, error) {
	var rows []RevenueRow
	err := r.db.Model(&models.Invoice{}).
		Select("date, total").
		Where("date >= ?", date).
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepo) TopClients(limit int) ([]models.ClientStats, error) {
	var rows []models.ClientStats
	err := r.db.Table("clients").
		Select("clients.name AS name, COUNT(invoices.id) AS invoice_count, COALESCE(SUM(invoices.total), 0) AS total_spent").
		Joins("LEFT JOIN invoices ON clients.id = invoices.client_id").
		Group("clients.id, clients.name").
		Order("total_spent DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
