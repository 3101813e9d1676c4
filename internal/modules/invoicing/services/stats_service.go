package services

import (
	"math"
	"sort"
	"time"

	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/repositories"
)

type StatsService struct {
	statsRepo repositories.StatsRepo
}

func NewStatsService(statsRepo repositories.StatsRepo) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) Overview() (*models.StatsOverview, error) {
	overview := &models.StatsOverview{}
	var err error

	if overview.TotalInvoices, err = s.statsRepo.CountInvoices(); err != nil {
		return nil, err
	}
	if overview.TotalClients, err = s.statsRepo.CountClients(); err != nil {
		return nil, err
	}
	if overview.TotalCompanies, err = s.statsRepo.CountCompanies(); err != nil {
		return nil, err
	}
	if overview.TotalRevenue, err = s.statsRepo.TotalRevenue(); err != nil {
		return nil, err
	}
	if overview.PaidInvoices, err = s.statsRepo.CountInvoicesByPaid(true); err != nil {
		return nil, err
	}
	if overview.UnpaidInvoices, err = s.statsRepo.CountInvoicesByPaid(false); err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	if overview.RecentInvoices, err = s.statsRepo.CountInvoicesSince(cutoff); err != nil {
		return nil, err
	}
	return overview, nil
}

func (s *StatsService) PaymentStats() (*models.PaymentStats, error) {
	stats, err := s.statsRepo.PaymentTotals()
	if err != nil {
		return nil, err
	}
	if stats.TotalCount > 0 {
		pct := float64(stats.PaidCount) / float64(stats.TotalCount) * 100
		stats.PaidPercentage = math.Round(pct*100) / 100
	}
	return stats, nil
}

// MonthlyRevenue groups the last six months of invoices by YYYY-MM. The
// grouping runs in Go because the date column is TEXT and the SQL dialect
// depends on the configured driver.
func (s *StatsService) MonthlyRevenue() ([]models.MonthlyRevenue, error) {
	cutoff := time.Now().AddDate(0, -6, 0).Format("2006-01-02")
	rows, err := s.statsRepo.RevenueRowsSince(cutoff)
	if err != nil {
		return nil, err
	}

	byMonth := map[string]*models.MonthlyRevenue{}
	for _, row := range rows {
		if row.Date == nil || len(*row.Date) < 7 {
			continue
		}
		month := (*row.Date)[:7]
		entry, ok := byMonth[month]
		if !ok {
			entry = &models.MonthlyRevenue{Month: month}
			byMonth[month] = entry
		}
		if row.Total != nil {
			entry.Revenue += *row.Total
		}
		entry.InvoiceCount++
	}

	result := make([]models.MonthlyRevenue, 0, len(byMonth))
	for _, entry := range byMonth {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}

func (s *StatsService) TopClients() ([]models.ClientStats, error) {
	rows, err := s.statsRepo.TopClients(10)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.ClientStats{}
	}
	return rows, nil
}
