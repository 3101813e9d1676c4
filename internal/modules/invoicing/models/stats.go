package models

type StatsOverview struct {
	TotalInvoices  int64   `json:"total_invoices"`
	TotalClients   int64   `json:"total_clients"`
	TotalCompanies int64   `json:"total_companies"`
	TotalRevenue   float64 `json:"total_revenue"`
	PaidInvoices   int64   `json:"paid_invoices"`
	UnpaidInvoices int64   `json:"unpaid_invoices"`
	RecentInvoices int64   `json:"recent_invoices"`
}

type PaymentStats struct {
	PaidCount      int64   `json:"paid_count"`
	UnpaidCount    int64   `json:"unpaid_count"`
	TotalCount     int64   `json:"total_count"`
	PaidAmount     float64 `json:"paid_amount"`
	UnpaidAmount   float64 `json:"unpaid_amount"`
	PaidPercentage float64 `json:"paid_percentage"`
}

type MonthlyRevenue struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	InvoiceCount int     `json:"invoice_count"`
}

type ClientStats struct {
	Name         *string `json:"name"`
	InvoiceCount int64   `json:"invoice_count"`
	TotalSpent   float64 `json:"total_spent"`
}
