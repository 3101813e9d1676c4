package models

// Invoice references its client and company by id only. References are not
// enforced at the database level: deleting a client or company leaves the
// invoice with a stale id and a null joined name.
type Invoice struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	CompanyID *uint    `json:"company_id"`
	ClientID  *uint    `json:"client_id"`
	Number    *string  `json:"number"`
	Date      *string  `json:"date"` // YYYY-MM-DD
	Subtotal  *float64 `json:"subtotal"`
	TaxTotal  *float64 `json:"tax_total"`
	Total     *float64 `json:"total"`
	Paid      bool     `json:"paid"`
}

// InvoiceItem is owned by its invoice and has no independent identity on the
// wire; the surrogate key exists only for storage.
type InvoiceItem struct {
	ID          uint `json:"-" gorm:"primaryKey"`
	InvoiceID   uint `json:"-" gorm:"index"`
	Description string
	Quantity    float64
	Price       float64
	Tax         float64
	Total       float64
}

// InvoiceItemPayload is the wire shape the invoice front-end uses for line
// items.
type InvoiceItemPayload struct {
	Desc  string  `json:"desc"`
	Qty   float64 `json:"qty"`
	Price float64 `json:"price"`
	Tax   float64 `json:"tax"`
	Line  float64 `json:"line"`
}

func (p InvoiceItemPayload) ToItem(invoiceID uint) InvoiceItem {
	return InvoiceItem{
		InvoiceID:   invoiceID,
		Description: p.Desc,
		Quantity:    p.Qty,
		Price:       p.Price,
		Tax:         p.Tax,
		Total:       p.Line,
	}
}

func (i InvoiceItem) ToPayload() InvoiceItemPayload {
	return InvoiceItemPayload{
		Desc:  i.Description,
		Qty:   i.Quantity,
		Price: i.Price,
		Tax:   i.Tax,
		Line:  i.Total,
	}
}

// InvoiceRow is an invoice row annotated with the joined client and company
// names. Either name is null when the referenced row no longer exists.
type InvoiceRow struct {
	Invoice     `gorm:"embedded"`
	ClientName  *string `json:"client_name"`
	CompanyName *string `json:"company_name"`
}

// InvoiceDetail is a joined row plus the full ordered item list.
type InvoiceDetail struct {
	InvoiceRow
	Items []InvoiceItemPayload `json:"items"`
}

type CreateInvoiceRequest struct {
	CompanyID *uint                `json:"company_id"`
	ClientID  *uint                `json:"client_id"`
	Number    *string              `json:"number"`
	Date      *string              `json:"date"`
	Subtotal  *float64             `json:"subtotal"`
	TaxTotal  *float64             `json:"tax_total"`
	Total     *float64             `json:"total"`
	Paid      *bool                `json:"paid"`
	Items     []InvoiceItemPayload `json:"items"`
}

// UpdateInvoiceRequest carries only the fields present in the PATCH body.
// A nil Items leaves the item set alone; a non-nil Items (even empty)
// replaces it entirely.
type UpdateInvoiceRequest struct {
	CompanyID *uint                 `json:"company_id"`
	ClientID  *uint                 `json:"client_id"`
	Number    *string               `json:"number"`
	Date      *string               `json:"date"`
	Subtotal  *float64              `json:"subtotal"`
	TaxTotal  *float64              `json:"tax_total"`
	Total     *float64              `json:"total"`
	Paid      *bool                 `json:"paid"`
	Items     *[]InvoiceItemPayload `json:"items"`
}

// Fields returns the column updates present in the request.
func (r *UpdateInvoiceRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.CompanyID != nil {
		fields["company_id"] = *r.CompanyID
	}
	if r.ClientID != nil {
		fields["client_id"] = *r.ClientID
	}
	if r.Number != nil {
		fields["number"] = *r.Number
	}
	if r.Date != nil {
		fields["date"] = *r.Date
	}
	if r.Subtotal != nil {
		fields["subtotal"] = *r.Subtotal
	}
	if r.TaxTotal != nil {
		fields["tax_total"] = *r.TaxTotal
	}
	if r.Total != nil {
		fields["total"] = *r.Total
	}
	if r.Paid != nil {
		fields["paid"] = *r.Paid
	}
	return fields
}
