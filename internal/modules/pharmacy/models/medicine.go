package models

// Medicine is one element of the shared medicines.json array. The id is the
// creation timestamp in milliseconds; uniqueness holds by construction but is
// not enforced against collisions.
type Medicine struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	Dosage        string  `json:"dosage"`
	Manufacturer  string  `json:"manufacturer"`
	OriginalPrice float64 `json:"originalPrice"`
	Image         string  `json:"image,omitempty"` // inline data-URI only
}

// CreateMedicineRequest tolerates price/stock/originalPrice arriving as JSON
// numbers or numeric strings, which is what the catalog front-end sends.
type CreateMedicineRequest struct {
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Price         FlexNumber `json:"price"`
	Stock         FlexNumber `json:"stock"`
	Dosage        string     `json:"dosage"`
	Manufacturer  string     `json:"manufacturer"`
	OriginalPrice FlexNumber `json:"originalPrice"`
	Image         string     `json:"image"`
}

// UpdateMedicineRequest merges only the fields present in the body over the
// stored record. Image distinguishes absent (keep) from null/empty (remove).
type UpdateMedicineRequest struct {
	Name          *string        `json:"name"`
	Category      *string        `json:"category"`
	Price         *FlexNumber    `json:"price"`
	Stock         *FlexNumber    `json:"stock"`
	Dosage        *string        `json:"dosage"`
	Manufacturer  *string        `json:"manufacturer"`
	OriginalPrice *FlexNumber    `json:"originalPrice"`
	Image         OptionalString `json:"image"`
}

type AddCategoryRequest struct {
	Name string `json:"name"`
}
