package models

// Company is the issuing side of an invoice. Same lifecycle shape as Client.
type Company struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type CreateCompanyRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}
