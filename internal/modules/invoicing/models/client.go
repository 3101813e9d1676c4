package models

// Client is an invoice recipient. Creation performs no presence checks, so
// every column except the id is nullable and serializes as JSON null when
// missing.
type Client struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type CreateClientRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}
