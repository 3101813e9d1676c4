package database

import (
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"gorm.io/gorm"
)

// Migrate applies the relational schema once at process start. The standalone
// cmd/migrate binary covers versioned SQL migrations for deployments that
// want them; AutoMigrate keeps a fresh database usable out of the box.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Company{},
		&models.Invoice{},
		&models.InvoiceItem{},
	)
}
