package repositories

import (
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"gorm.io/gorm"
)

type ClientRepo interface {
	List() ([]models.Client, error)
	GetByID(id uint) (*models.Client, error)
	Create(client *models.Client) error
	Delete(id uint) (int64, error)
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepo {
	return &clientRepo{db: db}
}

func (r *clientRepo) List() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Find(&clients).Error
	return clients, err
}

func (r *clientRepo) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// Delete removes the row by id and reports how many rows were affected.
// Invoices referencing the client are deliberately left untouched.
func (r *clientRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Client{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
