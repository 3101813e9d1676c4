package repositories

import (
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"gorm.io/gorm"
)

type CompanyRepo interface {
	List() ([]models.Company, error)
	GetByID(id uint) (*models.Company, error)
	Create(company *models.Company) error
	Delete(id uint) (int64, error)
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepo {
	return &companyRepo{db: db}
}

func (r *companyRepo) List() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Find(&companies).Error
	return companies, err
}

func (r *companyRepo) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Company{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
