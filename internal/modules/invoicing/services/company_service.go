package services

import (
	"errors"
	"fmt"

	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/repositories"
	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyService struct {
	companyRepo repositories.CompanyRepo
}

func NewCompanyService(companyRepo repositories.CompanyRepo) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

func (s *CompanyService) ListCompanies() ([]models.Company, error) {
	return s.companyRepo.List()
}

func (s *CompanyService) GetCompany(id uint) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) CreateCompany(req *models.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := s.companyRepo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

func (s *CompanyService) DeleteCompany(id uint) error {
	affected, err := s.companyRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
