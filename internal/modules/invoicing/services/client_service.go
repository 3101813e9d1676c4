package services

import (
	"errors"
	"fmt"

	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/repositories"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

type ClientService struct {
	clientRepo repositories.ClientRepo
}

func NewClientService(clientRepo repositories.ClientRepo) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) ListClients() ([]models.Client, error) {
	return s.clientRepo.List()
}

func (s *ClientService) GetClient(id uint) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// CreateClient inserts whatever fields the request carries; absent fields
// persist as NULL.
func (s *ClientService) CreateClient(req *models.CreateClientRequest) (*models.Client, error) {
	client := &models.Client{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// DeleteClient removes the client only; invoices referencing it keep their
// stale client_id.
func (s *ClientService) DeleteClient(id uint) error {
	affected, err := s.clientRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrClientNotFound
	}
	return nil
}
