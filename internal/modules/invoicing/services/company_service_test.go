package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/repositories"
)

func TestCompanyLifecycle(t *testing.T) {
	svc := NewCompanyService(repositories.NewCompanyRepo(newTestDB(t)))

	created, err := svc.CreateCompany(&models.CreateCompanyRequest{
		Name:    strPtr("Cabinet Vétérinaire Sud"),
		Address: strPtr("12 rue des Lilas"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	list, err := svc.ListCompanies()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cabinet Vétérinaire Sud", *list[0].Name)

	got, err := svc.GetCompany(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "12 rue des Lilas", *got.Address)
	assert.Nil(t, got.Email)

	require.NoError(t, svc.DeleteCompany(created.ID))
	_, err = svc.GetCompany(created.ID)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestDeleteCompanyNotFound(t *testing.T) {
	svc := NewCompanyService(repositories.NewCompanyRepo(newTestDB(t)))
	assert.ErrorIs(t, svc.DeleteCompany(99), ErrCompanyNotFound)
}
