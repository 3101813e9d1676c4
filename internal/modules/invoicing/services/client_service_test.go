package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/repositories"
	"github.com/vetportal/vetportal-backend/internal/shared/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func strPtr(s string) *string     { return &s }
func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestCreateClientThenGet(t *testing.T) {
	svc := NewClientService(repositories.NewClientRepo(newTestDB(t)))

	created, err := svc.CreateClient(&models.CreateClientRequest{
		Name:  strPtr("Clinique Nord"),
		Phone: strPtr("0555-1234"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetClient(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clinique Nord", *got.Name)
	assert.Equal(t, "0555-1234", *got.Phone)
	assert.Nil(t, got.Address)
	assert.Nil(t, got.Email)
}

func TestCreateClientAllFieldsOptional(t *testing.T) {
	svc := NewClientService(repositories.NewClientRepo(newTestDB(t)))

	created, err := svc.CreateClient(&models.CreateClientRequest{})
	require.NoError(t, err)

	got, err := svc.GetClient(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Name)
}

func TestGetClientNotFound(t *testing.T) {
	svc := NewClientService(repositories.NewClientRepo(newTestDB(t)))

	_, err := svc.GetClient(42)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClient(t *testing.T) {
	svc := NewClientService(repositories.NewClientRepo(newTestDB(t)))

	created, err := svc.CreateClient(&models.CreateClientRequest{Name: strPtr("Acme")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClient(created.ID))

	_, err = svc.GetClient(created.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.ErrorIs(t, svc.DeleteClient(created.ID), ErrClientNotFound)
}
