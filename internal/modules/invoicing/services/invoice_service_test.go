package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/repositories"
)

func TestCreateInvoiceWithItems(t *testing.T) {
	svc := NewInvoiceService(repositories.NewInvoiceRepo(newTestDB(t)))

	id, err := svc.CreateInvoice(&models.CreateInvoiceRequest{
		Number:   strPtr("INV-001"),
		Date:     strPtr("2026-05-01"),
		Subtotal: floatPtr(100),
		TaxTotal: floatPtr(20),
		Total:    floatPtr(120),
		Items: []models.InvoiceItemPayload{
			{Desc: "Consultation", Qty: 1, Price: 60, Tax: 12, Line: 72},
			{Desc: "Vermifuge", Qty: 2, Price: 20, Tax: 8, Line: 48},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	detail, err := svc.GetInvoice(id)
	require.NoError(t, err)
	assert.Equal(t, "INV-001", *detail.Number)
	assert.Equal(t, 120.0, *detail.Total)
	assert.False(t, detail.Paid) // defaults to unpaid when omitted

	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Consultation", detail.Items[0].Desc)
	assert.Equal(t, "Vermifuge", detail.Items[1].Desc)
	assert.Equal(t, 48.0, detail.Items[1].Line)
}

func TestCreateInvoiceWithoutItems(t *testing.T) {
	svc := NewInvoiceService(repositories.NewInvoiceRepo(newTestDB(t)))

	id, err := svc.CreateInvoice(&models.CreateInvoiceRequest{
		Number: strPtr("INV-002"),
		Paid:   boolPtr(true),
	})
	require.NoError(t, err)

	detail, err := svc.GetInvoice(id)
	require.NoError(t, err)
	assert.True(t, detail.Paid)
	assert.Empty(t, detail.Items)
	assert.Nil(t, detail.Total)
}

func TestListInvoicesNewestFirst(t *testing.T) {
	svc := NewInvoiceService(repositories.NewInvoiceRepo(newTestDB(t)))

	first, err := svc.CreateInvoice(&models.CreateInvoiceRequest{Number: strPtr("INV-001")})
	require.NoError(t, err)
	second, err := svc.CreateInvoice(&models.CreateInvoiceRequest{Number: strPtr("INV-002")})
	require.NoError(t, err)

	rows, err := svc.ListInvoices()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second, rows[0].ID)
	assert.Equal(t, first, rows[1].ID)
}

func TestInvoiceKeepsStaleClientReference(t *testing.T) {
	db := newTestDB(t)
	invoiceSvc := NewInvoiceService(repositories.NewInvoiceRepo(db))
	clientSvc := NewClientService(repositories.NewClientRepo(db))

	client, err := clientSvc.CreateClient(&models.CreateClientRequest{Name: strPtr("Ferme Durand")})
	require.NoError(t, err)

	id, err := invoiceSvc.CreateInvoice(&models.CreateInvoiceRequest{
		ClientID: uintPtr(client.ID),
		Number:   strPtr("INV-003"),
	})
	require.NoError(t, err)

	detail, err := invoiceSvc.GetInvoice(id)
	require.NoError(t, err)
	require.NotNil(t, detail.ClientName)
	assert.Equal(t, "Ferme Durand", *detail.ClientName)

	// Deleting the client must not touch the invoice; the joined name goes null.
	require.NoError(t, clientSvc.DeleteClient(client.ID))

	detail, err = invoiceSvc.GetInvoice(id)
	require.NoError(t, err)
	assert.Nil(t, detail.ClientName)
	require.NotNil(t, detail.ClientID)
	assert.Equal(t, client.ID, *detail.ClientID)
}

func TestUpdateInvoiceFieldsOnly(t *testing.T) {
	svc := NewInvoiceService(repositories.NewInvoiceRepo(newTestDB(t)))

	id, err := svc.CreateInvoice(&models.CreateInvoiceRequest{
		Number: strPtr("INV-004"),
		Total:  floatPtr(80),
		Items:  []models.InvoiceItemPayload{{Desc: "Vaccin", Qty: 1, Price: 80, Line: 80}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateInvoice(id, &models.UpdateInvoiceRequest{Paid: boolPtr(true)}))

	detail, err := svc.GetInvoice(id)
	require.NoError(t, err)
	assert.True(t, detail.Paid)
	assert.Equal(t, 80.0, *detail.Total)
	require.Len(t, detail.Items, 1) // absent items array leaves the item set alone
}

func TestUpdateInvoiceReplacesItems(t *testing.T) {
	svc := NewInvoiceService(repositories.NewInvoiceRepo(newTestDB(t)))

	id, err := svc.CreateInvoice(&models.CreateInvoiceRequest{
		Number: strPtr("INV-005"),
		Items: []models.InvoiceItemPayload{
			{Desc: "Old A", Qty: 1, Price: 10, Line: 10},
			{Desc: "Old B", Qty: 1, Price: 20, Line: 20},
		},
	})
	require.NoError(t, err)

	newItems := []models.InvoiceItemPayload{{Desc: "Replacement", Qty: 3, Price: 5, Line: 15}}
	require.NoError(t, svc.UpdateInvoice(id, &models.UpdateInvoiceRequest{Items: &newItems}))

	detail, err := svc.GetInvoice(id)
	require.NoError(t, err)
	assert.Equal(t, "INV-005", *detail.Number)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Replacement", detail.Items[0].Desc)
}

func TestUpdateInvoiceEmptyItemsClearsSet(t *testing.T) {
	svc := NewInvoiceService(repositories.NewInvoiceRepo(newTestDB(t)))

	id, err := svc.CreateInvoice(&models.CreateInvoiceRequest{
		Items: []models.InvoiceItemPayload{{Desc: "To remove", Qty: 1, Price: 10, Line: 10}},
	})
	require.NoError(t, err)

	empty := []models.InvoiceItemPayload{}
	require.NoError(t, svc.UpdateInvoice(id, &models.UpdateInvoiceRequest{Items: &empty}))

	detail, err := svc.GetInvoice(id)
	require.NoError(t, err)
	assert.Empty(t, detail.Items)
}

func TestUpdateInvoiceNothingToUpdate(t *testing.T) {
	svc := NewInvoiceService(repositories.NewInvoiceRepo(newTestDB(t)))

	id, err := svc.CreateInvoice(&models.CreateInvoiceRequest{Number: strPtr("INV-006")})
	require.NoError(t, err)

	err = svc.UpdateInvoice(id, &models.UpdateInvoiceRequest{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	detail, err := svc.GetInvoice(id)
	require.NoError(t, err)
	assert.Equal(t, "INV-006", *detail.Number)
}

func TestUpdateInvoiceUnknownIDIsNoOp(t *testing.T) {
	svc := NewInvoiceService(repositories.NewInvoiceRepo(newTestDB(t)))

	err := svc.UpdateInvoice(999, &models.UpdateInvoiceRequest{Number: strPtr("ghost")})
	assert.NoError(t, err)
}

func TestCreateInvoiceAtomicOnItemFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(repositories.NewInvoiceRepo(db))

	// Force the item insert to fail; the invoice row must roll back with it.
	require.NoError(t, db.Migrator().DropTable(&models.InvoiceItem{}))

	_, err := svc.CreateInvoice(&models.CreateInvoiceRequest{
		Number: strPtr("INV-007"),
		Items:  []models.InvoiceItemPayload{{Desc: "Orphan", Qty: 1, Price: 10, Line: 10}},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteInvoiceRemovesItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvoiceService(repositories.NewInvoiceRepo(db))

	id, err := svc.CreateInvoice(&models.CreateInvoiceRequest{
		Items: []models.InvoiceItemPayload{{Desc: "Line", Qty: 1, Price: 10, Line: 10}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvoice(id))

	_, err = svc.GetInvoice(id)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)

	var count int64
	require.NoError(t, db.Model(&models.InvoiceItem{}).Where("invoice_id = ?", id).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.DeleteInvoice(id), ErrInvoiceNotFound)
}
