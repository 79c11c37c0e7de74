package app_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"invoice-ledger/internal/app"
	"invoice-ledger/internal/core"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	ctx = context.Background()
)

func setupService(t *testing.T) (app.ApplicationService, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	ledger := core.NewLedger(core.FixedClock(now), nil, core.DefaultDueInDays)
	return app.NewAppService(ledger, zerolog.New(&logs)), &logs
}

func websiteRequest() app.GenerateInvoiceRequest {
	return app.GenerateInvoiceRequest{
		ClientName:   "acme",
		ProjectTitle: "Website",
		Items: []app.ItemInput{
			{Description: "Design", Quantity: "2", UnitPrice: "50.00"},
			{Description: "Hosting", Quantity: "1", UnitPrice: "25"},
		},
	}
}

func TestAppService_InvoiceLifecycle(t *testing.T) {
	svc, logs := setupService(t)

	added, err := svc.AddClient(ctx, app.AddClientRequest{Name: "Acme", Email: "billing@acme.com"})
	require.NoError(t, err)
	assert.Len(t, added.Client.ID(), 6)

	created, err := svc.GenerateInvoice(ctx, websiteRequest())
	require.NoError(t, err)
	assert.Len(t, created.Invoice.ID(), 8)
	assert.Equal(t, "125.00", created.Balance.StringFixed(2))

	found, err := svc.FindInvoice(ctx, "WEBSITE")
	require.NoError(t, err)
	assert.Same(t, created.Invoice, found.Invoice)

	paid, err := svc.RecordPayment(ctx, app.RecordPaymentRequest{ProjectTitle: "website", Amount: "60"})
	require.NoError(t, err)
	assert.Equal(t, core.StatusPartial, paid.Status)
	assert.Equal(t, "65.00", paid.Balance.StringFixed(2))

	bal, err := svc.CheckClientBalance(ctx, "ACME")
	require.NoError(t, err)
	assert.Equal(t, "65.00", bal.Outstanding.StringFixed(2))
	assert.Len(t, bal.Summaries, 1)

	assert.Contains(t, logs.String(), `"message":"client added"`)
	assert.Contains(t, logs.String(), `"message":"invoice generated"`)
	assert.Contains(t, logs.String(), `"message":"payment recorded"`)
}

func TestAppService_RejectsBadNumbers(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.AddClient(ctx, app.AddClientRequest{Name: "Acme"})
	require.NoError(t, err)

	req := websiteRequest()
	req.Items[1].Quantity = "one"
	_, err = svc.GenerateInvoice(ctx, req)
	assert.ErrorIs(t, err, core.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "item 2 (Hosting)")
	assert.Empty(t, svc.ExportSnapshot(ctx).Invoices)

	_, err = svc.GenerateInvoice(ctx, websiteRequest())
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, app.RecordPaymentRequest{ProjectTitle: "Website", Amount: "lots"})
	assert.ErrorIs(t, err, core.ErrInvalidFormat)
}

func TestAppService_LookupFailures(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GenerateInvoice(ctx, websiteRequest())
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	_, err = svc.FindInvoice(ctx, "Website")
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	_, err = svc.CheckClientBalance(ctx, "Acme")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = svc.AddClient(ctx, app.AddClientRequest{Name: "Acme"})
	require.NoError(t, err)
	req := websiteRequest()
	req.Items = nil
	_, err = svc.GenerateInvoice(ctx, req)
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}

func TestAppService_ListAndExport(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.AddClient(ctx, app.AddClientRequest{Name: "Acme"})
	require.NoError(t, err)
	_, err = svc.AddClient(ctx, app.AddClientRequest{Name: "Globex"})
	require.NoError(t, err)

	client, err := svc.FindClient(ctx, "GLOBEX")
	require.NoError(t, err)
	assert.Equal(t, "Globex", client.Client.Name())
	_, err = svc.FindClient(ctx, "Initech")
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Empty(t, svc.ListInvoices(ctx).Invoices)

	list := svc.ListClients(ctx)
	require.Len(t, list.Clients, 2)
	assert.Equal(t, "Acme", list.Clients[0].Name())
	assert.Equal(t, "Globex", list.Clients[1].Name())

	snap := svc.ExportSnapshot(ctx)
	assert.Equal(t, now, snap.GeneratedAt)
	assert.Len(t, snap.Clients, 2)
}

func TestAppService_FailuresLoggedBelowWarn(t *testing.T) {
	svc, logs := setupService(t)

	_, err := svc.GenerateInvoice(ctx, websiteRequest())
	require.Error(t, err)
	_, err = svc.RecordPayment(ctx, app.RecordPaymentRequest{ProjectTitle: "Website", Amount: "10"})
	require.Error(t, err)

	assert.Contains(t, logs.String(), `"message":"invoice not generated"`)
	assert.Contains(t, logs.String(), `"message":"payment not recorded"`)
	assert.NotContains(t, logs.String(), `"level":"warn"`)
	assert.NotContains(t, logs.String(), `"level":"error"`)
}

func TestAppService_CancelledContext(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.AddClient(ctx, app.AddClientRequest{Name: "Acme"})
	require.NoError(t, err)
	_, err = svc.GenerateInvoice(ctx, websiteRequest())
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = svc.AddClient(cancelled, app.AddClientRequest{Name: "Globex"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.GenerateInvoice(cancelled, websiteRequest())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.RecordPayment(cancelled, app.RecordPaymentRequest{ProjectTitle: "Website", Amount: "10"})
	assert.ErrorIs(t, err, context.Canceled)

	snap := svc.ExportSnapshot(ctx)
	assert.Len(t, snap.Clients, 1)
	require.Len(t, snap.Invoices, 1)
	assert.Equal(t, "125.00", snap.Invoices[0].Balance.StringFixed(2))
}
