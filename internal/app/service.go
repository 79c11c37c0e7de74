package app

import (
	"context"

	"invoice-ledger/internal/core"
)

// ApplicationService is the single interface the UI adapters call.
// It decouples presentation from bookkeeping. Implementations must contain
// no fmt.Println and no display logic of any kind.
type ApplicationService interface {
	// AddClient registers a billable party and returns its new identifier.
	// Mutating calls fail with ctx.Err() once ctx is done.
	AddClient(ctx context.Context, req AddClientRequest) (*ClientResult, error)

	// ListClients returns every client in creation order.
	ListClients(ctx context.Context) *ClientListResult

	// FindClient resolves a client by name, ignoring case.
	FindClient(ctx context.Context, name string) (*ClientResult, error)

	// ListInvoices returns every invoice in creation order.
	ListInvoices(ctx context.Context) *InvoiceListResult

	// GenerateInvoice bills the parsed items to the client found by name.
	GenerateInvoice(ctx context.Context, req GenerateInvoiceRequest) (*InvoiceResult, error)

	// FindInvoice resolves an invoice by project title without changing it.
	FindInvoice(ctx context.Context, projectTitle string) (*InvoiceResult, error)

	// RecordPayment parses the amount and applies it to the invoice found by
	// project title.
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (*PaymentResult, error)

	// CheckClientBalance returns the outstanding total and refreshed invoice
	// summaries for the client found by name.
	CheckClientBalance(ctx context.Context, clientName string) (*ClientBalanceResult, error)

	// ExportSnapshot returns the full ledger contents as of now.
	ExportSnapshot(ctx context.Context) core.Snapshot
}
