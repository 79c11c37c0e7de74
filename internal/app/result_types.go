package app

import (
	"github.com/shopspring/decimal"

	"invoice-ledger/internal/core"
)

// ClientResult is returned by AddClient.
type ClientResult struct {
	Client *core.Client
}

// ClientListResult is returned by ListClients.
type ClientListResult struct {
	Clients []*core.Client
}

// InvoiceListResult is returned by ListInvoices.
type InvoiceListResult struct {
	Invoices []*core.Invoice
}

// InvoiceResult is returned by GenerateInvoice and FindInvoice.
type InvoiceResult struct {
	Invoice *core.Invoice
	Balance decimal.Decimal
}

// PaymentResult is returned by RecordPayment. Status is the stored status
// right after the payment; no overdue refresh is applied.
type PaymentResult struct {
	Invoice *core.Invoice
	Status  core.InvoiceStatus
	Balance decimal.Decimal
}

// ClientBalanceResult is returned by CheckClientBalance.
type ClientBalanceResult struct {
	Client      *core.Client
	Outstanding decimal.Decimal
	Summaries   []string
}
