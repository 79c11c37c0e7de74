package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientRecord is the exported form of a Client.
type ClientRecord struct {
	ID    string `json:"id" jsonschema_description:"Short opaque client identifier generated when the client was added"`
	Name  string `json:"name" jsonschema_description:"Client display name, used for case-insensitive lookup"`
	Email string `json:"email" jsonschema_description:"Client contact email as entered"`
}

// InvoiceRecord is the exported form of an Invoice. Status is the value
// after a refresh at the snapshot time.
type InvoiceRecord struct {
	ID           string          `json:"id" jsonschema_description:"Short opaque invoice identifier, rendered as INV-<id>"`
	ClientID     string          `json:"client_id" jsonschema_description:"Identifier of the billed client"`
	ProjectTitle string          `json:"project_title" jsonschema_description:"Project or service name, used for case-insensitive payment lookup"`
	Items        []LineItem      `json:"items" jsonschema_description:"Billed lines in entry order"`
	IssueDate    time.Time       `json:"issue_date" jsonschema_description:"When the invoice was generated"`
	DueDate      time.Time       `json:"due_date" jsonschema_description:"Issue date plus the configured payment term"`
	TotalDue     decimal.Decimal `json:"total_due" jsonschema_description:"Sum of quantity times unit price, rounded to cents, fixed at creation"`
	AmountPaid   decimal.Decimal `json:"amount_paid" jsonschema_description:"Sum of all recorded payments"`
	Balance      decimal.Decimal `json:"balance" jsonschema_description:"Total due minus amount paid; negative means the client holds a credit"`
	Status       InvoiceStatus   `json:"status" jsonschema:"enum=PENDING,enum=PARTIAL,enum=PAID,enum=OVERDUE" jsonschema_description:"Payment status as of generated_at"`
}

// Snapshot is a point-in-time report of the whole ledger.
type Snapshot struct {
	GeneratedAt time.Time       `json:"generated_at" jsonschema_description:"Time the snapshot was taken"`
	Clients     []ClientRecord  `json:"clients" jsonschema_description:"All clients in creation order"`
	Invoices    []InvoiceRecord `json:"invoices" jsonschema_description:"All invoices in creation order"`
}

// Snapshot refreshes every invoice and returns the ledger contents.
func (l *Ledger) Snapshot() Snapshot {
	now := l.clock.Now()
	snap := Snapshot{
		GeneratedAt: now,
		Clients:     make([]ClientRecord, 0, len(l.clientOrder)),
		Invoices:    make([]InvoiceRecord, 0, len(l.invoices)),
	}
	for _, c := range l.clientOrder {
		snap.Clients = append(snap.Clients, ClientRecord{ID: c.id, Name: c.name, Email: c.email})
	}
	for _, inv := range l.invoices {
		inv.Refresh(now)
		snap.Invoices = append(snap.Invoices, InvoiceRecord{
			ID:           inv.id,
			ClientID:     inv.clientID,
			ProjectTitle: inv.projectTitle,
			Items:        inv.Items(),
			IssueDate:    inv.issueDate,
			DueDate:      inv.dueDate,
			TotalDue:     inv.totalDue,
			AmountPaid:   inv.amountPaid,
			Balance:      inv.Balance(),
			Status:       inv.status,
		})
	}
	return snap
}
