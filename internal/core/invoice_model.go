package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDueInDays is the payment term applied when none is configured.
const DefaultDueInDays = 30

// InvoiceStatus is the payment state of an invoice.
//
//	PENDING → PARTIAL → PAID
//	PENDING/PARTIAL → OVERDUE (only on Refresh, after the due date)
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "PENDING"
	StatusPartial InvoiceStatus = "PARTIAL"
	StatusPaid    InvoiceStatus = "PAID"
	StatusOverdue InvoiceStatus = "OVERDUE"
)

// LineItem is one billable line on an invoice.
type LineItem struct {
	Description string          `json:"description" jsonschema_description:"Free-text description of the billed work or goods"`
	Quantity    int             `json:"quantity" jsonschema_description:"Number of units billed, never negative"`
	UnitPrice   decimal.Decimal `json:"unit_price" jsonschema_description:"Price per unit as a decimal string, never negative"`
}

// Total returns quantity × unit price, unrounded.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Invoice is a set of line items billed to one client, with payment
// tracking. TotalDue is fixed at creation and AmountPaid only grows, so both
// are kept behind accessors.
type Invoice struct {
	id           string
	clientID     string
	projectTitle string
	items        []LineItem
	issueDate    time.Time
	dueDate      time.Time
	totalDue     decimal.Decimal
	amountPaid   decimal.Decimal
	status       InvoiceStatus
}

func (inv *Invoice) ID() string                  { return inv.id }
func (inv *Invoice) ClientID() string            { return inv.clientID }
func (inv *Invoice) ProjectTitle() string        { return inv.projectTitle }
func (inv *Invoice) IssueDate() time.Time        { return inv.issueDate }
func (inv *Invoice) DueDate() time.Time          { return inv.dueDate }
func (inv *Invoice) TotalDue() decimal.Decimal   { return inv.totalDue }
func (inv *Invoice) AmountPaid() decimal.Decimal { return inv.amountPaid }

// Status returns the stored status as of the last payment or refresh. Call
// Refresh (or Summary) first when the value is going to be displayed.
func (inv *Invoice) Status() InvoiceStatus { return inv.status }

// Items returns a copy of the invoice lines in entry order.
func (inv *Invoice) Items() []LineItem {
	items := make([]LineItem, len(inv.items))
	copy(items, inv.items)
	return items
}
