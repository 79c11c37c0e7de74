package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// NewInvoice prices the given lines and opens a PENDING invoice issued at
// issueDate and due dueInDays later. It fails with ErrEmptyInput when there
// are no lines and with a ValidationError when a line has a negative
// quantity or price.
func NewInvoice(id, clientID, projectTitle string, items []LineItem, issueDate time.Time, dueInDays int) (*Invoice, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("invoice must have at least one item: %w", ErrEmptyInput)
	}

	total := decimal.Zero
	for i, item := range items {
		if item.Quantity < 0 {
			return nil, NewValidationError(fmt.Sprintf("items[%d].quantity", i), item.Quantity, "must not be negative")
		}
		if item.UnitPrice.IsNegative() {
			return nil, NewValidationError(fmt.Sprintf("items[%d].unit_price", i), item.UnitPrice, "must not be negative")
		}
		total = total.Add(item.Total())
	}

	lines := make([]LineItem, len(items))
	copy(lines, items)

	return &Invoice{
		id:           id,
		clientID:     clientID,
		projectTitle: projectTitle,
		items:        lines,
		issueDate:    issueDate,
		dueDate:      issueDate.AddDate(0, 0, dueInDays),
		totalDue:     total.Round(2),
		amountPaid:   decimal.Zero,
		status:       StatusPending,
	}, nil
}

// RecordPayment adds amount to the paid total and recomputes the status from
// the amounts alone. It never sets OVERDUE; that is left to Refresh.
// Overpayment is accepted and shows up as a negative balance.
func (inv *Invoice) RecordPayment(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewValidationError("amount", amount, "payment must not be negative")
	}
	inv.amountPaid = inv.amountPaid.Add(amount)

	switch {
	case inv.amountPaid.GreaterThanOrEqual(inv.totalDue):
		inv.status = StatusPaid
	case inv.amountPaid.IsPositive():
		inv.status = StatusPartial
	default:
		inv.status = StatusPending
	}
	return nil
}

// Balance is TotalDue − AmountPaid rounded to cents. Negative means credit.
func (inv *Invoice) Balance() decimal.Decimal {
	return inv.totalDue.Sub(inv.amountPaid).Round(2)
}

// Refresh flags a non-PAID invoice OVERDUE once now is past the due date.
// The flag is not sticky: a payment recomputes the status, and the next
// Refresh flags it again unless the invoice ended up PAID.
func (inv *Invoice) Refresh(now time.Time) {
	if inv.status != StatusPaid && now.After(inv.dueDate) {
		inv.status = StatusOverdue
	}
}

// Summary refreshes the status and renders the one-line invoice listing.
// A credit balance is always labelled PAID, whatever the stored status.
func (inv *Invoice) Summary(now time.Time) string {
	inv.Refresh(now)
	balance := inv.Balance()

	statusText := fmt.Sprintf("%s (DUE: %s)", inv.status, FormatMoney(balance))
	if balance.IsNegative() {
		statusText = fmt.Sprintf("%s (CREDIT: %s)", StatusPaid, FormatMoney(balance.Abs()))
	}
	return fmt.Sprintf("INV-%s | %s | Total: %s | Status: %s", inv.id, inv.projectTitle, FormatMoney(inv.totalDue), statusText)
}

// FormatMoney renders an amount as "$" followed by exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
