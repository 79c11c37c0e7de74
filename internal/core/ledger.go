package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger is the in-memory store of clients and invoices. It is owned by a
// single caller and is not safe for concurrent use.
//
// Clients and invoices are looked up by name and project title. Labels are
// not unique: a case-insensitive exact match wins, and ties go to whichever
// record was created first.
type Ledger struct {
	clock     Clock
	newID     IDGenerator
	dueInDays int

	clients     map[string]*Client
	clientOrder []*Client
	invoices    []*Invoice
}

// NewLedger returns an empty ledger. A nil clock falls back to SystemClock
// and a nil generator to NewShortID.
func NewLedger(clock Clock, newID IDGenerator, dueInDays int) *Ledger {
	if clock == nil {
		clock = SystemClock{}
	}
	if newID == nil {
		newID = NewShortID
	}
	return &Ledger{
		clock:     clock,
		newID:     newID,
		dueInDays: dueInDays,
		clients:   make(map[string]*Client),
	}
}

// AddClient stores a new client under a freshly generated identifier.
func (l *Ledger) AddClient(name, email string) *Client {
	id := l.uniqueID(clientIDLength, func(id string) bool {
		_, taken := l.clients[id]
		return taken
	})
	client := NewClient(id, name, email)
	l.clients[id] = client
	l.clientOrder = append(l.clientOrder, client)
	return client
}

// FindClientByName returns the first client whose name matches,
// ignoring case.
func (l *Ledger) FindClientByName(name string) (*Client, error) {
	for _, c := range l.clientOrder {
		if strings.EqualFold(c.name, name) {
			return c, nil
		}
	}
	return nil, newLedgerError("FindClientByName", ErrNotFound, name)
}

// GenerateInvoice bills items to the named client and appends the invoice.
func (l *Ledger) GenerateInvoice(clientName, projectTitle string, items []LineItem) (*Invoice, error) {
	const op = "GenerateInvoice"
	if len(l.clients) == 0 {
		return nil, newLedgerError(op, ErrEmptyInput, "no clients")
	}
	client, err := l.FindClientByName(clientName)
	if err != nil {
		return nil, newLedgerError(op, ErrNotFound, clientName)
	}
	if len(items) == 0 {
		return nil, newLedgerError(op, ErrEmptyInput, "no items")
	}

	id := l.uniqueID(invoiceIDLength, func(id string) bool {
		for _, inv := range l.invoices {
			if inv.id == id {
				return true
			}
		}
		return false
	})
	inv, err := NewInvoice(id, client.id, projectTitle, items, l.clock.Now(), l.dueInDays)
	if err != nil {
		return nil, newLedgerError(op, err, projectTitle)
	}
	l.invoices = append(l.invoices, inv)
	return inv, nil
}

// FindInvoiceByProject returns the first invoice whose project title
// matches, ignoring case.
func (l *Ledger) FindInvoiceByProject(projectTitle string) (*Invoice, error) {
	const op = "FindInvoiceByProject"
	if len(l.invoices) == 0 {
		return nil, newLedgerError(op, ErrEmptyInput, "no invoices")
	}
	for _, inv := range l.invoices {
		if strings.EqualFold(inv.projectTitle, projectTitle) {
			return inv, nil
		}
	}
	return nil, newLedgerError(op, ErrNotFound, projectTitle)
}

// RecordPayment applies amount to the invoice found by project title.
func (l *Ledger) RecordPayment(projectTitle string, amount decimal.Decimal) (*Invoice, error) {
	inv, err := l.FindInvoiceByProject(projectTitle)
	if err != nil {
		return nil, err
	}
	if err := inv.RecordPayment(amount); err != nil {
		return nil, newLedgerError("RecordPayment", err, projectTitle)
	}
	return inv, nil
}

// ClientStatement is the outstanding position of one client.
type ClientStatement struct {
	Client *Client
	// Outstanding is the sum of invoice balances; credits reduce it.
	Outstanding decimal.Decimal
	Invoices    []*Invoice
	// Summaries holds one refreshed summary line per invoice, in
	// creation order.
	Summaries []string
}

// CheckClientBalance totals every invoice billed to the named client.
func (l *Ledger) CheckClientBalance(clientName string) (*ClientStatement, error) {
	client, err := l.FindClientByName(clientName)
	if err != nil {
		return nil, newLedgerError("CheckClientBalance", ErrNotFound, clientName)
	}

	now := l.clock.Now()
	st := &ClientStatement{Client: client, Outstanding: decimal.Zero}
	for _, inv := range l.invoices {
		if inv.clientID != client.id {
			continue
		}
		st.Outstanding = st.Outstanding.Add(inv.Balance())
		st.Invoices = append(st.Invoices, inv)
		st.Summaries = append(st.Summaries, inv.Summary(now))
	}
	return st, nil
}

// Clients returns all clients in creation order.
func (l *Ledger) Clients() []*Client {
	out := make([]*Client, len(l.clientOrder))
	copy(out, l.clientOrder)
	return out
}

// Invoices returns all invoices in creation order.
func (l *Ledger) Invoices() []*Invoice {
	out := make([]*Invoice, len(l.invoices))
	copy(out, l.invoices)
	return out
}

func (l *Ledger) uniqueID(length int, taken func(string) bool) string {
	for {
		id := l.newID(length)
		if !taken(id) {
			return id
		}
	}
}
