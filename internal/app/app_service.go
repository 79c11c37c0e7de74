package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"invoice-ledger/internal/core"
)

type appService struct {
	ledger *core.Ledger
	log    zerolog.Logger
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(ledger *core.Ledger, log zerolog.Logger) ApplicationService {
	return &appService{ledger: ledger, log: log}
}

// AddClient registers a billable party.
func (s *appService) AddClient(ctx context.Context, req AddClientRequest) (*ClientResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	client := s.ledger.AddClient(req.Name, req.Email)
	s.log.Info().
		Str("client_id", client.ID()).
		Str("name", client.Name()).
		Msg("client added")
	return &ClientResult{Client: client}, nil
}

// ListClients returns every client in creation order.
func (s *appService) ListClients(_ context.Context) *ClientListResult {
	return &ClientListResult{Clients: s.ledger.Clients()}
}

// FindClient resolves a client by name.
func (s *appService) FindClient(_ context.Context, name string) (*ClientResult, error) {
	client, err := s.ledger.FindClientByName(name)
	if err != nil {
		return nil, err
	}
	return &ClientResult{Client: client}, nil
}

// ListInvoices returns every invoice in creation order.
func (s *appService) ListInvoices(_ context.Context) *InvoiceListResult {
	return &InvoiceListResult{Invoices: s.ledger.Invoices()}
}

// GenerateInvoice parses the raw item fields and bills them to the client.
func (s *appService) GenerateInvoice(ctx context.Context, req GenerateInvoiceRequest) (*InvoiceResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items, err := parseItems(req.Items)
	if err != nil {
		return nil, err
	}

	inv, err := s.ledger.GenerateInvoice(req.ClientName, req.ProjectTitle, items)
	if err != nil {
		s.log.Info().Err(err).
			Str("client", req.ClientName).
			Str("project", req.ProjectTitle).
			Msg("invoice not generated")
		return nil, err
	}

	s.log.Info().
		Str("invoice_id", inv.ID()).
		Str("client_id", inv.ClientID()).
		Str("total_due", inv.TotalDue().StringFixed(2)).
		Time("due_date", inv.DueDate()).
		Msg("invoice generated")
	return &InvoiceResult{Invoice: inv, Balance: inv.Balance()}, nil
}

// FindInvoice resolves an invoice by project title.
func (s *appService) FindInvoice(_ context.Context, projectTitle string) (*InvoiceResult, error) {
	inv, err := s.ledger.FindInvoiceByProject(projectTitle)
	if err != nil {
		return nil, err
	}
	return &InvoiceResult{Invoice: inv, Balance: inv.Balance()}, nil
}

// RecordPayment parses the amount and applies it.
func (s *appService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*PaymentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	amount, err := core.ParseMoney("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	inv, err := s.ledger.RecordPayment(req.ProjectTitle, amount)
	if err != nil {
		s.log.Info().Err(err).Str("project", req.ProjectTitle).Msg("payment not recorded")
		return nil, err
	}

	s.log.Info().
		Str("invoice_id", inv.ID()).
		Str("amount", amount.StringFixed(2)).
		Str("status", string(inv.Status())).
		Str("balance", inv.Balance().StringFixed(2)).
		Msg("payment recorded")
	return &PaymentResult{Invoice: inv, Status: inv.Status(), Balance: inv.Balance()}, nil
}

// CheckClientBalance returns the client's outstanding position.
func (s *appService) CheckClientBalance(_ context.Context, clientName string) (*ClientBalanceResult, error) {
	st, err := s.ledger.CheckClientBalance(clientName)
	if err != nil {
		return nil, err
	}
	return &ClientBalanceResult{
		Client:      st.Client,
		Outstanding: st.Outstanding,
		Summaries:   st.Summaries,
	}, nil
}

// ExportSnapshot returns the full ledger contents as of now.
func (s *appService) ExportSnapshot(_ context.Context) core.Snapshot {
	return s.ledger.Snapshot()
}

// parseItems converts typed invoice lines into ledger line items.
func parseItems(inputs []ItemInput) ([]core.LineItem, error) {
	items := make([]core.LineItem, 0, len(inputs))
	for i, in := range inputs {
		qty, err := core.ParseQuantity(in.Quantity)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i+1, in.Description, err)
		}
		price, err := core.ParseMoney("unit_price", in.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i+1, in.Description, err)
		}
		items = append(items, core.LineItem{
			Description: in.Description,
			Quantity:    qty,
			UnitPrice:   price,
		})
	}
	return items, nil
}
