package repl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"invoice-ledger/internal/app"
	"invoice-ledger/internal/core"
)

func handleAddClient(ctx context.Context, c *console, svc app.ApplicationService) error {
	name, err := c.ask("Client Name: ")
	if err != nil {
		return err
	}
	email, err := c.ask("Client Email: ")
	if err != nil {
		return err
	}

	result, err := svc.AddClient(ctx, app.AddClientRequest{Name: name, Email: email})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Client '%s' added with ID: %s\n", name, result.Client.ID())
	return nil
}

// handleGenerateInvoice runs the interactive invoice entry: client, project,
// then item lines until "done".
func handleGenerateInvoice(ctx context.Context, c *console, svc app.ApplicationService) error {
	clients := svc.ListClients(ctx)
	if len(clients.Clients) == 0 {
		fmt.Fprintln(c.out, "Add a client first!")
		return nil
	}
	printClients(c.out, clients)

	clientName, err := c.ask("Client Name to bill: ")
	if err != nil {
		return err
	}
	if _, err := svc.FindClient(ctx, clientName); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			fmt.Fprintln(c.out, "Client not found.")
			return nil
		}
		return err
	}

	projectTitle, err := c.ask("Project/Service Name: ")
	if err != nil {
		return err
	}

	var items []app.ItemInput
	for {
		desc, err := c.ask("Item Description (or 'done' to stop): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(desc, "done") {
			break
		}
		qty, err := askValid(c, "Quantity: ", func(raw string) error {
			_, err := core.ParseQuantity(raw)
			return err
		})
		if err != nil {
			return err
		}
		price, err := askValid(c, "Price per unit: ", func(raw string) error {
			_, err := core.ParseMoney("unit_price", raw)
			return err
		})
		if err != nil {
			return err
		}
		items = append(items, app.ItemInput{Description: desc, Quantity: qty, UnitPrice: price})
	}

	result, err := svc.GenerateInvoice(ctx, app.GenerateInvoiceRequest{
		ClientName:   clientName,
		ProjectTitle: projectTitle,
		Items:        items,
	})
	switch {
	case errors.Is(err, core.ErrEmptyInput):
		fmt.Fprintln(c.out, "No items added.")
		return nil
	case errors.Is(err, core.ErrNotFound):
		fmt.Fprintln(c.out, "Client not found.")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(c.out, "Invoice created! ID: %s, Total: %s\n",
		result.Invoice.ID(), core.FormatMoney(result.Invoice.TotalDue()))
	return nil
}

func handleRecordPayment(ctx context.Context, c *console, svc app.ApplicationService) error {
	if len(svc.ListInvoices(ctx).Invoices) == 0 {
		fmt.Fprintln(c.out, "No invoices yet.")
		return nil
	}

	projectTitle, err := c.ask("Enter Project Name to pay: ")
	if err != nil {
		return err
	}
	found, err := svc.FindInvoice(ctx, projectTitle)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			fmt.Fprintln(c.out, "Invoice not found.")
			return nil
		}
		return err
	}
	fmt.Fprintf(c.out, "Balance: %s\n", core.FormatMoney(found.Balance))

	amount, err := askValid(c, "Payment Amount: ", func(raw string) error {
		_, err := core.ParseMoney("amount", raw)
		return err
	})
	if err != nil {
		return err
	}

	result, err := svc.RecordPayment(ctx, app.RecordPaymentRequest{ProjectTitle: projectTitle, Amount: amount})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Payment recorded! Status: %s, Remaining Balance: %s\n",
		result.Status, core.FormatMoney(result.Balance))
	return nil
}

func handleCheckClientBalance(ctx context.Context, c *console, svc app.ApplicationService) error {
	clientName, err := c.ask("Enter Client Name: ")
	if err != nil {
		return err
	}

	result, err := svc.CheckClientBalance(ctx, clientName)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			fmt.Fprintln(c.out, "Client not found.")
			return nil
		}
		return err
	}
	printStatement(c.out, result)
	return nil
}

// askValid re-prompts until check accepts the answer.
func askValid(c *console, label string, check func(string) error) (string, error) {
	for {
		raw, err := c.ask(label)
		if err != nil {
			return "", err
		}
		if err := check(raw); err != nil {
			var vErr *core.ValidationError
			if errors.As(err, &vErr) {
				fmt.Fprintf(c.out, "  Invalid %s: %s. Try again.\n", vErr.Field, vErr.Message)
			} else {
				fmt.Fprintf(c.out, "  Invalid input: %v. Try again.\n", err)
			}
			continue
		}
		return raw, nil
	}
}
