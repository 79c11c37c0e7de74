package repl

import (
	"fmt"
	"io"

	"invoice-ledger/internal/app"
	"invoice-ledger/internal/core"
)

func printMenu(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "1. Add Client")
	fmt.Fprintln(w, "2. Generate Invoice")
	fmt.Fprintln(w, "3. Record Payment")
	fmt.Fprintln(w, "4. Check Client Balance")
	fmt.Fprintln(w, "5. Exit")
}

func printClients(w io.Writer, result *app.ClientListResult) {
	fmt.Fprintln(w, "\nClients:")
	for _, c := range result.Clients {
		fmt.Fprintf(w, "- %s\n", c.Name())
	}
}

func printStatement(w io.Writer, result *app.ClientBalanceResult) {
	fmt.Fprintf(w, "Total Outstanding: %s\n", core.FormatMoney(result.Outstanding))
	for _, s := range result.Summaries {
		fmt.Fprintf(w, "- %s\n", s)
	}
}
