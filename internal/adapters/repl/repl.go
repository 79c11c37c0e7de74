package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"invoice-ledger/internal/app"
)

// errInputClosed is returned by ask when the input stream ends.
var errInputClosed = errors.New("input closed")

// console pairs the line reader with the output the prompts go to.
type console struct {
	in  *bufio.Reader
	out io.Writer
}

// ask prints label and returns the next trimmed input line.
func (c *console) ask(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errInputClosed
	}
	return strings.TrimSpace(line), nil
}

// Run starts the numbered menu loop. It returns when the user picks Exit,
// the input ends, or ctx is cancelled.
func Run(ctx context.Context, svc app.ApplicationService, in *bufio.Reader, out io.Writer) {
	c := &console{in: in, out: out}

	actions := map[string]func(context.Context, *console, app.ApplicationService) error{
		"1": handleAddClient,
		"2": handleGenerateInvoice,
		"3": handleRecordPayment,
		"4": handleCheckClientBalance,
	}

	for ctx.Err() == nil {
		printMenu(out)
		choice, err := c.ask("Option: ")
		if err != nil {
			fmt.Fprintln(out)
			return
		}

		if choice == "5" {
			fmt.Fprintln(out, "Goodbye!")
			return
		}

		action, ok := actions[choice]
		if !ok {
			fmt.Fprintln(out, "Invalid option.")
			continue
		}
		if err := action(ctx, c, svc); err != nil {
			if errors.Is(err, errInputClosed) {
				fmt.Fprintln(out)
				return
			}
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}
