package ledger

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ledger-manager/core/reconcile"
)

const consoleHelp = `Commands:
  receive <id> [id...]   record identifiers in the received flow (alias: r)
  ship <id> [id...]      record identifiers in the shipped flow (alias: s)
  show                   print both ledgers
  clear                  empty both ledgers
  help                   print this help
  quit                   leave the session`

// Console is an interactive terminal front end for a Service.
type Console struct {
	service *Service
	in      io.Reader
	out     io.Writer
}

// NewConsole creates a console reading commands from in and rendering to out.
func NewConsole(service *Service, in io.Reader, out io.Writer) *Console {
	return &Console{service: service, in: in, out: out}
}

// Run processes commands until quit, end of input or ctx cancellation.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintf(c.out, "Ledger session (identifiers: %d hex characters). Type 'help' for commands.\n", c.service.IdentifierLength())

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if done := c.execute(ctx, scanner.Text()); done {
			return nil
		}
	}
	return scanner.Err()
}

// execute runs one command line and reports whether the session should end.
func (c *Console) execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	command, args := strings.ToLower(fields[0]), strings.Join(fields[1:], " ")
	switch command {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(c.out, consoleHelp)
	case "show":
		c.render(c.service.Ledgers())
	case "clear":
		c.service.Clear()
		c.render(c.service.Ledgers())
	case "r":
		c.record(ctx, reconcile.FlowReceived, args)
	case "s":
		c.record(ctx, reconcile.FlowShipped, args)
	default:
		flow, err := reconcile.ParseFlow(command)
		if err != nil {
			fmt.Fprintf(c.out, "Unknown command: %s\n", command)
			return false
		}
		c.record(ctx, flow, args)
	}
	return false
}

func (c *Console) record(ctx context.Context, flow reconcile.Flow, input string) {
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(c.out, "No identifiers given.")
		return
	}

	result := c.service.Record(ctx, flow, input)
	for _, id := range result.Rejected {
		fmt.Fprintf(c.out, "Invalid identifier format: %s\n", id)
	}
	c.render(result.Ledgers)
}

func (c *Console) render(ledgers Ledgers) {
	c.renderTable("RECEIVED", ledgers.Received)
	c.renderTable("SHIPPED", ledgers.Shipped)
}

func (c *Console) renderTable(title string, entries []reconcile.TrackedObject) {
	fmt.Fprintf(c.out, "%s (%d)\n", title, len(entries))

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tQUANTITY")
	for _, obj := range entries {
		fmt.Fprintf(w, "  %s\t%d\n", obj.Name, obj.Quantity)
	}
	w.Flush()
}
