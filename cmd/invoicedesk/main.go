package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/buildsmart/invoicedesk/internal/config"
	"github.com/buildsmart/invoicedesk/internal/db"
	"github.com/buildsmart/invoicedesk/internal/models"
	"github.com/buildsmart/invoicedesk/internal/services"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "invoicedesk",
		Usage: "store business invoices and produce printable documents",
		Commands: []*cli.Command{
			listCommand(),
			showCommand(),
			newCommand(),
			editCommand(),
			deleteCommand(),
			exportCommand(),
			migrateCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newService opens the store, runs the additive migration and wires the
// service. Migration runs on every start; it is idempotent.
func newService(cfg *config.Config) (*services.InvoiceService, error) {
	gdb, err := db.Open(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}
	repo := db.NewInvoiceRepository(gdb)
	return services.NewInvoiceService(repo, cfg.Company, cfg.Output.Dir), nil
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list invoices, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "filter", Aliases: []string{"f"}, Usage: "match invoice number or client name"},
		},
		Action: func(c *cli.Context) error {
			svc, err := newService(config.Load())
			if err != nil {
				return err
			}
			invoices, err := svc.ListInvoices(c.String("filter"))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNUMBER\tCLIENT\tTOTAL\tEMAIL\tADDED")
			for _, inv := range invoices {
				fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%s\t%s\n",
					inv.ID, inv.InvoiceNumber, inv.ClientName, inv.Total, inv.Email, inv.DateAdded)
			}
			return w.Flush()
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "render the invoice preview markup",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				return err
			}
			svc, err := newService(config.Load())
			if err != nil {
				return err
			}
			inv, err := svc.GetInvoice(id)
			if err != nil {
				return describe(err)
			}
			markup, err := svc.RenderPreview(inv)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, markup)
			return nil
		},
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "create an invoice from a draft file and export its PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "path to the draft JSON file", Required: true},
		},
		Action: func(c *cli.Context) error {
			draft, err := readDraft(c.String("from"))
			if err != nil {
				return err
			}
			svc, err := newService(config.Load())
			if err != nil {
				return err
			}
			inv, err := svc.CreateInvoice(draft)
			if err != nil {
				return describe(err)
			}
			path, err := svc.ExportDocument(inv)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Invoice %s saved (id %d), document written to %s\n",
				inv.InvoiceNumber, inv.ID, path)
			return nil
		},
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "update an invoice from a draft file and re-export its PDF",
		ArgsUsage: "<invoice-number>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "path to the draft JSON file", Required: true},
		},
		Action: func(c *cli.Context) error {
			number := c.Args().First()
			if number == "" {
				return cli.Exit("invoice number argument required", 1)
			}
			draft, err := readDraft(c.String("from"))
			if err != nil {
				return err
			}
			svc, err := newService(config.Load())
			if err != nil {
				return err
			}
			inv, err := svc.UpdateInvoice(number, draft)
			if err != nil {
				return describe(err)
			}
			path, err := svc.ExportDocument(inv)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Invoice %s updated, document written to %s\n",
				inv.InvoiceNumber, path)
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "permanently remove an invoice",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				return err
			}
			svc, err := newService(config.Load())
			if err != nil {
				return err
			}
			if err := svc.DeleteInvoice(id); err != nil {
				return describe(err)
			}
			fmt.Fprintf(c.App.Writer, "Invoice %d deleted\n", id)
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "write the invoice PDF to the output directory",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "from-preview", Usage: "use the preview export filename"},
		},
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				return err
			}
			svc, err := newService(config.Load())
			if err != nil {
				return err
			}
			inv, err := svc.GetInvoice(id)
			if err != nil {
				return describe(err)
			}
			var path string
			if c.Bool("from-preview") {
				path, err = svc.ExportPreviewDocument(inv)
			} else {
				path, err = svc.ExportDocument(inv)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Document written to %s\n", path)
			return nil
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "ensure the store schema is current and exit",
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			gdb, err := db.Open(cfg.Store.Path)
			if err != nil {
				return err
			}
			if err := db.Migrate(gdb); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Store schema is up to date")
			return nil
		},
	}
}

func parseID(c *cli.Context) (uint, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, cli.Exit("id argument required", 1)
	}
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, cli.Exit(fmt.Sprintf("invalid id %q", arg), 1)
	}
	return uint(id), nil
}

func readDraft(path string) (models.InvoiceDraft, error) {
	var draft models.InvoiceDraft
	data, err := os.ReadFile(path)
	if err != nil {
		return draft, fmt.Errorf("read draft: %w", err)
	}
	if err := json.Unmarshal(data, &draft); err != nil {
		return draft, fmt.Errorf("parse draft %s: %w", path, err)
	}
	return draft, nil
}

// describe maps core errors onto user-facing messages with a non-zero
// exit code, keeping the distinct cases the UI layer relies on.
func describe(err error) error {
	var vErr *services.ValidationError
	var sErr *db.SerializationError
	switch {
	case errors.As(err, &vErr):
		return cli.Exit(vErr.Error(), 1)
	case errors.Is(err, db.ErrDuplicateNumber):
		return cli.Exit("invoice number already exists, pick another one", 1)
	case errors.Is(err, db.ErrNotFound):
		return cli.Exit("invoice not found", 1)
	case errors.As(err, &sErr):
		return cli.Exit(sErr.Error(), 1)
	default:
		return err
	}
}
