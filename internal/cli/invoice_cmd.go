package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
)

func newInvoiceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Record invoices and inspect the cost ledger",
	}

	cmd.AddCommand(
		newInvoiceRecordCmd(app),
		newInvoiceListCmd(app),
		newInvoiceCostsCmd(app),
		newInvoiceRemoveCmd(app),
	)

	return cmd
}

func newInvoiceRecordCmd(app *App) *cobra.Command {
	var program, kind, vendor, issued, notes string
	var amount float64

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record an invoice with its paired cost entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}

			inv := &domain.Invoice{
				ProgramID:  programID,
				Kind:       domain.InvoiceKind(kind),
				Vendor:     vendor,
				Amount:     amount,
				IssuedDate: time.Now(),
				Notes:      notes,
			}
			if issued != "" {
				issuedDate, err := time.Parse("2006-01-02", issued)
				if err != nil {
					return fmt.Errorf("invalid issued date %q: %w", issued, err)
				}
				inv.IssuedDate = issuedDate
			}

			if err := app.Invoices.Record(ctx, inv); err != nil {
				return err
			}

			fmt.Printf("Recorded invoice [%s] %s\n", shortID(inv.ID), formatter.Money(inv.Amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	cmd.Flags().StringVar(&kind, "kind", string(domain.InvoiceVendor), "Invoice kind (vendor|miscellaneous)")
	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor name")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Invoice amount")
	cmd.Flags().StringVar(&issued, "issued", "", "Issued date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("program")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newInvoiceListCmd(app *App) *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices for a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}
			invoices, err := app.Invoices.ListByProgram(ctx, programID)
			if err != nil {
				return err
			}

			if len(invoices) == 0 {
				fmt.Println("No invoices found.")
				return nil
			}

			var total float64
			rows := make([][]string, 0, len(invoices))
			for _, inv := range invoices {
				total += inv.Amount
				rows = append(rows, []string{
					formatter.TruncID(inv.ID),
					string(inv.Kind),
					inv.Vendor,
					formatter.Money(inv.Amount),
					inv.IssuedDate.Format("2006-01-02"),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(
				[]string{"ID", "Kind", "Vendor", "Amount", "Issued"}, rows))
			fmt.Printf("Total: %s\n", formatter.Bold(formatter.Money(total)))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	_ = cmd.MarkFlagRequired("program")

	return cmd
}

func newInvoiceCostsCmd(app *App) *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Show the cost ledger for a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}
			costs, err := app.Invoices.Costs(ctx, programID)
			if err != nil {
				return err
			}

			if len(costs) == 0 {
				fmt.Println("No costs recorded.")
				return nil
			}

			var total float64
			rows := make([][]string, 0, len(costs))
			for _, c := range costs {
				total += c.Amount
				rows = append(rows, []string{
					formatter.TruncID(c.ID),
					c.Category,
					formatter.Money(c.Amount),
					c.IncurredDate.Format("2006-01-02"),
					formatter.TruncID(c.InvoiceID),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(
				[]string{"ID", "Category", "Amount", "Incurred", "Invoice"}, rows))
			fmt.Printf("Total: %s\n", formatter.Bold(formatter.Money(total)))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	_ = cmd.MarkFlagRequired("program")

	return cmd
}

func newInvoiceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an invoice and its cost entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Invoices.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed invoice %s\n", args[0])
			return nil
		},
	}
}
