package cli

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/biztime-dev/biztime/internal/api"
)

func parseAmount(s string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amt, nil
}

func parseInvoiceID(s string) error {
	if _, err := strconv.ParseInt(s, 10, 32); err != nil {
		return fmt.Errorf("invalid invoice id %q", s)
	}
	return nil
}

func newInvoicesCmd(client func() *Client) *cobra.Command {
	invoicesCmd := &cobra.Command{
		Use:   "invoices",
		Short: "Manage invoices",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := client().Do(cmd.Context(), http.MethodGet, "/invoices", nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show an invoice and its company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseInvoiceID(args[0]); err != nil {
				return err
			}
			body, err := client().Do(cmd.Context(), http.MethodGet, invoicePath(args[0]), nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}

	createCmd := &cobra.Command{
		Use:   "create <comp_code> <amt>",
		Short: "Create an invoice",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			body, err := client().Do(cmd.Context(), http.MethodPost, "/invoices", api.CreateInvoiceRequest{
				CompCode: &args[0],
				Amt:      &amt,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id> <amt>",
		Short: "Update an invoice",
		Long: `Update the amount of an invoice and, with --paid, its payment status.
Paying an unpaid invoice records today as the paid date; --paid=false clears it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseInvoiceID(args[0]); err != nil {
				return err
			}
			amt, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			req := api.UpdateInvoiceRequest{Amt: &amt}
			if cmd.Flags().Changed("paid") {
				paid, _ := cmd.Flags().GetBool("paid")
				req.Paid = &paid
			}

			body, err := client().Do(cmd.Context(), http.MethodPut, invoicePath(args[0]), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
	updateCmd.Flags().Bool("paid", false, "mark the invoice as paid (true) or unpaid (false)")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseInvoiceID(args[0]); err != nil {
				return err
			}
			body, err := client().Do(cmd.Context(), http.MethodDelete, invoicePath(args[0]), nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}

	invoicesCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	return invoicesCmd
}
