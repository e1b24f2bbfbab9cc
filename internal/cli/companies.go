package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/biztime-dev/biztime/internal/api"
)

func newCompaniesCmd(client func() *Client) *cobra.Command {
	companiesCmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage companies",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := client().Do(cmd.Context(), http.MethodGet, "/companies", nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <code>",
		Short: "Show a company and its invoice ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := client().Do(cmd.Context(), http.MethodGet, companyPath(args[0]), nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a company",
		Long:  `Create a company. The company code is derived from the name by the server.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.CompanyRequest{Name: &args[0]}
			if cmd.Flags().Changed("description") {
				description, _ := cmd.Flags().GetString("description")
				req.Description = &description
			}

			body, err := client().Do(cmd.Context(), http.MethodPost, "/companies", req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
	createCmd.Flags().String("description", "", "company description")

	updateCmd := &cobra.Command{
		Use:   "update <code> <name>",
		Short: "Update a company",
		Long:  `Update the name (and optionally the description) of a company. The description is unchanged unless --description is given.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.CompanyRequest{Name: &args[1]}
			if cmd.Flags().Changed("description") {
				description, _ := cmd.Flags().GetString("description")
				req.Description = &description
			}

			body, err := client().Do(cmd.Context(), http.MethodPut, companyPath(args[0]), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
	updateCmd.Flags().String("description", "", "company description")

	deleteCmd := &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := client().Do(cmd.Context(), http.MethodDelete, companyPath(args[0]), nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	}

	companiesCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	return companiesCmd
}
