package cli

import (
	"context"

	"github.com/adamanr/hrdesk/internal/forms"
	"github.com/adamanr/hrdesk/internal/guard"
	"github.com/adamanr/hrdesk/internal/pages"
	"github.com/spf13/cobra"
)

func (a *app) contractsPage(cmd *cobra.Command) (*pages.ContractsPage, error) {
	page := pages.NewContractsPage(a.api, a.notify)
	if err := page.Load(cmd.Context()); err != nil {
		return nil, err
	}

	return page, nil
}

func (a *app) contractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "contracts",
		Short:       "Manage employment contracts",
		Annotations: onPage(guard.PageContracts),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List contracts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				page, err := a.contractsPage(cmd)
				if err != nil {
					return err
				}

				renderTable(a.opts.Out, contractHeaders, contractRows(page.Items()), nil)
				return nil
			},
		},
		a.contractsAddCmd(),
		a.contractActionCmd("delete", "Delete a contract", (*pages.ContractsPage).Delete),
		a.contractActionCmd("activate", "Set a contract Active", (*pages.ContractsPage).Activate),
		a.contractActionCmd("terminate", "Set a contract Terminated", (*pages.ContractsPage).Terminate),
	)

	return cmd
}

func (a *app) contractsAddCmd() *cobra.Command {
	var form forms.ContractForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := pages.NewContractsPage(a.api, a.notify)
			if err := page.Create(cmd.Context(), form); err != nil {
				return err
			}

			renderTable(a.opts.Out, contractHeaders, contractRows(page.Items()), nil)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&form.EmployeeID, "employee", "", "Employee id")
	fs.StringVar(&form.StartDate, "start", "", "Start date, YYYY-MM-DD")
	fs.StringVar(&form.EndDate, "end", "", "End date, YYYY-MM-DD")
	fs.StringVar(&form.RenewalNotificationDate, "renewal", "", "Renewal notification date, YYYY-MM-DD")
	fs.StringVar(&form.Status, "status", "", "Active, Pending, Expired or Terminated (default Active)")
	fs.BoolVar(&form.Permanent, "permanent", false, "Permanent contract; end and renewal dates are ignored")

	return cmd
}

func (a *app) contractActionCmd(use, short string, action func(*pages.ContractsPage, context.Context, uint64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cid, err := parseID(args[0])
			if err != nil {
				return err
			}

			page, err := a.contractsPage(cmd)
			if err != nil {
				return err
			}

			return action(page, cmd.Context(), cid)
		},
	}
}
