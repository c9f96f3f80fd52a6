package cli

import (
	"context"
	"errors"

	"github.com/adamanr/hrdesk/internal/guard"
	"github.com/adamanr/hrdesk/internal/pages"
	"github.com/spf13/cobra"
)

func (a *app) vacationsPage(cmd *cobra.Command) (*pages.VacationsPage, error) {
	page := pages.NewVacationsPage(a.api, a.notify)
	if err := page.Load(cmd.Context()); err != nil {
		return nil, err
	}

	return page, nil
}

func (a *app) vacationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "vacations",
		Aliases:     []string{"vac"},
		Short:       "Review vacation requests",
		Annotations: onPage(guard.PageVacations),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List pending and processed requests",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				page, err := a.vacationsPage(cmd)
				if err != nil {
					return err
				}

				renderTitle(a.opts.Out, "Awaiting review")
				renderTable(a.opts.Out, vacationHeaders, vacationRows(page.Pending()), nil)
				renderTitle(a.opts.Out, "Processed")
				renderTable(a.opts.Out, vacationHeaders, vacationRows(page.Processed()), nil)
				return nil
			},
		},
		&cobra.Command{
			Use:   "open <id>",
			Short: "Open a pending request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				vid, err := parseID(args[0])
				if err != nil {
					return err
				}

				page, err := a.vacationsPage(cmd)
				if err != nil {
					return err
				}

				v, err := page.Open(vid)
				if errors.Is(err, pages.ErrAlreadyProcessed) {
					// The notice is the whole answer; nothing to open.
					return nil
				}
				if err != nil {
					return err
				}

				renderFields(a.opts.Out,
					"Request", id(v.ID),
					"Employee", v.EmployeeName(),
					"From", v.StartDate.Display(),
					"To", v.EndDate.Display(),
					"Status", v.Status.Label(),
				)
				return nil
			},
		},
		a.vacationDecisionCmd("approve", "Approve a pending request", (*pages.VacationsPage).Approve),
		a.vacationDecisionCmd("reject", "Reject a pending request", (*pages.VacationsPage).Reject),
	)

	return cmd
}

func (a *app) vacationDecisionCmd(use, short string, decide func(*pages.VacationsPage, context.Context, uint64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vid, err := parseID(args[0])
			if err != nil {
				return err
			}

			page, err := a.vacationsPage(cmd)
			if err != nil {
				return err
			}

			return decide(page, cmd.Context(), vid)
		},
	}
}
