package cli

import (
	"fmt"
	"strconv"

	"github.com/adamanr/hrdesk/internal/forms"
	"github.com/adamanr/hrdesk/internal/guard"
	"github.com/adamanr/hrdesk/internal/pages"
	"github.com/spf13/cobra"
)

func (a *app) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "profile",
		Short:       "Show your profile and vacations",
		Args:        cobra.NoArgs,
		Annotations: onPage(guard.PageProfile),
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := pages.NewProfilePage(a.api, a.notify)
			if err := page.Load(cmd.Context()); err != nil {
				return err
			}

			p := page.Profile
			renderFields(a.opts.Out,
				"Name", p.FirstName+" "+p.LastName,
				"Email", p.Email,
				"Job", p.JobName,
				"Department", page.Department,
				"Role", guard.RoleLabel(p.Role),
			)

			renderTitle(a.opts.Out, "My vacations")
			if len(page.Vacations) == 0 {
				a.println("No vacation requests yet.")
				return nil
			}
			renderTable(a.opts.Out, vacationHeaders, vacationRows(page.Vacations), nil)
			return nil
		},
	}

	cmd.AddCommand(a.vacationRequestCmd())

	return cmd
}

func (a *app) vacationRequestCmd() *cobra.Command {
	var form forms.VacationForm

	cmd := &cobra.Command{
		Use:   "vacation",
		Short: "Request a vacation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return pages.NewProfilePage(a.api, a.notify).RequestVacation(cmd.Context(), form)
		},
	}

	cmd.Flags().StringVar(&form.StartDate, "start", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&form.EndDate, "end", "", "Last day, YYYY-MM-DD")

	return cmd
}

func (a *app) departmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "departments",
		Short:       "Departments",
		Annotations: onPage(guard.PageProfile),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List departments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			departments, err := a.api.Departments(cmd.Context())
			if err != nil {
				a.notify.Notify(pages.LevelError, "Failed to load departments.")
				return err
			}

			rows := make([][]string, 0, len(departments))
			for _, d := range departments {
				rows = append(rows, []string{id(d.ID), d.Name})
			}
			renderTable(a.opts.Out, []string{"ID", "Name"}, rows, nil)
			return nil
		},
	})

	return cmd
}

func (a *app) analyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "analytics",
		Short:       "Show HR analytics",
		Args:        cobra.NoArgs,
		Annotations: onPage(guard.PageAnalytics),
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := pages.NewAnalyticsPage(a.api, a.notify)
			if err := page.Load(cmd.Context()); err != nil {
				return err
			}

			f := page.Figures
			renderFields(a.opts.Out,
				"Average age", fmt.Sprintf("%.1f years", f.AverageAge),
				"Churn rate", fmt.Sprintf("%.1f%%", f.ChurnRate),
				"Average tenure", fmt.Sprintf("%.1f years", f.AverageTenure),
			)

			renderTitle(a.opts.Out, "Head-count by department")
			rows := make([][]string, 0, len(f.Departments))
			for _, d := range f.Departments {
				rows = append(rows, []string{d.Department, strconv.FormatInt(d.Count, 10)})
			}
			renderTable(a.opts.Out, []string{"Department", "Employees"}, rows, nil)

			renderTitle(a.opts.Out, "Average worked hours")
			rows = make([][]string, 0, len(f.Hours))
			for _, h := range f.Hours {
				rows = append(rows, []string{h.Department, strconv.FormatFloat(h.AverageHours, 'f', 1, 64)})
			}
			renderTable(a.opts.Out, []string{"Department", "Hours"}, rows, nil)
			return nil
		},
	}
}
