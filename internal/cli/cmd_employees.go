package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/adamanr/hrdesk/internal/forms"
	"github.com/adamanr/hrdesk/internal/guard"
	"github.com/adamanr/hrdesk/internal/listview"
	"github.com/adamanr/hrdesk/internal/pages"
	"github.com/adamanr/hrdesk/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func parseID(arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}

	return v, nil
}

type employeeField struct {
	flag  string
	usage string
	field func(*forms.EmployeeForm) *string
}

var employeeFields = []employeeField{
	{"first-name", "First name", func(f *forms.EmployeeForm) *string { return &f.FirstName }},
	{"last-name", "Last name", func(f *forms.EmployeeForm) *string { return &f.LastName }},
	{"birth-date", "Date of birth, YYYY-MM-DD", func(f *forms.EmployeeForm) *string { return &f.DateOfBirth }},
	{"gender", "male or female", func(f *forms.EmployeeForm) *string { return &f.Gender }},
	{"email", "Email", func(f *forms.EmployeeForm) *string { return &f.Email }},
	{"phone", "Phone", func(f *forms.EmployeeForm) *string { return &f.Phone }},
	{"salary", "Monthly salary", func(f *forms.EmployeeForm) *string { return &f.Salary }},
	{"inn", "Taxpayer number", func(f *forms.EmployeeForm) *string { return &f.INN }},
	{"snils", "Insurance number", func(f *forms.EmployeeForm) *string { return &f.SNILS }},
	{"department", "Department id", func(f *forms.EmployeeForm) *string { return &f.DepartmentID }},
	{"job", "Job title", func(f *forms.EmployeeForm) *string { return &f.JobName }},
	{"active", "Yes or No", func(f *forms.EmployeeForm) *string { return &f.Active }},
	{"role", "hr or employee", func(f *forms.EmployeeForm) *string { return &f.Role }},
	{"employment-date", "Employment date, YYYY-MM-DD", func(f *forms.EmployeeForm) *string { return &f.EmploymentDate }},
}

func bindEmployeeForm(fs *pflag.FlagSet, form *forms.EmployeeForm) {
	for _, f := range employeeFields {
		fs.StringVar(f.field(form), f.flag, "", f.usage)
	}
}

// overlay copies the flags the user actually set onto base.
func overlay(fs *pflag.FlagSet, typed *forms.EmployeeForm, base forms.EmployeeForm) forms.EmployeeForm {
	for _, f := range employeeFields {
		if fs.Changed(f.flag) {
			*f.field(&base) = *f.field(typed)
		}
	}

	return base
}

func (a *app) employeesPage(cmd *cobra.Command) (*pages.EmployeesPage, error) {
	page := pages.NewEmployeesPage(a.api, a.notify)
	if err := page.Load(cmd.Context()); err != nil {
		return nil, err
	}

	return page, nil
}

func (a *app) employeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "employees",
		Aliases:     []string{"emp"},
		Short:       "Manage employees",
		Annotations: onPage(guard.PageEmployees),
	}

	cmd.AddCommand(
		a.employeesListCmd(),
		a.employeesShowCmd(),
		a.employeesAddCmd(),
		a.employeesUpdateCmd(),
		a.employeesByIDCmd("dismiss", "Mark an employee inactive", (*pages.EmployeesPage).Dismiss),
		a.employeesByIDCmd("delete", "Delete an employee", (*pages.EmployeesPage).Delete),
		a.employeesSetPasswordCmd(),
	)

	return cmd
}

func (a *app) employeesListCmd() *cobra.Command {
	var (
		q       listview.Query
		field   string
		desc    bool
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees with filters and sorting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.employeesPage(cmd)
			if err != nil {
				return err
			}

			var s listview.Sort
			if field != "" {
				s = s.Toggle(field)
				if desc {
					s = s.Toggle(field)
				}
			}

			items := page.View(q, s)

			if pdfPath != "" {
				f, err := os.Create(pdfPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", pdfPath, err)
				}
				if err = report.EmployeesPDF(f, items); err != nil {
					_ = f.Close()
					return err
				}
				if err = f.Close(); err != nil {
					return err
				}
				a.notify.Notify(pages.LevelSuccess, fmt.Sprintf("Exported %d employees to %s.", len(items), pdfPath))
				return nil
			}

			rows, dim := employeeRows(items)
			renderTable(a.opts.Out, employeeHeaders, rows, dim)
			a.println(fmt.Sprintf("%d of %d employees", len(items), len(page.Items())))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&q.Search, "search", "s", "", "Case-insensitive text search")
	fs.StringVar(&q.Gender, "gender", "", "Only male or female")
	fs.StringVar(&q.SalaryMin, "salary-min", "", "Lowest salary")
	fs.StringVar(&q.SalaryMax, "salary-max", "", "Highest salary")
	fs.BoolVar(&q.ShowInactive, "inactive", false, "Include dismissed employees")
	fs.StringVar(&field, "sort", "", "Sort by field, e.g. last_name")
	fs.BoolVar(&desc, "desc", false, "Sort descending")
	fs.StringVar(&pdfPath, "pdf", "", "Write the list to a PDF file instead of printing it")

	return cmd
}

func (a *app) employeesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an employee card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			emp, err := a.api.Employee(cmd.Context(), id)
			if err != nil {
				a.notify.Notify(pages.LevelError, "Failed to load the employee.")
				return err
			}

			renderEmployee(a.opts.Out, *emp)
			return nil
		},
	}
}

func (a *app) employeesAddCmd() *cobra.Command {
	var form forms.EmployeeForm

	cmd := &cobra.Command{
		Use:         "add",
		Short:       "Add an employee",
		Args:        cobra.NoArgs,
		Annotations: onPage(guard.PageAddEmployee),
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := pages.NewAddEmployeePage(a.api, a.notify).Submit(cmd.Context(), form)
			if err != nil {
				return err
			}

			renderEmployee(a.opts.Out, *created)
			return nil
		},
	}

	bindEmployeeForm(cmd.Flags(), &form)

	return cmd
}

func (a *app) employeesUpdateCmd() *cobra.Command {
	var typed forms.EmployeeForm

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit an employee; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			page, err := a.employeesPage(cmd)
			if err != nil {
				return err
			}

			current, ok := page.Find(id)
			if !ok {
				a.notify.Notify(pages.LevelError, pages.ErrNotLoaded.Error())
				return pages.ErrNotLoaded
			}

			return page.Update(cmd.Context(), id, overlay(cmd.Flags(), &typed, forms.FromEmployee(current)))
		},
	}

	bindEmployeeForm(cmd.Flags(), &typed)

	return cmd
}

func (a *app) employeesByIDCmd(use, short string, action func(*pages.EmployeesPage, context.Context, uint64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			page, err := a.employeesPage(cmd)
			if err != nil {
				return err
			}

			return action(page, cmd.Context(), id)
		},
	}
}

func (a *app) employeesSetPasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "set-password <id>",
		Short: "Set or reset an employee password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return pages.NewEmployeesPage(a.api, a.notify).SetPassword(cmd.Context(), id, password)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "New password")

	return cmd
}
