package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	inactiveStyle = cellStyle.Foreground(lipgloss.Color("8"))
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginTop(1)
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(18)
)

// dimmed marks table rows drawn in the inactive style.
type dimmed map[int]bool

func renderTable(w io.Writer, headers []string, rows [][]string, dim dimmed) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case dim[row]:
				return inactiveStyle
			default:
				return cellStyle
			}
		})

	_, _ = fmt.Fprintln(w, t.Render())
}

func renderTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(title))
}

// renderFields prints label/value pairs, one per line.
func renderFields(w io.Writer, pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(pairs[i]), pairs[i+1]))
	}
}

func id(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func money(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func employeeRows(items []entity.Employee) ([][]string, dimmed) {
	rows := make([][]string, 0, len(items))
	dim := dimmed{}

	for i, e := range items {
		rows = append(rows, []string{
			id(e.ID), e.FirstName, e.LastName, e.Email, e.JobName, money(e.Salary),
			entity.GenderLabel(e.Gender), entity.ActiveLabel(e.Active),
		})
		if !e.IsActive() {
			dim[i] = true
		}
	}

	return rows, dim
}

var employeeHeaders = []string{"ID", "First name", "Last name", "Email", "Job", "Salary", "Gender", "Status"}

func renderEmployee(w io.Writer, e entity.Employee) {
	department := ""
	if e.DepartmentID != nil {
		department = id(*e.DepartmentID)
	}

	renderFields(w,
		"ID", id(e.ID),
		"Name", e.FullName(),
		"Date of birth", e.DateOfBirth.Display(),
		"Gender", entity.GenderLabel(e.Gender),
		"Email", e.Email,
		"Phone", e.Phone,
		"Salary", money(e.Salary),
		"INN", e.INN,
		"SNILS", e.SNILS,
		"Department", department,
		"Job", e.JobName,
		"Role", e.Role,
		"Status", entity.ActiveLabel(e.Active),
		"Employed since", e.EmploymentDate.Display(),
	)
}

var vacationHeaders = []string{"ID", "Employee", "Start", "End", "Status"}

func vacationRows(items []entity.Vacation) [][]string {
	rows := make([][]string, 0, len(items))
	for _, v := range items {
		rows = append(rows, []string{id(v.ID), v.EmployeeName(), v.StartDate.Display(), v.EndDate.Display(), v.Status.Label()})
	}

	return rows
}

var contractHeaders = []string{"ID", "Employee", "Start", "End", "Renewal notice", "Status"}

func contractRows(items []entity.Contract) [][]string {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		end := c.EndDate.Display()
		if c.IsPermanent() {
			end = "Permanent"
		}

		rows = append(rows, []string{
			id(c.ID), c.EmployeeName, c.StartDate.Display(), end, c.RenewalNotificationDate.Display(), c.Status.Label(),
		})
	}

	return rows
}
