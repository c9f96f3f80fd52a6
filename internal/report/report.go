// Package report renders employee lists as PDF documents.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

type column struct {
	title string
	width float64
	value func(entity.Employee) string
}

var columns = []column{
	{title: "ID", width: 12, value: func(e entity.Employee) string { return strconv.FormatUint(e.ID, 10) }},
	{title: "First name", width: 32, value: func(e entity.Employee) string { return e.FirstName }},
	{title: "Last name", width: 36, value: func(e entity.Employee) string { return e.LastName }},
	{title: "Email", width: 58, value: func(e entity.Employee) string { return e.Email }},
	{title: "Phone", width: 32, value: func(e entity.Employee) string { return e.Phone }},
	{title: "Job", width: 40, value: func(e entity.Employee) string { return e.JobName }},
	{title: "Salary", width: 25, value: salary},
	{title: "Gender", width: 20, value: func(e entity.Employee) string { return entity.GenderLabel(e.Gender) }},
	{title: "Status", width: 22, value: func(e entity.Employee) string { return entity.ActiveLabel(e.Active) }},
}

func salary(e entity.Employee) string {
	if e.Salary == nil {
		return ""
	}

	return strconv.FormatFloat(*e.Salary, 'f', 2, 64)
}

// EmployeesPDF writes employees as an A4 landscape table. Text goes through
// the cp1252 translator of the core fonts, so characters outside it are
// replaced.
func EmployeesPDF(w io.Writer, employees []entity.Employee) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Employees", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employees")
	pdf.Ln(12)

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(220, 220, 220)
		for _, c := range columns {
			pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	header()
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()

	for _, e := range employees {
		if pdf.GetY()+7 > pageHeight-bottom {
			pdf.AddPage()
			header()
		}

		for _, c := range columns {
			align := "L"
			if c.title == "Salary" || c.title == "ID" {
				align = "R"
			}
			pdf.CellFormat(c.width, 7, tr(c.value(e)), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %d", len(employees)))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render employees pdf: %w", err)
	}

	return nil
}
