package export

import (
	"bytes"
	"fmt"

	"github.com/campus-mis/attendance-backend-go/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

// SummaryPDF renders the grouped department lateness summary as a PDF,
// one section per shift category, one table per department.
func SummaryPDF(summary report.DeptSummaryResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Department Lateness Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Department Lateness Summary")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s", summary.StartDate, summary.EndDate))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Accumulation reset date: %s", summary.ResetDate))
	pdf.Ln(10)

	for _, cat := range summary.Categories {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Category: %s", cat.Description))
		pdf.Ln(9)

		for _, dept := range cat.Departments {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Cell(0, 7, dept.Department)
			pdf.Ln(7)

			writeHeaderRow(pdf)
			pdf.SetFont("Helvetica", "", 10)
			for _, member := range dept.Staff {
				pdf.CellFormat(20, 6, member.StaffID, "1", 0, "L", false, 0, "")
				pdf.CellFormat(55, 6, member.Name, "1", 0, "L", false, 0, "")
				pdf.CellFormat(45, 6, member.Designation, "1", 0, "L", false, 0, "")
				pdf.CellFormat(25, 6, fmt.Sprintf("%d", member.RangeLateMinutes), "1", 0, "R", false, 0, "")
				pdf.CellFormat(25, 6, fmt.Sprintf("%d", member.SinceResetMinutes), "1", 0, "R", false, 0, "")
				pdf.CellFormat(20, 6, fmt.Sprintf("%.1f", member.DeductedDays), "1", 0, "R", false, 0, "")
				pdf.Ln(6)
			}
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render summary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaderRow(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(20, 6, "Staff ID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 6, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, "Designation", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, "Late (range)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Late (reset)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, "Days", "1", 0, "R", false, 0, "")
	pdf.Ln(6)
}
