package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"salsac-engine/internal/present"
	"salsac-engine/internal/schedule"
	"salsac-engine/internal/taxmodel"
)

const (
	pageWidth    = 297.0
	marginLeft   = 10.0
	marginRight  = 10.0
	marginTop    = 12.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// Short headings for the landscape table; same order as present.Columns.
var tableHeadings = []string{
	"Month", "Gross Base", "Minimum Wage", "Required SS", "Voluntary SS",
	"Total Employee %", "Revised Gross", "Projected Yearly", "Income Tax", "NI",
}

var colWidths = func() []float64 {
	widths := make([]float64, len(tableHeadings))
	widths[0] = 25
	rest := (contentWidth - widths[0]) / float64(len(widths)-1)
	for i := 1; i < len(widths); i++ {
		widths[i] = rest
	}
	return widths
}()

// pdfText converts the UTF-8 pound sign to the Latin-1 byte the standard
// PDF fonts expect.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "£", "\xa3")
}

// ScheduleReport renders one calculated schedule.
type ScheduleReport struct {
	pdf      *fpdf.Fpdf
	regime   taxmodel.Regime
	inputs   schedule.ContributionInputs
	schedule *schedule.Schedule
}

// GenerateSchedulePDF returns a landscape A4 PDF with the narrative and the
// month-by-month table.
func GenerateSchedulePDF(regime taxmodel.Regime, inputs schedule.ContributionInputs, sched *schedule.Schedule) ([]byte, error) {
	r := &ScheduleReport{
		pdf:      fpdf.New("L", "mm", "A4", ""),
		regime:   regime,
		inputs:   inputs,
		schedule: sched,
	}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)

	r.pdf.AddPage()
	r.addHeader()
	r.addNarrative()
	r.addTable()
	r.addExplainer()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render schedule pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *ScheduleReport) addHeader() {
	r.pdf.SetFont("Arial", "B", 18)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, "Optimising Salary Sacrifice Contributions", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Tax year %s. Generated %s", r.regime.TaxYear, time.Now().Format("2 January 2006")), "", 1, "L", false, 0, "")
	r.pdf.Ln(4)
}

func (r *ScheduleReport) addNarrative() {
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, line := range present.Narrative(r.inputs, r.schedule.Summary) {
		r.pdf.MultiCell(contentWidth, 5, pdfText(line), "", "L", false)
		r.pdf.Ln(1)
	}
	r.pdf.Ln(3)
}

func (r *ScheduleReport) addTable() {
	r.pdf.SetFont("Arial", "B", 8)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetDrawColor(200, 200, 200)
	for i, h := range tableHeadings {
		r.pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 8)
	r.pdf.SetTextColor(50, 50, 50)
	for n, row := range present.Rows(r.schedule.Months) {
		fill := n%2 == 1
		r.pdf.SetFillColor(245, 247, 250)
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			r.pdf.CellFormat(colWidths[i], 6, pdfText(cell), "1", 0, align, fill, 0, "")
		}
		r.pdf.Ln(-1)
	}

	s := r.schedule.Summary
	r.pdf.SetFont("Arial", "B", 8)
	r.pdf.SetFillColor(230, 236, 245)
	totalsWidth := 0.0
	for _, w := range colWidths[:8] {
		totalsWidth += w
	}
	r.pdf.CellFormat(totalsWidth, 6, "Total", "1", 0, "L", true, 0, "")
	r.pdf.CellFormat(colWidths[8], 6, pdfText(present.Money(s.TotalOptimalIncomeTax)), "1", 0, "R", true, 0, "")
	r.pdf.CellFormat(colWidths[9], 6, pdfText(present.Money(s.TotalOptimalNI)), "1", 1, "R", true, 0, "")
	r.pdf.Ln(4)
}

func (r *ScheduleReport) addExplainer() {
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 6, "How this works", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 8)
	r.pdf.SetTextColor(80, 80, 80)
	for _, line := range present.Explainer(r.regime) {
		r.pdf.MultiCell(contentWidth, 4, pdfText(line), "", "L", false)
	}
}
