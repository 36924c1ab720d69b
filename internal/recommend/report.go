package recommend

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ReportData is the field set the PDF is built from. Values arrive as
// strings straight from the /download query parameters.
type ReportData struct {
	BMI            string
	BMIStatus      string
	DailyRoutine   []string
	BreakfastItems []string
	DinnerItems    []string
	WorkoutPlans   []string
}

// RenderPDF lays the plan out as a printable A4 document and returns the
// raw PDF bytes. Core PDF fonts only cover CP1252, so every string goes
// through the unicode translator; unsupported symbols degrade to their
// closest representable form.
func RenderPDF(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle("Diet & Workout Recommendations", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Diet & Workout Recommendations"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("BMI: %s", data.BMI)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Status: %s", data.BMIStatus)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, tr, "Daily Routine", data.DailyRoutine)
	writeSection(pdf, tr, "Breakfast", data.BreakfastItems)
	writeSection(pdf, tr, "Dinner", data.DinnerItems)
	writeSection(pdf, tr, "Workout Plan", data.WorkoutPlans)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *gofpdf.Fpdf, tr func(string) string, title string, lines []string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if len(lines) == 0 {
		pdf.MultiCell(0, 6, tr("(nothing provided)"), "", "L", false)
	}
	for _, line := range lines {
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}
	pdf.Ln(3)
}
