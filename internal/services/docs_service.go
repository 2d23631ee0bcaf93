package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"navmind/internal/domain/models"
	"navmind/internal/utils"

	"github.com/phpdave11/gofpdf"
)

const (
	ExportTXT = "txt"
	ExportPDF = "pdf"
)

// DocsService renders a finished trip plan into downloadable files.
type DocsService struct {
	RequestID string
	Now       func() time.Time
}

// GenerateText returns the plain-text trip plan and its filename.
func (s DocsService) GenerateText(v models.TripPlanView) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_txt", "trip plan text export")
	text := v.ExportText
	if text == "" {
		text = BuildExportText(v)
	}
	return []byte(text), "trip_plan.txt", nil
}

// GeneratePDF returns a PDF rendition of the trip plan and its filename.
func (s DocsService) GeneratePDF(v models.TripPlanView) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_pdf", "trip plan pdf export")
	return buildTripPlanPDF(v, s.now())
}

// Generate dispatches on the export format ("txt" or "pdf").
func (s DocsService) Generate(format string, v models.TripPlanView) ([]byte, string, string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", ExportTXT:
		data, name, err := s.GenerateText(v)
		return data, name, "text/plain; charset=utf-8", err
	case ExportPDF:
		data, name, err := s.GeneratePDF(v)
		return data, name, "application/pdf", err
	default:
		return nil, "", "", fmt.Errorf("unsupported export format %q", format)
	}
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildTripPlanPDF(v models.TripPlanView, generatedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Plan", true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP PLAN")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Generated "+generatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(8)

	p := v.Preferences
	pdf.SetFont("Helvetica", "", 11)
	summary := []string{
		fmt.Sprintf("Travel Type : %s", utils.Fallback(p.TravelType, "-")),
		fmt.Sprintf("Interests   : %s", utils.Fallback(strings.Join(p.Interests, ", "), "-")),
		fmt.Sprintf("Season      : %s", utils.Fallback(p.Season, "-")),
		fmt.Sprintf("Duration    : %d days", p.TripDuration),
		fmt.Sprintf("Budget      : %s", utils.Fallback(p.Budget, "-")),
	}
	for _, line := range summary {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section := func(title, body string) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(body), "", "", false)
		pdf.Ln(4)
	}
	section("Recommended Cities", v.Bundle.CitySelection)
	section("Destination Insights", v.Bundle.CityResearch)
	section("Itinerary Plan", v.Bundle.Itinerary)
	section("Budget Breakdown", utils.Fallback(v.BudgetText, v.Bundle.Budget))

	if len(v.LineItems) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(110, 7, "Item", "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, "Cost (INR)", "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, it := range v.LineItems {
			pdf.CellFormat(110, 6, tr(it.Item), "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, 6, tr(it.CostINR), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, tr("Estimated Total Budget (INR): "+v.EstimateINR), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "trip_plan.pdf", nil
}
