package main

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const reportTitle = "Property Insurance Underwriting Risk Analysis Report"

// renderPDF renders a risk report to PDF bytes. Malformed reports (missing
// narrative or rating) fail with ReportGenerationError and produce no
// output; the on-screen result is unaffected by such a failure.
func renderPDF(report *RiskReport) ([]byte, error) {
	if report == nil {
		return nil, &ReportGenerationError{Reason: "nil report"}
	}
	if report.Narrative == "" {
		return nil, &ReportGenerationError{Reason: "missing narrative"}
	}
	if report.OverallRating == "" {
		return nil, &ReportGenerationError{Reason: "missing overall rating"}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	line := func(s string) {
		pdf.CellFormat(0, 8, s, "", 1, "L", false, 0, "")
	}

	line(fmt.Sprintf("Location Coordinates: Latitude %.6f, Longitude %.6f",
		report.Coordinate.Latitude, report.Coordinate.Longitude))

	if report.ElevationM != nil {
		line(fmt.Sprintf("Elevation: %.1f meters", *report.ElevationM))
	} else {
		line("Elevation: unknown (service unavailable)")
	}

	line(fmt.Sprintf("Flood Risk Tier: %s", report.FloodRisk))
	if report.UrbanZone != nil {
		line(fmt.Sprintf("Urban Flood Zone: %s (%s)", report.UrbanZone.Name, report.UrbanZone.City))
	} else {
		line("Urban Flood Zone: none")
	}

	line(fmt.Sprintf("Fire Response Tier: %s", report.Fire.Risk))
	line(fmt.Sprintf("Nearest Fire Station: %s (%.1f km)", report.Fire.NearestStation, report.Fire.DistanceKm))
	line(fmt.Sprintf("Fire Brigade Response Time Estimate: %.1f minutes", report.Fire.ResponseMinutes))
	line(fmt.Sprintf("Overall Rating: %s", report.OverallRating))

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	line("Assessment Summary")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, report.Narrative, "", "L", false)

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	line(fmt.Sprintf("Nearby Properties Exposure (illustrative, %d estimated):", report.Exposure.NearbyPropertyCount))

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(45, 8, "Latitude", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, "Longitude", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, "Risk Level", "1", 1, "L", false, 0, "")
	for _, pt := range report.Exposure.Points {
		pdf.CellFormat(45, 8, fmt.Sprintf("%.6f", pt.Latitude), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%.6f", pt.Longitude), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, pt.Level, "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5,
		"Exposure counts and risk levels are simulated from sample data for illustration only and must not be read as measured values.",
		"", "L", false)
	pdf.SetFont("Arial", "", 9)
	line(fmt.Sprintf("Report ID: %s", report.ID))
	line(fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &ReportGenerationError{Reason: err.Error()}
	}
	return buf.Bytes(), nil
}
