package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// parseCoordinate reads lat/lon query parameters. Range errors beyond the
// bare float check are left to the pipeline's bounding-box validation.
func parseCoordinate(r *http.Request) (Coordinate, error) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude %q", q.Get("lat"))
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude %q", q.Get("lon"))
	}

	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

func handleRisk(p *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := parseCoordinate(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		report, err := p.Assess(r.Context(), c)
		if err != nil {
			if errors.Is(err, ErrInvalidCoordinate) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			slog.Error("assessment failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "assessment failed"})
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func handleReport(p *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := parseCoordinate(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		report, err := p.Assess(r.Context(), c)
		if err != nil {
			if errors.Is(err, ErrInvalidCoordinate) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			slog.Error("assessment failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "assessment failed"})
			return
		}

		pdfBytes, err := renderPDF(report)
		if err != nil {
			p.metrics.ReportsGenerated.WithLabelValues("error").Inc()
			slog.Error("report generation failed", "report_id", report.ID, "error", err)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "report could not be generated"})
			return
		}
		p.metrics.ReportsGenerated.WithLabelValues("success").Inc()

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", "risk-report-"+report.ID+".pdf"))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdfBytes); err != nil {
			slog.Error("writing pdf response", "error", err)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
