package main

import (
	"errors"
	"fmt"
	"time"
)

// India bounding box used for coordinate validation. Coarse on purpose:
// it rejects obviously-wrong input, it does not trace the border.
const (
	indiaLatMin = 6.0
	indiaLatMax = 37.0
	indiaLonMin = 68.0
	indiaLonMax = 97.5
)

// ErrInvalidCoordinate rejects points outside the India bounding box.
var ErrInvalidCoordinate = errors.New("coordinate outside India bounding box")

// Coordinate is a WGS84 point selected on the map or entered manually.
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// validateCoordinate checks the point lies within the India bounding box.
func validateCoordinate(c Coordinate) error {
	if c.Latitude < indiaLatMin || c.Latitude > indiaLatMax ||
		c.Longitude < indiaLonMin || c.Longitude > indiaLonMax {
		return fmt.Errorf("%w: lat=%.4f lon=%.4f", ErrInvalidCoordinate, c.Latitude, c.Longitude)
	}
	return nil
}

// RiskTier is the ordinal risk category shared by flood risk and the
// overall rating.
type RiskTier string

const (
	TierLow      RiskTier = "LOW"
	TierModerate RiskTier = "MODERATE"
	TierHigh     RiskTier = "HIGH"
	TierSevere   RiskTier = "SEVERE"
)

// ordinal returns the tier's position on the 0..3 severity scale.
func (t RiskTier) ordinal() int {
	switch t {
	case TierLow:
		return 0
	case TierModerate:
		return 1
	case TierHigh:
		return 2
	case TierSevere:
		return 3
	}
	return 0
}

// tierFromOrdinal clamps n to the 0..3 scale and returns the tier.
func tierFromOrdinal(n int) RiskTier {
	switch {
	case n <= 0:
		return TierLow
	case n == 1:
		return TierModerate
	case n == 2:
		return TierHigh
	default:
		return TierSevere
	}
}

// FireRisk is the response-time tier derived from distance to the nearest
// fire station.
type FireRisk string

const (
	FireFast     FireRisk = "FAST"
	FireModerate FireRisk = "MODERATE"
	FireSlow     FireRisk = "SLOW"
	FireVerySlow FireRisk = "VERY_SLOW"
)

// UrbanZone is a city-centered area with elevated baseline flood risk due
// to known urban drainage issues. Read-only reference data.
type UrbanZone struct {
	Name     string     `json:"name" yaml:"name"`
	City     string     `json:"city" yaml:"city"`
	Center   Coordinate `json:"center" yaml:"center"`
	RadiusKm float64    `json:"radius_km" yaml:"radius_km"`
	RiskBump int        `json:"risk_bump" yaml:"risk_bump"`
}

// FireStation is a sample station location. Read-only reference data.
type FireStation struct {
	Name     string     `json:"name" yaml:"name"`
	City     string     `json:"city" yaml:"city"`
	Location Coordinate `json:"location" yaml:"location"`
}

// ExposurePoint is one simulated nearby property with a coarse risk label.
type ExposurePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Level     string  `json:"level"` // Low, Medium, High
}

// ExposureEstimate is an illustrative concentration proxy, not a measured
// value. There is no property registry behind it.
type ExposureEstimate struct {
	NearbyPropertyCount int             `json:"nearby_property_count"`
	Points              []ExposurePoint `json:"points"`
}

// FireAssessment carries the fire tier plus the nearest-station detail
// shown to underwriters.
type FireAssessment struct {
	Risk            FireRisk `json:"risk"`
	NearestStation  string   `json:"nearest_station"`
	DistanceKm      float64  `json:"distance_km"`
	ResponseMinutes float64  `json:"response_minutes"`
}

// RiskReport is the full result of one underwriting pipeline run.
type RiskReport struct {
	ID          string     `json:"id"`
	GeneratedAt time.Time  `json:"generated_at"`
	Coordinate  Coordinate `json:"coordinate"`

	// ElevationM is nil when the elevation service was unavailable.
	ElevationM *float64 `json:"elevation_m,omitempty"`

	FloodRisk RiskTier   `json:"flood_risk"`
	UrbanZone *UrbanZone `json:"urban_zone,omitempty"`

	Fire     FireAssessment   `json:"fire"`
	Exposure ExposureEstimate `json:"exposure"`

	OverallRating RiskTier `json:"overall_rating"`
	Narrative     string   `json:"narrative"`
}

// ReportGenerationError signals that a PDF could not be produced from a
// malformed report. The on-screen result is unaffected.
type ReportGenerationError struct {
	Reason string
}

func (e *ReportGenerationError) Error() string {
	return "report generation: " + e.Reason
}
