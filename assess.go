package main

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Pipeline runs the full underwriting assessment for one coordinate.
// It holds no per-request state; every run is independent.
type Pipeline struct {
	elevation ElevationSource
	ref       *ReferenceData
	metrics   *Metrics
	logger    *slog.Logger

	// randFor supplies the exposure simulator's random source; tests
	// inject a fixed source here.
	randFor func(Coordinate) *rand.Rand
}

// NewPipeline wires the pipeline components together.
func NewPipeline(elevation ElevationSource, ref *ReferenceData, metrics *Metrics, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		elevation: elevation,
		ref:       ref,
		metrics:   metrics,
		logger:    logger,
		randFor:   exposureRand,
	}
}

// Assess validates the coordinate and runs the pipeline to completion:
// elevation lookup, then flood, urban zone, fire, and exposure signals,
// then aggregation. Elevation failure degrades to unknown rather than
// failing the run; the only error returned is ErrInvalidCoordinate.
func (p *Pipeline) Assess(ctx context.Context, c Coordinate) (*RiskReport, error) {
	if err := validateCoordinate(c); err != nil {
		return nil, err
	}

	start := time.Now()
	p.metrics.AssessmentsTotal.Inc()

	zone := findUrbanZone(p.ref.UrbanZones, c)

	elevation, err := p.elevation.Elevation(ctx, c)
	if err != nil {
		p.logger.Warn("elevation unavailable, degrading to unknown",
			"lat", c.Latitude, "lon", c.Longitude, "error", err)
		elevation = nil
	}

	flood := classifyFloodRisk(elevation, zone)
	fire := estimateFireRisk(p.ref.FireStations, c)
	exposure := simulateExposure(p.randFor(c), c, zone)

	overall, narrative := aggregateRisk(elevation, flood, zone, fire, exposure)

	report := &RiskReport{
		ID:            uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Coordinate:    c,
		ElevationM:    elevation,
		FloodRisk:     flood,
		UrbanZone:     zone,
		Fire:          fire,
		Exposure:      exposure,
		OverallRating: overall,
		Narrative:     narrative,
	}

	p.metrics.AssessmentDuration.Observe(time.Since(start).Seconds())
	return report, nil
}
