package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lowExposure() ExposureEstimate  { return ExposureEstimate{NearbyPropertyCount: 10} }
func highExposure() ExposureEstimate { return ExposureEstimate{NearbyPropertyCount: 60} }

func sampleFire(risk FireRisk) FireAssessment {
	return FireAssessment{
		Risk:            risk,
		NearestStation:  "Delhi Fire Station 1",
		DistanceKm:      4.1,
		ResponseMinutes: 6.2,
	}
}

func TestAggregateRiskWorstOf(t *testing.T) {
	overall, _ := aggregateRisk(f64(80), TierLow, nil, sampleFire(FireFast), lowExposure())
	assert.Equal(t, TierLow, overall)

	overall, _ = aggregateRisk(f64(80), TierLow, nil, sampleFire(FireSlow), lowExposure())
	assert.Equal(t, TierHigh, overall)

	overall, _ = aggregateRisk(f64(3), TierSevere, nil, sampleFire(FireFast), lowExposure())
	assert.Equal(t, TierSevere, overall)
}

func TestAggregateRiskZoneBump(t *testing.T) {
	zone := &UrbanZone{Name: "Mumbai Flood Zone", City: "Mumbai", RiskBump: 2}

	overall, _ := aggregateRisk(f64(80), TierLow, zone, sampleFire(FireFast), lowExposure())
	assert.Equal(t, TierHigh, overall)

	// Bump never pushes past SEVERE.
	overall, _ = aggregateRisk(f64(2), TierSevere, zone, sampleFire(FireVerySlow), highExposure())
	assert.Equal(t, TierSevere, overall)
}

func TestAggregateRiskConcentrationBump(t *testing.T) {
	low, _ := aggregateRisk(f64(80), TierLow, nil, sampleFire(FireFast), lowExposure())
	high, _ := aggregateRisk(f64(80), TierLow, nil, sampleFire(FireFast), highExposure())
	assert.Equal(t, TierLow, low)
	assert.Equal(t, TierModerate, high)
}

func TestNarrativeListsFactors(t *testing.T) {
	zone := &UrbanZone{Name: "Delhi Flood Zone", City: "Delhi", RiskBump: 1}

	_, narrative := aggregateRisk(nil, TierSevere, zone, sampleFire(FireFast), lowExposure())

	assert.Contains(t, narrative, "SEVERE")
	assert.Contains(t, narrative, "Delhi Flood Zone")
	assert.Contains(t, narrative, "Delhi Fire Station 1")
	assert.Contains(t, narrative, "Elevation could not be determined")
	// The exposure figure must be flagged as illustrative in user-facing text.
	assert.True(t, strings.Contains(narrative, "illustrative"))
}

func TestNarrativeKnownElevation(t *testing.T) {
	_, narrative := aggregateRisk(f64(62.5), TierLow, nil, sampleFire(FireModerate), lowExposure())
	assert.Contains(t, narrative, "62.5 m")
	assert.Contains(t, narrative, "outside the mapped urban flood zones")
}
