package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFireRiskThresholds(t *testing.T) {
	tests := []struct {
		km   float64
		want FireRisk
	}{
		{0, FireFast},
		{4.99, FireFast},
		{5, FireModerate},
		{14.99, FireModerate},
		{15, FireSlow},
		{30, FireSlow},
		{30.01, FireVerySlow},
		{100, FireVerySlow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyFireRisk(tt.km), "distance %.2f km", tt.km)
	}
}

func TestEstimateFireRiskAtStation(t *testing.T) {
	ref, err := loadReferenceData()
	require.NoError(t, err)

	// Exactly at Kolkata Fire Station 1.
	fa := estimateFireRisk(ref.FireStations, Coordinate{Latitude: 22.57, Longitude: 88.36})
	assert.Equal(t, FireFast, fa.Risk)
	assert.Equal(t, "Kolkata Fire Station 1", fa.NearestStation)
	assert.Equal(t, 0.0, fa.DistanceKm)
	assert.Equal(t, 0.0, fa.ResponseMinutes)
}

func TestEstimateFireRiskFortyKmOut(t *testing.T) {
	stations := []FireStation{
		{Name: "Only Station", City: "X", Location: Coordinate{Latitude: 20, Longitude: 75}},
	}

	// 0.36° of latitude due north is ~40 km.
	fa := estimateFireRisk(stations, Coordinate{Latitude: 20.36, Longitude: 75})
	assert.InDelta(t, 40, fa.DistanceKm, 0.5)
	assert.Equal(t, FireVerySlow, fa.Risk)
}

func TestEstimateFireRiskPicksNearest(t *testing.T) {
	ref, err := loadReferenceData()
	require.NoError(t, err)

	fa := estimateFireRisk(ref.FireStations, Coordinate{Latitude: 19.0760, Longitude: 72.8777})
	assert.Equal(t, "Mumbai Fire Station 1", fa.NearestStation)
	assert.Equal(t, FireModerate, fa.Risk)
	// Response estimate assumes 40 km/h.
	assert.InDelta(t, fa.DistanceKm/40*60, fa.ResponseMinutes, 1e-9)
}

func TestFireTierMapping(t *testing.T) {
	assert.Equal(t, TierLow, fireTier(FireFast))
	assert.Equal(t, TierModerate, fireTier(FireModerate))
	assert.Equal(t, TierHigh, fireTier(FireSlow))
	assert.Equal(t, TierSevere, fireTier(FireVerySlow))
}
