package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateExposureDeterministicWithInjectedSource(t *testing.T) {
	c := Coordinate{Latitude: 19.0760, Longitude: 72.8777}

	a := simulateExposure(rand.New(rand.NewSource(7)), c, nil)
	b := simulateExposure(rand.New(rand.NewSource(7)), c, nil)
	assert.Equal(t, a, b)
}

func TestSimulateExposureDefaultSeedIsReproducible(t *testing.T) {
	c := Coordinate{Latitude: 28.6139, Longitude: 77.2090}

	a := simulateExposure(exposureRand(c), c, nil)
	b := simulateExposure(exposureRand(c), c, nil)
	assert.Equal(t, a, b)
}

func TestSimulateExposureZoneBaselineHigher(t *testing.T) {
	c := Coordinate{Latitude: 19.0760, Longitude: 72.8777}
	zone := &UrbanZone{Name: "Mumbai Flood Zone", City: "Mumbai", RiskBump: 2}

	outside := simulateExposure(rand.New(rand.NewSource(1)), c, nil)
	inside := simulateExposure(rand.New(rand.NewSource(1)), c, zone)

	// Zone baseline exceeds the maximum possible non-zone count.
	assert.Greater(t, inside.NearbyPropertyCount, outside.NearbyPropertyCount)
	assert.GreaterOrEqual(t, inside.NearbyPropertyCount, exposureZoneCount)
	assert.Less(t, outside.NearbyPropertyCount, exposureZoneCount)
}

func TestSimulateExposurePoints(t *testing.T) {
	c := Coordinate{Latitude: 12.975, Longitude: 77.575}
	est := simulateExposure(exposureRand(c), c, nil)

	require.Len(t, est.Points, exposurePointCount)
	for _, p := range est.Points {
		assert.LessOrEqual(t, math.Abs(p.Latitude-c.Latitude), exposureJitterDeg)
		assert.LessOrEqual(t, math.Abs(p.Longitude-c.Longitude), exposureJitterDeg)
		assert.Contains(t, exposureLevels, p.Level)
	}
}
