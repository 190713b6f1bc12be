package main

import (
	"math"
	"math/rand"
)

// Exposure simulation parameters. The output is illustrative only: a
// concentration proxy generated from sample distributions, not a count
// from any property registry.
const (
	exposurePointCount  = 5
	exposureJitterDeg   = 0.005 // spread of simulated properties around the point
	exposureBaseCount   = 8
	exposureBaseSpread  = 12
	exposureZoneCount   = 30
	exposureZoneSpread  = 20
	exposureZonePerBump = 10
)

var exposureLevels = []string{"Low", "Medium", "High"}

// exposureRand returns the default coordinate-seeded source, so repeated
// requests for the same point produce the same estimate.
func exposureRand(c Coordinate) *rand.Rand {
	seed := int64(math.Round(c.Latitude*1e6))<<32 ^ int64(math.Round(c.Longitude*1e6))
	return rand.New(rand.NewSource(seed))
}

// simulateExposure generates an illustrative nearby-property estimate.
// The source is injectable; urban zones get a higher baseline scaled by
// their risk bump.
func simulateExposure(r *rand.Rand, c Coordinate, zone *UrbanZone) ExposureEstimate {
	count := exposureBaseCount + r.Intn(exposureBaseSpread)
	if zone != nil {
		count = exposureZoneCount + zone.RiskBump*exposureZonePerBump + r.Intn(exposureZoneSpread)
	}

	points := make([]ExposurePoint, 0, exposurePointCount)
	for i := 0; i < exposurePointCount; i++ {
		points = append(points, ExposurePoint{
			Latitude:  c.Latitude + (r.Float64()-0.5)*2*exposureJitterDeg,
			Longitude: c.Longitude + (r.Float64()-0.5)*2*exposureJitterDeg,
			Level:     exposureLevels[r.Intn(len(exposureLevels))],
		})
	}

	return ExposureEstimate{
		NearbyPropertyCount: count,
		Points:              points,
	}
}
