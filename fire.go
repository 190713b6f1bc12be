package main

// Fire tier thresholds in km to the nearest station, proxying expected
// response time at an assumed average speed.
const (
	fireFastMaxKm     = 5.0
	fireModerateMaxKm = 15.0
	fireSlowMaxKm     = 30.0

	avgResponseSpeedKmh = 40.0
)

// classifyFireRisk maps distance to the nearest station to a tier.
func classifyFireRisk(distanceKm float64) FireRisk {
	switch {
	case distanceKm < fireFastMaxKm:
		return FireFast
	case distanceKm < fireModerateMaxKm:
		return FireModerate
	case distanceKm <= fireSlowMaxKm:
		return FireSlow
	default:
		return FireVerySlow
	}
}

// fireTier maps a fire tier onto the shared ordinal risk scale for
// aggregation.
func fireTier(f FireRisk) RiskTier {
	switch f {
	case FireFast:
		return TierLow
	case FireModerate:
		return TierModerate
	case FireSlow:
		return TierHigh
	default:
		return TierSevere
	}
}

// estimateFireRisk finds the nearest station and derives the response
// tier and a response-time estimate in minutes.
func estimateFireRisk(stations []FireStation, c Coordinate) FireAssessment {
	var nearest FireStation
	minKm := -1.0

	for _, s := range stations {
		d := haversineKm(c.Latitude, c.Longitude, s.Location.Latitude, s.Location.Longitude)
		if minKm < 0 || d < minKm {
			minKm = d
			nearest = s
		}
	}

	return FireAssessment{
		Risk:            classifyFireRisk(minKm),
		NearestStation:  nearest.Name,
		DistanceKm:      minKm,
		ResponseMinutes: minKm / avgResponseSpeedKmh * 60,
	}
}
