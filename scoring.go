package main

import (
	"fmt"
	"strings"
)

// exposureConcentrationMin is the simulated property count above which
// concentration bumps the overall rating by one tier.
const exposureConcentrationMin = 50

// aggregateRisk combines the flood and fire tiers into one overall rating
// plus a narrative for underwriters. Worst-of over the two ordinal tiers,
// bumped by zone membership and by high simulated concentration, capped
// at SEVERE. Deterministic given its inputs.
func aggregateRisk(elevation *float64, flood RiskTier, zone *UrbanZone, fire FireAssessment, exposure ExposureEstimate) (RiskTier, string) {
	worst := flood.ordinal()
	if ft := fireTier(fire.Risk); ft.ordinal() > worst {
		worst = ft.ordinal()
	}
	if zone != nil {
		worst += zone.RiskBump
	}
	if exposure.NearbyPropertyCount >= exposureConcentrationMin {
		worst++
	}

	overall := tierFromOrdinal(worst)
	return overall, buildNarrative(overall, elevation, flood, zone, fire, exposure)
}

// buildNarrative lists the contributing factors in plain language.
func buildNarrative(overall RiskTier, elevation *float64, flood RiskTier, zone *UrbanZone, fire FireAssessment, exposure ExposureEstimate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall underwriting risk is rated %s. ", overall)

	if elevation != nil {
		fmt.Fprintf(&b, "Flood risk is %s based on an elevation of %.1f m. ", flood, *elevation)
	} else if zone != nil {
		fmt.Fprintf(&b, "Elevation could not be determined; flood risk defaults conservatively to %s inside a known urban flood zone. ", flood)
	} else {
		fmt.Fprintf(&b, "Elevation could not be determined; flood risk defaults conservatively to %s. ", flood)
	}

	if zone != nil {
		fmt.Fprintf(&b, "The location lies within the %s (%s), which raises the baseline rating due to known urban drainage issues. ", zone.Name, zone.City)
	} else {
		b.WriteString("The location is outside the mapped urban flood zones. ")
	}

	fmt.Fprintf(&b, "The nearest fire station is %s, %.1f km away (estimated response %.0f min, %s tier). ",
		fire.NearestStation, fire.DistanceKm, fire.ResponseMinutes, fire.Risk)

	fmt.Fprintf(&b, "An estimated %d insurable properties lie nearby. This count is illustrative, generated from sample data rather than a property registry.",
		exposure.NearbyPropertyCount)

	return b.String()
}
