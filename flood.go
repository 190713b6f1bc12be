package main

// Flood tier thresholds in meters above sea level. These are a
// reconstruction from sample data, not surveyed flood maps; confirm
// against authoritative reference data before relying on them.
const (
	floodLowMinM      = 50.0
	floodModerateMinM = 20.0
	floodHighMinM     = 5.0
)

// classifyFloodRisk maps elevation and urban-zone membership to a flood
// tier. Unknown elevation defaults conservatively: SEVERE inside a known
// urban flood zone, HIGH elsewhere.
func classifyFloodRisk(elevation *float64, zone *UrbanZone) RiskTier {
	if elevation == nil {
		if zone != nil {
			return TierSevere
		}
		return TierHigh
	}

	switch m := *elevation; {
	case m >= floodLowMinM:
		return TierLow
	case m >= floodModerateMinM:
		return TierModerate
	case m >= floodHighMinM:
		return TierHigh
	default:
		return TierSevere
	}
}
