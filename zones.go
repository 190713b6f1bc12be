package main

// findUrbanZone returns the first zone in list order whose radius covers
// the coordinate, or nil when none does. First match wins on overlap so
// repeated lookups are reproducible without distance tie-breaking.
func findUrbanZone(zones []UrbanZone, c Coordinate) *UrbanZone {
	for i := range zones {
		z := &zones[i]
		d := haversineKm(c.Latitude, c.Longitude, z.Center.Latitude, z.Center.Longitude)
		if d <= z.RadiusKm {
			return z
		}
	}
	return nil
}
