package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadReferenceData(t *testing.T) {
	ref, err := loadReferenceData()
	require.NoError(t, err)

	require.Len(t, ref.UrbanZones, 5)
	require.Len(t, ref.FireStations, 10)

	cities := map[string]bool{}
	for _, z := range ref.UrbanZones {
		cities[z.City] = true
		require.NoError(t, validateCoordinate(z.Center), "zone %s", z.Name)
		require.Greater(t, z.RadiusKm, 0.0, "zone %s", z.Name)
		require.GreaterOrEqual(t, z.RiskBump, 1, "zone %s", z.Name)
	}
	for _, city := range []string{"Mumbai", "Chennai", "Kolkata", "Delhi", "Bengaluru"} {
		require.True(t, cities[city], "missing zone for %s", city)
	}

	for _, s := range ref.FireStations {
		require.NoError(t, validateCoordinate(s.Location), "station %s", s.Name)
	}
}
