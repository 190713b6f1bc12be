package main

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed refdata.yaml
var refdataYAML []byte

// ReferenceData holds the static urban zone and fire station tables.
// Loaded once at startup, read-only afterwards.
type ReferenceData struct {
	UrbanZones   []UrbanZone   `yaml:"urban_zones"`
	FireStations []FireStation `yaml:"fire_stations"`
}

// loadReferenceData parses and sanity-checks the embedded reference tables.
func loadReferenceData() (*ReferenceData, error) {
	var ref ReferenceData
	if err := yaml.Unmarshal(refdataYAML, &ref); err != nil {
		return nil, fmt.Errorf("refdata decode: %w", err)
	}

	if len(ref.UrbanZones) == 0 {
		return nil, fmt.Errorf("refdata: no urban zones")
	}
	if len(ref.FireStations) == 0 {
		return nil, fmt.Errorf("refdata: no fire stations")
	}

	for _, z := range ref.UrbanZones {
		if z.Name == "" || z.RadiusKm <= 0 {
			return nil, fmt.Errorf("refdata: invalid urban zone %q", z.Name)
		}
		if err := validateCoordinate(z.Center); err != nil {
			return nil, fmt.Errorf("refdata: zone %q: %w", z.Name, err)
		}
	}
	for _, s := range ref.FireStations {
		if s.Name == "" {
			return nil, fmt.Errorf("refdata: fire station with empty name")
		}
		if err := validateCoordinate(s.Location); err != nil {
			return nil, fmt.Errorf("refdata: station %q: %w", s.Name, err)
		}
	}

	return &ref, nil
}
