package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const defaultElevationURL = "https://api.open-elevation.com/api/v1/lookup"
const elevationCacheTTL = 24 * time.Hour

// ElevationSource resolves the elevation at a point. A nil value with a
// nil error means the service answered but had no data for the point.
type ElevationSource interface {
	Elevation(ctx context.Context, c Coordinate) (*float64, error)
}

type elevationResponse struct {
	Results []elevationResult `json:"results"`
}

type elevationResult struct {
	Elevation float64 `json:"elevation"`
}

// openElevationClient implements ElevationSource against the
// Open-Elevation lookup API.
type openElevationClient struct {
	baseURL string
	cache   *Cache
	metrics *Metrics
}

func newOpenElevationClient(baseURL string, cache *Cache, metrics *Metrics) *openElevationClient {
	if baseURL == "" {
		baseURL = defaultElevationURL
	}
	return &openElevationClient{baseURL: baseURL, cache: cache, metrics: metrics}
}

// Elevation returns the elevation in meters at the given coordinate.
// Single attempt, no retries; callers treat any error as "unknown".
func (e *openElevationClient) Elevation(ctx context.Context, c Coordinate) (*float64, error) {
	u := fmt.Sprintf("%s?locations=%f,%f", e.baseURL, c.Latitude, c.Longitude)

	data, hit, err := cachedGet(ctx, e.cache, u, elevationCacheTTL)
	if hit {
		e.metrics.ElevationCache.WithLabelValues("hit").Inc()
	} else {
		e.metrics.ElevationCache.WithLabelValues("miss").Inc()
	}
	if err != nil {
		e.metrics.ElevationLookups.WithLabelValues("unknown").Inc()
		return nil, fmt.Errorf("elevation: %w", err)
	}

	var result elevationResponse
	if err := json.Unmarshal(data, &result); err != nil {
		e.metrics.ElevationLookups.WithLabelValues("unknown").Inc()
		return nil, fmt.Errorf("elevation decode: %w", err)
	}

	if len(result.Results) == 0 {
		e.metrics.ElevationLookups.WithLabelValues("unknown").Inc()
		return nil, nil
	}

	e.metrics.ElevationLookups.WithLabelValues("success").Inc()
	v := result.Results[0].Elevation
	return &v, nil
}
