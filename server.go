package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// newRouter sets up the HTTP routes, middleware, and static file serving.
func newRouter(staticFS fs.FS, p *Pipeline) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Default().Handler)

	r.Get("/api/risk", handleRisk(p))
	r.Get("/api/report", handleReport(p))
	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Handle("/*", http.FileServer(http.FS(staticFS)))

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

var httpClient = &http.Client{
	Timeout: 10 * time.Second,
}

// cachedGet fetches a URL with caching. The second return value reports
// whether the body came from the cache.
func cachedGet(ctx context.Context, cache *Cache, url string, ttl time.Duration) ([]byte, bool, error) {
	if data, ok := cache.Get(url); ok {
		return data, true, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "property-underwriting-tool/1.0 github.com/boxerking/property-underwriting-tool")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20)) // 2 MB limit
	if err != nil {
		return nil, false, fmt.Errorf("reading response from %s: %w", url, err)
	}

	cache.Set(url, body, ttl)
	return body, false, nil
}
