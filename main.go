package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/jonboulle/clockwork"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	flag.Parse()

	logger := newLogger()
	slog.SetDefault(logger)

	if p := os.Getenv("PORT"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil || v < 1 || v > 65535 {
			logger.Error("invalid PORT", "value", p)
			os.Exit(1)
		}
		*port = v
	}

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.Error("static files", "error", err)
		os.Exit(1)
	}

	ref, err := loadReferenceData()
	if err != nil {
		logger.Error("loading reference data", "error", err)
		os.Exit(1)
	}
	logger.Info("reference data loaded",
		"urban_zones", len(ref.UrbanZones), "fire_stations", len(ref.FireStations))

	metrics := NewMetrics()

	cache := NewCache(clockwork.NewRealClock())
	defer cache.Close()

	elevation := newOpenElevationClient(os.Getenv("ELEVATION_URL"), cache, metrics)
	pipeline := NewPipeline(elevation, ref, metrics, logger)

	handler := newRouter(staticFS, pipeline)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger, honoring LOG_LEVEL.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
