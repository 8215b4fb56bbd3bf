package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type cachePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness of the service's backing stores.
type HealthHandler struct {
	db     dbPinger
	cache  cachePinger
	logger *slog.Logger
}

func NewHealthHandler(db dbPinger, cache cachePinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, logger: logger}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Database  bool      `json:"database"`
	Redis     bool      `json:"redis"`
	Timestamp time.Time `json:"timestamp"`
}

// Check probes the database and Redis independently and in parallel.
// It responds 200 only when both probes succeed, 503 otherwise. A probe
// failure on one store never masks the result of the other.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	dbOK := make(chan bool, 1)
	cacheOK := make(chan bool, 1)

	go func() { dbOK <- h.probe(r.Context(), "database", h.db) }()
	go func() { cacheOK <- h.probe(r.Context(), "redis", h.cache) }()

	resp := HealthResponse{
		Database:  <-dbOK,
		Redis:     <-cacheOK,
		Timestamp: time.Now().UTC(),
	}

	status := http.StatusOK
	if !resp.Database || !resp.Redis {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) probe(ctx context.Context, name string, p dbPinger) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("health probe panicked",
				slog.String("store", name),
				slog.Any("error", rec),
			)
			ok = false
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "health probe failed",
			slog.String("store", name),
			slog.Any("error", err),
		)
		return false
	}
	return true
}
