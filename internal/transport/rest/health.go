package rest

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// Check probes one dependency besides the database. A failing Required check
// takes the instance out of rotation; any other failure only marks /health
// as degraded.
type Check struct {
	Name     string
	Required bool
	Probe    func(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and detailed health probes.
type HealthHandler struct {
	checks  []Check
	version string
}

func NewHealthHandler(db dbPinger, version string, checks ...Check) *HealthHandler {
	all := append([]Check{{Name: "database", Required: true, Probe: db.Ping}}, checks...)
	return &HealthHandler{checks: all, version: version}
}

type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live answers 200 while the process is up.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 when any required dependency is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.probe(r.Context(), true)
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports every component with its latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.probe(r.Context(), false)
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe runs the checks concurrently and folds them into ok, degraded or
// down.
func (h *HealthHandler) probe(ctx context.Context, requiredOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.checks))
	var g errgroup.Group
	for i, c := range h.checks {
		if requiredOnly && !c.Required {
			continue
		}
		g.Go(func() error {
			start := time.Now()
			if err := c.Probe(ctx); err != nil {
				results[i] = CompStatus{Status: "down", Error: err.Error()}
				return nil
			}
			results[i] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
			return nil
		})
	}
	_ = g.Wait()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.checks))
	for i, c := range h.checks {
		if results[i].Status == "" {
			continue
		}
		components[c.Name] = results[i]
		if results[i].Status != "down" {
			continue
		}
		if c.Required {
			overall = "down"
		} else if overall == "ok" {
			overall = "degraded"
		}
	}
	return overall, components
}
