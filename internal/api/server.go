// Package api provides the HTTP API for inspecting simulation results.
// All endpoints are GET, read-only: the simulation runs to completion before
// the server starts, so handlers only read immutable state.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nickkvasov/mesa-poc/internal/engine"
	"github.com/nickkvasov/mesa-poc/internal/results"
	"github.com/nickkvasov/mesa-poc/internal/stats"
)

// Server serves finished simulation runs over HTTP.
type Server struct {
	Model       *engine.Model
	Store       *results.Store // nil disables the /runs endpoint
	Port        int
	Comparisons []stats.ImpactComparison
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/timeseries", s.handleTimeSeries)
	mux.HandleFunc("/api/v1/hotspots", s.handleHotspots)
	mux.HandleFunc("/api/v1/personas", s.handlePersonas)
	mux.HandleFunc("/api/v1/tourists", s.handleTourists)
	mux.HandleFunc("/api/v1/summary", s.handleSummary)
	mux.HandleFunc("/api/v1/impact", s.handleImpact)
	mux.HandleFunc("/api/v1/runs", s.handleRuns)

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	scenarioName := "baseline"
	if sc := s.Model.ImpactSummary(); sc.ScenarioName != "" {
		scenarioName = sc.ScenarioName
	}
	final := s.Model.Series().Final()
	writeJSON(w, map[string]any{
		"scenario":         scenarioName,
		"steps":            s.Model.CurrentStep(),
		"tourists":         len(s.Model.Tourists),
		"hotspots":         len(s.Model.Hotspots),
		"avg_popularity":   final.AvgPopularity,
		"total_visitors":   final.TotalVisitors,
		"social_shares":    final.SocialShares,
		"avg_satisfaction": final.AvgSatisfaction,
	})
}

func (s *Server) handleTimeSeries(w http.ResponseWriter, r *http.Request) {
	series := s.Model.Series()

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n < len(series) {
			series = series[len(series)-n:]
		}
	}
	writeJSON(w, series)
}

func (s *Server) handleHotspots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Model.HotspotStatistics())
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Model.PersonaStatistics())
}

func (s *Server) handleTourists(w http.ResponseWriter, r *http.Request) {
	snapshots := s.Model.TouristSnapshots()

	if persona := r.URL.Query().Get("persona"); persona != "" {
		var filtered []stats.TouristSnapshot
		for _, t := range snapshots {
			if t.Persona == persona {
				filtered = append(filtered, t)
			}
		}
		snapshots = filtered
	}
	writeJSON(w, snapshots)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Model.SummaryReport())
}

func (s *Server) handleImpact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"scenario":    s.Model.ImpactSummary(),
		"comparisons": s.Comparisons,
	})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "results store not available", http.StatusServiceUnavailable)
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	runs, err := s.Store.ListRuns(limit)
	if err != nil {
		slog.Error("run list query failed", "error", err)
		http.Error(w, "query failed", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []results.RunRecord{}
	}
	writeJSON(w, runs)
}
