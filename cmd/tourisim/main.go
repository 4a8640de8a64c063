// Command tourisim runs the tourism dynamics simulation: a baseline run plus
// the canonical what-if scenarios, side by side, with results persisted to
// SQLite and served over HTTP.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/nickkvasov/mesa-poc/internal/api"
	"github.com/nickkvasov/mesa-poc/internal/engine"
	"github.com/nickkvasov/mesa-poc/internal/profile"
	"github.com/nickkvasov/mesa-poc/internal/results"
	"github.com/nickkvasov/mesa-poc/internal/scenario"
	"github.com/nickkvasov/mesa-poc/internal/stats"
)

const (
	seed    = int64(42)
	steps   = 20
	dbPath  = "data/tourisim.db"
	apiPort = 8080
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("tourism dynamics simulation",
		"seed", seed,
		"steps", steps,
		"tourists", engine.DefaultNumTourists,
	)

	if err := os.MkdirAll("data", 0755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}
	store, err := results.Open(dbPath)
	if err != nil {
		slog.Error("failed to open results database", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("results database opened", "path", dbPath)

	// ── Baseline ──────────────────────────────────────────────────────
	baselineModel, baselineSeries := run(nil, store)

	// ── Scenarios ─────────────────────────────────────────────────────
	scenarios := []*scenario.Scenario{
		scenario.FestivalScenario(),
		scenario.LuxuryTaxScenario(),
		scenario.ConstructionScenario(),
	}

	var comparisons []stats.ImpactComparison
	for _, sc := range scenarios {
		_, series := run(sc, store)
		cmp := scenario.CompareWithBaseline(sc.Name, baselineSeries, series)
		comparisons = append(comparisons, cmp)
		report(cmp)
	}

	final := baselineSeries.Final()
	fmt.Printf("\nBaseline: %s visits and %s social shares across %d hotspots.\n",
		humanize.Comma(int64(final.TotalVisitors)),
		humanize.Comma(int64(final.SocialShares)),
		len(baselineModel.Hotspots),
	)
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", apiPort)

	// ── HTTP API ──────────────────────────────────────────────────────
	apiServer := &api.Server{
		Model:       baselineModel,
		Store:       store,
		Port:        apiPort,
		Comparisons: comparisons,
	}
	apiServer.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}

// run executes one full simulation and persists the result. Every run uses
// the same seed and population, so runs differ only by scenario.
func run(sc *scenario.Scenario, store *results.Store) (*engine.Model, stats.TimeSeries) {
	name := "baseline"
	if sc != nil {
		name = sc.Name
	}

	model, err := engine.New(engine.Config{
		Personas: profile.DefaultPersonas(),
		Hotspots: profile.DefaultHotspots(),
		Rules:    profile.DefaultRules(),
		Scenario: sc,
		Seed:     seed,
	})
	if err != nil {
		slog.Error("model construction failed", "scenario", name, "error", err)
		os.Exit(1)
	}

	series := model.RunSimulation(steps)
	final := series.Final()
	slog.Info("run complete",
		"scenario", name,
		"visitors", final.TotalVisitors,
		"shares", final.SocialShares,
		"avg_satisfaction", fmt.Sprintf("%.3f", final.AvgSatisfaction),
	)

	runID, err := store.SaveRun(name, seed, model.SummaryReport(), series)
	if err != nil {
		slog.Error("save failed", "scenario", name, "error", err)
	} else {
		slog.Info("run persisted", "scenario", name, "run_id", runID)
	}

	return model, series
}

// report prints the baseline-vs-scenario deltas.
func report(cmp stats.ImpactComparison) {
	fmt.Printf("\n%s vs baseline:\n", cmp.ScenarioName)
	for _, d := range cmp.Deltas {
		fmt.Printf("  %-22s %+.3f (%+.1f%%)\n", d.Metric, d.AbsoluteChange, d.PercentChange)
	}
}
