// Package engine ties the simulation together: it owns the agent
// collections, drives the per-step ordering, and accumulates the metric
// time series. Execution is single-threaded and fully synchronous; one step
// completes before the next begins.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/nickkvasov/mesa-poc/internal/agents"
	"github.com/nickkvasov/mesa-poc/internal/grid"
	"github.com/nickkvasov/mesa-poc/internal/profile"
	"github.com/nickkvasov/mesa-poc/internal/scenario"
	"github.com/nickkvasov/mesa-poc/internal/stats"
)

// Defaults for optional configuration values.
const (
	DefaultGridWidth   = 20
	DefaultGridHeight  = 20
	DefaultNumTourists = 50
)

// Config assembles everything a simulation run needs. Persona, hotspot, and
// business-rule records arrive already parsed; construction validates them
// and fails fast on malformed input.
type Config struct {
	Personas    []profile.PersonaProfile
	Hotspots    []profile.HotspotProfile
	Rules       profile.BusinessRules
	Scenario    *scenario.Scenario // nil runs the baseline
	NumTourists int
	GridWidth   int
	GridHeight  int
	Seed        int64
}

// Model is the complete simulation state. Agents are created once at
// construction and iterated in creation order every step, so a run is
// exactly reproducible from (seed, configuration).
type Model struct {
	cfg   Config
	rng   *rand.Rand
	world *grid.Grid

	Hotspots []*agents.Hotspot
	Tourists []*agents.Tourist

	events *scenario.Engine

	step   int
	series stats.TimeSeries
}

// New validates the configuration and builds the model: hotspots at their
// configured coordinates, tourists placed on the density field, and the
// scenario engine attached (a nil scenario runs the identical code path
// with no effects).
func New(cfg Config) (*Model, error) {
	if err := profile.ValidatePersonas(cfg.Personas); err != nil {
		return nil, fmt.Errorf("model construction: %w", err)
	}
	if err := profile.ValidateHotspots(cfg.Hotspots, cfg.Personas); err != nil {
		return nil, fmt.Errorf("model construction: %w", err)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("model construction: %w", err)
	}
	if cfg.GridWidth <= 0 {
		cfg.GridWidth = DefaultGridWidth
	}
	if cfg.GridHeight <= 0 {
		cfg.GridHeight = DefaultGridHeight
	}
	if cfg.NumTourists <= 0 {
		cfg.NumTourists = DefaultNumTourists
	}

	m := &Model{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		world: grid.New(cfg.GridWidth, cfg.GridHeight, cfg.Seed),
	}

	for i, prof := range cfg.Hotspots {
		pos := m.world.Clamp(grid.Point{X: prof.X, Y: prof.Y})
		m.Hotspots = append(m.Hotspots, agents.NewHotspot(i, prof, pos, cfg.Rules))
	}

	for i := 0; i < cfg.NumTourists; i++ {
		persona := &cfg.Personas[m.rng.Intn(len(cfg.Personas))]
		pos := m.world.PlaceWeighted(m.rng)
		m.Tourists = append(m.Tourists, agents.NewTourist(i, persona, pos, m.rng))
	}

	events, err := scenario.NewEngine(cfg.Scenario, m.Hotspots, cfg.Personas)
	if err != nil {
		return nil, err
	}
	m.events = events

	slog.Debug("model constructed",
		"hotspots", len(m.Hotspots),
		"tourists", len(m.Tourists),
		"grid", fmt.Sprintf("%dx%d", cfg.GridWidth, cfg.GridHeight),
		"seed", cfg.Seed,
	)
	return m, nil
}

// Step advances the simulation by one step in the fixed order: scenario
// events, then every hotspot, then every tourist (choose → visit → share →
// recommend), then the metrics snapshot.
func (m *Model) Step() {
	m.events.Advance(m.step)

	for _, h := range m.Hotspots {
		h.Step(m.step)
	}

	for i, t := range m.Tourists {
		t.BeginStep()
		mods := m.events.Modifiers(t.Persona.Type)

		for v := 0; v < t.Persona.DailyVisits; v++ {
			idx, ok := t.ChooseHotspot(m.Hotspots, mods, m.cfg.Rules)
			if !ok {
				// Nothing has capacity left; the tourist stays idle.
				break
			}
			h := m.Hotspots[idx]
			t.VisitHotspot(h, mods, m.step)
			t.ShareExperience(h, mods, m.cfg.Rules, m.rng)
		}

		t.MakeRecommendations(m.Tourists, m.touristPositions(), i, m.cfg.Rules, m.rng, m.step)
	}

	m.series = append(m.series, m.collect())
	m.step++
}

// RunSimulation drives the given number of steps and returns the
// accumulated time series. Synchronous, no suspension points.
func (m *Model) RunSimulation(steps int) stats.TimeSeries {
	for i := 0; i < steps; i++ {
		m.Step()
	}
	return m.series
}

// CurrentStep returns the number of completed steps.
func (m *Model) CurrentStep() int {
	return m.step
}

// Series returns the time series accumulated so far.
func (m *Model) Series() stats.TimeSeries {
	return m.series
}

// ImpactSummary reports scenario progress for the analysis layer.
func (m *Model) ImpactSummary() stats.ScenarioImpact {
	return m.events.ImpactSummary(m.step)
}

func (m *Model) touristPositions() []grid.Point {
	positions := make([]grid.Point, len(m.Tourists))
	for i, t := range m.Tourists {
		positions[i] = t.Position
	}
	return positions
}
