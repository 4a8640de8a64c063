// Package results provides SQLite-based storage for finished simulation runs:
// the per-step time series, end-of-run hotspot and persona aggregates, and
// enough metadata to tell runs apart.
package results

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nickkvasov/mesa-poc/internal/stats"
)

// Store wraps a SQLite connection for run result persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		scenario TEXT NOT NULL,
		seed INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		num_tourists INTEGER NOT NULL,
		num_hotspots INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		summary_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS step_metrics (
		run_id TEXT NOT NULL,
		step INTEGER NOT NULL,
		avg_popularity REAL NOT NULL,
		total_visitors INTEGER NOT NULL,
		social_shares INTEGER NOT NULL,
		avg_satisfaction REAL NOT NULL,
		visits_this_step INTEGER NOT NULL,
		idle_tourists INTEGER NOT NULL,
		PRIMARY KEY (run_id, step)
	);

	CREATE TABLE IF NOT EXISTS hotspot_stats (
		run_id TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		current_popularity REAL NOT NULL,
		avg_popularity REAL NOT NULL,
		visitors_today INTEGER NOT NULL,
		total_visitors INTEGER NOT NULL,
		social_shares INTEGER NOT NULL,
		current_capacity INTEGER NOT NULL,
		capacity_utilization REAL NOT NULL,
		PRIMARY KEY (run_id, name)
	);

	CREATE TABLE IF NOT EXISTS persona_stats (
		run_id TEXT NOT NULL,
		persona TEXT NOT NULL,
		count INTEGER NOT NULL,
		avg_satisfaction REAL NOT NULL,
		avg_visits REAL NOT NULL,
		avg_recommendations REAL NOT NULL,
		PRIMARY KEY (run_id, persona)
	);

	CREATE INDEX IF NOT EXISTS idx_step_metrics_run ON step_metrics(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// RunRecord is the stored metadata of one completed run.
type RunRecord struct {
	ID          string    `json:"id" db:"id"`
	Scenario    string    `json:"scenario" db:"scenario"`
	Seed        int64     `json:"seed" db:"seed"`
	Steps       int       `json:"steps" db:"steps"`
	NumTourists int       `json:"num_tourists" db:"num_tourists"`
	NumHotspots int       `json:"num_hotspots" db:"num_hotspots"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SaveRun stores one finished run under a fresh run id and returns it.
// The whole save is one transaction; a failed insert leaves no partial run.
func (s *Store) SaveRun(scenarioName string, seed int64, report stats.SummaryReport, series stats.TimeSeries) (string, error) {
	runID := uuid.NewString()

	tx, err := s.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	summaryJSON, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO runs
		(id, scenario, seed, steps, num_tourists, num_hotspots, created_at, summary_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, scenarioName, seed, report.Steps, report.NumTourists, report.NumHotspots,
		time.Now().UTC().Format(time.RFC3339), string(summaryJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO step_metrics
		(run_id, step, avg_popularity, total_visitors, social_shares,
		 avg_satisfaction, visits_this_step, idle_tourists)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, row := range series {
		_, err := stmt.Exec(
			runID, row.Step, row.AvgPopularity, row.TotalVisitors,
			row.SocialShares, row.AvgSatisfaction, row.VisitsThisStep, row.IdleTourists,
		)
		if err != nil {
			return "", fmt.Errorf("insert step %d: %w", row.Step, err)
		}
	}

	for _, h := range report.Hotspots {
		_, err := tx.Exec(`INSERT INTO hotspot_stats
			(run_id, name, category, current_popularity, avg_popularity,
			 visitors_today, total_visitors, social_shares, current_capacity, capacity_utilization)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, h.Name, h.Category, h.CurrentPopularity, h.AvgPopularity,
			h.VisitorsToday, h.TotalVisitors, h.SocialShares, h.CurrentCapacity, h.CapacityUtilization,
		)
		if err != nil {
			return "", fmt.Errorf("insert hotspot %q: %w", h.Name, err)
		}
	}

	for _, p := range report.Personas {
		_, err := tx.Exec(`INSERT INTO persona_stats
			(run_id, persona, count, avg_satisfaction, avg_visits, avg_recommendations)
			VALUES (?, ?, ?, ?, ?, ?)`,
			runID, p.Persona, p.Count, p.AvgSatisfaction, p.AvgVisits, p.AvgRecommendations,
		)
		if err != nil {
			return "", fmt.Errorf("insert persona %q: %w", p.Persona, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("run saved", "run_id", runID, "scenario", scenarioName, "steps", report.Steps)
	return runID, nil
}

// LoadSeries returns the stored time series of a run, ordered by step.
func (s *Store) LoadSeries(runID string) (stats.TimeSeries, error) {
	var series stats.TimeSeries
	err := s.conn.Select(&series,
		`SELECT step, avg_popularity, total_visitors, social_shares,
		        avg_satisfaction, visits_this_step, idle_tourists
		 FROM step_metrics WHERE run_id = ? ORDER BY step`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("load series %s: %w", runID, err)
	}
	return series, nil
}

// LoadHotspotStats returns the stored end-of-run hotspot aggregates.
func (s *Store) LoadHotspotStats(runID string) ([]stats.HotspotStats, error) {
	var out []stats.HotspotStats
	err := s.conn.Select(&out,
		`SELECT name, category, current_popularity, avg_popularity, visitors_today,
		        total_visitors, social_shares, current_capacity, capacity_utilization
		 FROM hotspot_stats WHERE run_id = ? ORDER BY name`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("load hotspot stats %s: %w", runID, err)
	}
	return out, nil
}

// ListRuns returns run metadata, most recent first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.conn.Queryx(
		`SELECT id, scenario, seed, steps, num_tourists, num_hotspots, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var (
			rec RunRecord
			ts  string
		)
		err := rows.Scan(&rec.ID, &rec.Scenario, &rec.Seed, &rec.Steps,
			&rec.NumTourists, &rec.NumHotspots, &ts)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, ts)
		out = append(out, rec)
	}
	return out, rows.Err()
}
