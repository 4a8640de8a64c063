// Package stats defines the record types the simulation emits for storage,
// visualization, and analysis. Records are stable, ordered, and serializable
// as-is — downstream layers consume them without transformation.
package stats

// StepMetrics is one row of the step-indexed aggregate time series.
// TotalVisitors and SocialShares are cumulative across the run up to and
// including this step; VisitsThisStep counts only the current step.
type StepMetrics struct {
	Step            int     `json:"step" db:"step"`
	AvgPopularity   float64 `json:"avg_popularity" db:"avg_popularity"`
	TotalVisitors   int     `json:"total_visitors" db:"total_visitors"`
	SocialShares    int     `json:"social_shares" db:"social_shares"`
	AvgSatisfaction float64 `json:"avg_satisfaction" db:"avg_satisfaction"`
	VisitsThisStep  int     `json:"visits_this_step" db:"visits_this_step"`
	IdleTourists    int     `json:"idle_tourists" db:"idle_tourists"`
}

// TimeSeries is the full per-step metric history of one run, ordered by step.
type TimeSeries []StepMetrics

// Final returns the last step's metrics, or a zero record for an empty series.
func (ts TimeSeries) Final() StepMetrics {
	if len(ts) == 0 {
		return StepMetrics{}
	}
	return ts[len(ts)-1]
}

// HotspotStats is a point-in-time snapshot of one hotspot.
type HotspotStats struct {
	Name                string  `json:"name" db:"name"`
	Category            string  `json:"category" db:"category"`
	CurrentPopularity   float64 `json:"current_popularity" db:"current_popularity"`
	AvgPopularity       float64 `json:"avg_popularity" db:"avg_popularity"`
	VisitorsToday       int     `json:"visitors_today" db:"visitors_today"`
	TotalVisitors       int     `json:"total_visitors" db:"total_visitors"`
	SocialShares        int     `json:"social_shares" db:"social_shares"`
	CurrentCapacity     int     `json:"current_capacity" db:"current_capacity"`
	CapacityUtilization float64 `json:"capacity_utilization" db:"capacity_utilization"`
}

// PersonaStats aggregates tourist outcomes by persona type.
type PersonaStats struct {
	Persona            string  `json:"persona" db:"persona"`
	Count              int     `json:"count" db:"count"`
	AvgSatisfaction    float64 `json:"avg_satisfaction" db:"avg_satisfaction"`
	AvgVisits          float64 `json:"avg_visits" db:"avg_visits"`
	AvgRecommendations float64 `json:"avg_recommendations" db:"avg_recommendations"`
}

// TouristSnapshot is a per-agent state capture for downstream aggregation.
type TouristSnapshot struct {
	ID            int     `json:"id"`
	Persona       string  `json:"persona"`
	Satisfaction  float64 `json:"satisfaction"`
	VisitedCount  int     `json:"visited_count"`
	LastVisitStep int     `json:"last_visit_step"`
}

// SummaryReport bundles everything a finished run exposes.
type SummaryReport struct {
	Steps       int            `json:"steps"`
	NumTourists int            `json:"num_tourists"`
	NumHotspots int            `json:"num_hotspots"`
	Final       StepMetrics    `json:"final_metrics"`
	Hotspots    []HotspotStats `json:"hotspot_statistics"`
	Personas    []PersonaStats `json:"persona_statistics"`
}

// MetricDelta is a single baseline-vs-scenario metric comparison.
type MetricDelta struct {
	Metric         string  `json:"metric"`
	Baseline       float64 `json:"baseline"`
	Scenario       float64 `json:"scenario"`
	AbsoluteChange float64 `json:"absolute_change"`
	PercentChange  float64 `json:"percent_change"`
}

// ImpactComparison pairs a scenario run against its baseline.
type ImpactComparison struct {
	ScenarioName string        `json:"scenario_name"`
	Deltas       []MetricDelta `json:"metrics_comparison"`
}

// ScenarioImpact summarizes how far a scenario has progressed through a run.
type ScenarioImpact struct {
	ScenarioName      string   `json:"scenario_name"`
	Description       string   `json:"description"`
	EventsOccurred    int      `json:"events_occurred"`
	TotalEvents       int      `json:"total_events"`
	ActiveRegulations []string `json:"active_regulations"`
	ExternalFactors   []string `json:"external_factors"`
	CurrentStep       int      `json:"current_step"`
}
