// Impact analysis: pure computations over completed time series. No state is
// touched here; the analysis layer calls these on whatever runs it has.
package scenario

import (
	"github.com/nickkvasov/mesa-poc/internal/stats"
)

// ImpactSummary reports how far a scenario has progressed through a run.
func (e *Engine) ImpactSummary(currentStep int) stats.ScenarioImpact {
	if e.scenario == nil {
		return stats.ScenarioImpact{ScenarioName: "baseline", CurrentStep: currentStep}
	}
	occurred := 0
	for _, ev := range e.scenario.Events {
		if ev.Step <= currentStep {
			occurred++
		}
	}
	return stats.ScenarioImpact{
		ScenarioName:      e.scenario.Name,
		Description:       e.scenario.Description,
		EventsOccurred:    occurred,
		TotalEvents:       len(e.scenario.Events),
		ActiveRegulations: e.scenario.Regulations.Names(),
		ExternalFactors:   e.scenario.FactorNames(),
		CurrentStep:       currentStep,
	}
}

func delta(metric string, baseline, scenario float64) stats.MetricDelta {
	d := stats.MetricDelta{
		Metric:         metric,
		Baseline:       baseline,
		Scenario:       scenario,
		AbsoluteChange: scenario - baseline,
	}
	switch {
	case baseline != 0:
		d.PercentChange = d.AbsoluteChange / baseline * 100
	case scenario != 0:
		d.PercentChange = 100
	}
	return d
}

// CompareWithBaseline pairs a scenario run's time series against a baseline
// run's and reports final-step deltas per aggregate metric.
func CompareWithBaseline(scenarioName string, baseline, scenario stats.TimeSeries) stats.ImpactComparison {
	b := baseline.Final()
	s := scenario.Final()
	return stats.ImpactComparison{
		ScenarioName: scenarioName,
		Deltas: []stats.MetricDelta{
			delta("average_popularity", b.AvgPopularity, s.AvgPopularity),
			delta("total_visitors", float64(b.TotalVisitors), float64(s.TotalVisitors)),
			delta("social_shares", float64(b.SocialShares), float64(s.SocialShares)),
			delta("average_satisfaction", b.AvgSatisfaction, s.AvgSatisfaction),
		},
	}
}
