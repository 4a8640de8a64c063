package engine

import (
	"github.com/nickkvasov/mesa-poc/internal/stats"
)

// collect builds the metrics row for the step that just completed. Visitor
// and share totals are read from the hotspot counters, so they are cumulative
// across the run.
func (m *Model) collect() stats.StepMetrics {
	row := stats.StepMetrics{Step: m.step}

	for _, h := range m.Hotspots {
		row.AvgPopularity += h.CurrentPopularity
		row.TotalVisitors += h.TotalVisitors
		row.SocialShares += h.SocialShares
		row.VisitsThisStep += h.VisitorsToday
	}
	if len(m.Hotspots) > 0 {
		row.AvgPopularity /= float64(len(m.Hotspots))
	}

	for _, t := range m.Tourists {
		row.AvgSatisfaction += t.Satisfaction
		if !t.VisitedThisStep() {
			row.IdleTourists++
		}
	}
	if len(m.Tourists) > 0 {
		row.AvgSatisfaction /= float64(len(m.Tourists))
	}

	return row
}

// HotspotStatistics snapshots every hotspot in creation order.
func (m *Model) HotspotStatistics() []stats.HotspotStats {
	out := make([]stats.HotspotStats, len(m.Hotspots))
	for i, h := range m.Hotspots {
		out[i] = h.Statistics()
	}
	return out
}

// PersonaStatistics aggregates tourist outcomes per persona type, ordered
// by the configured persona list. Personas with no assigned tourists still
// appear, with zero counts.
func (m *Model) PersonaStatistics() []stats.PersonaStats {
	index := make(map[string]int, len(m.cfg.Personas))
	out := make([]stats.PersonaStats, len(m.cfg.Personas))
	for i := range m.cfg.Personas {
		index[m.cfg.Personas[i].Type] = i
		out[i] = stats.PersonaStats{Persona: m.cfg.Personas[i].Type}
	}

	for _, t := range m.Tourists {
		i := index[t.Persona.Type]
		out[i].Count++
		out[i].AvgSatisfaction += t.Satisfaction
		out[i].AvgVisits += float64(len(t.Visited))
		out[i].AvgRecommendations += float64(t.RecsReceived)
	}
	for i := range out {
		if out[i].Count == 0 {
			continue
		}
		n := float64(out[i].Count)
		out[i].AvgSatisfaction /= n
		out[i].AvgVisits /= n
		out[i].AvgRecommendations /= n
	}
	return out
}

// TouristSnapshots captures the current per-agent state in creation order.
func (m *Model) TouristSnapshots() []stats.TouristSnapshot {
	out := make([]stats.TouristSnapshot, len(m.Tourists))
	for i, t := range m.Tourists {
		out[i] = t.Snapshot()
	}
	return out
}

// SummaryReport assembles the full end-of-run report.
func (m *Model) SummaryReport() stats.SummaryReport {
	return stats.SummaryReport{
		Steps:       m.step,
		NumTourists: len(m.Tourists),
		NumHotspots: len(m.Hotspots),
		Final:       m.series.Final(),
		Hotspots:    m.HotspotStatistics(),
		Personas:    m.PersonaStatistics(),
	}
}
