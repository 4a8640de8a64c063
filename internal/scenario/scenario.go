// Package scenario provides what-if scenario definitions (timed events,
// standing regulations, external factors) and the engine that applies them to
// a running simulation. Event types form a closed enumeration validated at
// construction — an unknown type is a configuration error, never a runtime
// surprise.
package scenario

import (
	"fmt"
	"sort"
)

// EventType enumerates the supported scenario event kinds.
type EventType string

const (
	EventCapacityBoost           EventType = "capacity_boost"
	EventCapacityReset           EventType = "capacity_reset"
	EventAppealBoost             EventType = "appeal_boost"
	EventAppealReset             EventType = "appeal_reset"
	EventAccessibilityReduction  EventType = "accessibility_reduction"
	EventConstructionComplete    EventType = "construction_complete"
	EventNoisePollution          EventType = "noise_pollution"
	EventAppealReduction         EventType = "appeal_reduction"
	EventSatisfactionPenalty     EventType = "satisfaction_penalty"
)

// EventParams carries the per-variant payload. Only the fields the event
// type uses are consulted; Validate enforces the required ones.
type EventParams struct {
	CapacityMultiplier   float64  `json:"capacity_multiplier,omitempty"`
	AppealBoost          float64  `json:"appeal_boost,omitempty"`
	TargetPersonas       []string `json:"target_personas,omitempty"`
	AccessibilityPenalty float64  `json:"accessibility_penalty,omitempty"`
	AccessibilityBonus   float64  `json:"accessibility_bonus,omitempty"`
	SatisfactionPenalty  float64  `json:"satisfaction_penalty,omitempty"`
	Reduction            float64  `json:"reduction,omitempty"`
	Penalty              float64  `json:"penalty,omitempty"`
}

// Event is a timed scenario effect. It applies exactly once at Step; a
// positive Duration schedules an automatic revert Duration steps later.
type Event struct {
	Step        int         `json:"step"`
	Type        EventType   `json:"type"`
	Target      string      `json:"target"` // hotspot name or persona type
	Duration    int         `json:"duration,omitempty"`
	Params      EventParams `json:"parameters"`
	Description string      `json:"description,omitempty"`
}

// Validate checks the event's type and the payload fields that type requires.
func (e *Event) Validate() error {
	if e.Step < 0 {
		return fmt.Errorf("event step must be non-negative, got %d", e.Step)
	}
	if e.Duration < 0 {
		return fmt.Errorf("event duration must be non-negative, got %d", e.Duration)
	}
	if e.Target == "" {
		return fmt.Errorf("%s event at step %d: target must not be empty", e.Type, e.Step)
	}
	switch e.Type {
	case EventCapacityBoost:
		if e.Params.CapacityMultiplier <= 0 {
			return fmt.Errorf("capacity_boost at step %d: capacity_multiplier must be positive", e.Step)
		}
	case EventAppealBoost:
		if e.Params.AppealBoost == 0 {
			return fmt.Errorf("appeal_boost at step %d: appeal_boost must be non-zero", e.Step)
		}
	case EventAccessibilityReduction:
		if e.Params.AccessibilityPenalty < 0 {
			return fmt.Errorf("accessibility_reduction at step %d: accessibility_penalty must be non-negative", e.Step)
		}
	case EventConstructionComplete:
		if e.Params.AccessibilityBonus < 0 || e.Params.AccessibilityBonus > 1 {
			return fmt.Errorf("construction_complete at step %d: accessibility_bonus must be in [0,1]", e.Step)
		}
	case EventNoisePollution:
		if e.Params.SatisfactionPenalty < 0 {
			return fmt.Errorf("noise_pollution at step %d: satisfaction_penalty must be non-negative", e.Step)
		}
	case EventAppealReduction:
		if e.Params.Reduction <= 0 {
			return fmt.Errorf("appeal_reduction at step %d: reduction must be positive", e.Step)
		}
	case EventSatisfactionPenalty:
		if e.Params.Penalty <= 0 {
			return fmt.Errorf("satisfaction_penalty at step %d: penalty must be positive", e.Step)
		}
	case EventCapacityReset, EventAppealReset:
		// No payload.
	default:
		return fmt.Errorf("unknown event type %q at step %d", e.Type, e.Step)
	}
	return nil
}

// LuxuryTax is a standing taxation regulation converting a tax rate into an
// appeal penalty on the affected hotspot categories.
type LuxuryTax struct {
	TaxRate            float64  `json:"tax_rate"`
	AffectedCategories []string `json:"affected_categories"`
}

// CapacityLimit is a standing absolute capacity override on one hotspot.
type CapacityLimit struct {
	Target      string `json:"target"`
	NewCapacity int    `json:"new_capacity"`
}

// RestrictedAccess is a standing accessibility penalty on a hotspot set.
type RestrictedAccess struct {
	AffectedHotspots     []string `json:"affected_hotspots"`
	AccessibilityPenalty float64  `json:"accessibility_penalty"`
}

// Regulations are standing modifiers active for the scenario's whole
// duration: applied once at activation, queried every step, never re-applied.
type Regulations struct {
	LuxuryTax        *LuxuryTax        `json:"luxury_tax,omitempty"`
	CapacityLimit    *CapacityLimit    `json:"capacity_limit,omitempty"`
	RestrictedAccess *RestrictedAccess `json:"restricted_access,omitempty"`
}

// Names lists the active regulation kinds in stable order.
func (r Regulations) Names() []string {
	var names []string
	if r.LuxuryTax != nil {
		names = append(names, "luxury_tax")
	}
	if r.CapacityLimit != nil {
		names = append(names, "capacity_limit")
	}
	if r.RestrictedAccess != nil {
		names = append(names, "restricted_access")
	}
	return names
}

// Scenario bundles the timed events, standing regulations, and external
// factors of one policy or event intervention.
type Scenario struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Category           string             `json:"category"`
	DurationSteps      int                `json:"duration_steps"`
	TargetDemographics []string           `json:"target_demographics,omitempty"`
	Events             []Event            `json:"events"`
	Regulations        Regulations        `json:"regulations"`
	ExternalFactors    map[string]float64 `json:"external_factors"`
}

// Validate checks the scenario definition. Targets are not resolved here:
// an event referencing an unknown hotspot or persona is a logged runtime
// no-op, not a construction failure.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name must not be empty")
	}
	for i := range s.Events {
		if err := s.Events[i].Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	if tax := s.Regulations.LuxuryTax; tax != nil {
		if tax.TaxRate < 0 || tax.TaxRate > 1 {
			return fmt.Errorf("scenario %q: luxury_tax rate must be in [0,1], got %v", s.Name, tax.TaxRate)
		}
	}
	if lim := s.Regulations.CapacityLimit; lim != nil {
		if lim.Target == "" {
			return fmt.Errorf("scenario %q: capacity_limit target must not be empty", s.Name)
		}
		if lim.NewCapacity < 0 {
			return fmt.Errorf("scenario %q: capacity_limit new_capacity must be non-negative", s.Name)
		}
	}
	return nil
}

// EventsForStep returns the events scheduled at the given step, in timeline
// order.
func (s *Scenario) EventsForStep(step int) []Event {
	var out []Event
	for _, e := range s.Events {
		if e.Step == step {
			out = append(out, e)
		}
	}
	return out
}

// FactorNames returns the external factor names in sorted order.
func (s *Scenario) FactorNames() []string {
	names := make([]string, 0, len(s.ExternalFactors))
	for name := range s.ExternalFactors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
