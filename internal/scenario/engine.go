// Scenario application: the engine holds the event timeline and the standing
// regulations, applies each event exactly once at its step, and lets
// duration-bounded modifiers expire on the hotspots that carry them.
package scenario

import (
	"fmt"
	"log/slog"

	"github.com/nickkvasov/mesa-poc/internal/agents"
	"github.com/nickkvasov/mesa-poc/internal/profile"
)

// taxAppealFactor converts a tax rate into an appeal penalty.
const taxAppealFactor = 0.5

// defaultAccessPenalty is used for restricted_access regulations that do not
// specify their own penalty.
const defaultAccessPenalty = 0.3

// personaEffect is an active persona-targeted behavioral modifier.
type personaEffect struct {
	persona           string
	satisfactionDelta float64
	appealDelta       float64
	expiresAt         int // 0 = active for the remainder of the run
}

// Engine applies one scenario to a fixed population of hotspots and persona
// types. A nil scenario is a valid baseline: the engine advances through the
// same code path and applies nothing.
type Engine struct {
	scenario *Scenario

	hotspots map[string]*agents.Hotspot
	personas map[string]bool

	base           agents.BehaviorModifiers
	personaEffects []personaEffect
}

// NewEngine validates the scenario, builds the population-wide behavior
// modifiers from its external factors, and applies the standing regulations
// once. Hotspots and personas define the resolvable targets.
func NewEngine(sc *Scenario, hotspots []*agents.Hotspot, personas []profile.PersonaProfile) (*Engine, error) {
	e := &Engine{
		scenario: sc,
		hotspots: make(map[string]*agents.Hotspot, len(hotspots)),
		personas: make(map[string]bool, len(personas)),
		base:     agents.NeutralModifiers(),
	}
	for _, h := range hotspots {
		e.hotspots[h.Profile.Name] = h
	}
	for i := range personas {
		e.personas[personas[i].Type] = true
	}

	if sc == nil {
		return e, nil
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario construction: %w", err)
	}

	e.applyExternalFactors(sc)
	e.applyRegulations(sc)
	return e, nil
}

// applyExternalFactors folds the scenario's scalar nudges into the baseline
// behavior modifiers. Unrecognized factors are ignored: scenario authors may
// annotate factors the decision formulas do not consume.
func (e *Engine) applyExternalFactors(sc *Scenario) {
	for _, name := range sc.FactorNames() {
		value := sc.ExternalFactors[name]
		switch name {
		case "event_excitement", "inconvenience_tolerance":
			e.base.SatisfactionDelta += value
		case "cost_sensitivity":
			e.base.CostSensitivity = 1.0 + value
		case "noise_tolerance", "crowding_tolerance":
			e.base.CrowdingTolerance = 1.0 + value
		case "social_media_buzz":
			e.base.SharingBoost = 1.0 + value
		default:
			slog.Debug("external factor has no behavioral mapping", "factor", name, "value", value)
		}
	}
}

// applyRegulations installs the standing modifiers. They are queried by the
// agents every step; nothing re-applies them.
func (e *Engine) applyRegulations(sc *Scenario) {
	if tax := sc.Regulations.LuxuryTax; tax != nil {
		penalty := tax.TaxRate * taxAppealFactor
		for _, h := range e.hotspots {
			for _, cat := range tax.AffectedCategories {
				if h.Profile.Category == cat {
					h.SetTaxPenalty(penalty)
				}
			}
		}
	}
	if lim := sc.Regulations.CapacityLimit; lim != nil {
		if h, ok := e.hotspots[lim.Target]; ok {
			h.SetCapacityLimit(lim.NewCapacity)
		} else {
			slog.Warn("capacity_limit regulation target not found", "target", lim.Target)
		}
	}
	if ra := sc.Regulations.RestrictedAccess; ra != nil {
		penalty := ra.AccessibilityPenalty
		if penalty == 0 {
			penalty = defaultAccessPenalty
		}
		for _, name := range ra.AffectedHotspots {
			if h, ok := e.hotspots[name]; ok {
				h.SetAccessibility(1.0 + penalty)
			} else {
				slog.Warn("restricted_access regulation target not found", "target", name)
			}
		}
	}
}

// Advance applies all events scheduled for the given step and expires
// persona-targeted effects whose window has closed. Hotspot-side modifiers
// expire in the hotspots' own Step, which runs right after this.
func (e *Engine) Advance(step int) {
	n := 0
	for _, eff := range e.personaEffects {
		if eff.expiresAt == 0 || eff.expiresAt > step {
			e.personaEffects[n] = eff
			n++
		}
	}
	e.personaEffects = e.personaEffects[:n]

	if e.scenario == nil {
		return
	}
	for _, ev := range e.scenario.EventsForStep(step) {
		e.applyEvent(ev, step)
	}
}

// modifierID keys an event's effect so re-application replaces rather than
// stacks (last applied wins per id).
func modifierID(ev Event) string {
	return fmt.Sprintf("%s@%d", ev.Type, ev.Step)
}

func (e *Engine) applyEvent(ev Event, step int) {
	expiresAt := 0
	if ev.Duration > 0 {
		expiresAt = ev.Step + ev.Duration
	}

	// Persona-targeted events first: the target namespace is disjoint from
	// hotspot names.
	if e.personas[ev.Target] {
		switch ev.Type {
		case EventSatisfactionPenalty:
			e.personaEffects = append(e.personaEffects, personaEffect{
				persona:           ev.Target,
				satisfactionDelta: -ev.Params.Penalty,
				expiresAt:         expiresAt,
			})
		case EventAppealBoost:
			e.personaEffects = append(e.personaEffects, personaEffect{
				persona:     ev.Target,
				appealDelta: ev.Params.AppealBoost,
				expiresAt:   expiresAt,
			})
		default:
			slog.Warn("event type not applicable to persona target",
				"type", ev.Type, "target", ev.Target, "step", step)
		}
		return
	}

	h, ok := e.hotspots[ev.Target]
	if !ok {
		slog.Warn("scenario event target not found", "type", ev.Type, "target", ev.Target, "step", step)
		return
	}

	id := modifierID(ev)
	switch ev.Type {
	case EventCapacityBoost:
		h.SetCapacityModifier(id, ev.Params.CapacityMultiplier, expiresAt)
	case EventCapacityReset:
		h.ClearCapacityModifiers()
	case EventAppealBoost:
		h.SetAppealModifier(id, ev.Params.TargetPersonas, ev.Params.AppealBoost, expiresAt)
	case EventAppealReset:
		h.ClearAppealModifiers()
	case EventAccessibilityReduction:
		setAccessibility(h, 1.0+ev.Params.AccessibilityPenalty, expiresAt)
	case EventConstructionComplete:
		setAccessibility(h, 1.0-ev.Params.AccessibilityBonus, expiresAt)
	case EventNoisePollution:
		h.SetSatisfactionModifier(id, -ev.Params.SatisfactionPenalty, expiresAt)
	case EventAppealReduction:
		h.SetAppealModifier(id, nil, -ev.Params.Reduction, expiresAt)
	}
	slog.Debug("scenario event applied", "type", ev.Type, "target", ev.Target, "step", step)
}

// setAccessibility routes an accessibility change to the hotspot: permanent
// events replace the standing value, duration-declared ones install a
// time-bounded override that reverts on expiry.
func setAccessibility(h *agents.Hotspot, mod float64, expiresAt int) {
	if expiresAt > 0 {
		h.SetAccessibilityOverride(mod, expiresAt)
		return
	}
	h.SetAccessibility(mod)
}

// Modifiers returns the behavior modifiers in force for a persona type at
// this point in the run: the external-factor baseline plus any active
// persona-targeted effects.
func (e *Engine) Modifiers(personaType string) agents.BehaviorModifiers {
	mods := e.base
	for _, eff := range e.personaEffects {
		if eff.persona != personaType {
			continue
		}
		mods.SatisfactionDelta += eff.satisfactionDelta
		mods.AppealSensitivity += eff.appealDelta
	}
	return mods
}

// Scenario returns the active scenario, or nil for a baseline run.
func (e *Engine) Scenario() *Scenario {
	return e.scenario
}
