// Package agents provides the two simulated actors: hotspots (destinations
// with dynamic popularity and capacity) and tourists (persona-driven visitors).
package agents

import (
	"math"

	"github.com/nickkvasov/mesa-poc/internal/grid"
	"github.com/nickkvasov/mesa-poc/internal/profile"
	"github.com/nickkvasov/mesa-poc/internal/stats"
)

// viralAmplification scales the self-reinforcing growth applied above the
// viral threshold.
const viralAmplification = 0.1

// minAccessibility floors the accessibility modifier so a completed
// construction bonus can never make distance costs vanish entirely.
const minAccessibility = 0.1

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// capacityModifier is a time-bounded capacity multiplier. Modifiers are keyed
// by id: re-applying the same id replaces the previous value (last applied
// wins), distinct ids stack multiplicatively.
type capacityModifier struct {
	id         string
	multiplier float64
	expiresAt  int // step at which the modifier is removed; 0 = permanent
}

// appealModifier is a time-bounded per-persona appeal delta, keyed by id with
// the same replace-on-reapply semantics as capacityModifier. An empty persona
// list applies the delta to every persona.
type appealModifier struct {
	id        string
	personas  []string
	delta     float64
	expiresAt int
}

// satisfactionModifier is a standing satisfaction delta applied to every
// visit (e.g. noise pollution), keyed by id.
type satisfactionModifier struct {
	id        string
	delta     float64
	expiresAt int
}

// accessibilityOverride is a time-bounded replacement of the accessibility
// modifier. On expiry the standing value is restored.
type accessibilityOverride struct {
	value     float64
	expiresAt int
}

// Hotspot is a destination with evolving popularity and load. All mutable
// runtime state lives here; the profile stays immutable.
type Hotspot struct {
	Index    int
	Profile  profile.HotspotProfile
	Position grid.Point

	CurrentPopularity float64
	VisitorsToday     int
	TotalVisitors     int
	SocialShares      int

	rules profile.BusinessRules

	// Scenario state. Modifier slices stay ordered by application so float
	// accumulation is deterministic across runs.
	capacityMods      []capacityModifier
	appealMods        []appealModifier
	satisfactionMods  []satisfactionModifier
	capacityLimit     *int    // standing regulation override
	accessibilityMod  float64 // 1.0 = normal, >1 = harder access
	accessibilityTemp *accessibilityOverride
	taxPenalty        float64 // standing appeal penalty from luxury taxation

	popularitySum     float64
	popularitySamples int
}

// NewHotspot creates a hotspot agent from its profile. The position is
// expected to be clamped to the grid by the caller.
func NewHotspot(index int, prof profile.HotspotProfile, pos grid.Point, rules profile.BusinessRules) *Hotspot {
	h := &Hotspot{
		Index:             index,
		Profile:           prof,
		Position:          pos,
		CurrentPopularity: prof.InitialPopularity,
		rules:             rules,
		accessibilityMod:  1.0,
	}
	h.popularitySum = h.CurrentPopularity
	h.popularitySamples = 1
	return h
}

// Step advances the hotspot by one simulation step. It runs before any
// tourist acts: the daily visitor counter resets here and nowhere else.
// Popularity relaxes toward its baseline, yesterday's overcrowding is
// penalized, viral destinations self-reinforce, and expired modifiers are
// removed.
func (h *Hotspot) Step(step int) {
	yesterday := h.VisitorsToday
	h.VisitorsToday = 0

	h.CurrentPopularity += (h.Profile.InitialPopularity - h.CurrentPopularity) * h.rules.DecayRate

	if cap := h.CurrentCapacity(); cap > 0 && yesterday > cap {
		penalty := float64(yesterday-cap) / float64(cap) * h.rules.CapacityPenalty
		h.CurrentPopularity -= penalty
	}

	if h.CurrentPopularity > h.rules.ViralThreshold {
		h.CurrentPopularity += (h.CurrentPopularity - h.rules.ViralThreshold) * viralAmplification
	}
	h.CurrentPopularity = clamp01(h.CurrentPopularity)

	h.expireModifiers(step)

	h.popularitySum += h.CurrentPopularity
	h.popularitySamples++
}

// RecordVisit registers one tourist visit: counters increment and popularity
// gets the configured visit boost.
func (h *Hotspot) RecordVisit() {
	h.VisitorsToday++
	h.TotalVisitors++
	h.CurrentPopularity = clamp01(h.CurrentPopularity + h.rules.VisitBoost)
}

// AddSocialBoost applies a transient popularity boost from a social share.
// The boost decays naturally through Step; nothing reverts it explicitly.
func (h *Hotspot) AddSocialBoost(boost float64) {
	h.CurrentPopularity = clamp01(h.CurrentPopularity + boost)
	h.SocialShares++
}

// CurrentCapacity derives the effective capacity from the base value and
// active multipliers. A standing capacity-limit regulation overrides both.
func (h *Hotspot) CurrentCapacity() int {
	if h.capacityLimit != nil {
		return *h.capacityLimit
	}
	c := float64(h.Profile.BaseCapacity)
	for _, m := range h.capacityMods {
		c *= m.multiplier
	}
	return int(math.Round(c))
}

// HasCapacity reports whether another visitor fits today. Enforcement is the
// chooser's job; the hotspot only reports.
func (h *Hotspot) HasCapacity() bool {
	return h.VisitorsToday < h.CurrentCapacity()
}

// CapacityFactor is the crowding term of the satisfaction formula:
// 1.0 when comfortably loaded, shrinking toward 0 as visitors exceed capacity.
func (h *Hotspot) CapacityFactor() float64 {
	if h.VisitorsToday == 0 {
		return 1.0
	}
	cap := h.CurrentCapacity()
	if cap < 1 {
		cap = 1
	}
	return math.Min(1.0, float64(cap)/float64(h.VisitorsToday))
}

// EffectiveAppeal returns the appeal score for a persona with all active
// modifiers and standing tax penalties applied, clamped to [0, 1].
func (h *Hotspot) EffectiveAppeal(personaType string) float64 {
	score := h.Profile.Appeal[personaType].Score
	for _, m := range h.appealMods {
		if m.applies(personaType) {
			score += m.delta
		}
	}
	score -= h.taxPenalty
	return clamp01(score)
}

func (m *appealModifier) applies(personaType string) bool {
	if len(m.personas) == 0 {
		return true
	}
	for _, p := range m.personas {
		if p == personaType {
			return true
		}
	}
	return false
}

// SatisfactionModifier returns the summed standing satisfaction deltas
// applied to every visit of this hotspot.
func (h *Hotspot) SatisfactionModifier() float64 {
	total := 0.0
	for _, m := range h.satisfactionMods {
		total += m.delta
	}
	return total
}

// AccessibilityModifier scales the distance penalty in destination scoring.
// An active time-bounded override shadows the standing value.
func (h *Hotspot) AccessibilityModifier() float64 {
	if h.accessibilityTemp != nil {
		return h.accessibilityTemp.value
	}
	return h.accessibilityMod
}

// SetCapacityModifier installs or replaces the capacity multiplier with the
// given id. expiresAt 0 means the modifier holds until explicitly cleared.
func (h *Hotspot) SetCapacityModifier(id string, multiplier float64, expiresAt int) {
	for i := range h.capacityMods {
		if h.capacityMods[i].id == id {
			h.capacityMods[i] = capacityModifier{id: id, multiplier: multiplier, expiresAt: expiresAt}
			return
		}
	}
	h.capacityMods = append(h.capacityMods, capacityModifier{id: id, multiplier: multiplier, expiresAt: expiresAt})
}

// ClearCapacityModifiers removes all capacity multipliers, restoring base
// capacity exactly.
func (h *Hotspot) ClearCapacityModifiers() {
	h.capacityMods = h.capacityMods[:0]
}

// SetAppealModifier installs or replaces the appeal delta with the given id.
func (h *Hotspot) SetAppealModifier(id string, personas []string, delta float64, expiresAt int) {
	for i := range h.appealMods {
		if h.appealMods[i].id == id {
			h.appealMods[i] = appealModifier{id: id, personas: personas, delta: delta, expiresAt: expiresAt}
			return
		}
	}
	h.appealMods = append(h.appealMods, appealModifier{id: id, personas: personas, delta: delta, expiresAt: expiresAt})
}

// ClearAppealModifiers removes all appeal deltas, restoring baseline appeal.
func (h *Hotspot) ClearAppealModifiers() {
	h.appealMods = h.appealMods[:0]
}

// SetSatisfactionModifier installs or replaces a standing satisfaction delta.
func (h *Hotspot) SetSatisfactionModifier(id string, delta float64, expiresAt int) {
	for i := range h.satisfactionMods {
		if h.satisfactionMods[i].id == id {
			h.satisfactionMods[i] = satisfactionModifier{id: id, delta: delta, expiresAt: expiresAt}
			return
		}
	}
	h.satisfactionMods = append(h.satisfactionMods, satisfactionModifier{id: id, delta: delta, expiresAt: expiresAt})
}

// SetAccessibility replaces the standing accessibility modifier, floored at
// the minimum so distance costs never vanish. Any time-bounded override is
// discarded: the latest permanent change wins.
func (h *Hotspot) SetAccessibility(mod float64) {
	if mod < minAccessibility {
		mod = minAccessibility
	}
	h.accessibilityMod = mod
	h.accessibilityTemp = nil
}

// SetAccessibilityOverride installs a time-bounded accessibility value. The
// standing modifier is restored when the override expires.
func (h *Hotspot) SetAccessibilityOverride(mod float64, expiresAt int) {
	if mod < minAccessibility {
		mod = minAccessibility
	}
	h.accessibilityTemp = &accessibilityOverride{value: mod, expiresAt: expiresAt}
}

// SetCapacityLimit installs a standing absolute capacity override.
func (h *Hotspot) SetCapacityLimit(capacity int) {
	h.capacityLimit = &capacity
}

// SetTaxPenalty installs the standing appeal penalty from taxation
// regulations affecting this hotspot's category.
func (h *Hotspot) SetTaxPenalty(penalty float64) {
	h.taxPenalty = penalty
}

func (h *Hotspot) expireModifiers(step int) {
	n := 0
	for _, m := range h.capacityMods {
		if m.expiresAt == 0 || m.expiresAt > step {
			h.capacityMods[n] = m
			n++
		}
	}
	h.capacityMods = h.capacityMods[:n]

	n = 0
	for _, m := range h.appealMods {
		if m.expiresAt == 0 || m.expiresAt > step {
			h.appealMods[n] = m
			n++
		}
	}
	h.appealMods = h.appealMods[:n]

	n = 0
	for _, m := range h.satisfactionMods {
		if m.expiresAt == 0 || m.expiresAt > step {
			h.satisfactionMods[n] = m
			n++
		}
	}
	h.satisfactionMods = h.satisfactionMods[:n]

	if o := h.accessibilityTemp; o != nil && o.expiresAt != 0 && o.expiresAt <= step {
		h.accessibilityTemp = nil
	}
}

// Statistics returns a read-only snapshot of the hotspot's current state.
func (h *Hotspot) Statistics() stats.HotspotStats {
	cap := h.CurrentCapacity()
	utilization := 0.0
	if cap > 0 {
		utilization = float64(h.VisitorsToday) / float64(cap)
	}
	avg := 0.0
	if h.popularitySamples > 0 {
		avg = h.popularitySum / float64(h.popularitySamples)
	}
	return stats.HotspotStats{
		Name:                h.Profile.Name,
		Category:            h.Profile.Category,
		CurrentPopularity:   h.CurrentPopularity,
		AvgPopularity:       avg,
		VisitorsToday:       h.VisitorsToday,
		TotalVisitors:       h.TotalVisitors,
		SocialShares:        h.SocialShares,
		CurrentCapacity:     cap,
		CapacityUtilization: utilization,
	}
}
