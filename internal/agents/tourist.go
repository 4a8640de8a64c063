// Tourist behavior: per step, a tourist chooses a destination, visits it,
// possibly shares the experience, and possibly recommends it to peers in
// word-of-mouth range. The cycle is Idle → Choose → Visit → Share/Recommend
// → Idle, all within one step.
package agents

import (
	"math/rand"

	"github.com/nickkvasov/mesa-poc/internal/grid"
	"github.com/nickkvasov/mesa-poc/internal/profile"
	"github.com/nickkvasov/mesa-poc/internal/stats"
)

// BehaviorModifiers are the population-wide behavioral nudges the scenario
// engine derives from external factors and persona-targeted events. Neutral
// values leave the decision formulas unchanged.
type BehaviorModifiers struct {
	SatisfactionDelta float64 // additive satisfaction shift (excitement, penalties)
	AppealSensitivity float64 // multiplies appeal in scoring and satisfaction
	CostSensitivity   float64 // >1 amplifies price-sensitivity penalties
	CrowdingTolerance float64 // >1 softens the crowding term
	SharingBoost      float64 // multiplies sharing probability
}

// NeutralModifiers returns the no-scenario baseline.
func NeutralModifiers() BehaviorModifiers {
	return BehaviorModifiers{
		AppealSensitivity: 1.0,
		CostSensitivity:   1.0,
		CrowdingTolerance: 1.0,
		SharingBoost:      1.0,
	}
}

// Recommendation is a peer suggestion waiting in a tourist's inbox. It is
// consumed (and the inbox cleared) by the next destination choice.
type Recommendation struct {
	HotspotIndex int
	Strength     float64
	FromPersona  string
	Step         int
}

// Tourist is one simulated visitor. The persona reference is read-only and
// fixed at creation; satisfaction and position mutate every step.
type Tourist struct {
	ID       int
	Persona  *profile.PersonaProfile
	Position grid.Point

	Satisfaction    float64
	Visited         []int // hotspot indexes in visit order, append-only
	Recommendations []Recommendation
	LastVisitStep   int
	TotalVisits     int
	SharesMade      int
	RecsReceived    int // lifetime count, survives inbox consumption

	visitedSet map[int]bool

	// Best-rated visit of the current step, recommended to peers afterward.
	stepBestHotspot int
	stepBestRating  float64
	visitedThisStep bool
}

// NewTourist creates a tourist of the given persona. Base satisfaction gets
// a small seeded noise term so a population doesn't start perfectly uniform.
func NewTourist(id int, persona *profile.PersonaProfile, pos grid.Point, rng *rand.Rand) *Tourist {
	return &Tourist{
		ID:            id,
		Persona:       persona,
		Position:      pos,
		Satisfaction:  clamp01(0.5 + (rng.Float64()-0.5)*0.2),
		LastVisitStep: -1,
		visitedSet:    make(map[int]bool),
	}
}

// ChooseHotspot scores every hotspot with remaining capacity and returns the
// arg-max, or ok=false when nothing has room and the tourist stays idle.
// Pending recommendations are consumed by this decision and cleared.
// Ties break toward the lower hotspot index, keeping selection reproducible
// without consuming randomness.
func (t *Tourist) ChooseHotspot(hotspots []*Hotspot, mods BehaviorModifiers, rules profile.BusinessRules) (int, bool) {
	recBoost := make(map[int]float64, len(t.Recommendations))
	for _, rec := range t.Recommendations {
		recBoost[rec.HotspotIndex] += rec.Strength * t.Persona.RecommendationTrust
	}
	t.Recommendations = t.Recommendations[:0]

	best := -1
	bestScore := 0.0
	for _, h := range hotspots {
		if !h.HasCapacity() {
			continue
		}

		score := h.EffectiveAppeal(t.Persona.Type) * mods.AppealSensitivity
		score += h.CurrentPopularity * rules.PopularityWeight
		score += recBoost[h.Index]

		distance := grid.Euclidean(t.Position, h.Position)
		score -= distance * rules.DistanceCost / t.Persona.MovementSpeed * h.AccessibilityModifier()

		if !t.visitedSet[h.Index] {
			score += rules.ExplorationBonus * t.Persona.ExplorationTendency
		}

		if score < 0 {
			score = 0
		}
		if best == -1 || score > bestScore {
			best = h.Index
			bestScore = score
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// VisitHotspot performs the visit: the hotspot records it, the tourist moves
// there, and satisfaction is recomputed from appeal, crowding, and active
// scenario penalties.
func (t *Tourist) VisitHotspot(h *Hotspot, mods BehaviorModifiers, step int) {
	h.RecordVisit()

	t.Position = h.Position
	t.Visited = append(t.Visited, h.Index)
	t.visitedSet[h.Index] = true
	t.TotalVisits++
	t.LastVisitStep = step

	appeal := h.EffectiveAppeal(t.Persona.Type) * mods.AppealSensitivity

	// Crowding term, softened or sharpened by scenario tolerance.
	capacityFactor := (h.CapacityFactor()-1.0)*mods.CrowdingTolerance + 1.0

	// Price-sensitive personas lose satisfaction under cost pressure.
	costPenalty := t.Persona.PriceSensitivity * (mods.CostSensitivity - 1.0)

	t.Satisfaction = clamp01(appeal*capacityFactor + h.SatisfactionModifier() + mods.SatisfactionDelta - costPenalty)

	if !t.visitedThisStep || t.Satisfaction > t.stepBestRating {
		t.stepBestHotspot = h.Index
		t.stepBestRating = t.Satisfaction
	}
	t.visitedThisStep = true
}

// ShareExperience rolls against the persona's sharing probability, modulated
// upward by satisfaction, and on success boosts the hotspot's popularity.
func (t *Tourist) ShareExperience(h *Hotspot, mods BehaviorModifiers, rules profile.BusinessRules, rng *rand.Rand) bool {
	prob := t.Persona.SharingProbability * mods.SharingBoost * (0.5 + 0.5*t.Satisfaction)
	if rng.Float64() >= prob {
		return false
	}
	h.AddSocialBoost(t.Satisfaction * t.Persona.SocialInfluence * rules.SocialMediaBoost)
	t.SharesMade++
	return true
}

// MakeRecommendations pushes this step's best-rated visit to every peer in
// word-of-mouth range, each with probability given by the persona-similarity
// influence value. Nothing is recommended below the satisfaction threshold.
func (t *Tourist) MakeRecommendations(peers []*Tourist, positions []grid.Point, self int, rules profile.BusinessRules, rng *rand.Rand, step int) int {
	if !t.visitedThisStep || t.stepBestRating < rules.RecommendThreshold {
		return 0
	}

	made := 0
	for _, idx := range grid.NeighborsWithin(positions, t.Position, rules.WordOfMouthRange, self) {
		peer := peers[idx]
		influence := t.Persona.InfluenceOnDifferent
		if peer.Persona.Type == t.Persona.Type {
			influence = t.Persona.InfluenceOnSimilar
		}
		if rng.Float64() >= influence {
			continue
		}
		peer.RecsReceived++
		peer.Recommendations = append(peer.Recommendations, Recommendation{
			HotspotIndex: t.stepBestHotspot,
			Strength:     influence * t.stepBestRating,
			FromPersona:  t.Persona.Type,
			Step:         step,
		})
		made++
	}
	return made
}

// BeginStep resets the per-step bookkeeping. Visit history, satisfaction and
// counters persist across steps.
func (t *Tourist) BeginStep() {
	t.visitedThisStep = false
	t.stepBestRating = 0
}

// VisitedThisStep reports whether the tourist managed any visit since the
// last BeginStep.
func (t *Tourist) VisitedThisStep() bool {
	return t.visitedThisStep
}

// Snapshot returns a per-agent state capture.
func (t *Tourist) Snapshot() stats.TouristSnapshot {
	return stats.TouristSnapshot{
		ID:            t.ID,
		Persona:       t.Persona.Type,
		Satisfaction:  t.Satisfaction,
		VisitedCount:  len(t.Visited),
		LastVisitStep: t.LastVisitStep,
	}
}
