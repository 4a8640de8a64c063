// Package profile provides the immutable configuration records the simulation
// is built from: tourist personas, hotspot definitions, and the business rules
// governing popularity and recommendation dynamics. Records arrive already
// parsed; validation here is the fail-fast construction check, not a schema
// loader.
package profile

import (
	"fmt"
)

// PersonaProfile describes a tourist archetype. Loaded once, never mutated.
type PersonaProfile struct {
	Type        string `json:"type"`
	Description string `json:"description"`

	// Demographics
	BudgetLevel string `json:"budget_level"` // "low", "medium", "high"
	AgeGroup    string `json:"age_group"`
	GroupSize   int    `json:"group_size"`

	// Behavioral traits, each bounded to [0, 1].
	SocialInfluence     float64 `json:"social_influence"`
	RecommendationTrust float64 `json:"recommendation_trust"`
	ExplorationTendency float64 `json:"exploration_tendency"`
	PriceSensitivity    float64 `json:"price_sensitivity"`

	// Travel patterns.
	DailyVisits          int     `json:"daily_visits"`
	MovementSpeed        float64 `json:"movement_speed"`
	SharingProbability   float64 `json:"sharing_probability"`
	InfluenceOnSimilar   float64 `json:"influence_on_similar_personas"`
	InfluenceOnDifferent float64 `json:"influence_on_different_personas"`
}

// AppealScore is a persona-specific attractiveness rating with the free-text
// reasons the rating was assigned.
type AppealScore struct {
	Score   float64  `json:"appeal_score"`
	Reasons []string `json:"reasons,omitempty"`
}

// HotspotProfile describes a destination's static attributes. The dynamic
// runtime state lives on agents.Hotspot.
type HotspotProfile struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Neighborhood string `json:"neighborhood"`

	X int `json:"x"`
	Y int `json:"y"`

	InitialPopularity  float64 `json:"initial_popularity"`
	BaseCapacity       int     `json:"base_capacity"`
	AccessibilityLevel string  `json:"accessibility_level"`

	// Appeal maps persona type → score. Every known persona must have an
	// entry; missing entries are a construction error, never a silent zero.
	Appeal map[string]AppealScore `json:"appeal_to_personas"`
}

// BusinessRules holds the tunable constants of the popularity and
// recommendation mechanics.
type BusinessRules struct {
	// SocialMediaBoost is the popularity increase per satisfied share.
	SocialMediaBoost float64 `json:"social_media_boost"`
	// VisitBoost is the popularity increment per recorded visit.
	VisitBoost float64 `json:"visit_boost"`
	// WordOfMouthRange is the grid radius for direct recommendations.
	WordOfMouthRange int `json:"word_of_mouth_range"`
	// ViralThreshold is the popularity above which growth self-reinforces.
	ViralThreshold float64 `json:"viral_threshold"`
	// DecayRate is the per-step relaxation rate toward baseline popularity.
	DecayRate float64 `json:"decay_rate"`
	// CapacityPenalty scales the popularity loss when capacity is exceeded.
	CapacityPenalty float64 `json:"capacity_penalty"`

	// Destination-choice scoring weights.
	PopularityWeight float64 `json:"popularity_weight"`
	DistanceCost     float64 `json:"distance_cost"`
	ExplorationBonus float64 `json:"exploration_bonus"`

	// RecommendThreshold is the minimum satisfaction before a tourist
	// recommends a hotspot to peers.
	RecommendThreshold float64 `json:"recommend_threshold"`
}

func boundsCheck(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be in [0,1], got %v", name, v)
	}
	return nil
}

// Validate checks a single persona record.
func (p *PersonaProfile) Validate() error {
	if p.Type == "" {
		return fmt.Errorf("persona type must not be empty")
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"social_influence", p.SocialInfluence},
		{"recommendation_trust", p.RecommendationTrust},
		{"exploration_tendency", p.ExplorationTendency},
		{"price_sensitivity", p.PriceSensitivity},
		{"sharing_probability", p.SharingProbability},
		{"influence_on_similar_personas", p.InfluenceOnSimilar},
		{"influence_on_different_personas", p.InfluenceOnDifferent},
	} {
		if err := boundsCheck(c.name, c.v); err != nil {
			return fmt.Errorf("persona %q: %w", p.Type, err)
		}
	}
	if p.DailyVisits < 1 {
		return fmt.Errorf("persona %q: daily_visits must be positive, got %d", p.Type, p.DailyVisits)
	}
	if p.MovementSpeed <= 0 {
		return fmt.Errorf("persona %q: movement_speed must be positive, got %v", p.Type, p.MovementSpeed)
	}
	return nil
}

// ValidatePersonas checks a persona set for individual validity and
// duplicate type names.
func ValidatePersonas(personas []PersonaProfile) error {
	if len(personas) == 0 {
		return fmt.Errorf("at least one persona is required")
	}
	seen := make(map[string]bool, len(personas))
	for i := range personas {
		p := &personas[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.Type] {
			return fmt.Errorf("duplicate persona type %q", p.Type)
		}
		seen[p.Type] = true
	}
	return nil
}

// Validate checks a single hotspot record against the known persona set.
// Every persona must have an appeal entry — a missing key is a configuration
// error, not zero appeal.
func (h *HotspotProfile) Validate(personas []PersonaProfile) error {
	if h.Name == "" {
		return fmt.Errorf("hotspot name must not be empty")
	}
	if h.Category == "" {
		return fmt.Errorf("hotspot %q: category must not be empty", h.Name)
	}
	if err := boundsCheck("initial_popularity", h.InitialPopularity); err != nil {
		return fmt.Errorf("hotspot %q: %w", h.Name, err)
	}
	if h.BaseCapacity < 0 {
		return fmt.Errorf("hotspot %q: base_capacity must be non-negative, got %d", h.Name, h.BaseCapacity)
	}
	for _, p := range personas {
		appeal, ok := h.Appeal[p.Type]
		if !ok {
			return fmt.Errorf("hotspot %q: no appeal score for persona %q", h.Name, p.Type)
		}
		if err := boundsCheck("appeal_score", appeal.Score); err != nil {
			return fmt.Errorf("hotspot %q, persona %q: %w", h.Name, p.Type, err)
		}
	}
	return nil
}

// ValidateHotspots checks a hotspot set for individual validity and
// duplicate names.
func ValidateHotspots(hotspots []HotspotProfile, personas []PersonaProfile) error {
	if len(hotspots) == 0 {
		return fmt.Errorf("at least one hotspot is required")
	}
	seen := make(map[string]bool, len(hotspots))
	for i := range hotspots {
		h := &hotspots[i]
		if err := h.Validate(personas); err != nil {
			return err
		}
		if seen[h.Name] {
			return fmt.Errorf("duplicate hotspot name %q", h.Name)
		}
		seen[h.Name] = true
	}
	return nil
}

// Validate checks the business-rule constants.
func (r *BusinessRules) Validate() error {
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"social_media_boost", r.SocialMediaBoost},
		{"visit_boost", r.VisitBoost},
		{"viral_threshold", r.ViralThreshold},
		{"decay_rate", r.DecayRate},
		{"recommend_threshold", r.RecommendThreshold},
	} {
		if err := boundsCheck(c.name, c.v); err != nil {
			return fmt.Errorf("business rules: %w", err)
		}
	}
	if r.WordOfMouthRange < 0 {
		return fmt.Errorf("business rules: word_of_mouth_range must be non-negative, got %d", r.WordOfMouthRange)
	}
	if r.CapacityPenalty < 0 {
		return fmt.Errorf("business rules: capacity_penalty must be non-negative, got %v", r.CapacityPenalty)
	}
	if r.DistanceCost < 0 {
		return fmt.Errorf("business rules: distance_cost must be non-negative, got %v", r.DistanceCost)
	}
	return nil
}
