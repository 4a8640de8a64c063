// Canonical scenario constructors, matching the standard policy-testing
// catalog: a festival, a luxury tax, and a construction disruption, plus a
// tunable marketing campaign.
package scenario

// FestivalScenario returns the Summer Music Festival scenario: Riverside Park gets
// doubled capacity and youth-demographic appeal from step 5 through step 8.
func FestivalScenario() *Scenario {
	return &Scenario{
		Name:               "Summer Music Festival",
		Description:        "A major 3-day music festival is held at Riverside Park, attracting younger tourists",
		Category:           "event-driven",
		DurationSteps:      20,
		TargetDemographics: []string{"Budget Backpacker", "Adventure Seeker"},
		Events: []Event{
			{
				Step: 5, Type: EventCapacityBoost, Target: "Riverside Park",
				Params:      EventParams{CapacityMultiplier: 2.0},
				Description: "Festival infrastructure doubles park capacity",
			},
			{
				Step: 5, Type: EventAppealBoost, Target: "Riverside Park",
				Params: EventParams{
					AppealBoost:    0.3,
					TargetPersonas: []string{"Budget Backpacker", "Adventure Seeker"},
				},
				Description: "Festival increases appeal to young demographics",
			},
			{
				Step: 8, Type: EventCapacityReset, Target: "Riverside Park",
				Description: "Festival ends, capacity returns to normal",
			},
			{
				Step: 8, Type: EventAppealReset, Target: "Riverside Park",
				Description: "Appeal returns to baseline after festival",
			},
		},
		ExternalFactors: map[string]float64{
			"noise_tolerance":  0.4,
			"event_excitement": 0.3,
		},
	}
}

// LuxuryTaxScenario returns the Luxury Tourism Tax scenario: a 15% tax on luxury
// experiences with persona and venue knock-on effects.
func LuxuryTaxScenario() *Scenario {
	return &Scenario{
		Name:               "Luxury Tourism Tax",
		Description:        "City introduces a 15% tourism tax on luxury experiences",
		Category:           "policy-based",
		DurationSteps:      20,
		TargetDemographics: []string{"Luxury Tourist"},
		Events: []Event{
			{
				Step: 3, Type: EventSatisfactionPenalty, Target: "Luxury Tourist",
				Params:      EventParams{Penalty: 0.2},
				Description: "Luxury tourists experience reduced satisfaction due to tax",
			},
			{
				Step: 3, Type: EventAppealReduction, Target: "Luxury Hotel Zone",
				Params:      EventParams{Reduction: 0.3},
				Description: "Luxury venues become less appealing due to higher costs",
			},
		},
		Regulations: Regulations{
			LuxuryTax: &LuxuryTax{
				TaxRate:            0.15,
				AffectedCategories: []string{"luxury"},
			},
			CapacityLimit: &CapacityLimit{
				Target:      "Luxury Hotel Zone",
				NewCapacity: 40,
			},
		},
		ExternalFactors: map[string]float64{
			"cost_sensitivity": 0.4,
		},
	}
}

// ConstructionScenario returns the Downtown Construction scenario: the Central
// Shopping District loses accessibility and gains noise through a
// construction cycle that completes at step 12.
func ConstructionScenario() *Scenario {
	return &Scenario{
		Name:          "Downtown Construction",
		Description:   "Major construction disrupts Central Shopping District access",
		Category:      "infrastructure",
		DurationSteps: 20,
		Events: []Event{
			{
				Step: 4, Type: EventAccessibilityReduction, Target: "Central Shopping District",
				Params:      EventParams{AccessibilityPenalty: 0.4},
				Description: "Construction barriers reduce accessibility",
			},
			{
				Step: 6, Type: EventNoisePollution, Target: "Central Shopping District",
				Duration:    6,
				Params:      EventParams{SatisfactionPenalty: 0.2},
				Description: "Construction noise reduces visitor satisfaction",
			},
			{
				Step: 12, Type: EventConstructionComplete, Target: "Central Shopping District",
				Params:      EventParams{AccessibilityBonus: 0.2},
				Description: "Construction completion improves accessibility",
			},
		},
		Regulations: Regulations{
			RestrictedAccess: &RestrictedAccess{
				AffectedHotspots:     []string{"Central Shopping District"},
				AccessibilityPenalty: 0.3,
			},
		},
		ExternalFactors: map[string]float64{
			"inconvenience_tolerance": -0.2,
		},
	}
}

// marketingConfig tunes the Marketing scenario per intensity level.
type marketingConfig struct {
	appealBoost float64
	factors     map[string]float64
}

var marketingIntensities = map[string]marketingConfig{
	"low": {
		appealBoost: 0.2,
		factors:     map[string]float64{"event_excitement": 0.2},
	},
	"medium": {
		appealBoost: 0.4,
		factors:     map[string]float64{"event_excitement": 0.4, "social_media_buzz": 0.3},
	},
	"high": {
		appealBoost: 0.6,
		factors:     map[string]float64{"event_excitement": 0.6, "social_media_buzz": 0.5},
	},
}

// MarketingScenario returns a marketing-campaign scenario of the given intensity
// ("low", "medium", "high"), boosting a target hotspot's appeal across the
// board from step 2 for ten steps. An unknown intensity falls back to
// medium.
func MarketingScenario(target, intensity string) *Scenario {
	cfg, ok := marketingIntensities[intensity]
	if !ok {
		cfg = marketingIntensities["medium"]
	}
	return &Scenario{
		Name:          "Marketing Campaign",
		Description:   intensity + " marketing campaign targeting all demographics",
		Category:      "marketing",
		DurationSteps: 20,
		Events: []Event{
			{
				Step: 2, Type: EventAppealBoost, Target: target,
				Duration:    10,
				Params:      EventParams{AppealBoost: cfg.appealBoost},
				Description: "Campaign visibility raises appeal across demographics",
			},
		},
		ExternalFactors: cfg.factors,
	}
}
