// Embedded default dataset: five tourist personas, seven urban hotspots, and
// the business rules tying them together. Used by the example binary and the
// test suite; a real deployment supplies its own records.
package profile

// DefaultRules returns the standard recommendation and popularity mechanics.
func DefaultRules() BusinessRules {
	return BusinessRules{
		SocialMediaBoost:   0.1,
		VisitBoost:         0.01,
		WordOfMouthRange:   3,
		ViralThreshold:     0.8,
		DecayRate:          0.02,
		CapacityPenalty:    0.5,
		PopularityWeight:   0.3,
		DistanceCost:       0.05,
		ExplorationBonus:   0.2,
		RecommendThreshold: 0.6,
	}
}

// DefaultPersonas returns the five standard tourist archetypes.
func DefaultPersonas() []PersonaProfile {
	return []PersonaProfile{
		{
			Type:        "Budget Backpacker",
			Description: "Young, cost-conscious travelers seeking authentic local experiences",
			BudgetLevel: "low", AgeGroup: "young", GroupSize: 1,
			SocialInfluence: 0.8, RecommendationTrust: 0.9,
			ExplorationTendency: 0.7, PriceSensitivity: 0.9,
			DailyVisits: 3, MovementSpeed: 2, SharingProbability: 0.8,
			InfluenceOnSimilar: 0.7, InfluenceOnDifferent: 0.3,
		},
		{
			Type:        "Luxury Tourist",
			Description: "Affluent travelers seeking premium experiences and comfort",
			BudgetLevel: "high", AgeGroup: "middle_aged", GroupSize: 2,
			SocialInfluence: 0.6, RecommendationTrust: 0.5,
			ExplorationTendency: 0.4, PriceSensitivity: 0.2,
			DailyVisits: 2, MovementSpeed: 1, SharingProbability: 0.4,
			InfluenceOnSimilar: 0.8, InfluenceOnDifferent: 0.2,
		},
		{
			Type:        "Cultural Explorer",
			Description: "Knowledge-seeking travelers focused on history, art, and cultural understanding",
			BudgetLevel: "medium", AgeGroup: "senior", GroupSize: 3,
			SocialInfluence: 0.4, RecommendationTrust: 0.7,
			ExplorationTendency: 0.8, PriceSensitivity: 0.5,
			DailyVisits: 4, MovementSpeed: 1, SharingProbability: 0.6,
			InfluenceOnSimilar: 0.9, InfluenceOnDifferent: 0.4,
		},
		{
			Type:        "Adventure Seeker",
			Description: "Active travelers pursuing exciting outdoor activities and new challenges",
			BudgetLevel: "medium", AgeGroup: "young", GroupSize: 2,
			SocialInfluence: 0.9, RecommendationTrust: 0.8,
			ExplorationTendency: 0.9, PriceSensitivity: 0.5,
			DailyVisits: 2, MovementSpeed: 3, SharingProbability: 0.9,
			InfluenceOnSimilar: 0.8, InfluenceOnDifferent: 0.5,
		},
		{
			Type:        "Family Traveler",
			Description: "Family groups seeking safe, entertaining activities suitable for all ages",
			BudgetLevel: "medium", AgeGroup: "middle_aged", GroupSize: 4,
			SocialInfluence: 0.7, RecommendationTrust: 0.8,
			ExplorationTendency: 0.5, PriceSensitivity: 0.5,
			DailyVisits: 3, MovementSpeed: 1, SharingProbability: 0.7,
			InfluenceOnSimilar: 0.8, InfluenceOnDifferent: 0.6,
		},
	}
}

func appeal(pairs ...any) map[string]AppealScore {
	m := make(map[string]AppealScore, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i].(string)] = AppealScore{Score: pairs[i+1].(float64)}
	}
	return m
}

// DefaultHotspots returns the seven standard urban destinations, laid out on
// the default 20x20 grid.
func DefaultHotspots() []HotspotProfile {
	return []HotspotProfile{
		{
			Name:        "Historic Old Town",
			Description: "Charming historic district with cobblestone streets and cultural landmarks",
			Category:    "cultural", Neighborhood: "Heritage District",
			X: 5, Y: 8,
			InitialPopularity: 0.7, BaseCapacity: 100, AccessibilityLevel: "high",
			Appeal: appeal(
				"Cultural Explorer", 0.9, "Budget Backpacker", 0.7,
				"Family Traveler", 0.6, "Luxury Tourist", 0.4, "Adventure Seeker", 0.3,
			),
		},
		{
			Name:        "Central Shopping District",
			Description: "Bustling commercial center with shops, restaurants, and entertainment",
			Category:    "commercial", Neighborhood: "Downtown Core",
			X: 10, Y: 10,
			InitialPopularity: 0.8, BaseCapacity: 150, AccessibilityLevel: "excellent",
			Appeal: appeal(
				"Luxury Tourist", 0.9, "Family Traveler", 0.6,
				"Cultural Explorer", 0.4, "Budget Backpacker", 0.3, "Adventure Seeker", 0.2,
			),
		},
		{
			Name:        "Riverside Park",
			Description: "Large green space with walking paths and recreational facilities",
			Category:    "nature", Neighborhood: "Waterfront",
			X: 15, Y: 5,
			InitialPopularity: 0.6, BaseCapacity: 200, AccessibilityLevel: "high",
			Appeal: appeal(
				"Family Traveler", 0.9, "Adventure Seeker", 0.8,
				"Budget Backpacker", 0.8, "Cultural Explorer", 0.5, "Luxury Tourist", 0.4,
			),
		},
		{
			Name:        "Food Market Quarter",
			Description: "Vibrant culinary district with street food and authentic dining",
			Category:    "food", Neighborhood: "Culinary District",
			X: 8, Y: 15,
			InitialPopularity: 0.5, BaseCapacity: 80, AccessibilityLevel: "medium",
			Appeal: appeal(
				"Budget Backpacker", 0.9, "Cultural Explorer", 0.8,
				"Adventure Seeker", 0.7, "Family Traveler", 0.5, "Luxury Tourist", 0.3,
			),
		},
		{
			Name:        "Luxury Hotel Zone",
			Description: "Upscale hospitality district with premium services",
			Category:    "luxury", Neighborhood: "Premium Quarter",
			X: 12, Y: 12,
			InitialPopularity: 0.4, BaseCapacity: 60, AccessibilityLevel: "excellent",
			Appeal: appeal(
				"Luxury Tourist", 0.9, "Family Traveler", 0.5,
				"Cultural Explorer", 0.3, "Budget Backpacker", 0.1, "Adventure Seeker", 0.2,
			),
		},
		{
			Name:        "Art Gallery District",
			Description: "Creative quarter with contemporary galleries and exhibitions",
			Category:    "cultural", Neighborhood: "Arts Quarter",
			X: 7, Y: 12,
			InitialPopularity: 0.3, BaseCapacity: 70, AccessibilityLevel: "good",
			Appeal: appeal(
				"Cultural Explorer", 0.9, "Luxury Tourist", 0.6,
				"Budget Backpacker", 0.4, "Family Traveler", 0.3, "Adventure Seeker", 0.2,
			),
		},
		{
			Name:        "Adventure Sports Center",
			Description: "Specialized facility for extreme sports and outdoor activities",
			Category:    "adventure", Neighborhood: "Sports Complex",
			X: 18, Y: 8,
			InitialPopularity: 0.2, BaseCapacity: 40, AccessibilityLevel: "medium",
			Appeal: appeal(
				"Adventure Seeker", 0.9, "Budget Backpacker", 0.5,
				"Family Traveler", 0.3, "Cultural Explorer", 0.2, "Luxury Tourist", 0.3,
			),
		},
	}
}
