package agents

import (
	"math/rand"
	"testing"

	"github.com/nickkvasov/mesa-poc/internal/grid"
	"github.com/nickkvasov/mesa-poc/internal/profile"
)

func testPersona(typ string) *profile.PersonaProfile {
	return &profile.PersonaProfile{
		Type:                 typ,
		SocialInfluence:      1.0,
		RecommendationTrust:  1.0,
		ExplorationTendency:  0.5,
		PriceSensitivity:     0.5,
		DailyVisits:          2,
		MovementSpeed:        1.0,
		SharingProbability:   1.0,
		InfluenceOnSimilar:   1.0,
		InfluenceOnDifferent: 1.0,
	}
}

func appealProfile(name string, explorerAppeal float64, capacity int) profile.HotspotProfile {
	return profile.HotspotProfile{
		Name:              name,
		Category:          "cultural",
		InitialPopularity: 0.5,
		BaseCapacity:      capacity,
		Appeal: map[string]profile.AppealScore{
			"Explorer": {Score: explorerAppeal},
			"Relaxer":  {Score: 0.5},
		},
	}
}

func TestChooseHotspotPrefersAppeal(t *testing.T) {
	rules := quietRules()
	rng := rand.New(rand.NewSource(1))
	hotspots := []*Hotspot{
		NewHotspot(0, appealProfile("A", 0.9, 100), grid.Point{}, rules),
		NewHotspot(1, appealProfile("B", 0.2, 100), grid.Point{}, rules),
	}
	tourist := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)

	idx, ok := tourist.ChooseHotspot(hotspots, NeutralModifiers(), rules)
	if !ok || idx != 0 {
		t.Errorf("ChooseHotspot = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestChooseHotspotTieBreaksLowerIndex(t *testing.T) {
	rules := quietRules()
	rng := rand.New(rand.NewSource(1))
	hotspots := []*Hotspot{
		NewHotspot(0, appealProfile("A", 0.6, 100), grid.Point{}, rules),
		NewHotspot(1, appealProfile("B", 0.6, 100), grid.Point{}, rules),
	}
	tourist := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)

	idx, ok := tourist.ChooseHotspot(hotspots, NeutralModifiers(), rules)
	if !ok || idx != 0 {
		t.Errorf("ChooseHotspot = (%d, %v), want lower index on tie", idx, ok)
	}
}

func TestChooseHotspotSkipsFullVenues(t *testing.T) {
	rules := quietRules()
	rng := rand.New(rand.NewSource(1))
	hotspots := []*Hotspot{
		NewHotspot(0, appealProfile("A", 0.9, 0), grid.Point{}, rules),
		NewHotspot(1, appealProfile("B", 0.2, 100), grid.Point{}, rules),
	}
	tourist := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)

	idx, ok := tourist.ChooseHotspot(hotspots, NeutralModifiers(), rules)
	if !ok || idx != 1 {
		t.Errorf("ChooseHotspot = (%d, %v), want (1, true) with venue 0 full", idx, ok)
	}
}

func TestChooseHotspotIdleWhenEverythingFull(t *testing.T) {
	rules := quietRules()
	rng := rand.New(rand.NewSource(1))
	hotspots := []*Hotspot{
		NewHotspot(0, appealProfile("A", 0.9, 0), grid.Point{}, rules),
	}
	tourist := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)

	if _, ok := tourist.ChooseHotspot(hotspots, NeutralModifiers(), rules); ok {
		t.Fatal("expected no choice when nothing has capacity")
	}
	if tourist.VisitedThisStep() {
		t.Fatal("idle tourist should not count as visited")
	}
}

func TestRecommendationsConsumedByChoice(t *testing.T) {
	rules := quietRules()
	rng := rand.New(rand.NewSource(1))
	hotspots := []*Hotspot{
		NewHotspot(0, appealProfile("A", 0.9, 100), grid.Point{}, rules),
		NewHotspot(1, appealProfile("B", 0.2, 100), grid.Point{}, rules),
	}
	tourist := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)
	tourist.Recommendations = append(tourist.Recommendations, Recommendation{
		HotspotIndex: 1,
		Strength:     5.0,
		FromPersona:  "Relaxer",
	})

	idx, ok := tourist.ChooseHotspot(hotspots, NeutralModifiers(), rules)
	if !ok || idx != 1 {
		t.Errorf("ChooseHotspot = (%d, %v), want recommendation to flip choice to 1", idx, ok)
	}
	if len(tourist.Recommendations) != 0 {
		t.Errorf("recommendation inbox not cleared, %d left", len(tourist.Recommendations))
	}
}

func TestVisitHotspotUpdatesState(t *testing.T) {
	rules := quietRules()
	rng := rand.New(rand.NewSource(1))
	h := NewHotspot(0, appealProfile("A", 0.7, 100), grid.Point{X: 5, Y: 8}, rules)
	tourist := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)

	tourist.BeginStep()
	tourist.VisitHotspot(h, NeutralModifiers(), 3)

	if tourist.Position != h.Position {
		t.Errorf("tourist position = %v, want %v", tourist.Position, h.Position)
	}
	if tourist.TotalVisits != 1 || tourist.LastVisitStep != 3 {
		t.Errorf("visit bookkeeping = (%d, %d), want (1, 3)", tourist.TotalVisits, tourist.LastVisitStep)
	}
	if len(tourist.Visited) != 1 || tourist.Visited[0] != 0 {
		t.Errorf("visit history = %v, want [0]", tourist.Visited)
	}
	if !tourist.VisitedThisStep() {
		t.Error("VisitedThisStep should be true after a visit")
	}
	// Uncrowded visit with neutral modifiers: satisfaction equals appeal.
	approx(t, tourist.Satisfaction, 0.7, "satisfaction after visit")
	if h.VisitorsToday != 1 {
		t.Errorf("hotspot VisitorsToday = %d, want 1", h.VisitorsToday)
	}
}

func TestSatisfactionStaysBounded(t *testing.T) {
	rules := quietRules()
	rng := rand.New(rand.NewSource(1))
	h := NewHotspot(0, appealProfile("A", 0.9, 100), grid.Point{}, rules)
	tourist := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)

	mods := NeutralModifiers()
	mods.SatisfactionDelta = 5.0
	tourist.VisitHotspot(h, mods, 0)
	if tourist.Satisfaction != 1.0 {
		t.Errorf("satisfaction = %v with huge bonus, want 1.0", tourist.Satisfaction)
	}

	mods.SatisfactionDelta = -5.0
	tourist.VisitHotspot(h, mods, 1)
	if tourist.Satisfaction != 0.0 {
		t.Errorf("satisfaction = %v with huge penalty, want 0.0", tourist.Satisfaction)
	}
}

func TestShareExperienceBoostsHotspot(t *testing.T) {
	rules := quietRules()
	rules.SocialMediaBoost = 0.1
	rng := rand.New(rand.NewSource(1))
	h := NewHotspot(0, appealProfile("A", 1.0, 100), grid.Point{}, rules)
	tourist := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)

	tourist.BeginStep()
	tourist.VisitHotspot(h, NeutralModifiers(), 0)
	if tourist.Satisfaction != 1.0 {
		t.Fatalf("satisfaction = %v, want 1.0 for a perfect visit", tourist.Satisfaction)
	}

	// Sharing probability 1.0 at full satisfaction always shares.
	shared := tourist.ShareExperience(h, NeutralModifiers(), rules, rng)
	if !shared {
		t.Fatal("expected guaranteed share at probability 1")
	}
	if h.SocialShares != 1 || tourist.SharesMade != 1 {
		t.Errorf("share counters = (%d, %d), want (1, 1)", h.SocialShares, tourist.SharesMade)
	}
	if h.CurrentPopularity <= 0.5 {
		t.Errorf("popularity = %v, expected social boost above baseline", h.CurrentPopularity)
	}
}

func TestMakeRecommendationsRespectsThreshold(t *testing.T) {
	rules := quietRules()
	rules.RecommendThreshold = 0.6
	rules.WordOfMouthRange = 3
	rng := rand.New(rand.NewSource(1))
	h := NewHotspot(0, appealProfile("A", 1.0, 100), grid.Point{}, rules)

	sharer := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)
	peer := NewTourist(1, testPersona("Relaxer"), grid.Point{X: 1, Y: 1}, rng)
	peers := []*Tourist{sharer, peer}
	positions := []grid.Point{sharer.Position, peer.Position}

	// Below threshold: nothing goes out.
	sharer.BeginStep()
	if made := sharer.MakeRecommendations(peers, positions, 0, rules, rng, 0); made != 0 {
		t.Errorf("made %d recommendations without a visit, want 0", made)
	}

	// A perfect visit with influence 1.0 always reaches the in-range peer.
	sharer.VisitHotspot(h, NeutralModifiers(), 0)
	positions[0] = sharer.Position
	made := sharer.MakeRecommendations(peers, positions, 0, rules, rng, 0)
	if made != 1 {
		t.Fatalf("made %d recommendations, want 1", made)
	}
	if len(peer.Recommendations) != 1 || peer.RecsReceived != 1 {
		t.Fatalf("peer inbox = %d, lifetime = %d, want 1 and 1",
			len(peer.Recommendations), peer.RecsReceived)
	}
	rec := peer.Recommendations[0]
	if rec.HotspotIndex != 0 || rec.FromPersona != "Explorer" {
		t.Errorf("recommendation = %+v, wrong content", rec)
	}
}

func TestMakeRecommendationsRespectsRange(t *testing.T) {
	rules := quietRules()
	rules.WordOfMouthRange = 2
	rng := rand.New(rand.NewSource(1))
	h := NewHotspot(0, appealProfile("A", 1.0, 100), grid.Point{}, rules)

	sharer := NewTourist(0, testPersona("Explorer"), grid.Point{}, rng)
	farPeer := NewTourist(1, testPersona("Explorer"), grid.Point{X: 10, Y: 10}, rng)
	peers := []*Tourist{sharer, farPeer}

	sharer.BeginStep()
	sharer.VisitHotspot(h, NeutralModifiers(), 0)
	positions := []grid.Point{sharer.Position, farPeer.Position}

	if made := sharer.MakeRecommendations(peers, positions, 0, rules, rng, 0); made != 0 {
		t.Errorf("made %d recommendations out of range, want 0", made)
	}
}
