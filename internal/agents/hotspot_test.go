package agents

import (
	"math"
	"testing"

	"github.com/nickkvasov/mesa-poc/internal/grid"
	"github.com/nickkvasov/mesa-poc/internal/profile"
)

// quietRules disables decay, visit boosts, and viral growth so individual
// mechanics can be tested in isolation.
func quietRules() profile.BusinessRules {
	r := profile.DefaultRules()
	r.DecayRate = 0
	r.VisitBoost = 0
	r.ViralThreshold = 1.0
	return r
}

func testProfile(name string, popularity float64, capacity int) profile.HotspotProfile {
	return profile.HotspotProfile{
		Name:              name,
		Category:          "cultural",
		InitialPopularity: popularity,
		BaseCapacity:      capacity,
		Appeal: map[string]profile.AppealScore{
			"Explorer": {Score: 0.7},
			"Relaxer":  {Score: 0.3},
		},
	}
}

func approx(t *testing.T, got, want float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func TestRecordVisit(t *testing.T) {
	rules := quietRules()
	rules.VisitBoost = 0.01
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, rules)

	h.RecordVisit()
	h.RecordVisit()

	if h.VisitorsToday != 2 || h.TotalVisitors != 2 {
		t.Errorf("visitor counters = (%d, %d), want (2, 2)", h.VisitorsToday, h.TotalVisitors)
	}
	approx(t, h.CurrentPopularity, 0.52, "popularity after two visits")
}

func TestStepResetsDailyVisitors(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, quietRules())
	h.RecordVisit()
	h.Step(0)

	if h.VisitorsToday != 0 {
		t.Errorf("VisitorsToday = %d after Step, want 0", h.VisitorsToday)
	}
	if h.TotalVisitors != 1 {
		t.Errorf("TotalVisitors = %d after Step, want 1", h.TotalVisitors)
	}
}

func TestPopularityDecaysTowardBaseline(t *testing.T) {
	rules := quietRules()
	rules.DecayRate = 0.1
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, rules)

	h.CurrentPopularity = 0.9
	h.Step(0)
	approx(t, h.CurrentPopularity, 0.86, "decay from above baseline")

	h.CurrentPopularity = 0.1
	h.Step(1)
	approx(t, h.CurrentPopularity, 0.14, "decay from below baseline")
}

func TestOvercrowdingPenalty(t *testing.T) {
	rules := quietRules()
	rules.CapacityPenalty = 0.5
	h := NewHotspot(0, testProfile("Plaza", 0.5, 10), grid.Point{}, rules)

	for i := 0; i < 20; i++ {
		h.RecordVisit()
	}
	h.Step(0)

	// 10 over a capacity of 10 at penalty 0.5 wipes out 0.5 popularity.
	approx(t, h.CurrentPopularity, 0.0, "popularity after overcrowding")
}

func TestViralGrowth(t *testing.T) {
	rules := quietRules()
	rules.ViralThreshold = 0.8
	h := NewHotspot(0, testProfile("Plaza", 0.9, 100), grid.Point{}, rules)

	h.Step(0)
	if h.CurrentPopularity <= 0.9 {
		t.Errorf("popularity = %v, expected viral growth above 0.9", h.CurrentPopularity)
	}
	if h.CurrentPopularity > 1.0 {
		t.Errorf("popularity = %v, exceeds clamp", h.CurrentPopularity)
	}
}

func TestPopularityClamped(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.95, 100), grid.Point{}, quietRules())

	h.AddSocialBoost(5.0)
	if h.CurrentPopularity != 1.0 {
		t.Errorf("popularity = %v after huge boost, want 1.0", h.CurrentPopularity)
	}
	if h.SocialShares != 1 {
		t.Errorf("SocialShares = %d, want 1", h.SocialShares)
	}
}

func TestCapacityBoostResetCycle(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 150), grid.Point{}, quietRules())

	for i := 0; i < 10; i++ {
		h.SetCapacityModifier("boost", 2.0, 0)
		if got := h.CurrentCapacity(); got != 300 {
			t.Fatalf("cycle %d: boosted capacity = %d, want 300", i, got)
		}
		h.ClearCapacityModifiers()
		if got := h.CurrentCapacity(); got != 150 {
			t.Fatalf("cycle %d: reset capacity = %d, want 150", i, got)
		}
	}
}

func TestCapacityModifierReapplyReplaces(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, quietRules())

	h.SetCapacityModifier("boost", 2.0, 0)
	h.SetCapacityModifier("boost", 2.0, 0)
	if got := h.CurrentCapacity(); got != 200 {
		t.Errorf("capacity = %d after re-apply, want 200 (no stacking)", got)
	}

	h.SetCapacityModifier("other", 1.5, 0)
	if got := h.CurrentCapacity(); got != 300 {
		t.Errorf("capacity = %d with distinct ids, want 300", got)
	}
}

func TestCapacityModifierExpiry(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, quietRules())

	h.SetCapacityModifier("boost", 2.0, 5)
	h.Step(4)
	if got := h.CurrentCapacity(); got != 200 {
		t.Errorf("capacity = %d before expiry, want 200", got)
	}
	h.Step(5)
	if got := h.CurrentCapacity(); got != 100 {
		t.Errorf("capacity = %d after expiry, want 100", got)
	}
}

func TestCapacityLimitOverridesModifiers(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, quietRules())

	h.SetCapacityModifier("boost", 3.0, 0)
	h.SetCapacityLimit(40)
	if got := h.CurrentCapacity(); got != 40 {
		t.Errorf("capacity = %d with standing limit, want 40", got)
	}
}

func TestHasCapacity(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 2), grid.Point{}, quietRules())

	if !h.HasCapacity() {
		t.Fatal("fresh hotspot should have capacity")
	}
	h.RecordVisit()
	h.RecordVisit()
	if h.HasCapacity() {
		t.Fatal("full hotspot should report no capacity")
	}
}

func TestEffectiveAppeal(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, quietRules())

	approx(t, h.EffectiveAppeal("Explorer"), 0.7, "base appeal")

	h.SetAppealModifier("boost", []string{"Explorer"}, 0.2, 0)
	approx(t, h.EffectiveAppeal("Explorer"), 0.9, "targeted boost")
	approx(t, h.EffectiveAppeal("Relaxer"), 0.3, "untargeted persona unchanged")

	h.SetAppealModifier("all", nil, 0.5, 0)
	if got := h.EffectiveAppeal("Explorer"); got != 1.0 {
		t.Errorf("appeal = %v, want clamp at 1.0", got)
	}

	h.ClearAppealModifiers()
	h.SetTaxPenalty(0.1)
	approx(t, h.EffectiveAppeal("Explorer"), 0.6, "tax penalty")
}

func TestSatisfactionModifierExpiry(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, quietRules())

	h.SetSatisfactionModifier("noise", -0.2, 8)
	approx(t, h.SatisfactionModifier(), -0.2, "active modifier")

	h.Step(8)
	approx(t, h.SatisfactionModifier(), 0.0, "expired modifier")
}

func TestAccessibilityFloor(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, quietRules())

	h.SetAccessibility(0.01)
	approx(t, h.AccessibilityModifier(), 0.1, "accessibility floor")

	h.SetAccessibility(1.4)
	approx(t, h.AccessibilityModifier(), 1.4, "accessibility penalty")

	h.SetAccessibilityOverride(0.02, 5)
	approx(t, h.AccessibilityModifier(), 0.1, "override floor")
}

func TestAccessibilityOverrideExpiry(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, quietRules())

	h.SetAccessibility(1.3)
	h.SetAccessibilityOverride(1.8, 5)
	approx(t, h.AccessibilityModifier(), 1.8, "active override")

	h.Step(4)
	approx(t, h.AccessibilityModifier(), 1.8, "override before expiry")

	h.Step(5)
	approx(t, h.AccessibilityModifier(), 1.3, "standing value restored on expiry")
}

func TestPermanentAccessibilityDiscardsOverride(t *testing.T) {
	h := NewHotspot(0, testProfile("Plaza", 0.5, 100), grid.Point{}, quietRules())

	h.SetAccessibilityOverride(1.8, 10)
	h.SetAccessibility(0.8)
	approx(t, h.AccessibilityModifier(), 0.8, "permanent change wins")

	h.Step(10)
	approx(t, h.AccessibilityModifier(), 0.8, "no stale override to expire")
}
