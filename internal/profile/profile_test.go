package profile

import (
	"strings"
	"testing"
)

func TestDefaultDatasetValidates(t *testing.T) {
	personas := DefaultPersonas()
	hotspots := DefaultHotspots()
	rules := DefaultRules()

	if err := ValidatePersonas(personas); err != nil {
		t.Fatalf("default personas invalid: %v", err)
	}
	if err := ValidateHotspots(hotspots, personas); err != nil {
		t.Fatalf("default hotspots invalid: %v", err)
	}
	if err := rules.Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}

	if len(personas) != 5 {
		t.Errorf("expected 5 personas, got %d", len(personas))
	}
	if len(hotspots) != 7 {
		t.Errorf("expected 7 hotspots, got %d", len(hotspots))
	}
}

func TestMissingAppealEntryRejected(t *testing.T) {
	personas := DefaultPersonas()
	hotspots := DefaultHotspots()
	delete(hotspots[0].Appeal, personas[0].Type)

	err := ValidateHotspots(hotspots, personas)
	if err == nil {
		t.Fatal("expected error for missing appeal entry")
	}
	if !strings.Contains(err.Error(), "no appeal score") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDuplicatePersonaRejected(t *testing.T) {
	personas := DefaultPersonas()
	personas = append(personas, personas[0])

	if err := ValidatePersonas(personas); err == nil {
		t.Fatal("expected error for duplicate persona type")
	}
}

func TestDuplicateHotspotRejected(t *testing.T) {
	personas := DefaultPersonas()
	hotspots := DefaultHotspots()
	hotspots = append(hotspots, hotspots[0])

	if err := ValidateHotspots(hotspots, personas); err == nil {
		t.Fatal("expected error for duplicate hotspot name")
	}
}

func TestTraitBoundsEnforced(t *testing.T) {
	personas := DefaultPersonas()
	personas[0].SocialInfluence = 1.5

	if err := ValidatePersonas(personas); err == nil {
		t.Fatal("expected error for out-of-range trait")
	}

	personas = DefaultPersonas()
	personas[0].DailyVisits = 0
	if err := ValidatePersonas(personas); err == nil {
		t.Fatal("expected error for zero daily_visits")
	}
}

func TestRuleBoundsEnforced(t *testing.T) {
	rules := DefaultRules()
	rules.DecayRate = -0.1
	if err := rules.Validate(); err == nil {
		t.Fatal("expected error for negative decay_rate")
	}

	rules = DefaultRules()
	rules.WordOfMouthRange = -1
	if err := rules.Validate(); err == nil {
		t.Fatal("expected error for negative word_of_mouth_range")
	}
}
