package components

import (
	"testing"

	"fpsgame/internal/engine"
)

func TestHealthDamageAndDeath(t *testing.T) {
	h := NewHealth(50)
	deaths := 0
	h.OnDeath.AddListener(func() { deaths++ })

	if h.Damage(30) {
		t.Error("30 damage should not kill at 50 health")
	}
	if h.Current != 20 {
		t.Errorf("Expected 20 health, got %f", h.Current)
	}
	if !h.Damage(30) {
		t.Error("Second hit should kill")
	}
	if h.Current != 0 {
		t.Errorf("Health should floor at 0, got %f", h.Current)
	}
	if h.Damage(10) {
		t.Error("Dead target should not die twice")
	}
	if deaths != 1 {
		t.Errorf("Expected OnDeath once, got %d", deaths)
	}
}

func TestHealthIgnoresNonPositiveDamage(t *testing.T) {
	h := NewHealth(10)

	h.Damage(0)
	h.Damage(-5)

	if h.Current != 10 {
		t.Errorf("Expected 10 health, got %f", h.Current)
	}
	if h.Fraction() != 1 {
		t.Errorf("Expected fraction 1, got %f", h.Fraction())
	}
}

func TestHealthRegisteredAsBehaviour(t *testing.T) {
	c, err := engine.CreateBehaviour("health", map[string]any{"max": 40.0})
	if err != nil {
		t.Fatalf("CreateBehaviour: %v", err)
	}
	h, ok := c.(*Health)
	if !ok {
		t.Fatalf("Expected *Health, got %T", c)
	}
	if h.Max != 40 || h.Current != 40 {
		t.Errorf("Expected 40/40, got %f/%f", h.Current, h.Max)
	}
}
