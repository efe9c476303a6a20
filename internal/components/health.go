package components

import (
	"fpsgame/internal/config"
	"fpsgame/internal/engine"
)

func init() {
	engine.RegisterBehaviour("health", func(props map[string]any) (engine.Component, error) {
		maxHealth, err := engine.PropFloat(props, "max", config.Box.Health)
		if err != nil {
			return nil, err
		}
		return NewHealth(maxHealth), nil
	})
}

// Health takes weapon damage and fires OnDeath once when it runs out
type Health struct {
	engine.BaseComponent
	Max     float32
	Current float32

	OnDamaged engine.EventWithArg[float32]
	OnDeath   engine.Event
}

func NewHealth(maxHealth float32) *Health {
	return &Health{Max: maxHealth, Current: maxHealth}
}

func (h *Health) Dead() bool {
	return h.Current <= 0
}

// Damage subtracts amount and reports whether this call killed the owner
func (h *Health) Damage(amount float32) bool {
	if amount <= 0 || h.Dead() {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.OnDamaged.Invoke(amount)
	if h.Dead() {
		h.OnDeath.Invoke()
		return true
	}
	return false
}

// Fraction returns remaining health in [0, 1]
func (h *Health) Fraction() float32 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}
