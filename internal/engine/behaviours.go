package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownBehaviour = errors.New("engine: unknown behaviour")

// BehaviourFactory creates a Component from scene JSON props.
type BehaviourFactory func(props map[string]any) (Component, error)

var behaviourRegistry = map[string]BehaviourFactory{}

// RegisterBehaviour makes a component constructible by name from scene files.
// Registering the same name twice panics.
func RegisterBehaviour(name string, factory BehaviourFactory) {
	if _, exists := behaviourRegistry[name]; exists {
		panic(fmt.Sprintf("behaviour %q already registered", name))
	}
	behaviourRegistry[name] = factory
}

// CreateBehaviour looks up a registered behaviour by name and creates it with the given props.
func CreateBehaviour(name string, props map[string]any) (Component, error) {
	factory, ok := behaviourRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %s)", ErrUnknownBehaviour, name, strings.Join(RegisteredBehaviours(), ", "))
	}
	c, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("behaviour %q: %w", name, err)
	}
	return c, nil
}

// RegisteredBehaviours returns a sorted list of all registered behaviour names.
func RegisteredBehaviours() []string {
	names := make([]string, 0, len(behaviourRegistry))
	for name := range behaviourRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropFloat reads a numeric prop decoded from JSON, falling back to def
func PropFloat(props map[string]any, key string, def float32) (float32, error) {
	v, ok := props[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("prop %q: expected number, got %T", key, v)
	}
	return float32(f), nil
}
