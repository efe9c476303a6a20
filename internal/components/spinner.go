package components

import (
	"fpsgame/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterBehaviour("spinner", func(props map[string]any) (engine.Component, error) {
		speed, err := engine.PropFloat(props, "speed", 90)
		if err != nil {
			return nil, err
		}
		return NewSpinner(speed), nil
	})
}

// Spinner turns a kinematic body about the Y axis. Anything it touches is
// pushed by the contact solver.
type Spinner struct {
	engine.BaseComponent
	Speed float32 // degrees per second

	Touches int
}

func NewSpinner(speed float32) *Spinner {
	return &Spinner{Speed: speed}
}

func (s *Spinner) Start() {
	s.apply()
}

func (s *Spinner) Update(deltaTime float32) {
	s.apply()
}

func (s *Spinner) apply() {
	if b := BodyOf(s.GetGameObject()); b != nil {
		b.AngularVelocity = rl.Vector3{Y: s.Speed * rl.Deg2rad}
	}
}

func (s *Spinner) OnCollisionEnter(other *engine.GameObject) {
	s.Touches++
	log.Debug("spinner: hit", "spinner", s.GetGameObject().Name, "other", other.Name)
}

func (s *Spinner) OnCollisionExit(other *engine.GameObject) {}
