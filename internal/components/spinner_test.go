package components

import (
	"testing"

	"fpsgame/internal/engine"
	"fpsgame/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSpinnerDrivesBody(t *testing.T) {
	g := engine.NewGameObject("Sweeper")
	body := physics.NewBody("Sweeper", physics.Kinematic, physics.Box(rl.Vector3{X: 3, Y: 0.25, Z: 0.25}))
	g.AddComponent(NewRigidbody(body))

	c, err := engine.CreateBehaviour("spinner", map[string]any{"speed": 180.0})
	if err != nil {
		t.Fatalf("CreateBehaviour: %v", err)
	}
	g.AddComponent(c)
	g.Start()

	if absf(body.AngularVelocity.Y-rl.Pi) > 1e-4 {
		t.Errorf("Expected pi rad/s about Y, got %v", body.AngularVelocity)
	}

	c.(*Spinner).Speed = 0
	g.Update(1.0 / 60.0)
	if body.AngularVelocity != (rl.Vector3{}) {
		t.Errorf("Expected spinner stopped, got %v", body.AngularVelocity)
	}
}

func TestSpinnerCountsTouches(t *testing.T) {
	g := engine.NewGameObject("Sweeper")
	s := NewSpinner(90)
	g.AddComponent(s)

	var h engine.CollisionHandler = s
	h.OnCollisionEnter(engine.NewGameObject("Player"))
	h.OnCollisionExit(engine.NewGameObject("Player"))

	if s.Touches != 1 {
		t.Errorf("Expected 1 touch, got %d", s.Touches)
	}
}
