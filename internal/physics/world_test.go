package physics

import (
	"errors"
	"testing"

	"fpsgame/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := New(config.Physics, nil)
	t.Cleanup(func() { w.Close() })
	return w
}

func newGround(t *testing.T, w *World) *Body {
	t.Helper()
	ground := NewBody("Ground", Static, Box(rl.Vector3{X: 50, Y: 0.1, Z: 50}))
	ground.Position = rl.Vector3{Y: -0.1}
	if err := w.Attach(ground); err != nil {
		t.Fatalf("Attach ground: %v", err)
	}
	return ground
}

func newCrate(t *testing.T, w *World, pos rl.Vector3) *Body {
	t.Helper()
	b := NewBody("Crate", Dynamic, Box(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}))
	b.Position = pos
	if err := w.Attach(b); err != nil {
		t.Fatalf("Attach crate: %v", err)
	}
	return b
}

// stepUntil steps at 60 Hz until cond holds or the budget runs out
func stepUntil(w *World, steps int, cond func() bool) bool {
	for i := 0; i < steps; i++ {
		w.Step(1.0 / 60.0)
		if cond() {
			return true
		}
	}
	return false
}

func hasEvent(w *World, phase ContactPhase, a, b *Body) bool {
	for _, ev := range w.Contacts() {
		if ev.Phase == phase && ev.Other(a) == b {
			return true
		}
	}
	return false
}

func TestAttachAssignsIDs(t *testing.T) {
	w := newTestWorld(t)
	a := newCrate(t, w, rl.Vector3{})
	b := newCrate(t, w, rl.Vector3{X: 3})

	if a.ID == 0 || b.ID == 0 {
		t.Error("Attached bodies should get non-zero IDs")
	}
	if a.ID == b.ID {
		t.Error("Attached bodies should get unique IDs")
	}
	if !a.Attached() {
		t.Error("Body should report attached")
	}
	if len(w.Bodies()) != 2 {
		t.Errorf("Expected 2 bodies, got %d", len(w.Bodies()))
	}
}

func TestAttachRejectsInvalidBodies(t *testing.T) {
	w := newTestWorld(t)

	tests := []struct {
		name string
		body *Body
	}{
		{"nil", nil},
		{"empty box", NewBody("Empty", Dynamic, Box(rl.Vector3{}))},
		{"zero radius", NewBody("Dot", Dynamic, Sphere(0))},
		{"massless dynamic", func() *Body {
			b := NewBody("Ghost", Dynamic, Box(rl.Vector3{X: 1, Y: 1, Z: 1}))
			b.Mass = 0
			return b
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.Attach(tt.body)
			if !errors.Is(err, ErrInvalidBody) {
				t.Errorf("Expected ErrInvalidBody, got %v", err)
			}
		})
	}
}

func TestAttachTwiceFails(t *testing.T) {
	w := newTestWorld(t)
	b := newCrate(t, w, rl.Vector3{})

	if err := w.Attach(b); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("Expected ErrInvalidBody on second attach, got %v", err)
	}
}

func TestStaticBodyMayBeMassless(t *testing.T) {
	w := newTestWorld(t)
	b := NewBody("Wall", Static, Box(rl.Vector3{X: 1, Y: 1, Z: 1}))
	b.Mass = 0

	if err := w.Attach(b); err != nil {
		t.Errorf("Static body with zero mass should attach, got %v", err)
	}
	if b.InverseMass() != 0 {
		t.Errorf("Static body should have zero inverse mass, got %f", b.InverseMass())
	}
}

func TestStepRunsFixedSubsteps(t *testing.T) {
	w := newTestWorld(t)
	newCrate(t, w, rl.Vector3{Y: 10})

	stats := w.Step(1.0 / 60.0)
	if stats.Substeps != 2 {
		t.Errorf("Expected 2 substeps for 1/60 s at 1/120 s, got %d", stats.Substeps)
	}
	if stats.Dropped != 0 {
		t.Errorf("Expected no dropped time, got %f", stats.Dropped)
	}
}

func TestStepDropsSurplusTime(t *testing.T) {
	w := newTestWorld(t)
	newCrate(t, w, rl.Vector3{Y: 10})

	stats := w.Step(1.0)
	if stats.Substeps != config.Physics.MaxSubsteps {
		t.Errorf("Expected %d substeps, got %d", config.Physics.MaxSubsteps, stats.Substeps)
	}
	if stats.Dropped <= 0 {
		t.Error("Expected surplus time to be dropped")
	}

	// Surplus must not carry into the next call
	stats = w.Step(1.0 / 120.0)
	if stats.Substeps != 1 {
		t.Errorf("Expected 1 substep after a drop, got %d", stats.Substeps)
	}
}

func TestStepAccumulatesSmallFrames(t *testing.T) {
	w := newTestWorld(t)
	newCrate(t, w, rl.Vector3{Y: 10})

	if stats := w.Step(1.0 / 300.0); stats.Substeps != 0 {
		t.Errorf("Expected 0 substeps for a short frame, got %d", stats.Substeps)
	}
	if stats := w.Step(1.0 / 150.0); stats.Substeps != 1 {
		t.Errorf("Expected accumulated time to run 1 substep, got %d", stats.Substeps)
	}
}

func TestGravityAcceleratesDynamicBodies(t *testing.T) {
	w := newTestWorld(t)
	b := newCrate(t, w, rl.Vector3{Y: 10})

	w.Step(1.0 / 60.0)

	if b.LinearVelocity.Y >= 0 {
		t.Errorf("Expected falling velocity, got %f", b.LinearVelocity.Y)
	}
	if b.Position.Y >= 10 {
		t.Errorf("Expected body to fall, got Y=%f", b.Position.Y)
	}
}

func TestStaticBodiesNeverMove(t *testing.T) {
	w := newTestWorld(t)
	ground := newGround(t, w)
	newCrate(t, w, rl.Vector3{Y: 0.45})

	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60.0)
	}

	if ground.Position != (rl.Vector3{Y: -0.1}) {
		t.Errorf("Static body moved to %v", ground.Position)
	}
}

func TestBoxComesToRestOnGround(t *testing.T) {
	w := newTestWorld(t)
	newGround(t, w)
	crate := newCrate(t, w, rl.Vector3{Y: 2})

	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60.0)
	}

	if crate.Position.Y < 0.4 || crate.Position.Y > 0.6 {
		t.Errorf("Expected crate resting at Y~0.5, got %f", crate.Position.Y)
	}
	if speed := rl.Vector3Length(crate.LinearVelocity); speed > 0.1 {
		t.Errorf("Expected crate at rest, got speed %f", speed)
	}
}

func TestStackedBoxesStayStacked(t *testing.T) {
	w := newTestWorld(t)
	newGround(t, w)
	bottom := newCrate(t, w, rl.Vector3{Y: 0.5})
	top := newCrate(t, w, rl.Vector3{Y: 1.5})

	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60.0)
	}

	if top.Position.Y < bottom.Position.Y+0.8 {
		t.Errorf("Expected top crate above bottom crate, got top=%f bottom=%f", top.Position.Y, bottom.Position.Y)
	}
	if absf(top.Position.X) > 0.1 || absf(top.Position.Z) > 0.1 {
		t.Errorf("Top crate drifted to %v", top.Position)
	}
}

func TestJointsClearedAfterStep(t *testing.T) {
	w := newTestWorld(t)
	newGround(t, w)
	newCrate(t, w, rl.Vector3{Y: 0.49})

	stats := w.Step(1.0 / 60.0)

	if stats.Contacts == 0 {
		t.Fatal("Expected contacts between crate and ground")
	}
	if w.JointCount() != 0 {
		t.Errorf("Expected 0 joints after step, got %d", w.JointCount())
	}
}

func TestContactEventsEnterStayExit(t *testing.T) {
	w := newTestWorld(t)
	ground := newGround(t, w)
	crate := newCrate(t, w, rl.Vector3{Y: 0.6})

	if !stepUntil(w, 60, func() bool { return hasEvent(w, ContactEnter, crate, ground) }) {
		t.Fatal("Expected an Enter event when the crate lands")
	}

	if !stepUntil(w, 30, func() bool { return hasEvent(w, ContactStay, crate, ground) }) {
		t.Error("Expected a Stay event while the crate rests")
	}

	crate.LinearVelocity = rl.Vector3{Y: 10}
	crate.Wake()
	if !stepUntil(w, 10, func() bool { return hasEvent(w, ContactExit, crate, ground) }) {
		t.Error("Expected an Exit event once the crate leaves the ground")
	}
}

func TestContactNormalPointsAtDynamicBody(t *testing.T) {
	w := newTestWorld(t)
	ground := newGround(t, w)
	crate := newCrate(t, w, rl.Vector3{Y: 0.49})

	w.Step(1.0 / 60.0)

	found := false
	for _, ev := range w.Contacts() {
		if ev.Other(crate) != ground {
			continue
		}
		found = true
		n := ev.NormalFor(crate)
		if n.Y < 0.99 {
			t.Errorf("Expected normal pointing up at the crate, got %v", n)
		}
	}
	if !found {
		t.Error("Expected a crate-ground contact event")
	}
}

func TestDetachEndsContacts(t *testing.T) {
	w := newTestWorld(t)
	ground := newGround(t, w)
	crate := newCrate(t, w, rl.Vector3{Y: 0.49})

	w.Step(1.0 / 60.0)
	w.Detach(crate)

	if crate.Attached() {
		t.Error("Detached body should not report attached")
	}
	w.Step(1.0 / 60.0)
	if !hasEvent(w, ContactExit, crate, ground) {
		t.Error("Expected Exit event after detach")
	}
	if len(w.Bodies()) != 1 {
		t.Errorf("Expected 1 body after detach, got %d", len(w.Bodies()))
	}
}

func TestDetachWakesBodiesResting(t *testing.T) {
	w := newTestWorld(t)
	newGround(t, w)
	bottom := newCrate(t, w, rl.Vector3{Y: 0.5})
	top := newCrate(t, w, rl.Vector3{Y: 1.5})

	if !stepUntil(w, 600, func() bool { return bottom.Sleeping && top.Sleeping }) {
		t.Fatal("Expected the stack to fall asleep")
	}

	w.Detach(bottom)
	if top.Sleeping {
		t.Error("Detach should wake the crate resting on the removed one")
	}

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}
	if top.Position.Y < 0.4 || top.Position.Y > 0.6 {
		t.Errorf("Expected top crate to fall to the ground at Y~0.5, got %f", top.Position.Y)
	}
}

func TestRestingBodyFallsAsleep(t *testing.T) {
	w := newTestWorld(t)
	newGround(t, w)
	crate := newCrate(t, w, rl.Vector3{Y: 0.5})

	if !stepUntil(w, 300, func() bool { return crate.Sleeping }) {
		t.Fatal("Expected resting crate to fall asleep")
	}

	crate.ApplyCentralImpulse(rl.Vector3{X: 1})
	if crate.Sleeping {
		t.Error("Impulse should wake a sleeping body")
	}
}

func TestSleepingPairKeepsStayEvent(t *testing.T) {
	w := newTestWorld(t)
	ground := newGround(t, w)
	crate := newCrate(t, w, rl.Vector3{Y: 0.5})

	if !stepUntil(w, 300, func() bool { return crate.Sleeping }) {
		t.Fatal("Expected resting crate to fall asleep")
	}
	w.Step(1.0 / 60.0)

	if hasEvent(w, ContactExit, crate, ground) {
		t.Error("Sleeping crate should not leave the ground")
	}
	if !hasEvent(w, ContactStay, crate, ground) {
		t.Error("Sleeping crate should keep its ground contact")
	}
}

func TestCloseMakesWorldInert(t *testing.T) {
	w := New(config.Physics, nil)
	crate := newCrate(t, w, rl.Vector3{Y: 10})

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if crate.Attached() {
		t.Error("Close should detach bodies")
	}

	stats := w.Step(1.0 / 60.0)
	if stats.Substeps != 0 {
		t.Errorf("Step after Close should be a no-op, ran %d substeps", stats.Substeps)
	}
	if crate.Position.Y != 10 {
		t.Errorf("Body moved after Close: %v", crate.Position)
	}

	err := w.Attach(NewBody("Late", Dynamic, Box(rl.Vector3{X: 1, Y: 1, Z: 1})))
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Second Close should be safe, got %v", err)
	}
}

func TestForcesClearedAfterStep(t *testing.T) {
	w := newTestWorld(t)
	b := newCrate(t, w, rl.Vector3{Y: 10})

	b.ApplyForce(rl.Vector3{X: 10})
	w.Step(1.0 / 60.0)

	if b.Force() != (rl.Vector3{}) {
		t.Errorf("Expected force cleared after step, got %v", b.Force())
	}
	if b.LinearVelocity.X <= 0 {
		t.Errorf("Expected force to push body along +X, got %f", b.LinearVelocity.X)
	}
}

func TestForceCarriedOverFrameWithoutSubstep(t *testing.T) {
	w := newTestWorld(t)
	b := newCrate(t, w, rl.Vector3{Y: 10})
	b.GravityScale = 0
	b.CanSleep = false
	h := config.Physics.FixedStep

	b.ApplyForce(rl.Vector3{X: 10})
	if stats := w.Step(0.6 * h); stats.Substeps != 0 {
		t.Fatalf("Expected no substep for a short frame, ran %d", stats.Substeps)
	}
	if b.LinearVelocity.X != 0 {
		t.Errorf("Velocity should not change before a substep runs, got %f", b.LinearVelocity.X)
	}

	b.ApplyForce(rl.Vector3{X: 10})
	if stats := w.Step(0.6 * h); stats.Substeps != 1 {
		t.Fatalf("Expected one substep, ran %d", stats.Substeps)
	}

	// Both frames push for their own dt: 10 N over 1.2 substeps of time on 1 kg
	want := 10 * 1.2 * h
	if absf(b.LinearVelocity.X-want) > 1e-4 {
		t.Errorf("Expected velocity %f from both frames, got %f", want, b.LinearVelocity.X)
	}
	if b.linearImpulse != (rl.Vector3{}) {
		t.Errorf("Expected carried impulse spent, got %v", b.linearImpulse)
	}
}

func TestKinematicBodyMovesByVelocity(t *testing.T) {
	w := newTestWorld(t)
	b := NewBody("Platform", Kinematic, Box(rl.Vector3{X: 1, Y: 0.1, Z: 1}))
	b.LinearVelocity = rl.Vector3{X: 1}
	if err := w.Attach(b); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	w.Step(1.0 / 60.0)

	if absf(b.Position.X-1.0/60.0) > 1e-4 {
		t.Errorf("Expected kinematic body at X=%f, got %f", 1.0/60.0, b.Position.X)
	}
	if b.Position.Y != 0 {
		t.Errorf("Gravity should not move a kinematic body, got Y=%f", b.Position.Y)
	}
}
