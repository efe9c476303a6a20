package components

import (
	"testing"

	"fpsgame/internal/config"
	"fpsgame/internal/engine"
	"fpsgame/internal/input"
	"fpsgame/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const frame = float32(1.0 / 60.0)

func newPlayer() (*CharacterController, *physics.Body, *Camera) {
	g := engine.NewGameObject("Player")
	body := physics.NewBody("Player", physics.Dynamic, physics.Box(config.Player.HalfSize))
	body.LockRotation = true
	g.AddComponent(NewRigidbody(body))
	cam := NewCamera(config.Camera)
	g.AddComponent(cam)
	cc := NewCharacterController(config.Player)
	g.AddComponent(cc)
	g.Start()
	return cc, body, cam
}

func TestJumpRequiresGround(t *testing.T) {
	cc, body, _ := newPlayer()

	cc.Tick(input.Snapshot{Jump: true}, frame)
	if body.LinearVelocity.Y != 0 {
		t.Errorf("Jump in the air should not change velocity, got %f", body.LinearVelocity.Y)
	}

	cc.grounded = true
	if !cc.Jump() {
		t.Fatal("Jump should succeed when grounded")
	}
	if body.LinearVelocity.Y != config.Player.JumpImpulse {
		t.Errorf("Expected vertical velocity %f, got %f", config.Player.JumpImpulse, body.LinearVelocity.Y)
	}
	if cc.Grounded() {
		t.Error("Jump should clear the ground flag")
	}
	if cc.Jump() {
		t.Error("Second jump without landing should fail")
	}
}

func TestOverspeedIsDampedBelowMax(t *testing.T) {
	cc, body, _ := newPlayer()
	body.LinearVelocity = rl.Vector3{X: 20, Z: -5}

	steps := 0
	for ; steps < 30; steps++ {
		v := body.LinearVelocity
		if v.X*v.X+v.Z*v.Z < cc.MaxSpeed*cc.MaxSpeed {
			break
		}
		cc.Tick(input.Snapshot{}, frame)
	}

	if steps >= 30 {
		t.Fatalf("Speed still above max after %d steps: %v", steps, body.LinearVelocity)
	}
	if steps > 10 {
		t.Errorf("Expected speed below max within 10 steps, took %d", steps)
	}
}

func TestDampingLeavesVerticalVelocity(t *testing.T) {
	cc, body, _ := newPlayer()
	body.LinearVelocity = rl.Vector3{X: 3, Y: -4}

	cc.Tick(input.Snapshot{}, frame)

	if body.LinearVelocity.Y != -4 {
		t.Errorf("Vertical velocity should not be damped, got %f", body.LinearVelocity.Y)
	}
	if body.LinearVelocity.X >= 3 {
		t.Errorf("Horizontal velocity should be damped, got %f", body.LinearVelocity.X)
	}
}

func TestMoveForceFollowsCamera(t *testing.T) {
	tests := []struct {
		name string
		yaw  float32
		in   input.Snapshot
		want rl.Vector3 // unit direction
	}{
		{"forward at yaw 0", 0, input.Snapshot{Forward: true}, rl.Vector3{X: 1}},
		{"strafe right at yaw 0", 0, input.Snapshot{Right: true}, rl.Vector3{Z: 1}},
		{"back at yaw 90", 90, input.Snapshot{Back: true}, rl.Vector3{Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, body, cam := newPlayer()
			cam.Yaw = tt.yaw

			cc.Tick(tt.in, frame)

			f := body.Force()
			if d := rl.Vector3Distance(rl.Vector3Normalize(f), tt.want); d > 1e-4 {
				t.Errorf("Expected force along %v, got %v", tt.want, f)
			}
			if l := rl.Vector3Length(f); absf(l-cc.MoveForce) > 1e-3 {
				t.Errorf("Expected force %f, got %f", cc.MoveForce, l)
			}
		})
	}
}

func TestDiagonalMoveIsNormalised(t *testing.T) {
	cc, body, _ := newPlayer()

	cc.Tick(input.Snapshot{Forward: true, Right: true}, frame)

	if l := rl.Vector3Length(body.Force()); absf(l-cc.MoveForce) > 1e-3 {
		t.Errorf("Diagonal force should match straight force %f, got %f", cc.MoveForce, l)
	}
}

func TestMoveForceCappedNearMaxSpeed(t *testing.T) {
	cc, body, _ := newPlayer()
	body.LinearVelocity = rl.Vector3{X: cc.MaxSpeed - 0.1}

	cc.Tick(input.Snapshot{Forward: true}, frame)

	want := 0.1 * body.Mass / frame
	if l := rl.Vector3Length(body.Force()); absf(l-want) > 1e-2 {
		t.Errorf("Expected capped force %f, got %f", want, l)
	}
}

func TestNoForceAtMaxSpeed(t *testing.T) {
	cc, body, _ := newPlayer()
	body.LinearVelocity = rl.Vector3{X: cc.MaxSpeed}

	cc.Tick(input.Snapshot{Forward: true}, frame)

	if body.Force() != (rl.Vector3{}) {
		t.Errorf("Expected no force at max speed, got %v", body.Force())
	}

	// Reversing is still allowed
	cc.Tick(input.Snapshot{Back: true}, frame)
	if body.Force().X >= 0 {
		t.Errorf("Expected braking force along -X, got %v", body.Force())
	}
}

func TestGroundContactSetsFlag(t *testing.T) {
	cc, body, _ := newPlayer()
	ground := physics.NewBody("Ground", physics.Static, physics.Box(rl.Vector3{X: 50, Y: 0.1, Z: 50}))
	wall := physics.NewBody("Wall", physics.Static, physics.Box(rl.Vector3{X: 0.1, Y: 5, Z: 5}))

	tests := []struct {
		name string
		ev   physics.ContactEvent
		vy   float32
		want bool
	}{
		{"floor below", physics.ContactEvent{Phase: physics.ContactEnter, A: body, B: ground, Normal: rl.Vector3{Y: 1}}, 0, true},
		{"floor as A", physics.ContactEvent{Phase: physics.ContactStay, A: ground, B: body, Normal: rl.Vector3{Y: -1}}, 0, true},
		{"wall", physics.ContactEvent{Phase: physics.ContactStay, A: body, B: wall, Normal: rl.Vector3{X: 1}}, 0, false},
		{"ceiling", physics.ContactEvent{Phase: physics.ContactStay, A: body, B: ground, Normal: rl.Vector3{Y: -1}}, 0, false},
		{"rising", physics.ContactEvent{Phase: physics.ContactStay, A: body, B: ground, Normal: rl.Vector3{Y: 1}}, 3, false},
		{"exit", physics.ContactEvent{Phase: physics.ContactExit, A: body, B: ground}, 0, false},
		{"other pair", physics.ContactEvent{Phase: physics.ContactStay, A: wall, B: ground, Normal: rl.Vector3{Y: 1}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body.LinearVelocity = rl.Vector3{Y: tt.vy}
			cc.BeginContacts()
			cc.HandleContact(tt.ev)
			if cc.Grounded() != tt.want {
				t.Errorf("Expected grounded=%v, got %v", tt.want, cc.Grounded())
			}
		})
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
