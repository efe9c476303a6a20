package components

import (
	"testing"

	"fpsgame/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCameraPitchClamped(t *testing.T) {
	cam := NewCamera(config.Camera)

	cam.Look(rl.Vector2{Y: -10000})
	if cam.Pitch != cam.PitchLimit {
		t.Errorf("Expected pitch clamped to %f, got %f", cam.PitchLimit, cam.Pitch)
	}

	cam.Look(rl.Vector2{Y: 10000})
	if cam.Pitch != -cam.PitchLimit {
		t.Errorf("Expected pitch clamped to %f, got %f", -cam.PitchLimit, cam.Pitch)
	}
}

func TestCameraYawFromMouse(t *testing.T) {
	cam := NewCamera(config.Camera)

	cam.Look(rl.Vector2{X: 100})

	want := 100 * cam.Sensitivity
	if absf(cam.Yaw-want) > 1e-4 {
		t.Errorf("Expected yaw %f, got %f", want, cam.Yaw)
	}
}

func TestCameraBasis(t *testing.T) {
	cam := NewCamera(config.Camera)

	if d := rl.Vector3Distance(cam.LookDirection(), rl.Vector3{X: 1}); d > 1e-5 {
		t.Errorf("Expected look along +X, got %v", cam.LookDirection())
	}
	if d := rl.Vector3Distance(cam.Right(), rl.Vector3{Z: 1}); d > 1e-5 {
		t.Errorf("Expected right along +Z, got %v", cam.Right())
	}

	cam.Pitch = 45
	look := cam.LookDirection()
	if absf(rl.Vector3Length(look)-1) > 1e-5 {
		t.Errorf("Look direction should be unit length, got %f", rl.Vector3Length(look))
	}
	if look.Y <= 0 {
		t.Errorf("Positive pitch should look up, got %v", look)
	}
	if cam.Forward().Y != 0 {
		t.Error("Forward should stay horizontal")
	}
}

func TestCameraFollowsAtEyeHeight(t *testing.T) {
	cam := NewCamera(config.Camera)

	cam.Follow(rl.Vector3{X: 1, Y: 2, Z: 3})

	want := rl.Vector3{X: 1, Y: 2 + cam.EyeHeight, Z: 3}
	if cam.Eye() != want {
		t.Errorf("Expected eye %v, got %v", want, cam.Eye())
	}
	rc := cam.GetRaylibCamera()
	if rc.Position != want {
		t.Errorf("Expected raylib camera at %v, got %v", want, rc.Position)
	}
	if rc.Fovy != cam.FOV {
		t.Errorf("Expected FOV %f, got %f", cam.FOV, rc.Fovy)
	}
}

func TestCameraAimAt(t *testing.T) {
	cam := NewCamera(config.Camera)
	cam.Follow(rl.Vector3{})

	target := rl.Vector3{X: 3, Y: cam.EyeHeight + 1, Z: 3}
	cam.AimAt(target)

	want := rl.Vector3Normalize(rl.Vector3Subtract(target, cam.Eye()))
	if d := rl.Vector3Distance(cam.LookDirection(), want); d > 1e-4 {
		t.Errorf("Expected look %v, got %v", want, cam.LookDirection())
	}

	cam.AimAt(rl.Vector3{Y: 50})
	if cam.Pitch != cam.PitchLimit {
		t.Errorf("Expected pitch clamped to %f, got %f", cam.PitchLimit, cam.Pitch)
	}
}
