package components

import (
	"math"

	"fpsgame/internal/config"
	"fpsgame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is a first-person view driven by mouse look. It sits on the player
// object and follows the player body at eye height.
type Camera struct {
	engine.BaseComponent
	Yaw         float32 // degrees, 0 looks along +X
	Pitch       float32 // degrees, positive looks up
	Sensitivity float32
	PitchLimit  float32
	EyeHeight   float32
	FOV         float32

	eye rl.Vector3
}

var _ engine.LookProvider = (*Camera)(nil)

func NewCamera(cfg config.CameraConfig) *Camera {
	return &Camera{
		Sensitivity: cfg.Sensitivity,
		PitchLimit:  cfg.PitchLimit,
		EyeHeight:   cfg.EyeHeight,
		FOV:         cfg.FOV,
	}
}

// Look turns the view by a mouse delta in pixels
func (c *Camera) Look(delta rl.Vector2) {
	c.Yaw += delta.X * c.Sensitivity
	c.Pitch -= delta.Y * c.Sensitivity

	// Keep yaw bounded so long sessions don't lose precision
	c.Yaw = float32(math.Mod(float64(c.Yaw), 360))

	if c.Pitch > c.PitchLimit {
		c.Pitch = c.PitchLimit
	}
	if c.Pitch < -c.PitchLimit {
		c.Pitch = -c.PitchLimit
	}
}

// Follow places the eye above the given body position
func (c *Camera) Follow(position rl.Vector3) {
	c.eye = rl.Vector3{X: position.X, Y: position.Y + c.EyeHeight, Z: position.Z}
}

// AimAt turns the view from the eye toward a world point, within the pitch limit
func (c *Camera) AimAt(target rl.Vector3) {
	d := rl.Vector3Subtract(target, c.eye)
	length := rl.Vector3Length(d)
	if length == 0 {
		return
	}
	c.Yaw = float32(math.Atan2(float64(d.Z), float64(d.X))) * rl.Rad2deg
	c.Pitch = float32(math.Asin(float64(d.Y/length))) * rl.Rad2deg
	c.Pitch = min(max(c.Pitch, -c.PitchLimit), c.PitchLimit)
}

func (c *Camera) Eye() rl.Vector3 {
	return c.eye
}

func (c *Camera) LookDirection() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

func (c *Camera) Forward() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{X: float32(math.Cos(yawRad)), Y: 0, Z: float32(math.Sin(yawRad))}
}

func (c *Camera) Right() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{X: float32(-math.Sin(yawRad)), Y: 0, Z: float32(math.Cos(yawRad))}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.eye,
		Target:     rl.Vector3Add(c.eye, c.LookDirection()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
