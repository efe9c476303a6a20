package config

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhysicsConfig contains world-level simulation parameters
type PhysicsConfig struct {
	Gravity rl.Vector3

	// Stepping
	FixedStep   float32 // seconds per substep
	MaxSubsteps int     // substeps per Step call; leftover time is dropped
	Iterations  int     // contact solver iterations per substep

	// Contact response
	Baumgarte       float32 // positional error correction factor
	Slop            float32 // penetration allowed before correction kicks in
	DefaultBounce   float32
	DefaultFriction float32

	// Sleep
	SleepLinear  float32 // units/sec
	SleepAngular float32 // rad/sec
	SleepTime    float32 // seconds below thresholds before sleeping

	// Broad-phase
	CellSize float32
}

// PlayerConfig contains player body and movement values
type PlayerConfig struct {
	Position rl.Vector3
	HalfSize rl.Vector3
	Mass     float32
	Friction float32

	// Movement
	MoveForce        float32 // newtons applied while a movement key is held
	MaxSpeed         float32 // horizontal speed cap for applied force
	JumpImpulse      float32
	Damping          float32 // horizontal velocity retained per 1/60 s
	OverspeedDamping float32 // retained per 1/60 s while above MaxSpeed
	GroundNormalY    float32 // min contact normal Y counted as ground
}

// WeaponConfig contains ammo, reload, and hit values
type WeaponConfig struct {
	Capacity   int
	StartAmmo  int
	Reserve    int // rounds a reload may draw from; UnlimitedReserve always fills the clip
	ReloadTime time.Duration
	Cooldown   time.Duration
	AutoReload bool
	Range      float32
	Damage     float32
	Impulse    float32
}

// CameraConfig contains mouse-look values
type CameraConfig struct {
	Sensitivity float32 // degrees per pixel of mouse movement
	PitchLimit  float32 // degrees
	EyeHeight   float32 // above player body center
	FOV         float32
}

// WindowConfig contains window values for the game shell
type WindowConfig struct {
	Width     int32
	Height    int32
	Title     string
	TargetFPS int32
}

// BoxConfig contains defaults for scene props
type BoxConfig struct {
	HalfSize rl.Vector3
	Mass     float32
	Friction float32
	Bounce   float32
	Health   float32
}

// UnlimitedReserve disables reserve accounting for reloads.
const UnlimitedReserve = -1

var Physics PhysicsConfig
var Player PlayerConfig
var Weapon WeaponConfig
var Camera CameraConfig
var Window WindowConfig
var Box BoxConfig

func init() {
	Physics = PhysicsConfig{
		Gravity:         rl.Vector3{X: 0, Y: -9.81, Z: 0},
		FixedStep:       1.0 / 120.0,
		MaxSubsteps:     8,
		Iterations:      8,
		Baumgarte:       0.2,
		Slop:            0.005,
		DefaultBounce:   0.1,
		DefaultFriction: 0.5,
		SleepLinear:     0.05,
		SleepAngular:    0.05,
		SleepTime:       0.5,
		CellSize:        5.0,
	}

	Player = PlayerConfig{
		Position:         rl.Vector3{X: 0, Y: 2, Z: 0},
		HalfSize:         rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
		Mass:             1.0,
		Friction:         0.5,
		MoveForce:        40.0,
		MaxSpeed:         5.0,
		JumpImpulse:      5.0,
		Damping:          0.9,
		OverspeedDamping: 0.8,
		GroundNormalY:    0.7,
	}

	Weapon = WeaponConfig{
		Capacity:   20,
		StartAmmo:  0,
		Reserve:    UnlimitedReserve,
		ReloadTime: 2 * time.Second,
		Cooldown:   150 * time.Millisecond,
		AutoReload: true,
		Range:      100.0,
		Damage:     25.0,
		Impulse:    4.0,
	}

	Camera = CameraConfig{
		Sensitivity: 0.2,
		PitchLimit:  80.0,
		EyeHeight:   1.0,
		FOV:         70.0,
	}

	Window = WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "FPS Sample",
		TargetFPS: 120,
	}

	Box = BoxConfig{
		HalfSize: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
		Mass:     1.0,
		Friction: 0.5,
		Bounce:   0.1,
		Health:   100.0,
	}
}
