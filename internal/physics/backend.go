package physics

import rl "github.com/gen2brain/raylib-go/raylib"

//go:generate go tool mockgen -destination=./mocks/backend_mock.go -package=mocks . Backend

// Backend is the capability set gameplay code needs from a physics engine.
// World is the native implementation.
type Backend interface {
	Attach(b *Body) error
	Detach(b *Body)
	Step(dt float32) StepStats
	Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *Body) (RaycastHit, bool)
	Contacts() []ContactEvent
	Close() error
}
