package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LookProvider is implemented by components that control the view.
// The character controller and weapon read their basis from it.
type LookProvider interface {
	LookDirection() rl.Vector3
	Forward() rl.Vector3 // horizontal, unit length
	Right() rl.Vector3   // horizontal, unit length
	Eye() rl.Vector3
}

// CollisionHandler is implemented by components that want to receive collision callbacks.
// The world dispatches them from physics contact events after each step.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
	OnCollisionExit(other *GameObject)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
