package components

import (
	"fpsgame/internal/engine"
	"fpsgame/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider describes the physics shape of a GameObject
type Collider interface {
	Shape() physics.Shape
}

type BoxCollider struct {
	engine.BaseComponent
	Size rl.Vector3 // full extents
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) Shape() physics.Shape {
	return physics.Box(rl.Vector3Scale(b.Size, 0.5))
}
