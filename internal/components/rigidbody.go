package components

import (
	"fpsgame/internal/engine"
	"fpsgame/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody binds a GameObject to a physics body. The world owns the body's
// state; SyncTransform copies it back for drawing and gameplay.
type Rigidbody struct {
	engine.BaseComponent
	body *physics.Body
}

func NewRigidbody(body *physics.Body) *Rigidbody {
	return &Rigidbody{body: body}
}

func (r *Rigidbody) SetGameObject(g *engine.GameObject) {
	r.BaseComponent.SetGameObject(g)
	if r.body != nil {
		r.body.Owner = g
	}
}

// Body returns the simulated body
func (r *Rigidbody) Body() *physics.Body {
	return r.body
}

// SyncTransform copies position and orientation into the GameObject transform
func (r *Rigidbody) SyncTransform() {
	g := r.GetGameObject()
	if g == nil || r.body == nil {
		return
	}
	g.Transform.Position = r.body.Position
	g.Transform.Rotation = rl.Vector3Scale(rl.QuaternionToEuler(r.body.Orientation), rl.Rad2deg)
}

// OwnerOf returns the GameObject a body belongs to, if any
func OwnerOf(b *physics.Body) *engine.GameObject {
	if b == nil {
		return nil
	}
	g, _ := b.Owner.(*engine.GameObject)
	return g
}
