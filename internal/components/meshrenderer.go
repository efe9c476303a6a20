package components

import (
	"math"

	"fpsgame/internal/engine"
	"fpsgame/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshRenderer draws its object as the primitive matching its collider
type MeshRenderer struct {
	engine.BaseComponent
	Color  rl.Color
	Wires  bool
	Hidden bool
}

func NewMeshRenderer(color rl.Color) *MeshRenderer {
	return &MeshRenderer{Color: color, Wires: true}
}

// Draw must be called inside BeginMode3D
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.Hidden {
		return
	}

	pos := g.Transform.Position
	rot := rl.QuaternionIdentity()
	if rb := engine.GetComponent[*Rigidbody](g); rb != nil && rb.Body() != nil {
		pos = rb.Body().Position
		rot = rb.Body().Orientation
	}

	if s := engine.GetComponent[*SphereCollider](g); s != nil {
		rl.DrawSphere(pos, s.Radius, m.Color)
		if m.Wires {
			rl.DrawSphereWires(pos, s.Radius, 8, 8, rl.DarkGray)
		}
		return
	}

	size := rl.Vector3{X: 1, Y: 1, Z: 1}
	if b := engine.GetComponent[*BoxCollider](g); b != nil {
		size = b.Size
	}

	axis, angle := AxisAngle(rot)

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)
	rl.DrawCube(rl.Vector3Zero(), size.X, size.Y, size.Z, m.Color)
	if m.Wires {
		rl.DrawCubeWires(rl.Vector3Zero(), size.X, size.Y, size.Z, rl.DarkGray)
	}
	rl.PopMatrix()
}

// AxisAngle converts a unit quaternion to a rotation axis and angle in radians.
// The identity maps to (0,1,0) and 0.
func AxisAngle(q rl.Quaternion) (rl.Vector3, float32) {
	q = rl.QuaternionNormalize(q)
	if q.W < 0 {
		q = rl.Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
	}
	s := float32(math.Sqrt(float64(1 - q.W*q.W)))
	if s < 1e-5 {
		return rl.Vector3{Y: 1}, 0
	}
	angle := 2 * float32(math.Acos(float64(min(q.W, 1))))
	return rl.Vector3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}, angle
}

// BodyOf returns the physics body of a GameObject, if it has one
func BodyOf(g *engine.GameObject) *physics.Body {
	if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
		return rb.Body()
	}
	return nil
}
