package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

type BodyKind int

const (
	Dynamic   BodyKind = iota // integrated and pushed by contacts
	Kinematic                 // moved by its velocity, never pushed
	Static                    // never moves
)

func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	}
	return "unknown"
}

// Body is a rigid body simulated by a World. Gameplay code may read its state
// and apply forces or impulses between steps; the world owns integration.
type Body struct {
	ID    uint64
	Name  string
	Kind  BodyKind
	Shape Shape
	Owner any // back-reference for gameplay code, never touched by the world

	Position        rl.Vector3
	Orientation     rl.Quaternion
	LinearVelocity  rl.Vector3
	AngularVelocity rl.Vector3 // radians per second, world space

	Mass           float32
	Friction       float32 // 0 = ice
	Bounce         float32 // 0 = no bounce, 1 = perfect bounce
	LinearDamping  float32 // fraction of velocity lost per second
	AngularDamping float32 // fraction of angular velocity lost per second
	GravityScale   float32
	LockRotation   bool // infinite inertia, e.g. the player capsule stand-in

	// Sleep state - sleeping bodies skip integration until woken
	Sleeping   bool
	CanSleep   bool
	sleepTimer float32

	invMass         float32
	invInertia      mgl32.Mat3 // local space
	invInertiaWorld mgl32.Mat3

	force  rl.Vector3
	torque rl.Vector3

	// Force and torque integrated over caller time, carried until a substep runs
	linearImpulse  rl.Vector3
	angularImpulse rl.Vector3

	world *World
}

// NewBody creates a body with default material values
func NewBody(name string, kind BodyKind, shape Shape) *Body {
	return &Body{
		Name:           name,
		Kind:           kind,
		Shape:          shape,
		Orientation:    rl.QuaternionIdentity(),
		Mass:           1.0,
		Friction:       0.5,
		Bounce:         0.1,
		AngularDamping: 0.1,
		GravityScale:   1.0,
		CanSleep:       kind == Dynamic,
	}
}

// updateMassProperties recomputes inverse mass and inertia from Mass and Shape
func (b *Body) updateMassProperties() {
	if b.Kind != Dynamic || b.Mass <= 0 {
		b.invMass = 0
		b.invInertia = mgl32.Mat3{}
		b.invInertiaWorld = mgl32.Mat3{}
		return
	}
	b.invMass = 1 / b.Mass
	if b.LockRotation {
		b.invInertia = mgl32.Mat3{}
	} else {
		b.invInertia = b.Shape.Inertia(b.Mass).Inv()
	}
	b.updateWorldInertia()
}

// updateWorldInertia rotates the local inverse inertia into world space: R·I⁻¹·Rᵀ
func (b *Body) updateWorldInertia() {
	if b.invMass == 0 || b.LockRotation {
		b.invInertiaWorld = mgl32.Mat3{}
		return
	}
	r := rotationMatrix(b.Orientation)
	b.invInertiaWorld = r.Mul3(b.invInertia).Mul3(r.Transpose())
}

// InverseMass returns 0 for static, kinematic and massless bodies
func (b *Body) InverseMass() float32 {
	return b.invMass
}

// InverseInertiaWorld returns the world-space inverse inertia tensor
func (b *Body) InverseInertiaWorld() mgl32.Mat3 {
	return b.invInertiaWorld
}

// ApplyForce accumulates a force at the center of mass for the next Step call.
// The force acts over that call's dt even if no substep runs in it.
func (b *Body) ApplyForce(f rl.Vector3) {
	if b.Kind != Dynamic {
		return
	}
	b.force = rl.Vector3Add(b.force, f)
	b.Wake()
}

// ApplyTorque accumulates a torque for the next Step call
func (b *Body) ApplyTorque(t rl.Vector3) {
	if b.Kind != Dynamic {
		return
	}
	b.torque = rl.Vector3Add(b.torque, t)
	b.Wake()
}

// ApplyCentralImpulse changes linear velocity immediately
func (b *Body) ApplyCentralImpulse(j rl.Vector3) {
	b.updateMassProperties()
	if b.invMass == 0 {
		return
	}
	b.LinearVelocity = rl.Vector3Add(b.LinearVelocity, rl.Vector3Scale(j, b.invMass))
	b.Wake()
}

// ApplyImpulse applies an impulse at a world-space point, changing both linear
// and angular velocity
func (b *Body) ApplyImpulse(j, point rl.Vector3) {
	b.updateMassProperties()
	if b.invMass == 0 {
		return
	}
	r := rl.Vector3Subtract(point, b.Position)
	b.applyImpulseAt(j, r)
	b.Wake()
}

// applyImpulseAt applies j at offset r from the center of mass without waking
func (b *Body) applyImpulseAt(j, r rl.Vector3) {
	if b.invMass == 0 {
		return
	}
	b.LinearVelocity = rl.Vector3Add(b.LinearVelocity, rl.Vector3Scale(j, b.invMass))
	if b.LockRotation {
		return
	}
	dw := mulVec(b.invInertiaWorld, rl.Vector3CrossProduct(r, j))
	b.AngularVelocity = rl.Vector3Add(b.AngularVelocity, dw)
}

// VelocityAt returns the velocity of a world-space point attached to the body
func (b *Body) VelocityAt(point rl.Vector3) rl.Vector3 {
	r := rl.Vector3Subtract(point, b.Position)
	return rl.Vector3Add(b.LinearVelocity, rl.Vector3CrossProduct(b.AngularVelocity, r))
}

// Wake forces the body out of sleep state
func (b *Body) Wake() {
	b.Sleeping = false
	b.sleepTimer = 0
}

// ClearForces drops accumulated force and torque, including any carried over
// from a Step that ran no substep
func (b *Body) ClearForces() {
	b.force = rl.Vector3{}
	b.torque = rl.Vector3{}
	b.linearImpulse = rl.Vector3{}
	b.angularImpulse = rl.Vector3{}
}

// integrateForces turns the accumulated force and torque into impulse over dt
func (b *Body) integrateForces(dt float32) {
	b.linearImpulse = rl.Vector3Add(b.linearImpulse, rl.Vector3Scale(b.force, dt))
	b.angularImpulse = rl.Vector3Add(b.angularImpulse, rl.Vector3Scale(b.torque, dt))
	b.force = rl.Vector3{}
	b.torque = rl.Vector3{}
}

// Force returns the force accumulated for the next step
func (b *Body) Force() rl.Vector3 {
	return b.force
}

// Attached reports whether the body currently belongs to a world
func (b *Body) Attached() bool {
	return b.world != nil
}

// trySleep puts a slow dynamic body to sleep after a grace period
func (b *Body) trySleep(h, linear, angular, grace float32) {
	if !b.CanSleep || b.Sleeping || b.Kind != Dynamic {
		return
	}
	if rl.Vector3Length(b.LinearVelocity) < linear && rl.Vector3Length(b.AngularVelocity) < angular {
		b.sleepTimer += h
		if b.sleepTimer >= grace {
			b.Sleeping = true
			b.LinearVelocity = rl.Vector3{}
			b.AngularVelocity = rl.Vector3{}
		}
		return
	}
	b.sleepTimer = 0
}

// OBB returns the oriented bounding box of a box-shaped body
func (b *Body) OBB() OBB {
	return NewOBB(b.Position, b.Shape.HalfExtents, b.Orientation)
}

// Bounds returns a world-space AABB enclosing the body
func (b *Body) Bounds() AABB {
	if b.Shape.Kind == ShapeSphere {
		r := b.Shape.Radius
		return NewAABBFromCenter(b.Position, rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r})
	}
	o := b.OBB()
	var ext rl.Vector3
	for i, h := range [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z} {
		a := o.Axes[i]
		ext.X += absf(a.X) * h
		ext.Y += absf(a.Y) * h
		ext.Z += absf(a.Z) * h
	}
	return NewAABBFromCenter(b.Position, rl.Vector3Scale(ext, 2))
}
