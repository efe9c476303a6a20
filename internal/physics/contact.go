package physics

import (
	"fpsgame/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// restitutionThreshold is the closing speed below which contacts don't bounce
const restitutionThreshold = 1.0

// Contact is one point of overlap between two bodies, produced by the space
// and consumed by the joint group. Normal points from B towards A.
type Contact struct {
	A, B   *Body
	Point  rl.Vector3
	Normal rl.Vector3
	Depth  float32
}

type ContactPhase int

const (
	ContactEnter ContactPhase = iota // first step the pair touches
	ContactStay
	ContactExit // pair stopped touching this step
)

func (p ContactPhase) String() string {
	switch p {
	case ContactEnter:
		return "enter"
	case ContactStay:
		return "stay"
	case ContactExit:
		return "exit"
	}
	return "unknown"
}

// ContactEvent is the message form of a touching pair, delivered after a Step.
// Point, Normal and Depth come from the deepest contact of the last substep and
// are zero for ContactExit.
type ContactEvent struct {
	Phase  ContactPhase
	A, B   *Body
	Point  rl.Vector3
	Normal rl.Vector3
	Depth  float32
}

// Other returns the body in the pair that isn't b, or nil if b is not in it
func (e ContactEvent) Other(b *Body) *Body {
	switch b {
	case e.A:
		return e.B
	case e.B:
		return e.A
	}
	return nil
}

// NormalFor returns the contact normal oriented to point at b
func (e ContactEvent) NormalFor(b *Body) rl.Vector3 {
	if b == e.B {
		return rl.Vector3Negate(e.Normal)
	}
	return e.Normal
}

// ContactJoint is a one-substep constraint keeping a contact from closing,
// with two friction directions
type ContactJoint struct {
	Contact

	rA, rB rl.Vector3
	t1, t2 rl.Vector3

	massN, massT1, massT2 float32
	bias                  float32
	friction              float32

	accN, accT1, accT2 float32
}

// JointGroup holds the contact joints of the current substep
type JointGroup struct {
	cfg    config.PhysicsConfig
	joints []ContactJoint
}

func NewJointGroup(cfg config.PhysicsConfig) *JointGroup {
	return &JointGroup{cfg: cfg}
}

// Add turns a contact into a joint prepared for a substep of h seconds
func (g *JointGroup) Add(c Contact, h float32) {
	a, b := c.A, c.B
	n := c.Normal

	j := ContactJoint{Contact: c}
	j.rA = rl.Vector3Subtract(c.Point, a.Position)
	j.rB = rl.Vector3Subtract(c.Point, b.Position)
	j.t1, j.t2 = tangentBasis(n)

	j.massN = inverseOf(effectiveMass(a, b, j.rA, j.rB, n))
	j.massT1 = inverseOf(effectiveMass(a, b, j.rA, j.rB, j.t1))
	j.massT2 = inverseOf(effectiveMass(a, b, j.rA, j.rB, j.t2))
	j.friction = mixFriction(a.Friction, b.Friction)

	if h > 0 {
		j.bias = g.cfg.Baumgarte / h * max(0, c.Depth-g.cfg.Slop)
	}

	vn := rl.Vector3DotProduct(relativeVelocity(a, b, j.rA, j.rB), n)
	if vn < -restitutionThreshold {
		j.bias = max(j.bias, -mixBounce(a.Bounce, b.Bounce)*vn)
	}

	g.joints = append(g.joints, j)
}

// Solve runs sequential impulse iterations over every joint
func (g *JointGroup) Solve(iterations int) {
	for it := 0; it < iterations; it++ {
		for i := range g.joints {
			g.joints[i].solve()
		}
	}
}

// Len returns the number of live joints
func (g *JointGroup) Len() int {
	return len(g.joints)
}

// Clear empties the group, keeping the backing storage
func (g *JointGroup) Clear() {
	g.joints = g.joints[:0]
}

func (j *ContactJoint) solve() {
	a, b := j.A, j.B
	n := j.Normal

	// Normal impulse, accumulated and kept non-negative
	vn := rl.Vector3DotProduct(relativeVelocity(a, b, j.rA, j.rB), n)
	dn := j.massN * (j.bias - vn)
	prev := j.accN
	j.accN = max(prev+dn, 0)
	dn = j.accN - prev
	j.apply(rl.Vector3Scale(n, dn))

	// Coulomb friction bounded by the current normal impulse
	limit := j.friction * j.accN
	for _, f := range []struct {
		t    rl.Vector3
		mass float32
		acc  *float32
	}{
		{j.t1, j.massT1, &j.accT1},
		{j.t2, j.massT2, &j.accT2},
	} {
		vt := rl.Vector3DotProduct(relativeVelocity(a, b, j.rA, j.rB), f.t)
		dt := -f.mass * vt
		prev := *f.acc
		*f.acc = clampf(prev+dt, -limit, limit)
		dt = *f.acc - prev
		j.apply(rl.Vector3Scale(f.t, dt))
	}
}

// apply pushes A along p and B against it
func (j *ContactJoint) apply(p rl.Vector3) {
	j.A.applyImpulseAt(p, j.rA)
	j.B.applyImpulseAt(rl.Vector3Negate(p), j.rB)
}

func relativeVelocity(a, b *Body, rA, rB rl.Vector3) rl.Vector3 {
	vA := rl.Vector3Add(a.LinearVelocity, rl.Vector3CrossProduct(a.AngularVelocity, rA))
	vB := rl.Vector3Add(b.LinearVelocity, rl.Vector3CrossProduct(b.AngularVelocity, rB))
	return rl.Vector3Subtract(vA, vB)
}

// effectiveMass returns the inverse mass seen by an impulse along dir
func effectiveMass(a, b *Body, rA, rB, dir rl.Vector3) float32 {
	k := a.invMass + b.invMass
	if !a.LockRotation && a.invMass > 0 {
		rn := rl.Vector3CrossProduct(rA, dir)
		k += rl.Vector3DotProduct(rl.Vector3CrossProduct(mulVec(a.invInertiaWorld, rn), rA), dir)
	}
	if !b.LockRotation && b.invMass > 0 {
		rn := rl.Vector3CrossProduct(rB, dir)
		k += rl.Vector3DotProduct(rl.Vector3CrossProduct(mulVec(b.invInertiaWorld, rn), rB), dir)
	}
	return k
}

func inverseOf(k float32) float32 {
	if k <= 0 {
		return 0
	}
	return 1 / k
}
