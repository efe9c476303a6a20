package components

import (
	"math"

	"fpsgame/internal/config"
	"fpsgame/internal/engine"
	"fpsgame/internal/input"
	"fpsgame/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// groundRiseSpeed is the upward speed above which a floor contact no longer
// counts as standing, so a jump can't be re-triggered on takeoff
const groundRiseSpeed = 0.5

// CharacterController drives the player rigid body from an input snapshot.
// Movement is force based and horizontal damping is applied on top of contact
// friction.
type CharacterController struct {
	engine.BaseComponent

	MoveForce        float32
	MaxSpeed         float32
	JumpImpulse      float32
	Damping          float32 // horizontal velocity kept per 1/60 s
	OverspeedDamping float32 // used instead of Damping above MaxSpeed
	GroundNormalY    float32

	grounded bool
	body     *physics.Body
	look     engine.LookProvider
}

func NewCharacterController(cfg config.PlayerConfig) *CharacterController {
	return &CharacterController{
		MoveForce:        cfg.MoveForce,
		MaxSpeed:         cfg.MaxSpeed,
		JumpImpulse:      cfg.JumpImpulse,
		Damping:          cfg.Damping,
		OverspeedDamping: cfg.OverspeedDamping,
		GroundNormalY:    cfg.GroundNormalY,
	}
}

func (c *CharacterController) Start() {
	c.resolve()
}

// resolve finds the body and view on the owning object
func (c *CharacterController) resolve() {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	if c.body == nil {
		if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
			c.body = rb.Body()
		}
	}
	if c.look == nil {
		if lp, ok := engine.FindComponent[engine.LookProvider](g); ok {
			c.look = lp
		}
	}
}

// Tick applies one frame of input. Forces land on the next physics step.
func (c *CharacterController) Tick(in input.Snapshot, dt float32) {
	if dt <= 0 {
		return
	}
	c.resolve()
	if c.body == nil {
		return
	}
	if c.look != nil {
		c.move(in, dt)
	}
	if in.Jump {
		c.Jump()
	}
	c.damp(dt)
}

func (c *CharacterController) move(in input.Snapshot, dt float32) {
	if !in.Moving() {
		return
	}
	fwd, strafe := in.Axes()

	wish := rl.Vector3Add(rl.Vector3Scale(c.look.Forward(), fwd), rl.Vector3Scale(c.look.Right(), strafe))
	wish.Y = 0
	l := rl.Vector3Length(wish)
	if l < 1e-6 {
		return
	}
	wish = rl.Vector3Scale(wish, 1/l)

	// Only push while the speed along the wish direction is below the cap
	v := c.body.LinearVelocity
	s := v.X*wish.X + v.Z*wish.Z
	if s >= c.MaxSpeed {
		return
	}
	force := min(c.MoveForce, (c.MaxSpeed-s)*c.body.Mass/dt)
	c.body.ApplyForce(rl.Vector3Scale(wish, force))
}

func (c *CharacterController) damp(dt float32) {
	v := c.body.LinearVelocity
	speed := float32(math.Hypot(float64(v.X), float64(v.Z)))
	if speed == 0 {
		return
	}
	k := c.Damping
	if speed > c.MaxSpeed {
		k = c.OverspeedDamping
	}
	f := float32(math.Pow(float64(k), float64(dt*60)))
	c.body.LinearVelocity.X *= f
	c.body.LinearVelocity.Z *= f
}

// Jump applies the jump impulse if standing on something. The ground flag is
// consumed until the next ground contact.
func (c *CharacterController) Jump() bool {
	c.resolve()
	if !c.grounded || c.body == nil {
		return false
	}
	c.body.ApplyCentralImpulse(rl.Vector3{Y: c.JumpImpulse})
	c.grounded = false
	return true
}

func (c *CharacterController) Grounded() bool {
	return c.grounded
}

// BeginContacts resets the ground flag before a batch of contact events
func (c *CharacterController) BeginContacts() {
	c.grounded = false
}

// HandleContact sets the ground flag from a contact whose normal points up
// at the player
func (c *CharacterController) HandleContact(ev physics.ContactEvent) {
	c.resolve()
	if ev.Phase == physics.ContactExit || c.body == nil {
		return
	}
	if ev.Other(c.body) == nil {
		return
	}
	n := ev.NormalFor(c.body)
	if n.Y >= c.GroundNormalY && c.body.LinearVelocity.Y <= groundRiseSpeed {
		c.grounded = true
	}
}
