package physics

import (
	"errors"
	"fmt"

	"fpsgame/internal/config"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrClosed      = errors.New("physics: world closed")
	ErrInvalidBody = errors.New("physics: invalid body")
)

// StepStats describes what one Step call did
type StepStats struct {
	Substeps int     // fixed substeps run
	Contacts int     // contacts found across all substeps
	Dropped  float32 // seconds discarded because MaxSubsteps was hit
}

// World owns the bodies, the collision space and the contact joint group, and
// advances them in fixed substeps. It is created at scene load and closed at
// scene unload; nothing is shared between worlds.
type World struct {
	cfg    config.PhysicsConfig
	logger *log.Logger

	bodies []*Body
	space  *Space
	joints *JointGroup
	nextID uint64

	accumulator float32
	closed      bool

	// Pair tracking for Enter/Stay/Exit
	active  map[pairKey]ContactEvent
	current map[pairKey]ContactEvent
	events  []ContactEvent
}

var _ Backend = (*World)(nil)

// New creates an empty world. A nil logger uses the package default.
func New(cfg config.PhysicsConfig, logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.FixedStep <= 0 {
		cfg.FixedStep = 1.0 / 120.0
	}
	if cfg.MaxSubsteps <= 0 {
		cfg.MaxSubsteps = 1
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 1
	}
	return &World{
		cfg:     cfg,
		logger:  logger,
		space:   NewSpace(cfg.CellSize, cfg.Slop),
		joints:  NewJointGroup(cfg),
		active:  make(map[pairKey]ContactEvent),
		current: make(map[pairKey]ContactEvent),
	}
}

// Attach adds a body to the world and assigns its ID
func (w *World) Attach(b *Body) error {
	if w.closed {
		return ErrClosed
	}
	if b == nil {
		return fmt.Errorf("%w: nil", ErrInvalidBody)
	}
	if !b.Shape.valid() {
		return fmt.Errorf("%w: %q has an empty %s shape", ErrInvalidBody, b.Name, b.Shape.Kind)
	}
	if b.Kind == Dynamic && b.Mass <= 0 {
		return fmt.Errorf("%w: dynamic body %q has mass %v", ErrInvalidBody, b.Name, b.Mass)
	}
	if b.world != nil {
		return fmt.Errorf("%w: %q is already attached", ErrInvalidBody, b.Name)
	}

	w.nextID++
	b.ID = w.nextID
	b.world = w
	b.updateMassProperties()
	w.bodies = append(w.bodies, b)
	w.logger.Debug("physics: body attached", "name", b.Name, "kind", b.Kind, "shape", b.Shape.Kind)
	return nil
}

// Detach removes a body. Bodies touching it are woken, and pairs it was part
// of end with an Exit event on the next Step.
func (w *World) Detach(b *Body) {
	if b == nil || b.world != w {
		return
	}
	for _, ev := range w.active {
		switch b {
		case ev.A:
			ev.B.Wake()
		case ev.B:
			ev.A.Wake()
		}
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
}

// Bodies returns the attached bodies in attach order
func (w *World) Bodies() []*Body {
	return w.bodies
}

// JointCount returns the number of live contact joints. It is zero between steps.
func (w *World) JointCount() int {
	return w.joints.Len()
}

// Step advances the simulation by dt using fixed substeps. Contact events for
// the step replace those of the previous one.
func (w *World) Step(dt float32) StepStats {
	var stats StepStats
	if w.closed || dt <= 0 {
		return stats
	}

	w.accumulator += dt
	for _, b := range w.bodies {
		b.integrateForces(dt)
	}

	n := 0
	for acc := w.accumulator; acc >= w.cfg.FixedStep && n < w.cfg.MaxSubsteps; acc -= w.cfg.FixedStep {
		n++
	}
	for stats.Substeps < n {
		stats.Contacts += w.substep(w.cfg.FixedStep, 1/float32(n))
		w.accumulator -= w.cfg.FixedStep
		stats.Substeps++
	}
	if w.accumulator >= w.cfg.FixedStep {
		stats.Dropped = w.accumulator
		w.accumulator = 0
		w.logger.Debug("physics: dropped simulation time", "seconds", stats.Dropped)
	}

	// Without a substep the force impulse waits for the next Step
	if n > 0 {
		for _, b := range w.bodies {
			b.ClearForces()
		}
	}
	if stats.Substeps > 0 {
		w.collectEvents()
	} else {
		w.events = w.events[:0]
	}
	return stats
}

// substep runs one fixed step of h seconds, applying share of each body's
// force impulse, and returns the contact count
func (w *World) substep(h, share float32) int {
	// Forces and gravity
	for _, b := range w.bodies {
		if b.Kind != Dynamic || b.Sleeping {
			continue
		}
		b.updateWorldInertia()
		g := rl.Vector3Scale(w.cfg.Gravity, b.GravityScale*h)
		b.LinearVelocity = rl.Vector3Add(b.LinearVelocity, g)
		b.LinearVelocity = rl.Vector3Add(b.LinearVelocity, rl.Vector3Scale(b.linearImpulse, b.invMass*share))
		if !b.LockRotation {
			dw := mulVec(b.invInertiaWorld, rl.Vector3Scale(b.angularImpulse, share))
			b.AngularVelocity = rl.Vector3Add(b.AngularVelocity, dw)
		}
	}

	// Collision detection feeds the joint group
	contacts := w.space.Collide(w.bodies)
	for _, c := range contacts {
		w.joints.Add(c, h)
		w.record(c)
	}
	w.joints.Solve(w.cfg.Iterations)

	// Integrate
	for _, b := range w.bodies {
		switch {
		case b.Kind == Static:
			continue
		case b.Kind == Dynamic && b.Sleeping:
			continue
		}
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.LinearVelocity, h))
		if !b.LockRotation && rl.Vector3LengthSqr(b.AngularVelocity) > 0 {
			b.Orientation = integrateOrientation(b.Orientation, b.AngularVelocity, h)
		}
		if b.Kind == Dynamic {
			b.LinearVelocity = rl.Vector3Scale(b.LinearVelocity, retain(b.LinearDamping, h))
			b.AngularVelocity = rl.Vector3Scale(b.AngularVelocity, retain(b.AngularDamping, h))
			b.trySleep(h, w.cfg.SleepLinear, w.cfg.SleepAngular, w.cfg.SleepTime)
		}
	}

	w.joints.Clear()
	return len(contacts)
}

// record keeps the deepest contact of each touching pair for the current step
func (w *World) record(c Contact) {
	key := makePairKey(c.A, c.B)
	if prev, ok := w.current[key]; ok && prev.Depth >= c.Depth {
		return
	}
	w.current[key] = ContactEvent{A: c.A, B: c.B, Point: c.Point, Normal: c.Normal, Depth: c.Depth}
}

func (w *World) collectEvents() {
	w.events = w.events[:0]

	for key, ev := range w.current {
		if _, ok := w.active[key]; ok {
			ev.Phase = ContactStay
		} else {
			ev.Phase = ContactEnter
		}
		w.events = append(w.events, ev)
	}
	for key, ev := range w.active {
		_, touching := w.current[key]
		// A sleeping pair stays in contact without being tested
		idle := (ev.A.Sleeping || ev.A.Kind == Static) && (ev.B.Sleeping || ev.B.Kind == Static)
		if !touching && idle && ev.A.Attached() && ev.B.Attached() {
			w.current[key] = ev
			ev.Phase = ContactStay
			w.events = append(w.events, ev)
			continue
		}
		if !touching {
			w.events = append(w.events, ContactEvent{Phase: ContactExit, A: ev.A, B: ev.B})
		}
	}

	w.active, w.current = w.current, w.active
	for k := range w.current {
		delete(w.current, k)
	}
}

// Contacts returns the contact events of the last Step. The slice is reused by
// the next Step.
func (w *World) Contacts() []ContactEvent {
	return w.events
}

// Close detaches every body and releases the world. Calling it twice is safe.
func (w *World) Close() error {
	if w.closed {
		return nil
	}
	for _, b := range w.bodies {
		b.world = nil
	}
	w.logger.Debug("physics: world closed", "bodies", len(w.bodies))
	w.bodies = nil
	w.events = nil
	w.joints.Clear()
	w.active = nil
	w.current = nil
	w.closed = true
	return nil
}
