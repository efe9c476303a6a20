package world

import (
	"errors"
	"fmt"

	"fpsgame/internal/assets"
	"fpsgame/internal/components"
	"fpsgame/internal/config"
	"fpsgame/internal/engine"
	"fpsgame/internal/input"
	"fpsgame/internal/physics"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HitMarkerTTL is how long a hit marker stays visible, in seconds
const HitMarkerTTL = 0.4

// Scene tags the world looks up
const (
	TargetTag = "target"
	DeadTag   = "dead"
)

// damageShade is how far a prop darkens as its health runs out
const damageShade = 0.6

// HitMarker is a short-lived record of where a shot landed
type HitMarker struct {
	Point  rl.Vector3
	Normal rl.Vector3
	Killed bool
	TTL    float32
}

// Stats are running counters for the HUD and logs
type Stats struct {
	Frames   uint64
	Substeps int // last frame
	Contacts int // last frame
	Dropped  float32
	Shots    int
	Hits     int
	Kills    int
	Bodies   int
}

type World struct {
	Scene      *engine.Scene
	Physics    physics.Backend
	Player     *engine.GameObject
	Ground     *engine.GameObject
	Camera     *components.Camera
	Controller *components.CharacterController
	Weapon     *components.Weapon

	logger      *log.Logger
	rigidbodies []*components.Rigidbody
	markers     []HitMarker
	stats       Stats
	closed      bool
}

// LoadDefault loads the embedded default scene on a native physics world
func LoadDefault(logger *log.Logger) (*World, error) {
	def, err := LoadSceneDef(assets.DefaultScene)
	if err != nil {
		return nil, err
	}
	return Load(def, logger)
}

// Load builds a world from a scene definition on a native physics world.
// Scene gravity overrides the configured default.
func Load(def SceneDef, logger *log.Logger) (*World, error) {
	cfg := config.Physics
	if def.Gravity != nil {
		cfg.Gravity = vec3(*def.Gravity)
	}
	return LoadWith(def, physics.New(cfg, logger), logger)
}

// LoadWith builds a world on the given backend. The world owns the backend
// and closes it on failure and in Close.
func LoadWith(def SceneDef, backend physics.Backend, logger *log.Logger) (*World, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := def.Validate(); err != nil {
		return nil, errors.Join(err, closeBackend(backend))
	}

	w := &World{
		Scene:   engine.NewScene(def.Name),
		Physics: backend,
		logger:  logger,
	}

	if err := w.load(def); err != nil {
		return nil, errors.Join(err, closeBackend(backend))
	}

	w.Scene.Start()
	w.Camera.Follow(components.BodyOf(w.Player).Position)

	logger.Info("world loaded", "scene", def.Name, "objects", len(w.Scene.GameObjects), "bodies", w.stats.Bodies)
	return w, nil
}

func closeBackend(backend physics.Backend) error {
	if err := backend.Close(); err != nil && !errors.Is(err, physics.ErrClosed) {
		return fmt.Errorf("close physics: %w", err)
	}
	return nil
}

func (w *World) load(def SceneDef) error {
	ground, err := w.spawn(newGround(def.Ground))
	if err != nil {
		return err
	}
	w.Ground = ground

	if err := w.spawnPlayer(def.Player); err != nil {
		return err
	}

	for _, obj := range def.Objects {
		p, err := obj.build()
		if err != nil {
			return err
		}
		g, err := w.spawn(p)
		if err != nil {
			return err
		}
		if h := engine.GetComponent[*components.Health](g); h != nil {
			w.watchHealth(g, h)
		}
	}
	return nil
}

func newGround(def GroundDef) prop {
	g := engine.NewGameObject("Ground")
	g.Tags = []string{"ground"}
	g.Transform.Position = vec3(def.Position)

	col := components.NewBoxCollider(vec3(def.Size))
	g.AddComponent(col)

	color := rl.LightGray
	if def.Color != "" {
		color = assets.LookupColor(def.Color)
	}
	g.AddComponent(components.NewMeshRenderer(color))

	body := physics.NewBody("Ground", physics.Static, col.Shape())
	body.Position = g.Transform.Position
	body.Friction = config.Physics.DefaultFriction
	if def.Friction != nil {
		body.Friction = *def.Friction
	}
	g.AddComponent(components.NewRigidbody(body))

	return prop{object: g, body: body}
}

func (w *World) spawnPlayer(def PlayerDef) error {
	g := engine.NewGameObject("Player")
	g.Tags = []string{"player"}
	g.Transform.Position = vec3(def.Position)

	col := components.NewBoxCollider(vec3(def.Size))
	g.AddComponent(col)

	body := physics.NewBody("Player", physics.Dynamic, col.Shape())
	body.Position = g.Transform.Position
	body.Mass = config.Player.Mass
	if def.Mass > 0 {
		body.Mass = def.Mass
	}
	body.Friction = config.Player.Friction
	if def.Friction != nil {
		body.Friction = *def.Friction
	}
	body.Bounce = 0
	body.LockRotation = true
	body.CanSleep = false
	g.AddComponent(components.NewRigidbody(body))

	w.Camera = components.NewCamera(config.Camera)
	g.AddComponent(w.Camera)

	w.Controller = components.NewCharacterController(config.Player)
	g.AddComponent(w.Controller)

	w.Weapon = components.NewWeapon(config.Weapon, w.Physics)
	w.Weapon.OnFire.AddListener(func() { w.stats.Shots++ })
	w.Weapon.OnHit.AddListener(w.onHit)
	w.Weapon.OnReloaded.AddListener(func() {
		w.logger.Debug("reloaded", "ammo", w.Weapon.Ammo.Count, "reserve", w.Weapon.Ammo.Reserve)
	})
	g.AddComponent(w.Weapon)

	renderer := components.NewMeshRenderer(rl.Blue)
	renderer.Hidden = true
	g.AddComponent(renderer)

	if _, err := w.spawn(prop{object: g, body: body}); err != nil {
		return err
	}
	w.Player = g
	return nil
}

func (w *World) spawn(p prop) (*engine.GameObject, error) {
	if err := w.Physics.Attach(p.body); err != nil {
		return nil, fmt.Errorf("attach %q: %w", p.object.Name, err)
	}
	w.Scene.AddGameObject(p.object)
	if rb := engine.GetComponent[*components.Rigidbody](p.object); rb != nil {
		w.rigidbodies = append(w.rigidbodies, rb)
	}
	w.stats.Bodies++
	return p.object, nil
}

// watchHealth darkens a prop as it takes damage and marks it dead at zero.
// Dead props stay in the simulation until the scene is closed.
func (w *World) watchHealth(g *engine.GameObject, h *components.Health) {
	renderer := engine.GetComponent[*components.MeshRenderer](g)
	var base rl.Color
	if renderer != nil {
		base = renderer.Color
	}
	h.OnDamaged.AddListener(func(float32) {
		if renderer != nil {
			renderer.Color = rl.ColorBrightness(base, -damageShade*(1-h.Fraction()))
		}
	})
	h.OnDeath.AddListener(func() { w.kill(g) })
}

func (w *World) kill(g *engine.GameObject) {
	if g.HasTag(DeadTag) {
		return
	}
	g.Tags = append(g.Tags, DeadTag)
	w.stats.Kills++
	w.logger.Info("killed", "object", g.Name, "uid", g.UID)
}

// TargetsLeft counts target props that are still alive
func (w *World) TargetsLeft() int {
	n := 0
	for _, g := range w.Scene.FindByTag(TargetTag) {
		if !g.HasTag(DeadTag) {
			n++
		}
	}
	return n
}

func (w *World) onHit(hit components.Hit) {
	w.stats.Hits++
	w.markers = append(w.markers, HitMarker{
		Point:  hit.Point,
		Normal: hit.Normal,
		Killed: hit.Killed,
		TTL:    HitMarkerTTL,
	})

	name := ""
	if hit.Target != nil {
		name = hit.Target.Name
	}
	w.logger.Debug("hit", "target", name, "distance", hit.Distance, "damage", hit.Damage, "killed", hit.Killed)
}

// Update runs one frame: look, movement, weapon, physics, contact dispatch,
// transform sync, then component updates
func (w *World) Update(dt float32, in input.Snapshot) {
	if w.closed {
		return
	}
	w.stats.Frames++

	w.Camera.Look(in.Look)
	w.Controller.Tick(in, dt)
	w.Weapon.Tick(in, dt)

	step := w.Physics.Step(dt)
	w.stats.Substeps = step.Substeps
	w.stats.Contacts = step.Contacts
	w.stats.Dropped += step.Dropped
	if step.Dropped > 0 {
		w.logger.Debug("physics behind, time dropped", "seconds", step.Dropped)
	}

	// Contacts are only fresh when the world actually stepped
	if step.Substeps > 0 {
		w.dispatchContacts(w.Physics.Contacts())
	}

	for _, rb := range w.rigidbodies {
		rb.SyncTransform()
	}
	w.Camera.Follow(components.BodyOf(w.Player).Position)

	w.Scene.Update(dt)
	w.ageMarkers(dt)
}

func (w *World) dispatchContacts(events []physics.ContactEvent) {
	w.Controller.BeginContacts()
	for _, ev := range events {
		w.Controller.HandleContact(ev)

		a, b := components.OwnerOf(ev.A), components.OwnerOf(ev.B)
		if a == nil || b == nil {
			continue
		}
		switch ev.Phase {
		case physics.ContactEnter:
			notifyEnter(a, b)
			notifyEnter(b, a)
		case physics.ContactExit:
			notifyExit(a, b)
			notifyExit(b, a)
		}
	}
}

func notifyEnter(g, other *engine.GameObject) {
	for _, h := range engine.FindComponents[engine.CollisionHandler](g) {
		h.OnCollisionEnter(other)
	}
}

func notifyExit(g, other *engine.GameObject) {
	for _, h := range engine.FindComponents[engine.CollisionHandler](g) {
		h.OnCollisionExit(other)
	}
}

func (w *World) ageMarkers(dt float32) {
	kept := w.markers[:0]
	for _, m := range w.markers {
		m.TTL -= dt
		if m.TTL > 0 {
			kept = append(kept, m)
		}
	}
	w.markers = kept
}

// HitMarkers returns the markers still visible
func (w *World) HitMarkers() []HitMarker {
	return w.markers
}

func (w *World) Stats() Stats {
	return w.stats
}

// Ammo returns the player's weapon state
func (w *World) Ammo() components.AmmoState {
	return w.Weapon.Ammo
}

// Close releases the physics backend and clears the scene. Safe to call twice.
func (w *World) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := closeBackend(w.Physics)

	w.Weapon.OnFire.RemoveAllListeners()
	w.Weapon.OnHit.RemoveAllListeners()
	w.Weapon.OnReloaded.RemoveAllListeners()
	for _, g := range w.Scene.GameObjects {
		if h := engine.GetComponent[*components.Health](g); h != nil {
			h.OnDamaged.RemoveAllListeners()
			h.OnDeath.RemoveAllListeners()
		}
	}
	w.Scene.Clear()
	w.rigidbodies = nil
	w.markers = nil
	if err != nil {
		return err
	}
	w.logger.Info("world closed", "frames", w.stats.Frames, "shots", w.stats.Shots, "hits", w.stats.Hits, "kills", w.stats.Kills)
	return nil
}
