package components

import (
	"fpsgame/internal/config"
	"fpsgame/internal/engine"
	"fpsgame/internal/input"
	"fpsgame/internal/physics"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

//go:generate go tool mockgen -destination=./mocks/raycaster_mock.go -package=mocks . Raycaster

// Raycaster is the part of the physics world a weapon needs
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *physics.Body) (physics.RaycastHit, bool)
}

// AmmoState tracks the clip and the reserve pool. Count stays within [0, Capacity].
type AmmoState struct {
	Count     int
	Capacity  int
	Reserve   int // config.UnlimitedReserve for an endless pool
	Reloading bool
	Progress  float32 // reload progress in [0, 1]
}

func (a AmmoState) Unlimited() bool {
	return a.Reserve < 0
}

func (a AmmoState) CanFire() bool {
	return !a.Reloading && a.Count > 0
}

func (a AmmoState) CanReload() bool {
	return !a.Reloading && a.Count < a.Capacity && a.Reserve != 0
}

// Hit describes a shot that struck a body
type Hit struct {
	Target   *engine.GameObject // nil for bodies without an owner
	Body     *physics.Body
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
	Damage   float32 // zero when the target has no Health
	Killed   bool
}

// Weapon is a hitscan gun fired from the owner's view
type Weapon struct {
	engine.BaseComponent

	Range      float32
	Damage     float32
	Impulse    float32
	Cooldown   float32 // seconds between shots
	ReloadTime float32 // seconds
	AutoReload bool

	Ammo      AmmoState
	Raycaster Raycaster

	OnFire        engine.Event
	OnHit         engine.EventWithArg[Hit]
	OnReloadStart engine.Event
	OnReloaded    engine.Event

	cooldown float32
	reload   *gween.Tween
	look     engine.LookProvider
	self     *physics.Body
}

func NewWeapon(cfg config.WeaponConfig, raycaster Raycaster) *Weapon {
	start := min(max(cfg.StartAmmo, 0), cfg.Capacity)
	return &Weapon{
		Range:      cfg.Range,
		Damage:     cfg.Damage,
		Impulse:    cfg.Impulse,
		Cooldown:   float32(cfg.Cooldown.Seconds()),
		ReloadTime: float32(cfg.ReloadTime.Seconds()),
		AutoReload: cfg.AutoReload,
		Ammo: AmmoState{
			Count:    start,
			Capacity: cfg.Capacity,
			Reserve:  cfg.Reserve,
		},
		Raycaster: raycaster,
	}
}

func (w *Weapon) Start() {
	w.resolve()
}

func (w *Weapon) resolve() {
	g := w.GetGameObject()
	if g == nil {
		return
	}
	if w.look == nil {
		if lp, ok := engine.FindComponent[engine.LookProvider](g); ok {
			w.look = lp
		}
	}
	if w.self == nil {
		if rb := engine.GetComponent[*Rigidbody](g); rb != nil {
			w.self = rb.Body()
		}
	}
}

// Tick advances timers, then handles reload and fire input for one frame
func (w *Weapon) Tick(in input.Snapshot, dt float32) {
	w.Advance(dt)
	if in.Reload {
		w.Reload()
	}
	if in.Fire {
		w.Fire()
	}
}

// Advance moves the fire cooldown and any running reload forward by dt
func (w *Weapon) Advance(dt float32) {
	if w.cooldown > 0 {
		w.cooldown = max(w.cooldown-dt, 0)
	}
	if w.reload == nil {
		return
	}
	progress, done := w.reload.Update(dt)
	w.Ammo.Progress = progress
	if done {
		w.finishReload()
	}
}

// Fire shoots once. It returns false without side effects while reloading,
// cooling down or out of ammo.
func (w *Weapon) Fire() bool {
	switch {
	case w.Ammo.Reloading:
		log.Debug("weapon: reloading, fire ignored")
		return false
	case w.cooldown > 0:
		return false
	case w.Ammo.Count <= 0:
		log.Debug("weapon: clip empty, fire ignored")
		return false
	}

	w.resolve()
	w.Ammo.Count--
	w.cooldown = w.Cooldown
	w.OnFire.Invoke()

	if w.Raycaster != nil && w.look != nil {
		dir := w.look.LookDirection()
		if hit, ok := w.Raycaster.Raycast(w.look.Eye(), dir, w.Range, w.self); ok {
			w.applyHit(hit, dir)
		}
	}

	if w.Ammo.Count == 0 && w.AutoReload {
		log.Debug("weapon: clip empty, reloading")
		w.Reload()
	}
	return true
}

func (w *Weapon) applyHit(rh physics.RaycastHit, dir rl.Vector3) {
	hit := Hit{
		Target:   OwnerOf(rh.Body),
		Body:     rh.Body,
		Point:    rh.Point,
		Normal:   rh.Normal,
		Distance: rh.Distance,
	}

	if rh.Body != nil && rl.Vector3LengthSqr(dir) > 0 {
		rh.Body.ApplyImpulse(rl.Vector3Scale(rl.Vector3Normalize(dir), w.Impulse), rh.Point)
	}
	if hp := engine.GetComponent[*Health](hit.Target); hp != nil {
		hit.Damage = w.Damage
		hit.Killed = hp.Damage(w.Damage)
	}
	w.OnHit.Invoke(hit)
}

// Reload starts a timed reload. It returns false if one is running, the clip
// is full or the reserve is empty.
func (w *Weapon) Reload() bool {
	switch {
	case w.Ammo.Reloading:
		log.Debug("weapon: already reloading")
		return false
	case w.Ammo.Count >= w.Ammo.Capacity:
		return false
	case w.Ammo.Reserve == 0:
		log.Debug("weapon: no reserve ammo")
		return false
	}

	w.Ammo.Reloading = true
	w.Ammo.Progress = 0
	w.OnReloadStart.Invoke()

	if w.ReloadTime <= 0 {
		w.finishReload()
		return true
	}
	w.reload = gween.New(0, 1, w.ReloadTime, ease.Linear)
	return true
}

func (w *Weapon) finishReload() {
	need := w.Ammo.Capacity - w.Ammo.Count
	if !w.Ammo.Unlimited() {
		need = min(need, w.Ammo.Reserve)
		w.Ammo.Reserve -= need
	}
	w.Ammo.Count += need
	w.Ammo.Reloading = false
	w.Ammo.Progress = 0
	w.reload = nil
	log.Debug("weapon: reload complete", "clip", w.Ammo.Count, "reserve", w.Ammo.Reserve)
	w.OnReloaded.Invoke()
}

// CoolingDown reports whether the fire cooldown is still running
func (w *Weapon) CoolingDown() bool {
	return w.cooldown > 0
}
