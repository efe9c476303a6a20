// Headless stress test for the physics world: drops piles of boxes and
// spheres on a ground slab and reports step cost and settling, then plays
// a scripted round on the default arena
package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"fpsgame/internal/components"
	"fpsgame/internal/config"
	"fpsgame/internal/input"
	"fpsgame/internal/physics"
	"fpsgame/internal/world"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	simSeconds = 5.0
	frameTime  = 1.0 / 60.0
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "stress"})

	// Test various object counts
	testCounts := []int{10, 50, 100, 250, 500, 1000}

	for _, count := range testCounts {
		if err := run(logger, count); err != nil {
			logger.Fatal("stress run", "bodies", count, "err", err)
		}
	}
	if err := arena(logger); err != nil {
		logger.Fatal("arena run", "err", err)
	}
}

func run(logger *log.Logger, count int) error {
	w := physics.New(config.Physics, logger)
	defer w.Close()

	ground := physics.NewBody("Ground", physics.Static, physics.Box(rl.Vector3{X: 100, Y: 0.1, Z: 100}))
	ground.Position = rl.Vector3{Y: -0.1}
	if err := w.Attach(ground); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(42)) // Consistent results

	// Spawn in a column, footprint scales with count to keep density reasonable
	spread := float32(5.0) + float32(count)/50.0

	for i := range count {
		shape := physics.Box(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
		if i%4 == 0 {
			shape = physics.Sphere(0.5)
		}
		b := physics.NewBody("Prop", physics.Dynamic, shape)
		b.Position = rl.Vector3{
			X: rng.Float32()*spread - spread/2,
			Y: 1 + float32(i)*0.3,
			Z: rng.Float32()*spread - spread/2,
		}
		if err := w.Attach(b); err != nil {
			return err
		}
	}

	frames := int(simSeconds / frameTime)
	var (
		worst    time.Duration
		total    time.Duration
		contacts int
		dropped  float32
	)
	for range frames {
		start := time.Now()
		stats := w.Step(frameTime)
		elapsed := time.Since(start)

		total += elapsed
		worst = max(worst, elapsed)
		contacts = max(contacts, stats.Contacts)
		dropped += stats.Dropped
	}

	sleeping, below := 0, 0
	for _, b := range w.Bodies() {
		if b.Kind != physics.Dynamic {
			continue
		}
		if b.Sleeping {
			sleeping++
		}
		if b.Position.Y < -0.5 {
			below++
		}
	}

	logger.Info("stress",
		"bodies", count,
		"avg", (total / time.Duration(frames)).Round(time.Microsecond),
		"worst", worst.Round(time.Microsecond),
		"maxContacts", contacts,
		"sleeping", sleeping,
		"tunnelled", below,
		"dropped", dropped,
	)
	return nil
}

// arena loads the default scene and plays a scripted round: reload, empty
// the clip into Crate_1, then walk toward it
func arena(logger *log.Logger) error {
	w, err := world.LoadDefault(logger)
	if err != nil {
		return err
	}
	defer w.Close()

	target := w.Scene.FindByName("Crate_1")
	if target == nil {
		return errors.New("arena has no Crate_1")
	}

	// Land, reload the empty starting clip, hold fire until it runs dry
	var frames []input.Snapshot
	for range 60 {
		frames = append(frames, input.Snapshot{})
	}
	frames = append(frames, input.Snapshot{Reload: true})
	for range int(config.Weapon.ReloadTime.Seconds()/frameTime) + 1 {
		frames = append(frames, input.Snapshot{})
	}
	shots := float64(config.Weapon.Capacity) * (config.Weapon.Cooldown.Seconds() + frameTime)
	for range int(shots/frameTime) + 1 {
		frames = append(frames, input.Snapshot{Fire: true})
	}
	for range 120 {
		frames = append(frames, input.Snapshot{Forward: true})
	}
	script := &input.Script{Frames: frames}

	start := time.Now()
	for range len(frames) {
		w.Camera.AimAt(components.BodyOf(target).Position)
		w.Update(frameTime, script.Poll())
	}
	elapsed := time.Since(start)

	s := w.Stats()
	logger.Info("arena",
		"frames", s.Frames,
		"avg", (elapsed / time.Duration(s.Frames)).Round(time.Microsecond),
		"shots", s.Shots,
		"hits", s.Hits,
		"kills", s.Kills,
		"targetsLeft", w.TargetsLeft(),
		"ammo", w.Ammo().Count,
		"dropped", s.Dropped,
	)
	return nil
}
