package game

import (
	"fmt"
	"time"

	"fpsgame/internal/components"
	"fpsgame/internal/config"
	"fpsgame/internal/engine"
	"fpsgame/internal/input"
	"fpsgame/internal/world"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxFrameTime caps a single frame so a stall doesn't become a huge physics step
const maxFrameTime = 0.25

type Game struct {
	World     *world.World
	Input     input.Source
	DebugMode bool

	logger *log.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
	culled   int
}

func New(logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		Input:  input.NewRaylibSource(input.DefaultBindings()),
		logger: logger,
	}
}

// Run opens the window and loops until it is closed
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(config.Window.Width, config.Window.Height, config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(config.Window.TargetFPS)
	rl.DisableCursor()
	initHUDStyle()

	w, err := world.LoadDefault(g.logger)
	if err != nil {
		return fmt.Errorf("load world: %w", err)
	}
	g.World = w
	defer func() {
		if err := g.World.Close(); err != nil {
			g.logger.Error("close world", "err", err)
		}
	}()

	g.logger.Info("game started", "width", config.Window.Width, "height", config.Window.Height)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	s := g.World.Stats()
	g.logger.Info("game finished", "frames", s.Frames, "shots", s.Shots, "hits", s.Hits, "kills", s.Kills)
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := min(rl.GetFrameTime(), maxFrameTime)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	g.World.Update(deltaTime, g.Input.Poll())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	camera := g.World.Camera.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	frustum := NewFrustum(camera, aspect, viewNear, viewFar)

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.culled = g.drawScene(&frustum)
	g.drawHitMarkers()
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

// drawScene draws every visible renderer and returns how many were culled
func (g *Game) drawScene(f *Frustum) int {
	culled := 0
	for _, obj := range g.World.Scene.GameObjects {
		renderer := engine.GetComponent[*components.MeshRenderer](obj)
		if renderer == nil || renderer.Hidden || !obj.Active {
			continue
		}
		if b := components.BodyOf(obj); b != nil && !f.ContainsSphere(b.Position, b.Shape.BoundingRadius()) {
			culled++
			continue
		}
		renderer.Draw()
	}
	return culled
}

func (g *Game) drawHitMarkers() {
	for _, m := range g.World.HitMarkers() {
		color := rl.Yellow
		if m.Killed {
			color = rl.Red
		}
		alpha := m.TTL / world.HitMarkerTTL
		rl.DrawSphere(m.Point, 0.05+0.05*alpha, rl.Fade(color, alpha))
		rl.DrawLine3D(m.Point, rl.Vector3Add(m.Point, rl.Vector3Scale(m.Normal, 0.3)), rl.Fade(color, alpha))
	}
}
