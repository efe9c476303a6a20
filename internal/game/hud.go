package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorHUDBg     = rl.NewColor(20, 20, 28, 200)
	colorHUDBar    = rl.NewColor(99, 102, 241, 255)
	colorHUDText   = rl.NewColor(230, 230, 240, 255)
	colorHUDBorder = rl.NewColor(50, 50, 65, 255)
)

const crosshairSize = 8

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorHUDBg))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorHUDBg))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorHUDBar))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorHUDText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorHUDBorder))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
}

func (g *Game) DrawUI() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	ammo := g.World.Ammo()
	crosshair := rl.White
	switch {
	case !ammo.CanFire():
		crosshair = rl.Red
	case g.World.Weapon.CoolingDown():
		crosshair = rl.Gray
	}
	drawCrosshair(screenW/2, screenH/2, crosshair)

	rl.DrawText("WASD to move, Space to jump, Mouse to look", 10, 10, 20, rl.DarkGray)
	rl.DrawText("LMB to fire, R to reload, F1 for debug", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	reserve := "inf"
	if !ammo.Unlimited() {
		reserve = fmt.Sprintf("%d", ammo.Reserve)
	}

	panel := rl.Rectangle{X: float32(screenW - 260), Y: float32(screenH - 90), Width: 250, Height: 80}
	rl.DrawRectangleRec(panel, colorHUDBg)
	gui.Label(rl.Rectangle{X: panel.X + 10, Y: panel.Y + 8, Width: 230, Height: 24},
		fmt.Sprintf("AMMO %d / %d   RESERVE %s", ammo.Count, ammo.Capacity, reserve))

	bar := rl.Rectangle{X: panel.X + 10, Y: panel.Y + 44, Width: 230, Height: 20}
	if ammo.Reloading {
		gui.ProgressBar(bar, "", "", ammo.Progress, 0, 1)
	} else {
		gui.ProgressBar(bar, "", "", float32(ammo.Count), 0, float32(max(ammo.Capacity, 1)))
	}

	if ammo.Count == 0 && !ammo.Reloading {
		msg := "OUT OF AMMO"
		if ammo.CanReload() {
			msg = "PRESS R TO RELOAD"
		}
		w := rl.MeasureText(msg, 24)
		rl.DrawText(msg, screenW/2-w/2, screenH/2+30, 24, rl.Red)
	}

	if g.DebugMode {
		s := g.World.Stats()
		ctrl := g.World.Controller
		rl.DrawText(fmt.Sprintf("Bodies: %d  Contacts: %d  Substeps: %d", s.Bodies, s.Contacts, s.Substeps), 10, 85, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Grounded: %v  Culled: %d  Dropped: %.3fs", ctrl.Grounded(), g.culled, s.Dropped), 10, 105, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Shots: %d  Hits: %d  Kills: %d  Targets: %d", s.Shots, s.Hits, s.Kills, g.World.TargetsLeft()), 10, 125, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 145, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 165, 16, rl.Green)
	}
}

func drawCrosshair(cx, cy int32, color rl.Color) {
	rl.DrawLine(cx-crosshairSize, cy, cx+crosshairSize, cy, color)
	rl.DrawLine(cx, cy-crosshairSize, cx, cy+crosshairSize, color)
}
