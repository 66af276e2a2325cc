package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"launch-sim/internal/anim"
	"launch-sim/internal/camera"
)

const (
	padding    = 12
	statusSize = 24
	infoSize   = 18
	helpSize   = 14
	lineGap    = 6
)

// helpLines is the static controls block at the bottom-left.
var helpLines = []string{
	"F - launch / hold",
	"P - pause",
	"R - reset",
	"C - cycle camera",
	"WASD / E / Q - fly, Shift boost, Ctrl slow",
	"right click - toggle mouse look",
	"G - grid, F3 - fps, F4 - mem",
}

// Draw renders the 2D overlay: launch status and timer, camera mode, and the
// controls help. Call between the 3D scene and the debug overlay.
func Draw(clock *anim.Clock, mode camera.Mode) {
	y := int32(padding)

	status := "READY"
	color := rl.RayWhite
	switch {
	case clock.Active && clock.Paused:
		status = fmt.Sprintf("PAUSED  T+%.1fs", clock.Elapsed)
		color = rl.Yellow
	case clock.Active:
		status = fmt.Sprintf("T+%.1fs", clock.Elapsed)
		color = rl.Orange
	}
	rl.DrawText(status, padding, y, statusSize, color)
	y += statusSize + lineGap

	rl.DrawText("camera: "+mode.String(), padding, y, infoSize, rl.SkyBlue)

	hy := int32(rl.GetScreenHeight()) - int32(len(helpLines))*(helpSize+lineGap) - padding
	for _, line := range helpLines {
		rl.DrawText(line, padding, hy, helpSize, rl.LightGray)
		hy += helpSize + lineGap
	}
}
