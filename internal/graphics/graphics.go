package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "Rocket Launch Visualizer"
	targetFPS    = 60
)

// skyColor is the clear color; the sky is a flat color, no skybox.
var skyColor = rl.NewColor(127, 178, 229, 255)

// Run opens the window and drives the main loop. Each frame it calls update
// (input, simulation), then clears to the sky color and calls draw (scene and
// overlays). ESC or the window close button exits.
func Run(update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(skyColor)
		draw()
		rl.EndDrawing()
	}
}
