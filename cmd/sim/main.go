package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"launch-sim/internal/anim"
	"launch-sim/internal/camera"
	"launch-sim/internal/debug"
	"launch-sim/internal/engineconfig"
	"launch-sim/internal/graphics"
	"launch-sim/internal/hud"
	"launch-sim/internal/logger"
	"launch-sim/internal/particles"
	"launch-sim/internal/scene"
	"launch-sim/internal/terrain"
	"launch-sim/internal/vehicle"
)

// vehiclePath is the optional vehicle definition file; the built-in rocket is
// used when it is absent.
const vehiclePath = "config/vehicle.yaml"

// islandSeed keeps the island identical between runs.
const islandSeed = 7

func main() {
	log := logger.New()
	prefs, _ := engineconfig.Load()
	tuning := engineconfig.LoadTuning()

	anchor := terrain.Anchor()
	params := tuning.TrajectoryParams(anchor)
	clock := anim.NewClock()
	exhaust := particles.NewSystem(tuning.ParticleConfig())

	cam := camera.New()
	cam.Position = mgl32.Vec3{0, 100, 200}
	ctl := camera.NewController(cam, terrain.PadA)

	terrainOpts := terrain.DefaultOptions()
	terrainOpts.Seed = islandSeed
	scn := scene.New(vehicle.Load(vehiclePath), terrainOpts)
	scn.GridVisible = prefs.GridVisible

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMemAlloc

	log.Info().
		Float32("anchor_x", anchor.X()).
		Float32("anchor_z", anchor.Z()).
		Msg("rocket launch visualizer starting")

	captured := false
	sample := params.At(0)

	update := func() {
		dt := rl.GetFrameTime()

		// Discrete triggers first, so a launch pressed this frame starts
		// accumulating time immediately.
		if rl.IsKeyPressed(rl.KeyF) {
			wasActive := clock.Active
			clock.Launch()
			if wasActive {
				log.Info().Bool("paused", clock.Paused).Msg("launch hold toggled")
			} else {
				log.Info().Msg("launch")
			}
		}
		if rl.IsKeyPressed(rl.KeyP) {
			clock.TogglePause()
			log.Info().Bool("paused", clock.Paused).Msg("pause toggled")
		}
		if rl.IsKeyPressed(rl.KeyR) {
			clock.Reset()
			log.Info().Msg("launch reset")
		}
		if rl.IsKeyPressed(rl.KeyC) {
			mode := ctl.Cycle()
			log.Info().Stringer("mode", mode).Msg("camera mode")
		}
		if rl.IsKeyPressed(rl.KeyG) {
			prefs.GridVisible = !prefs.GridVisible
			scn.GridVisible = prefs.GridVisible
		}
		if rl.IsKeyPressed(rl.KeyF3) {
			prefs.ShowFPS = !prefs.ShowFPS
			dbg.ShowFPS = prefs.ShowFPS
		}
		if rl.IsKeyPressed(rl.KeyF4) {
			prefs.ShowMemAlloc = !prefs.ShowMemAlloc
			dbg.ShowMemAlloc = prefs.ShowMemAlloc
		}
		if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
			captured = !captured
			if captured {
				rl.DisableCursor()
			} else {
				rl.EnableCursor()
			}
		}

		// Fixed per-frame order: clock, trajectory, particles, camera.
		clock.Advance(dt)
		sample = params.At(clock.Elapsed)
		exhaust.Update(dt, sample.Position, clock.Running())
		ctl.Update(dt, readInput(captured), sample)
	}

	draw := func() {
		scn.Draw(ctl.Live(), sample.Transform(), exhaust)
		hud.Draw(clock, ctl.Mode())
		dbg.Draw()
	}

	graphics.Run(update, draw)

	scn.Unload()
	if err := engineconfig.Save(prefs); err != nil {
		log.Warn().Err(err).Msg("could not save prefs")
	}
}

// readInput gathers this frame's free-fly input flags and mouse deltas.
func readInput(captured bool) camera.Input {
	in := camera.Input{
		Forward:  rl.IsKeyDown(rl.KeyW),
		Backward: rl.IsKeyDown(rl.KeyS),
		Left:     rl.IsKeyDown(rl.KeyA),
		Right:    rl.IsKeyDown(rl.KeyD),
		Up:       rl.IsKeyDown(rl.KeyE),
		Down:     rl.IsKeyDown(rl.KeyQ),
		Boost:    rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		Slow:     rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Captured: captured,
	}
	if captured {
		delta := rl.GetMouseDelta()
		in.MouseDX = delta.X
		in.MouseDY = delta.Y
	}
	return in
}
