package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"launch-sim/internal/camera"
	"launch-sim/internal/particles"
	"launch-sim/internal/terrain"
	"launch-sim/internal/vehicle"
)

const (
	cameraFovY = 60

	gridExtent     = 150
	gridMinorStep  = 10
	gridMajorStep  = 50
	gridMinorAlpha = 50
	gridMajorAlpha = 120

	padSlices      = 24
	exhaustBaseDim = 0.4
)

// Scene owns everything drawn in 3D: the terrain tiles, both launch pads,
// the vehicle part models, and the exhaust particles. Vehicle meshes are
// generated on the GPU the first time Draw runs, after the window exists.
type Scene struct {
	GridVisible bool

	tiles []terrain.Tile
	parts []vehicle.Part

	models       []rl.Model
	modelsLoaded bool
}

// New builds the scene content. parts is the vehicle assembly; opts controls
// terrain generation.
func New(parts []vehicle.Part, opts terrain.Options) *Scene {
	return &Scene{
		GridVisible: true,
		tiles:       terrain.Generate(opts),
		parts:       parts,
	}
}

// ensureModels generates one model per vehicle part. Deferred to the first
// Draw so mesh upload happens after the GL context exists.
func (s *Scene) ensureModels() {
	if s.modelsLoaded {
		return
	}
	s.models = make([]rl.Model, len(s.parts))
	for i, p := range s.parts {
		var mesh rl.Mesh
		switch p.Type {
		case vehicle.KindCone:
			mesh = rl.GenMeshCone(p.Radius, p.Height, int32(p.Segments))
		case vehicle.KindBox:
			mesh = rl.GenMeshCube(p.Size[0], p.Size[1], p.Size[2])
		case vehicle.KindSphere:
			mesh = rl.GenMeshSphere(p.Radius, int32(p.Segments), int32(p.Segments))
		default:
			mesh = rl.GenMeshCylinder(p.Radius, p.Height, int32(p.Segments))
		}
		s.models[i] = rl.LoadModelFromMesh(mesh)
	}
	s.modelsLoaded = true
}

// Unload releases the part models.
func (s *Scene) Unload() {
	for _, m := range s.models {
		rl.UnloadModel(m)
	}
	s.models = nil
	s.modelsLoaded = false
}

// Draw renders one frame of the 3D world from cam's point of view.
// vehicleTransform is the vehicle's world transform for this frame's
// trajectory sample.
func (s *Scene) Draw(cam *camera.Camera, vehicleTransform mgl32.Mat4, exhaust *particles.System) {
	s.ensureModels()

	rc := rl.Camera3D{
		Position:   toRayVec(cam.Position),
		Target:     toRayVec(cam.Position.Add(cam.Forward())),
		Up:         toRayVec(cam.Up()),
		Fovy:       cameraFovY,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(rc)
	if s.GridVisible {
		drawGrid()
	}
	s.drawTerrain()
	drawPad(terrain.PadA)
	drawPad(terrain.PadB)
	s.drawVehicle(vehicleTransform)
	drawExhaust(exhaust)
	rl.EndMode3D()
}

// drawTerrain renders the island as colored columns, sand near the waterline
// shading to rock on the peaks.
func (s *Scene) drawTerrain() {
	for _, t := range s.tiles {
		rl.DrawCubeV(toRayVec(t.Position), toRayVec(t.Size), reliefColor(t.Relief))
	}
}

// reliefColor maps normalized terrain height to a sand/grass/rock ramp.
func reliefColor(h float32) rl.Color {
	switch {
	case h < 0.25:
		return rl.NewColor(194, 178, 128, 255)
	case h < 0.6:
		return rl.NewColor(96, 148, 72, 255)
	default:
		return rl.NewColor(130, 130, 135, 255)
	}
}

// drawPad renders one launch pad as a squat two-tier cylinder.
func drawPad(pos mgl32.Vec3) {
	base := toRayVec(pos)
	rl.DrawCylinder(base, 2.2*terrain.PadScale, 2.4*terrain.PadScale, 1.0, padSlices, rl.NewColor(70, 70, 75, 255))
	base.Y += 1.0
	rl.DrawCylinder(base, 2.0*terrain.PadScale, 2.2*terrain.PadScale, 0.5, padSlices, rl.NewColor(110, 110, 115, 255))
}

// drawVehicle renders every part under the shared rigid-body transform.
func (s *Scene) drawVehicle(transform mgl32.Mat4) {
	for i, p := range s.parts {
		s.models[i].Transform = toRayMat(transform.Mul4(p.LocalTransform()))
		rl.DrawModel(s.models[i], rl.Vector3{}, 1, toRayColor(p.Color[0], p.Color[1], p.Color[2], 1))
	}
}

// drawExhaust renders live particles as small additive-blended cubes.
func drawExhaust(exhaust *particles.System) {
	rl.BeginBlendMode(rl.BlendAdditive)
	exhaust.Each(func(p *particles.Particle) {
		dim := p.Size * exhaustBaseDim
		col := toRayColor(p.Color[0], p.Color[1], p.Color[2], p.Color[3])
		rl.DrawCubeV(toRayVec(p.Position), rl.NewVector3(dim, dim, dim), col)
	})
	rl.EndBlendMode()
}

// drawGrid draws minor/major reference lines on the XZ plane.
func drawGrid() {
	minor := rl.NewColor(200, 200, 200, gridMinorAlpha)
	major := rl.NewColor(230, 230, 230, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := minor
		if x%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(x), 0, -gridExtent
		end.X, end.Y, end.Z = float32(x), 0, gridExtent
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := minor
		if z%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = -gridExtent, 0, float32(z)
		end.X, end.Y, end.Z = gridExtent, 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}

func toRayVec(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// toRayMat converts a column-major mgl32 matrix to raylib's layout. The
// element names line up with the flat column-major indices directly.
func toRayMat(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

func toRayColor(r, g, b, a float32) rl.Color {
	clamp := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v * 255)
	}
	return rl.NewColor(clamp(r), clamp(g), clamp(b), clamp(a))
}
