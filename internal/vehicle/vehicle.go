package vehicle

import (
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Kind names a primitive shape a part is built from.
type Kind string

const (
	KindCylinder Kind = "cylinder"
	KindCone     Kind = "cone"
	KindBox      Kind = "box"
	KindSphere   Kind = "sphere"
)

// Part is one rigid piece of the rocket, defined in vehicle-local space.
// Cylinders and cones extend +Y from their offset; boxes and spheres are
// centered on it. The whole assembly moves as a single rigid body under the
// trajectory transform.
type Part struct {
	Name     string     `yaml:"name"`
	Type     Kind       `yaml:"type"`
	Radius   float32    `yaml:"radius,omitempty"`
	Height   float32    `yaml:"height,omitempty"`
	Size     [3]float32 `yaml:"size,omitempty"`
	Segments int        `yaml:"segments,omitempty"`
	Offset   [3]float32 `yaml:"offset"`
	// Yaw/Roll are radians about local Y and Z, applied before Offset.
	Yaw   float32    `yaml:"yaw,omitempty"`
	Roll  float32    `yaml:"roll,omitempty"`
	Scale [3]float32 `yaml:"scale,omitempty"`
	Color [3]float32 `yaml:"color"`
}

// LocalTransform returns the part's placement within the vehicle:
// translation composed with yaw, roll, and (optional) non-uniform scale.
func (p Part) LocalTransform() mgl32.Mat4 {
	m := mgl32.Translate3D(p.Offset[0], p.Offset[1], p.Offset[2])
	if p.Yaw != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(p.Yaw))
	}
	if p.Roll != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(p.Roll))
	}
	if s := p.Scale; s != [3]float32{} {
		m = m.Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
	}
	return m
}

// Default returns the built-in rocket: body, nose cone, engine nozzle, four
// fins, a window, an antenna, and two thruster pods.
func Default() []Part {
	parts := []Part{
		{Name: "body", Type: KindCylinder, Radius: 0.8, Height: 8, Segments: 16,
			Color: [3]float32{0.9, 0.9, 0.95}},
		{Name: "nose", Type: KindCone, Radius: 0.6, Height: 3, Segments: 16,
			Offset: [3]float32{0, 8, 0}, Color: [3]float32{0.9, 0.3, 0.2}},
		{Name: "nozzle", Type: KindCylinder, Radius: 1.0, Height: 1.5, Segments: 16,
			Offset: [3]float32{0, -1.5, 0}, Color: [3]float32{0.4, 0.4, 0.45}},
		{Name: "window", Type: KindSphere, Radius: 0.5, Segments: 16,
			Offset: [3]float32{0.85, 5, 0}, Scale: [3]float32{1, 0.6, 1},
			Color: [3]float32{0.3, 0.7, 0.9}},
		{Name: "antenna", Type: KindCylinder, Radius: 0.1, Height: 1.5, Segments: 8,
			Offset: [3]float32{0, 10.5, 0}, Color: [3]float32{0.9, 0.9, 0.3}},
	}

	// Four fins spaced 90 degrees around the body.
	for i := 0; i < 4; i++ {
		angle := float32(i) * math32.Pi / 2
		s, c := math32.Sincos(angle)
		parts = append(parts, Part{
			Name: "fin", Type: KindBox, Size: [3]float32{0.15, 2.5, 1.0},
			Offset: [3]float32{0.9 * c, 2, 0.9 * s}, Yaw: -angle,
			Color: [3]float32{0.2, 0.5, 0.8},
		})
	}

	// Two side thruster pods, lying across the body.
	for _, side := range []float32{1, -1} {
		parts = append(parts, Part{
			Name: "pod", Type: KindCylinder, Radius: 0.3, Height: 1.5, Segments: 12,
			Offset: [3]float32{side * 1.1, 1.5, 0}, Roll: math32.Pi / 2,
			Color: [3]float32{0.9, 0.6, 0.2},
		})
	}
	return parts
}

// Load reads part definitions from a YAML file. A missing or invalid file
// falls back to the built-in rocket.
func Load(path string) []Part {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var parts []Part
	if err := yaml.Unmarshal(data, &parts); err != nil || len(parts) == 0 {
		return Default()
	}
	return parts
}
