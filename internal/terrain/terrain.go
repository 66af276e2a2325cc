package terrain

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Launch pad placement. PadA is the active pad the vehicle launches from;
// PadB is the second, idle pad.
var (
	PadA = mgl32.Vec3{75, -1, 20}
	PadB = mgl32.Vec3{-70, -1, -55}
)

// PadScale is the uniform render scale applied to both pads.
const PadScale = 5.0

// padDeck is the height of the pad deck above its placement point.
const padDeck = 1.5

// Anchor returns the world-space launch anchor: the deck of pad A, where the
// vehicle sits before liftoff.
func Anchor() mgl32.Vec3 {
	return PadA.Add(mgl32.Vec3{0, padDeck, 0})
}

// Options controls procedural terrain generation. Width/Depth are in tiles,
// TileSize is the world size of one tile on X/Z, and HeightScale is the
// maximum terrain height. Seed == 0 uses a time-based seed. Octaves,
// Frequency, Lacunarity, and Gain shape the fractal noise.
type Options struct {
	Width       int
	Depth       int
	TileSize    float32
	HeightScale float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a 300x300-unit island centered on the origin, low
// enough that both pads sit near the waterline.
func DefaultOptions() Options {
	return Options{
		Width:       60,
		Depth:       60,
		TileSize:    5.0,
		HeightScale: 14.0,
		Seed:        0,
		Octaves:     4,
		Frequency:   0.06,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

// Tile is one terrain column: a box standing on Y=0. Relief is the
// normalized [0,1] noise value, kept for height-based coloring.
type Tile struct {
	Position mgl32.Vec3
	Size     mgl32.Vec3
	Relief   float32
}

// Generate builds the tile grid from fractal value noise, centered around the
// world origin on XZ. The same non-zero seed always yields the same terrain.
func Generate(opts Options) []Tile {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return nil
	}
	if opts.TileSize <= 0 {
		opts.TileSize = 1
	}
	if opts.HeightScale <= 0 {
		opts.HeightScale = 1
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.06
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2.0
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	halfTile := opts.TileSize * 0.5
	startX := -float32(opts.Width)*opts.TileSize*0.5 + halfTile
	startZ := -float32(opts.Depth)*opts.TileSize*0.5 + halfTile

	const minHeight = 0.15
	tiles := make([]Tile, 0, opts.Width*opts.Depth)
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			h := fractalValueNoise2D(
				float32(x)*opts.Frequency, float32(z)*opts.Frequency,
				seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			height := minHeight + h*(opts.HeightScale-minHeight)
			if height <= 0 {
				height = minHeight
			}

			tiles = append(tiles, Tile{
				Position: mgl32.Vec3{
					startX + float32(x)*opts.TileSize,
					height * 0.5, // bottom at Y=0
					startZ + float32(z)*opts.TileSize,
				},
				Size:   mgl32.Vec3{opts.TileSize, height, opts.TileSize},
				Relief: h,
			})
		}
	}
	return tiles
}
