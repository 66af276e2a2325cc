package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42
	a := Generate(opts)
	b := Generate(opts)
	assert.Equal(t, a, b)

	opts.Seed = 43
	c := Generate(opts)
	assert.NotEqual(t, a, c, "different seed, different terrain")
}

func TestGenerateTileGrid(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7
	tiles := Generate(opts)
	require.Len(t, tiles, opts.Width*opts.Depth)

	extentX := float32(opts.Width) * opts.TileSize * 0.5
	for _, tile := range tiles {
		assert.LessOrEqual(t, tile.Size.Y(), opts.HeightScale)
		assert.Greater(t, tile.Size.Y(), float32(0))
		assert.GreaterOrEqual(t, tile.Relief, float32(0))
		assert.LessOrEqual(t, tile.Relief, float32(1))
		// Bottom sits on Y=0.
		assert.InDelta(t, tile.Size.Y()*0.5, tile.Position.Y(), 1e-5)
		assert.LessOrEqual(t, tile.Position.X(), extentX)
		assert.GreaterOrEqual(t, tile.Position.X(), -extentX)
	}
}

func TestGenerateRejectsEmptyGrid(t *testing.T) {
	assert.Nil(t, Generate(Options{Width: 0, Depth: 10}))
}

func TestAnchorSitsOnPadDeck(t *testing.T) {
	a := Anchor()
	assert.Equal(t, PadA.X(), a.X())
	assert.Equal(t, PadA.Z(), a.Z())
	assert.Greater(t, a.Y(), PadA.Y(), "anchor is above the pad placement point")
}

func TestPadsAreDistinct(t *testing.T) {
	assert.NotEqual(t, PadA, PadB)
}
