package card_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsolari/valentines-cards/card"
	"github.com/rsolari/valentines-cards/cardconfig"
	"github.com/rsolari/valentines-cards/maze"
	"github.com/rsolari/valentines-cards/render"
)

// testConfig returns the default design with a fixed maze seed so every
// composition in this file is reproducible.
func testConfig() cardconfig.Config {
	cfg := cardconfig.Default()
	cfg.Maze.Seed = 42

	return cfg
}

func TestComposeFront_Dimensions(t *testing.T) {
	img, err := card.ComposeFront(testConfig(), nil)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 750, b.Dx())
	assert.Equal(t, 1050, b.Dy())
}

func TestComposeBack_Dimensions(t *testing.T) {
	img, err := card.ComposeBack(testConfig())
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 750, b.Dx())
	assert.Equal(t, 1050, b.Dy())
}

func TestComposeBack_DeterministicPerSeed(t *testing.T) {
	cfg := testConfig()

	first, err := card.ComposeBack(cfg)
	require.NoError(t, err)
	second, err := card.ComposeBack(cfg)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, png.Encode(&a, first))
	require.NoError(t, png.Encode(&b, second))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestComposeBack_SeedChangesMaze(t *testing.T) {
	cfg := testConfig()
	first, err := card.ComposeBack(cfg)
	require.NoError(t, err)

	cfg.Maze.Seed = 43
	second, err := card.ComposeBack(cfg)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, png.Encode(&a, first))
	require.NoError(t, png.Encode(&b, second))
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}

func TestComposeBack_WallStyles(t *testing.T) {
	base := testConfig()
	base.Maze.WallStyle = render.StyleSolid
	baseline, err := card.ComposeBack(base)
	require.NoError(t, err)
	var solid bytes.Buffer
	require.NoError(t, png.Encode(&solid, baseline))

	for _, style := range []string{"dotted", "mosaic", "snake"} {
		t.Run(style, func(t *testing.T) {
			cfg := testConfig()
			cfg.Maze.WallStyle = style

			img, err := card.ComposeBack(cfg)
			require.NoError(t, err)

			var got bytes.Buffer
			require.NoError(t, png.Encode(&got, img))
			assert.NotEqual(t, solid.Bytes(), got.Bytes())
		})
	}
}

func TestCompose_FailsFast(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Width = 0
		_, err := card.ComposeFront(cfg, nil)
		assert.ErrorIs(t, err, cardconfig.ErrInvalidConfig)
		_, err = card.ComposeBack(cfg)
		assert.ErrorIs(t, err, cardconfig.ErrInvalidConfig)
	})

	t.Run("bad palette hex", func(t *testing.T) {
		cfg := testConfig()
		cfg.Colors.Primary = "terracotta"
		_, err := card.ComposeFront(cfg, nil)
		assert.ErrorIs(t, err, render.ErrInvalidColor)
		_, err = card.ComposeBack(cfg)
		assert.ErrorIs(t, err, render.ErrInvalidColor)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		cfg := testConfig()
		cfg.Maze.Algorithm = "minotaur"
		_, err := card.ComposeBack(cfg)
		assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
	})

	t.Run("unknown wall style", func(t *testing.T) {
		cfg := testConfig()
		cfg.Maze.WallStyle = "stained-glass"
		_, err := card.ComposeBack(cfg)
		assert.ErrorIs(t, err, render.ErrUnknownStyle)
	})

	t.Run("maze too large", func(t *testing.T) {
		cfg := testConfig()
		cfg.Maze.Width = 100
		cfg.Maze.Height = 100
		_, err := card.ComposeBack(cfg)
		assert.ErrorIs(t, err, card.ErrDoesNotFit)
	})
}

func TestComposeFront_TextureToggle(t *testing.T) {
	cfg := testConfig()

	cfg.AddTexture = false
	plain, err := card.ComposeFront(cfg, nil)
	require.NoError(t, err)

	cfg.AddTexture = true
	textured, err := card.ComposeFront(cfg, nil)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, png.Encode(&a, plain))
	require.NoError(t, png.Encode(&b, textured))
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}
