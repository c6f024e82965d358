package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
)

func TestBaseTemplate(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tmpl := BaseTemplate(cfg, 1)

	require.Len(t, tmpl.Platforms, 5)
	ground := tmpl.Platforms[0]
	assert.Equal(t, PlatformStatic, ground.Kind)
	assert.Equal(t, core.ColorSlate, ground.Color)
	assert.Equal(t, 800.0, ground.Width)

	assert.Equal(t, PlatformHorizontal, tmpl.Platforms[1].Kind)
	assert.Equal(t, 100.0, tmpl.Platforms[1].Range)
	assert.Equal(t, PlatformVertical, tmpl.Platforms[2].Kind)
	assert.Equal(t, 50.0, tmpl.Platforms[2].Range)

	assert.Equal(t, []Point{{120, 200}, {320, 150}, {520, 100}, {720, 50}, {400, 300}}, tmpl.Collectibles)
	assert.Equal(t, []Point{{200, 300}, {600, 250}}, tmpl.Trampolines)
	assert.Equal(t, 60, tmpl.TimeLimit)
}

func TestBuildCatalogCounts(t *testing.T) {
	cfg := config.DefaultGameConfig()
	c := BuildCatalog(cfg, rand.New(rand.NewSource(7)))
	require.Equal(t, 20, c.Len())

	tests := []struct {
		level, coins, trampolines, time int
		speed                           float64
	}{
		{1, 6, 3, 60, 1.0},
		{2, 7, 3, 65, 1.1},
		{3, 8, 4, 70, 1.2},
		{5, 10, 5, 80, 1.4},
		{11, 10, 5, 110, 2.0},
		{20, 10, 5, 155, 2.9},
	}
	for _, tc := range tests {
		tmpl, ok := c.Template(tc.level)
		require.True(t, ok)
		assert.Equal(t, tc.level, tmpl.Number)
		assert.Len(t, tmpl.Collectibles, tc.coins, "level %d coins", tc.level)
		assert.Len(t, tmpl.Trampolines, tc.trampolines, "level %d trampolines", tc.level)
		assert.Equal(t, tc.time, tmpl.TimeLimit)
		assert.Zero(t, tmpl.Platforms[0].Speed, "static platforms do not scale")
		assert.InDelta(t, tc.speed, tmpl.Platforms[1].Speed, 1e-9)
	}
}

func TestBuildCatalogRandomBounds(t *testing.T) {
	cfg := config.DefaultGameConfig()
	c := BuildCatalog(cfg, rand.New(rand.NewSource(99)))

	for n := 1; n <= c.Len(); n++ {
		tmpl, _ := c.Template(n)
		extras := append(tmpl.Collectibles[5:], tmpl.Trampolines[2:]...)
		for _, p := range extras {
			assert.GreaterOrEqual(t, p.X, 50.0)
			assert.Less(t, p.X, 750.0)
			assert.GreaterOrEqual(t, p.Y, 50.0)
			assert.Less(t, p.Y, 300.0)
		}
	}
}

func TestBuildCatalogSeeded(t *testing.T) {
	cfg := config.DefaultGameConfig()
	a := BuildCatalog(cfg, rand.New(rand.NewSource(1)))
	b := BuildCatalog(cfg, rand.New(rand.NewSource(1)))
	other := BuildCatalog(cfg, rand.New(rand.NewSource(2)))

	ta, _ := a.Template(4)
	tb, _ := b.Template(4)
	to, _ := other.Template(4)
	assert.Equal(t, ta, tb)
	assert.NotEqual(t, ta.Collectibles, to.Collectibles)
}

func TestCatalogTemplatesAreImmutable(t *testing.T) {
	cfg := config.DefaultGameConfig()
	c := NewCatalog(BaseTemplate(cfg, 1), BaseTemplate(cfg, 2))

	tmpl, ok := c.Template(1)
	require.True(t, ok)
	tmpl.Collectibles[0] = Point{0, 0}
	tmpl.Platforms[0].Width = 1

	again, _ := c.Template(1)
	assert.Equal(t, Point{120, 200}, again.Collectibles[0])
	assert.Equal(t, 800.0, again.Platforms[0].Width)

	_, ok = c.Template(0)
	assert.False(t, ok)
	_, ok = c.Template(3)
	assert.False(t, ok)
}

func TestLoadLevelUnknownIsNoop(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultGameConfig())
	g.Step(core.FrameOf(core.ActionRight))
	before := g.Snapshot()

	assert.False(t, g.LoadLevel(0))
	assert.False(t, g.LoadLevel(21))
	assert.Equal(t, before, g.Snapshot())
}

func TestLoadLevelCopiesTemplate(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g, _ := newTestGame(t, cfg, WithCatalog(NewCatalog(BaseTemplate(cfg, 1))))

	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	require.NotEqual(t, 100.0, g.Platforms()[1].X)

	require.True(t, g.LoadLevel(1))
	p := g.Platforms()[1]
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 100.0, p.AnchorX)
	assert.Equal(t, 1.0, p.Direction)
}
