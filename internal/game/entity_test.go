package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlatformMoveReflects(t *testing.T) {
	tests := []struct {
		name      string
		kind      PlatformKind
		rng       float64
		flipAfter int
	}{
		{"horizontal", PlatformHorizontal, 100, 101},
		{"vertical", PlatformVertical, 50, 51},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Platform{X: 100, Y: 100, AnchorX: 100, AnchorY: 100, Kind: tc.kind, Speed: 1, Range: tc.rng, Direction: 1}
			for i := 0; i < tc.flipAfter-1; i++ {
				p.Move()
			}
			assert.Equal(t, 1.0, p.Direction, "direction must hold until the range is exceeded")

			p.Move()
			assert.Equal(t, -1.0, p.Direction)
			// Overshoots by one tick instead of clamping
			if tc.kind == PlatformHorizontal {
				assert.Equal(t, 100+tc.rng+1, p.X)
				assert.Equal(t, 1.0, p.LastDX)
				assert.Equal(t, 100.0, p.Y)
			} else {
				assert.Equal(t, 100+tc.rng+1, p.Y)
				assert.Equal(t, 1.0, p.LastDY)
				assert.Equal(t, 100.0, p.X)
			}

			p.Move()
			if tc.kind == PlatformHorizontal {
				assert.Equal(t, -1.0, p.LastDX)
			} else {
				assert.Equal(t, -1.0, p.LastDY)
			}
		})
	}
}

func TestStaticPlatformNeverMoves(t *testing.T) {
	p := Platform{X: 0, Y: 350, Width: 800, Height: 50, Kind: PlatformStatic, Speed: 3, Range: 10, Direction: 1}
	for i := 0; i < 500; i++ {
		p.Move()
	}
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 350.0, p.Y)
	assert.Zero(t, p.LastDX)
	assert.Zero(t, p.LastDY)
}

func TestCollectibleAnimateIsCosmetic(t *testing.T) {
	c := Collectible{X: 120, Y: 200, Size: 20, FloatSpeed: 0.05, FloatHeight: 5}
	before := c.Rect()

	now := time.UnixMilli(31)
	c.Animate(now)

	assert.InDelta(t, math.Sin(31*0.05)*5, c.FloatOffset, 1e-9)
	assert.LessOrEqual(t, math.Abs(c.FloatOffset), 5.0)
	assert.Equal(t, before, c.Rect(), "collision box must ignore the float offset")
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "horizontal", PlatformHorizontal.String())
	assert.Equal(t, "static", PlatformStatic.String())
	assert.Equal(t, "upgrade", PhaseUpgrade.String())
	assert.Equal(t, "jumpForce", UpgradeJumpForce.String())
	assert.Equal(t, "level_cleared", EventLevelCleared.String())
	assert.Equal(t, "speedCost", HUDSpeedCost.String())
	assert.True(t, PhaseOver.Finished())
	assert.False(t, PhaseUpgrade.Finished())
}
