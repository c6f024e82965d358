package game

import (
	"time"

	"github.com/vovakirdan/piggyhop/internal/core"
)

// Step advances the simulation by one tick using the held actions in the
// frame. Outside the playing phase, or while paused, it only drains pending
// events. The order of the sub-steps is observable and must not change.
func (g *Game) Step(in core.InputFrame) StepResult {
	if g.state.Phase != PhasePlaying || g.state.Paused {
		return g.flush()
	}
	g.tick++
	p := &g.player

	// Horizontal input
	if in.Has(core.ActionLeft) {
		p.X -= p.Speed
		p.Facing = -1
	}
	if in.Has(core.ActionRight) {
		p.X += p.Speed
		p.Facing = 1
	}

	// Gravity
	p.VelocityY += p.Gravity
	p.Y += p.VelocityY

	// World motion
	for i := range g.platforms {
		g.platforms[i].Move()
	}
	now := g.clock.Now()
	for i := range g.collectibles {
		g.collectibles[i].Animate(now)
	}

	g.resolveLanding()
	g.collectCoins(now)
	g.bounceTrampolines()

	// Jump
	if in.Has(core.ActionJump) && !p.Airborne {
		p.VelocityY = -p.JumpForce
		p.Airborne = true
		g.cue(core.CueJump)
		g.emit(EventJumped, 0)
	}

	p.X = core.ClampF(p.X, 0, g.cfg.World.Width-p.Width)

	if g.state.Phase == PhasePlaying && p.Y > g.cfg.World.Height {
		g.die()
	}

	return g.flush()
}

// resolveLanding snaps the player onto every platform it fell into this tick.
// When several platforms qualify, the last one in level order wins.
func (g *Game) resolveLanding() {
	p := &g.player
	for i := range g.platforms {
		pl := &g.platforms[i]
		if !core.Overlaps(p.Rect(), pl.Rect()) {
			continue
		}
		// Feet were at or above the surface before this tick's fall.
		if p.Y+p.Height-p.VelocityY > pl.Y {
			continue
		}
		p.Y = pl.Y - p.Height
		p.VelocityY = 0
		p.Airborne = false
		if pl.Kind == PlatformHorizontal {
			p.X += pl.LastDX
		}
	}
}

func (g *Game) collectCoins(now time.Time) {
	for i := range g.collectibles {
		c := &g.collectibles[i]
		if c.Collected || !core.Overlaps(g.player.Rect(), c.Rect()) {
			continue
		}
		c.Collected = true
		g.state.Coins++
		g.cue(core.CueCollect)
		g.updateCombo(now)
		g.emit(EventCollected, g.state.Coins)
		g.checkCompletion()
	}
}

// bounceTrampolines launches the player from every overlapping trampoline.
// The bounce repeats on each tick the overlap persists.
func (g *Game) bounceTrampolines() {
	p := &g.player
	for _, t := range g.trampolines {
		if !core.Overlaps(p.Rect(), t.Rect()) {
			continue
		}
		p.VelocityY = -p.JumpForce * g.cfg.Trampolines.BounceFactor
		g.cue(core.CueJump)
		g.emit(EventBounced, 0)
	}
}

func (g *Game) updateCombo(now time.Time) {
	window := time.Duration(g.cfg.Progression.ComboWindowMs) * time.Millisecond
	if !g.state.LastCollect.IsZero() && now.Sub(g.state.LastCollect) < window {
		g.state.Combo++
	} else {
		g.state.Combo = 1
	}
	g.state.LastCollect = now
}
