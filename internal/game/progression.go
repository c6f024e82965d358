package game

import "math"

// LoadLevel rebuilds the level's entities from its template, puts the player
// back at the start and refills the timer. It returns false and changes
// nothing if the catalog has no such level.
func (g *Game) LoadLevel(n int) bool {
	if g.catalog == nil {
		return false
	}
	t, ok := g.catalog.Template(n)
	if !ok {
		return false
	}

	g.platforms = make([]Platform, len(t.Platforms))
	for i, spec := range t.Platforms {
		g.platforms[i] = Platform{
			X:         spec.X,
			Y:         spec.Y,
			Width:     spec.Width,
			Height:    spec.Height,
			Kind:      spec.Kind,
			Color:     spec.Color,
			AnchorX:   spec.X,
			AnchorY:   spec.Y,
			Speed:     spec.Speed,
			Range:     spec.Range,
			Direction: 1,
		}
	}

	cc := g.cfg.Collectibles
	g.collectibles = make([]Collectible, len(t.Collectibles))
	for i, pt := range t.Collectibles {
		g.collectibles[i] = Collectible{
			X:           pt.X,
			Y:           pt.Y,
			Size:        cc.Size,
			FloatSpeed:  cc.FloatSpeed,
			FloatHeight: cc.FloatHeight,
		}
	}

	tc := g.cfg.Trampolines
	g.trampolines = make([]Trampoline, len(t.Trampolines))
	for i, pt := range t.Trampolines {
		g.trampolines[i] = Trampoline{X: pt.X, Y: pt.Y, Width: tc.Width, Height: tc.Height}
	}

	g.respawn()
	g.state.Level = n
	g.state.TimeLeft = t.TimeLimit
	g.emit(EventLevelLoaded, n)
	return true
}

// respawn moves the player to the level start and stops its fall.
func (g *Game) respawn() {
	g.player.X = g.cfg.Player.StartX
	g.player.Y = g.cfg.Player.StartY
	g.player.VelocityY = 0
}

// die costs a life. The level itself is left untouched: collected coins stay
// collected and the timer keeps running.
func (g *Game) die() {
	g.state.Lives--
	g.emit(EventLifeLost, g.state.Lives)

	if g.state.Lives <= 0 {
		g.state.Phase = PhaseOver
		g.emit(EventGameOver, g.state.Coins)
		return
	}
	g.respawn()
}

// checkCompletion advances progression once every coin is collected.
func (g *Game) checkCompletion() {
	for _, c := range g.collectibles {
		if !c.Collected {
			return
		}
	}

	if g.state.Level < g.catalog.Len() {
		g.emit(EventLevelCleared, g.state.Level)
		g.state.Level++
		g.state.Phase = PhaseUpgrade
		return
	}

	g.state.Phase = PhaseCompleted
	g.state.Stars = Stars(g.state.Coins, g.cfg.Progression.CoinsPerStar, g.cfg.Progression.MaxStars)
	g.emit(EventCompleted, g.state.Coins)
}

// Stars rates a finished run: one star plus one per coinsPerStar coins,
// capped at maxStars.
func Stars(coins, coinsPerStar, maxStars int) int {
	if coinsPerStar <= 0 {
		return maxStars
	}
	return min(maxStars, coins/coinsPerStar+1)
}

// Continue leaves the upgrade shop and starts the current level.
func (g *Game) Continue() bool {
	if g.state.Phase != PhaseUpgrade {
		return false
	}
	g.state.Phase = PhasePlaying
	return g.LoadLevel(g.state.Level)
}

// Restart begins a new run from level 1 with full lives and no coins.
// Upgrades and player stats carry over unless the configuration says
// otherwise.
func (g *Game) Restart() bool {
	g.state.Level = 1
	g.state.Lives = g.cfg.Progression.Lives
	g.state.Coins = 0
	g.state.Combo = 0
	g.state.Stars = 0
	g.state.Paused = false
	g.state.Phase = PhasePlaying

	if g.cfg.Progression.RestartResetsUpgrades {
		g.player = g.basePlayer()
		g.state.Upgrades = g.baseUpgrades()
	}

	g.emit(EventRestarted, 0)
	return g.LoadLevel(1)
}

// ApplyUpgrade buys one level of the given upgrade in the shop. It returns
// false, changing nothing, outside the shop or when coins are short.
func (g *Game) ApplyUpgrade(kind UpgradeKind) bool {
	if g.state.Phase != PhaseUpgrade {
		return false
	}
	u, ok := g.state.Upgrades[kind]
	if !ok || g.state.Coins < u.Cost {
		return false
	}

	g.state.Coins -= u.Cost
	u.Level++
	switch kind {
	case UpgradeJumpForce:
		g.player.JumpForce += g.cfg.Upgrades.JumpForceStep
	case UpgradeSpeed:
		g.player.Speed += g.cfg.Upgrades.SpeedStep
	}
	u.Cost = int(math.Floor(float64(u.Cost) * g.cfg.Upgrades.CostGrowth))

	g.emit(EventUpgradeBought, int(kind))
	return true
}

// TogglePause pauses or resumes play. It has no effect outside the playing
// phase and returns the resulting paused flag.
func (g *Game) TogglePause() bool {
	if g.state.Phase != PhasePlaying {
		return g.state.Paused
	}
	g.state.Paused = !g.state.Paused
	if g.state.Paused {
		g.emit(EventPaused, 0)
	} else {
		g.emit(EventResumed, 0)
	}
	return g.state.Paused
}

func (g *Game) basePlayer() Player {
	pc := g.cfg.Player
	return Player{
		X:         pc.StartX,
		Y:         pc.StartY,
		Width:     pc.Width,
		Height:    pc.Height,
		Speed:     pc.Speed,
		JumpForce: pc.JumpForce,
		Gravity:   pc.Gravity,
		Facing:    1,
	}
}

func (g *Game) baseUpgrades() map[UpgradeKind]*Upgrade {
	cost := g.cfg.Upgrades.BaseCost
	return map[UpgradeKind]*Upgrade{
		UpgradeJumpForce: {Cost: cost},
		UpgradeSpeed:     {Cost: cost},
	}
}
