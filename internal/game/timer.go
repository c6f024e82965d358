package game

// TimerTick runs once per real second. While playing it counts the level
// timer down; at zero the player loses a life. The timer is only refilled by
// loading a level, so every further tick after expiry costs another life.
func (g *Game) TimerTick() StepResult {
	if g.state.Phase != PhasePlaying || g.state.Paused {
		return g.flush()
	}
	g.state.TimeLeft--
	if g.state.TimeLeft <= 0 {
		g.emit(EventTimeUp, g.state.TimeLeft)
		g.die()
	}
	return g.flush()
}
