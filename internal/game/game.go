package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
)

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source used for combos and coin animation.
func WithClock(clock core.TimeProvider) Option {
	return func(g *Game) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// WithCatalog replaces the generated level catalog. The catalog is kept
// across Reset calls.
func WithCatalog(c *Catalog) Option {
	return func(g *Game) {
		if c != nil && c.Len() > 0 {
			g.catalog = c
			g.fixedCatalog = true
		}
	}
}

// Game is a single piggyhop session. It is not safe for concurrent use; each
// frontend drives it from one goroutine.
type Game struct {
	cfg          config.GameConfig
	runtime      core.RuntimeConfig
	clock        core.TimeProvider
	catalog      *Catalog
	fixedCatalog bool

	state        State
	player       Player
	platforms    []Platform
	collectibles []Collectible
	trampolines  []Trampoline
	tick         uint64

	pending StepResult
	hudSent map[HUDField]string
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.GameConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		clock: core.SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "piggyhop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Piggy Hop"
}

// Reset starts a fresh session: base player stats, no upgrades, full lives,
// level 1. Unless a fixed catalog was supplied, levels are regenerated from
// the runtime seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.fixedCatalog {
		g.catalog = BuildCatalog(g.cfg, rand.New(rand.NewSource(rc.Seed))) //#nosec G404 -- level layout, not security
	}

	g.player = g.basePlayer()
	g.state = State{
		Lives:    g.cfg.Progression.Lives,
		Phase:    PhasePlaying,
		Upgrades: g.baseUpgrades(),
	}
	g.tick = 0
	g.pending = StepResult{}
	g.hudSent = make(map[HUDField]string)

	g.LoadLevel(1)
}

// Config returns the game configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Catalog returns the level catalog in use.
func (g *Game) Catalog() *Catalog {
	return g.catalog
}

// Levels returns the number of levels in the catalog.
func (g *Game) Levels() int {
	if g.catalog == nil {
		return 0
	}
	return g.catalog.Len()
}

// State returns a copy of the progression state.
func (g *Game) State() State {
	return g.state.Clone()
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Platforms returns a copy of the current platforms.
func (g *Game) Platforms() []Platform {
	return append([]Platform(nil), g.platforms...)
}

// Collectibles returns a copy of the current coins.
func (g *Game) Collectibles() []Collectible {
	return append([]Collectible(nil), g.collectibles...)
}

// Trampolines returns a copy of the current trampolines.
func (g *Game) Trampolines() []Trampoline {
	return append([]Trampoline(nil), g.trampolines...)
}

// Flush returns and clears pending events without advancing the simulation.
// Frontends call it after actions such as purchases to update the HUD
// immediately.
func (g *Game) Flush() StepResult {
	return g.flush()
}

func (g *Game) emit(kind EventKind, value int) {
	g.pending.Events = append(g.pending.Events, Event{Kind: kind, Level: g.state.Level, Value: value})
}

func (g *Game) cue(c core.Cue) {
	g.pending.Cues = append(g.pending.Cues, c)
}

func (g *Game) flush() StepResult {
	g.syncHUD()
	res := g.pending
	res.Phase = g.state.Phase
	g.pending = StepResult{}
	return res
}

// syncHUD appends an update for every visible field whose text changed since
// it was last sent.
func (g *Game) syncHUD() {
	if g.hudSent == nil {
		g.hudSent = make(map[HUDField]string)
	}
	values := g.hudValues()
	for _, f := range HUDFields() {
		v, ok := values[f]
		if !ok {
			continue
		}
		if sent, seen := g.hudSent[f]; seen && sent == v {
			continue
		}
		g.hudSent[f] = v
		g.pending.HUD = append(g.pending.HUD, HUDUpdate{Field: f, Value: v})
	}
}

func (g *Game) hudValues() map[HUDField]string {
	s := g.state
	values := map[HUDField]string{
		HUDLevel: itoa(s.Level),
		HUDLives: itoa(s.Lives),
		HUDCoins: itoa(s.Coins),
		HUDCombo: itoa(s.Combo),
		HUDTime:  itoa(s.TimeLeft),
	}
	switch s.Phase {
	case PhaseUpgrade:
		values[HUDCurrentCoins] = itoa(s.Coins)
		values[HUDJumpForceCost] = itoa(s.UpgradeCost(UpgradeJumpForce))
		values[HUDSpeedCost] = itoa(s.UpgradeCost(UpgradeSpeed))
	case PhaseOver:
		values[HUDFinalScore] = itoa(s.Coins)
	case PhaseCompleted:
		values[HUDFinalScore] = itoa(s.Coins)
		values[HUDRating] = RatingText(s.Stars, g.cfg.Progression.MaxStars)
	}
	return values
}

// Snapshot contains the simulation state for determinism checks and replays.
type Snapshot struct {
	Tick      uint64
	Level     int
	Lives     int
	Coins     int
	Combo     int
	TimeLeft  int
	Phase     Phase
	Player    Player
	Platforms []float64 // X, Y, Direction per platform
	Collected []bool
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Level:     g.state.Level,
		Lives:     g.state.Lives,
		Coins:     g.state.Coins,
		Combo:     g.state.Combo,
		TimeLeft:  g.state.TimeLeft,
		Phase:     g.state.Phase,
		Player:    g.player,
		Platforms: make([]float64, 0, len(g.platforms)*3),
		Collected: make([]bool, len(g.collectibles)),
	}
	for _, p := range g.platforms {
		snap.Platforms = append(snap.Platforms, p.X, p.Y, p.Direction)
	}
	for i, c := range g.collectibles {
		snap.Collected[i] = c.Collected
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)    //#nosec G115 -- hash computation

	for _, v := range []float64{snap.Player.X, snap.Player.Y, snap.Player.VelocityY, snap.Player.Speed, snap.Player.JumpForce} {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.Platforms {
		h = h*31 + math.Float64bits(v)
	}
	for _, c := range snap.Collected {
		if c {
			h = h*31 + 1
		} else {
			h *= 31
		}
	}
	return h
}
