package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/piggyhop/internal/audio"
	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
	"github.com/vovakirdan/piggyhop/internal/game"
	"github.com/vovakirdan/piggyhop/internal/storage"
)

// Options configures the desktop window.
type Options struct {
	Game   config.GameConfig
	Seed   int64
	Scale  float64 // Window scale relative to the world size
	Store  *storage.Store
	Logger *log.Logger
	Player string
}

// Window is the ebiten.Game driving one piggyhop session.
type Window struct {
	sim      *game.Game
	cfg      config.GameConfig
	hud      game.HUDMap
	sound    audio.Service
	store    *storage.Store
	logger   *log.Logger
	player   string
	ticks    int
	runSaved bool
}

// NewWindow creates the window game and starts level 1.
func NewWindow(opts Options, sound audio.Service) *Window {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if sound == nil {
		sound = audio.NewSilent(opts.Game.Audio)
	}

	w := &Window{
		sim:    game.New(opts.Game),
		cfg:    opts.Game,
		hud:    game.HUDMap{},
		sound:  sound,
		store:  opts.Store,
		logger: opts.Logger,
		player: opts.Player,
	}
	w.sim.Reset(core.RuntimeConfig{
		ScreenW:  int(opts.Game.World.Width),
		ScreenH:  int(opts.Game.World.Height),
		TickRate: ebiten.DefaultTPS,
		Seed:     opts.Seed,
	})
	w.dispatch(w.sim.Flush())
	return w
}

// Update implements ebiten.Game. It runs one simulation step per tick and the
// level timer once every DefaultTPS ticks.
func (w *Window) Update() error {
	for _, a := range EdgeActions(inpututil.IsKeyJustPressed) {
		if a == core.ActionQuit {
			w.sound.Close()
			return ebiten.Termination
		}
		w.apply(a)
	}

	w.dispatch(w.sim.Step(HeldFrame(ebiten.IsKeyPressed)))

	w.ticks++
	if w.ticks%ebiten.DefaultTPS == 0 {
		w.dispatch(w.sim.TimerTick())
	}
	return nil
}

// apply runs a one-shot action.
func (w *Window) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		w.sim.TogglePause()
	case core.ActionBuyJump:
		w.sim.ApplyUpgrade(game.UpgradeJumpForce)
	case core.ActionBuySpeed:
		w.sim.ApplyUpgrade(game.UpgradeSpeed)
	case core.ActionContinue:
		w.sim.Continue()
	case core.ActionRestart:
		if w.sim.State().Phase.Finished() && w.sim.Restart() {
			w.runSaved = false
		}
	case core.ActionMusic:
		w.sound.ToggleMusic()
	case core.ActionSound:
		w.sound.ToggleSound()
	}
	w.dispatch(w.sim.Flush())
}

func (w *Window) dispatch(res game.StepResult) {
	game.Dispatch(res, w.hud, w.sound)
	for _, ev := range res.Events {
		w.logger.Debug("game event", "event", ev.Kind, "level", ev.Level, "value", ev.Value)
	}
	if !res.Phase.Finished() || w.runSaved {
		return
	}
	w.runSaved = true
	w.saveRun()
}

// saveRun records the finished run. Failures are logged, never fatal.
func (w *Window) saveRun() {
	if w.store == nil {
		return
	}
	s := w.sim.State()
	run := storage.Run{
		Player:  w.player,
		Coins:   s.Coins,
		Level:   s.Level,
		Stars:   s.Stars,
		Outcome: s.Phase.String(),
	}
	if _, err := w.store.SaveRun(run); err != nil {
		w.logger.Warn("could not save run", "error", err)
		return
	}
	w.logger.Info("run saved", "player", run.Player, "coins", run.Coins, "outcome", run.Outcome)
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x87, 0xCE, 0xEB, 0xFF})
	w.sim.Draw(&vectorRenderer{dst: screen})

	ebitenutil.DebugPrintAt(screen, w.hudText(), 8, 4)

	s := w.sim.State()
	switch s.Phase {
	case game.PhasePlaying:
		if s.Paused {
			w.drawPanel(screen, "PAUSED", "", "P to resume")
		}
	case game.PhaseUpgrade:
		w.drawPanel(screen,
			fmt.Sprintf("LEVEL %d CLEARED!", s.Level-1),
			fmt.Sprintf("Coins: %s", w.hud.Get(game.HUDCurrentCoins, "0")),
			fmt.Sprintf("[1] Jump force  cost %s", w.hud.Get(game.HUDJumpForceCost, "?")),
			fmt.Sprintf("[2] Speed       cost %s", w.hud.Get(game.HUDSpeedCost, "?")),
			"Enter to continue",
		)
	case game.PhaseOver:
		w.drawPanel(screen, "GAME OVER", "Final score: "+w.hud.Get(game.HUDFinalScore, "0"), "R to restart")
	case game.PhaseCompleted:
		w.drawPanel(screen,
			"ALL LEVELS COMPLETE!",
			"Final score: "+w.hud.Get(game.HUDFinalScore, "0"),
			"Rating: "+w.hud.Get(game.HUDRating, ""),
			"R to restart",
		)
	}
}

func (w *Window) hudText() string {
	return fmt.Sprintf("Level %s  Lives %s  Coins %s  Combo x%s  Time %s   [M]usic %s [N] sound %s",
		w.hud.Get(game.HUDLevel, "1"),
		w.hud.Get(game.HUDLives, "0"),
		w.hud.Get(game.HUDCoins, "0"),
		w.hud.Get(game.HUDCombo, "0"),
		w.hud.Get(game.HUDTime, "0"),
		onOff(w.sound.MusicOn()),
		onOff(w.sound.SoundOn()),
	)
}

func (w *Window) drawPanel(screen *ebiten.Image, lines ...string) {
	const lineH = 16
	pw, ph := float32(280), float32(len(lines)*lineH+24)
	x := (float32(w.cfg.World.Width) - pw) / 2
	y := (float32(w.cfg.World.Height) - ph) / 2
	vector.DrawFilledRect(screen, x, y, pw, ph, color.RGBA{0, 0, 0, 0xC0}, false)
	vector.StrokeRect(screen, x, y, pw, ph, 2, rgba(core.ColorHotPink, 0xFF), false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(x)+16, int(y)+12+i*lineH)
	}
}

// Layout implements ebiten.Game with a fixed logical screen the size of the
// world.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.cfg.World.Width), int(w.cfg.World.Height)
}

// vectorRenderer draws entities as filled shapes.
type vectorRenderer struct {
	dst *ebiten.Image
}

func (r *vectorRenderer) DrawPlatform(p game.Platform) {
	vector.DrawFilledRect(r.dst, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), rgba(p.Color, 0xFF), false)
}

func (r *vectorRenderer) DrawCollectible(c game.Collectible) {
	radius := float32(c.Size / 2)
	vector.DrawFilledCircle(r.dst, float32(c.X)+radius, float32(c.Y+c.FloatOffset)+radius, radius, rgba(core.ColorGold, 0xFF), true)
}

func (r *vectorRenderer) DrawTrampoline(t game.Trampoline) {
	vector.DrawFilledRect(r.dst, float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height), rgba(core.ColorHotPink, 0xFF), false)
}

func (r *vectorRenderer) DrawPlayer(p game.Player) {
	x, y, pw, ph := float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height)
	vector.DrawFilledRect(r.dst, x, y, pw, ph, rgba(core.ColorPink, 0xFF), false)

	// Snout on the facing side, eye above it
	snoutX := x + pw*0.8
	eyeX := x + pw*0.65
	if p.Facing < 0 {
		snoutX = x + pw*0.2
		eyeX = x + pw*0.35
	}
	vector.DrawFilledCircle(r.dst, snoutX, y+ph*0.6, pw*0.15, rgba(core.ColorHotPink, 0xFF), true)
	vector.DrawFilledCircle(r.dst, eyeX, y+ph*0.3, float32(math.Max(2, float64(pw)*0.06)), color.Black, true)
}

func rgba(c core.Color, a uint8) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, a}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	var sound audio.Service
	snd, err := NewSound(opts.Game.Audio)
	if err != nil {
		opts.Logger.Warn("audio unavailable, running silent", "err", err)
		sound = audio.NewSilent(opts.Game.Audio)
	} else {
		sound = snd
	}

	w := NewWindow(opts, sound)
	ebiten.SetWindowSize(int(opts.Game.World.Width*opts.Scale), int(opts.Game.World.Height*opts.Scale))
	ebiten.SetWindowTitle(w.sim.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
