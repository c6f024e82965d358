package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/piggyhop/internal/audio"
	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
	"github.com/vovakirdan/piggyhop/internal/game"
	"github.com/vovakirdan/piggyhop/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store    // Optional; runs are not saved when nil
	Audio   audio.Service     // Optional; defaults to a silent service
	Logger  *log.Logger       // Optional; defaults to log.Default()
	Clock   core.TimeProvider // Optional; defaults to the system clock
	Player  string            // Name recorded with finished runs
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a single piggyhop session.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	store    *storage.Store
	audio    audio.Service
	hud      game.HUDMap
	keys     KeyMap
	help     help.Model
	latch    *KeyLatch
	logger   *log.Logger
	config   core.RuntimeConfig
	player   string
	status   string
	runSaved bool
	quitting bool
}

// NewModel creates a session model and starts level 1.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	svc := opts.Audio
	if svc == nil {
		svc = audio.NewSilent(opts.Game.Audio)
	}
	player := opts.Player
	if player == "" {
		player = "anonymous"
	}

	m := Model{
		game:   game.New(opts.Game, game.WithClock(clock)),
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		store:  opts.Store,
		audio:  svc,
		hud:    game.HUDMap{},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		latch:  NewKeyLatch(clock, time.Duration(opts.Game.Input.HoldMs)*time.Millisecond),
		logger: logger,
		config: cfg,
		player: player,
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(cfg)
	m.dispatch(m.game.Flush())
	m.logger.Debug("session started", "player", player, "seed", cfg.Seed, "levels", m.game.Levels())
	return m
}

// Init starts the frame and timer ticks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), timerCmd())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	case TimerMsg:
		return m.handleTimer()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.audio.Close()
		return m, tea.Quit
	case core.ActionLeft:
		m.latch.Release(core.ActionRight)
		m.latch.Press(action)
	case core.ActionRight:
		m.latch.Release(core.ActionLeft)
		m.latch.Press(action)
	case core.ActionJump:
		m.latch.Press(action)
	default:
		m.applyAction(action)
	}
	return m, nil
}

// applyAction runs a one-shot action and forwards its effects immediately.
func (m *Model) applyAction(a core.Action) {
	switch a {
	case core.ActionPause:
		m.game.TogglePause()
		m.latch.Reset()
	case core.ActionBuyJump:
		m.game.ApplyUpgrade(game.UpgradeJumpForce)
	case core.ActionBuySpeed:
		m.game.ApplyUpgrade(game.UpgradeSpeed)
	case core.ActionContinue:
		m.game.Continue()
	case core.ActionRestart:
		m.saveRun()
		if m.game.Restart() {
			m.runSaved = false
		}
		m.latch.Reset()
	case core.ActionMusic:
		on := m.audio.ToggleMusic()
		m.status = "music " + onOff(on)
	case core.ActionSound:
		on := m.audio.ToggleSound()
		m.status = "sound " + onOff(on)
	}
	m.dispatch(m.game.Flush())
}

// handleResize adapts the screen buffer to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation with the currently held keys.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	res := m.game.Step(m.latch.Frame())
	m.dispatch(res)
	return m, tickCmd(m.config.TickRate)
}

// handleTimer runs the level timer once per second.
func (m Model) handleTimer() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.dispatch(m.game.TimerTick())
	return m, timerCmd()
}

// dispatch forwards a step result to the HUD and audio, logs its events and
// records the run once it has finished.
func (m *Model) dispatch(res game.StepResult) {
	game.Dispatch(res, m.hud, m.audio)
	for _, ev := range res.Events {
		m.logger.Debug("game event", "event", ev.Kind, "level", ev.Level, "value", ev.Value)
	}
	if res.Phase.Finished() {
		m.saveRun()
	}
}

// saveRun stores the finished run. It is a no-op for unfinished or already
// saved runs.
func (m *Model) saveRun() {
	s := m.game.State()
	if m.runSaved || !s.Phase.Finished() {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}
	run := storage.Run{
		Player:  m.player,
		Coins:   s.Coins,
		Level:   s.Level,
		Stars:   s.Stars,
		Outcome: s.Phase.String(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "player", run.Player, "coins", run.Coins, "outcome", run.Outcome)
}

// saveScreenshot saves the current screen to a text file and returns a
// status message.
func (m *Model) saveScreenshot() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed"
	}
	dir := filepath.Join(homeDir, ".piggyhop", "screenshots")
	if mkErr := os.MkdirAll(dir, 0o750); mkErr != nil {
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("piggyhop_level%d_%s.txt", m.game.State().Level, timestamp)
	path := filepath.Join(dir, filename)

	m.game.Render(m.screen)
	if wErr := os.WriteFile(path, []byte(m.screen.String()), 0o600); wErr != nil {
		m.logger.Warn("could not save screenshot", "error", wErr)
		return "screenshot failed"
	}
	return "saved " + filename
}

// View renders the game and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// statusLine shows toggles, transient messages and the key help for the
// current phase.
func (m Model) statusLine() string {
	var keys help.KeyMap = m.keys
	if m.game.State().Phase == game.PhaseUpgrade {
		keys = m.keys.Shop()
	}

	parts := []string{
		fmt.Sprintf("♪ %s  ♫ %s", onOff(m.audio.SoundOn()), onOff(m.audio.MusicOn())),
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, m.help.View(keys))
	return statusStyle.Render(strings.Join(parts, "  │  "))
}

// HUD returns the latest HUD text by field.
func (m Model) HUD() game.HUDMap {
	return m.hud
}

// Game returns the underlying simulation.
func (m Model) Game() *game.Game {
	return m.game
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// RunSaved reports whether the current finished run has been recorded.
func (m Model) RunSaved() bool {
	return m.runSaved
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// Run starts a terminal session and blocks until the user quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
