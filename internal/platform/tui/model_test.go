package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
	"github.com/vovakirdan/piggyhop/internal/game"
	"github.com/vovakirdan/piggyhop/internal/storage"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, cfg config.GameConfig, store *storage.Store) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(testStart)
	m := NewModel(Options{
		Game:    cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42},
		Store:   store,
		Clock:   clock,
		Player:  "tester",
	})
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"1", runes("1"), core.ActionBuyJump},
		{"2", runes("2"), core.ActionBuySpeed},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionContinue},
		{"r", runes("r"), core.ActionRestart},
		{"p", runes("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"m", runes("m"), core.ActionMusic},
		{"n", runes("n"), core.ActionSound},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestIsHeld(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		if !IsHeld(a) {
			t.Errorf("IsHeld(%v) = false, expected true", a)
		}
	}
	for _, a := range []core.Action{core.ActionPause, core.ActionContinue, core.ActionQuit} {
		if IsHeld(a) {
			t.Errorf("IsHeld(%v) = true, expected false", a)
		}
	}
}

func TestKeyLatchHoldsUntilExpiry(t *testing.T) {
	clock := core.NewManualClock(testStart)
	l := NewKeyLatch(clock, 180*time.Millisecond)

	l.Press(core.ActionRight)
	if !l.Frame().Has(core.ActionRight) {
		t.Fatal("pressed action should be held immediately")
	}

	clock.Advance(100 * time.Millisecond)
	l.Press(core.ActionRight) // auto-repeat refresh
	clock.Advance(150 * time.Millisecond)
	if !l.Frame().Has(core.ActionRight) {
		t.Error("refreshed action should still be held")
	}

	clock.Advance(50 * time.Millisecond)
	if l.Frame().Has(core.ActionRight) {
		t.Error("action should expire after the hold duration")
	}
}

func TestKeyLatchReleaseAndReset(t *testing.T) {
	l := NewKeyLatch(core.NewManualClock(testStart), time.Second)
	l.Press(core.ActionLeft)
	l.Press(core.ActionJump)

	l.Release(core.ActionLeft)
	f := l.Frame()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionJump) {
		t.Errorf("unexpected frame after release: %v", f.Actions)
	}

	l.Reset()
	if len(l.Frame().Actions) != 0 {
		t.Error("Reset should release everything")
	}
}

func TestNewModelPublishesHUD(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultGameConfig(), nil)

	hud := m.HUD()
	if got := hud.Get(game.HUDLevel, ""); got != "1" {
		t.Errorf("level = %q, expected 1", got)
	}
	if got := hud.Get(game.HUDLives, ""); got != "3" {
		t.Errorf("lives = %q, expected 3", got)
	}
	if got := hud.Get(game.HUDTime, ""); got != "60" {
		t.Errorf("time = %q, expected 60", got)
	}
	if m.Init() == nil {
		t.Error("Init should schedule ticks")
	}
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m, clock := newTestModel(t, config.DefaultGameConfig(), nil)
	startX := m.Game().Player().X

	m = update(t, m, runes("d"))
	m = update(t, m, TickMsg(clock.Now()))
	if got := m.Game().Player().X; got != startX+5 {
		t.Errorf("X = %v, expected %v", got, startX+5)
	}

	// Reversing drops the opposite direction
	m = update(t, m, runes("a"))
	m = update(t, m, TickMsg(clock.Now()))
	if got := m.Game().Player().X; got != startX {
		t.Errorf("X = %v, expected %v after reversing", got, startX)
	}

	// Released once the latch expires
	clock.Advance(time.Second)
	m = update(t, m, TickMsg(clock.Now()))
	if got := m.Game().Player().X; got != startX {
		t.Errorf("X = %v, expected no movement after expiry", got)
	}
}

func TestModelPauseStopsTimer(t *testing.T) {
	m, clock := newTestModel(t, config.DefaultGameConfig(), nil)

	m = update(t, m, TimerMsg(clock.Now()))
	if got := m.HUD().Get(game.HUDTime, ""); got != "59" {
		t.Fatalf("time = %q, expected 59", got)
	}

	m = update(t, m, runes("p"))
	if !m.Game().State().Paused {
		t.Fatal("p should pause")
	}
	m = update(t, m, TimerMsg(clock.Now()))
	if got := m.Game().State().TimeLeft; got != 59 {
		t.Errorf("TimeLeft = %d, expected 59 while paused", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the pause panel")
	}
}

func TestModelSavesFinishedRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	cfg := config.DefaultGameConfig()
	cfg.Progression.Lives = 1
	cfg.Progression.LevelTime = 1
	m, clock := newTestModel(t, cfg, store)

	m = update(t, m, TimerMsg(clock.Now()))
	if got := m.Game().State().Phase; got != game.PhaseOver {
		t.Fatalf("phase = %v, expected over", got)
	}
	if !m.RunSaved() {
		t.Fatal("finished run should be saved")
	}
	if got := m.HUD().Get(game.HUDFinalScore, ""); got != "0" {
		t.Errorf("finalScore = %q, expected 0", got)
	}

	m = update(t, m, TimerMsg(clock.Now()))
	m = update(t, m, TickMsg(clock.Now()))

	count, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount: %v", err)
	}
	if count != 1 {
		t.Errorf("RunCount = %d, expected 1", count)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if runs[0].Player != "tester" || runs[0].Outcome != "over" || runs[0].Level != 1 {
		t.Errorf("unexpected run: %+v", runs[0])
	}

	m = update(t, m, runes("r"))
	if m.RunSaved() {
		t.Error("restart should begin an unsaved run")
	}
	if got := m.Game().State().Phase; got != game.PhasePlaying {
		t.Errorf("phase = %v, expected playing after restart", got)
	}
}

func TestModelToggles(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultGameConfig(), nil)

	m = update(t, m, runes("m"))
	if !strings.Contains(m.View(), "music on") {
		t.Error("status line should report music on")
	}
	m = update(t, m, runes("n"))
	if !strings.Contains(m.View(), "sound off") {
		t.Error("status line should report sound off")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultGameConfig(), nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultGameConfig(), nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, expected 30", len(lines))
	}
}
