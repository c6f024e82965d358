package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/piggyhop/internal/storage"
)

func TestRunRows(t *testing.T) {
	created := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	runs := []storage.Run{
		{Player: "alice", Coins: 420, Level: 20, Stars: 3, Outcome: "completed", CreatedAt: created},
		{Player: "bob", Coins: 12, Level: 2, Outcome: "over", CreatedAt: created},
	}

	rows := RunRows(runs, 5)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}

	expected := []string{"#1", "alice", "420", "20", "★★★☆☆", "completed", "Mar 05 14:30"}
	for i, want := range expected {
		if rows[0][i] != want {
			t.Errorf("row 0 col %d = %q, expected %q", i, rows[0][i], want)
		}
	}
	if rows[1][0] != "#2" || rows[1][4] != "-" {
		t.Errorf("unexpected second row: %v", rows[1])
	}
}

func TestScoreboardFilter(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{Player: "alice", Coins: 100, Level: 6, Outcome: "over"},
		{Player: "bob", Coins: 300, Level: 12, Outcome: "over"},
		{Player: "alice", Coins: 50, Level: 3, Outcome: "over"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, "alice", 5, 100, 30)
	if got := len(m.Runs()); got != 3 {
		t.Fatalf("top runs = %d, expected 3", got)
	}
	if m.Runs()[0].Player != "bob" {
		t.Errorf("first run = %s, expected bob", m.Runs()[0].Player)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := len(m.Runs()); got != 2 {
		t.Fatalf("alice runs = %d, expected 2", got)
	}
	if !strings.Contains(m.View(), "RUNS BY ALICE") {
		t.Error("title should name the filtered player")
	}
}

func TestScoreboardEmptyAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "anonymous", 5, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit the scoreboard")
	}
}
