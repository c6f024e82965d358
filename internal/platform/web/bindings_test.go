package web

import (
	"testing"

	"github.com/vovakirdan/piggyhop/internal/core"
	"github.com/vovakirdan/piggyhop/internal/game"
)

func TestElementIDs(t *testing.T) {
	tests := map[game.HUDField]string{
		game.HUDLevel:         "levelDisplay",
		game.HUDLives:         "livesDisplay",
		game.HUDTime:          "timeDisplay",
		game.HUDFinalScore:    "finalScore",
		game.HUDJumpForceCost: "jumpForceCost",
		game.HUDRating:        "rating",
	}
	for f, want := range tests {
		if got := ElementID(f); got != want {
			t.Errorf("ElementID(%v) = %q, expected %q", f, got, want)
		}
	}
	for _, f := range game.HUDFields() {
		if ElementID(f) == "" {
			t.Errorf("field %v has no element", f)
		}
	}
}

func TestHeldKeys(t *testing.T) {
	h := HeldKeys{}
	if h.Down("KeyP") {
		t.Error("KeyP is not a movement key")
	}
	if !h.Down("ArrowLeft") || !h.Down("Space") {
		t.Fatal("movement keys should be tracked")
	}

	f := h.Frame()
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionJump) || f.Has(core.ActionRight) {
		t.Errorf("unexpected frame: %v", f.Actions)
	}

	h.Up("ArrowLeft")
	if h.Frame().Has(core.ActionLeft) {
		t.Error("keyup should release the action")
	}
}

func TestEdgeAction(t *testing.T) {
	tests := map[string]core.Action{
		"KeyP":   core.ActionPause,
		"Digit1": core.ActionBuyJump,
		"Digit2": core.ActionBuySpeed,
		"Enter":  core.ActionContinue,
		"KeyR":   core.ActionRestart,
		"KeyM":   core.ActionMusic,
	}
	for code, want := range tests {
		got, ok := EdgeAction(code)
		if !ok || got != want {
			t.Errorf("EdgeAction(%q) = %v, %v; expected %v", code, got, ok, want)
		}
	}
	if _, ok := EdgeAction("ArrowLeft"); ok {
		t.Error("movement keys are not edge actions")
	}
}

func TestOverlaysFor(t *testing.T) {
	tests := []struct {
		name     string
		state    game.State
		expected Overlays
	}{
		{"playing", game.State{Phase: game.PhasePlaying}, Overlays{}},
		{"paused", game.State{Phase: game.PhasePlaying, Paused: true}, Overlays{Pause: true}},
		{"shop", game.State{Phase: game.PhaseUpgrade}, Overlays{Upgrade: true}},
		{"over", game.State{Phase: game.PhaseOver}, Overlays{GameOver: true}},
		{"completed", game.State{Phase: game.PhaseCompleted}, Overlays{GameOver: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverlaysFor(tc.state); got != tc.expected {
				t.Errorf("OverlaysFor = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
