// Package web runs piggyhop in the browser. The DOM, canvas and WebAudio code
// is built only for GOOS=js with gopherjs; the key and element tables in this
// file are plain Go.
package web

import (
	"github.com/vovakirdan/piggyhop/internal/core"
	"github.com/vovakirdan/piggyhop/internal/game"
)

// Element ids expected in the host page.
const (
	CanvasID        = "gameCanvas"
	GameOverID      = "gameOver"
	UpgradeScreenID = "upgradeScreen"
	PauseScreenID   = "pauseScreen"
)

// Button ids and the action each one triggers.
var buttonActions = map[string]core.Action{
	"musicToggle":      core.ActionMusic,
	"soundToggle":      core.ActionSound,
	"restartButton":    core.ActionRestart,
	"jumpForceUpgrade": core.ActionBuyJump,
	"speedUpgrade":     core.ActionBuySpeed,
	"continueButton":   core.ActionContinue,
}

var hudElementIDs = map[game.HUDField]string{
	game.HUDLevel:         "levelDisplay",
	game.HUDLives:         "livesDisplay",
	game.HUDCoins:         "coinsDisplay",
	game.HUDCombo:         "comboDisplay",
	game.HUDTime:          "timeDisplay",
	game.HUDFinalScore:    "finalScore",
	game.HUDCurrentCoins:  "currentCoins",
	game.HUDJumpForceCost: "jumpForceCost",
	game.HUDSpeedCost:     "speedCost",
	game.HUDRating:        "rating",
}

// ElementID returns the id of the element showing a HUD field.
func ElementID(f game.HUDField) string {
	if id, ok := hudElementIDs[f]; ok {
		return id
	}
	return f.String()
}

// KeyboardEvent.code values held while down.
var heldCodes = map[string]core.Action{
	"ArrowLeft":  core.ActionLeft,
	"KeyA":       core.ActionLeft,
	"ArrowRight": core.ActionRight,
	"KeyD":       core.ActionRight,
	"Space":      core.ActionJump,
	"ArrowUp":    core.ActionJump,
	"KeyW":       core.ActionJump,
}

// KeyboardEvent.code values that fire once per press.
var edgeCodes = map[string]core.Action{
	"KeyP":        core.ActionPause,
	"Escape":      core.ActionPause,
	"Digit1":      core.ActionBuyJump,
	"Numpad1":     core.ActionBuyJump,
	"Digit2":      core.ActionBuySpeed,
	"Numpad2":     core.ActionBuySpeed,
	"Enter":       core.ActionContinue,
	"NumpadEnter": core.ActionContinue,
	"KeyR":        core.ActionRestart,
	"KeyM":        core.ActionMusic,
	"KeyN":        core.ActionSound,
}

// EdgeAction returns the one-shot action for a key code.
func EdgeAction(code string) (core.Action, bool) {
	a, ok := edgeCodes[code]
	return a, ok
}

// HeldKeys tracks movement keys between keydown and keyup.
type HeldKeys map[string]bool

// Down records a keydown. It reports whether the code is a movement key.
func (h HeldKeys) Down(code string) bool {
	if _, ok := heldCodes[code]; !ok {
		return false
	}
	h[code] = true
	return true
}

// Up records a keyup.
func (h HeldKeys) Up(code string) {
	delete(h, code)
}

// Frame returns the held actions.
func (h HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for code := range h {
		frame.Set(heldCodes[code])
	}
	return frame
}

// Overlays reports which screens are visible in a phase.
type Overlays struct {
	GameOver bool
	Upgrade  bool
	Pause    bool
}

// OverlaysFor returns the overlay visibility for a state.
func OverlaysFor(s game.State) Overlays {
	return Overlays{
		GameOver: s.Phase.Finished(),
		Upgrade:  s.Phase == game.PhaseUpgrade,
		Pause:    s.Phase == game.PhasePlaying && s.Paused,
	}
}
