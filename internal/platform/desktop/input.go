// Package desktop runs piggyhop in a native window using ebiten.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/piggyhop/internal/core"
)

// binding maps physical keys to one action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// heldBindings are sampled every tick while the key is down.
var heldBindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
}

// edgeBindings fire once per press.
var edgeBindings = []binding{
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionBuyJump, []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}},
	{core.ActionBuySpeed, []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}},
	{core.ActionContinue, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionMusic, []ebiten.Key{ebiten.KeyM}},
	{core.ActionSound, []ebiten.Key{ebiten.KeyN}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// HeldFrame builds the input frame from the keys currently down.
func HeldFrame(pressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range heldBindings {
		if anyKey(b.keys, pressed) {
			frame.Set(b.action)
		}
	}
	return frame
}

// EdgeActions returns the one-shot actions pressed this tick, in binding
// order.
func EdgeActions(justPressed func(ebiten.Key) bool) []core.Action {
	var actions []core.Action
	for _, b := range edgeBindings {
		if anyKey(b.keys, justPressed) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

func anyKey(keys []ebiten.Key, fn func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}
