//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/vovakirdan/piggyhop/internal/audio"
	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
)

// WebAudio plays tones with WebAudio oscillators. It implements
// audio.Service.
type WebAudio struct {
	ctx      *js.Object
	gate     *audio.Gate
	gain     float64
	interval *js.Object
	note     int
}

// NewWebAudio creates the audio context, or returns nil when the browser has
// none.
func NewWebAudio(cfg config.AudioConfig) *WebAudio {
	ctor := js.Global.Get("AudioContext")
	if ctor == nil || ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == nil || ctor == js.Undefined {
		return nil
	}
	gain := cfg.Gain
	if gain <= 0 {
		gain = audio.DefaultGain
	}
	w := &WebAudio{
		ctx:  ctor.New(),
		gate: audio.NewGate(cfg.Sound, cfg.Music),
		gain: gain,
	}
	if w.gate.Music() {
		w.startMusic()
	}
	return w
}

// play schedules one tone starting now.
func (w *WebAudio) play(t audio.Tone) {
	now := w.ctx.Get("currentTime").Float()
	end := now + t.Duration.Seconds()

	osc := w.ctx.Call("createOscillator")
	gainNode := w.ctx.Call("createGain")
	osc.Set("type", "sine")
	osc.Get("frequency").Call("setValueAtTime", t.Freq, now)
	gainNode.Get("gain").Call("setValueAtTime", w.gain, now)
	gainNode.Get("gain").Call("exponentialRampToValueAtTime", t.Gain(w.gain, t.Duration.Seconds()), end)

	osc.Call("connect", gainNode)
	gainNode.Call("connect", w.ctx.Get("destination"))
	osc.Call("start", now)
	osc.Call("stop", end)
}

// Resume unlocks the context after a user gesture.
func (w *WebAudio) Resume() {
	if w.ctx.Get("state").String() == "suspended" {
		w.ctx.Call("resume")
	}
}

// PlayCue implements audio.Service.
func (w *WebAudio) PlayCue(c core.Cue) {
	if w.gate.Sound() {
		w.play(audio.ToneFor(c))
	}
}

func (w *WebAudio) startMusic() {
	w.interval = js.Global.Call("setInterval", func() {
		w.play(audio.MusicTone(w.note))
		w.note++
	}, audio.NoteInterval.Milliseconds())
}

func (w *WebAudio) stopMusic() {
	if w.interval != nil {
		js.Global.Call("clearInterval", w.interval)
		w.interval = nil
	}
}

// ToggleMusic implements audio.Service.
func (w *WebAudio) ToggleMusic() bool {
	on := w.gate.ToggleMusic()
	if on {
		w.Resume()
		w.startMusic()
	} else {
		w.stopMusic()
	}
	return on
}

// ToggleSound implements audio.Service.
func (w *WebAudio) ToggleSound() bool { return w.gate.ToggleSound() }

// MusicOn implements audio.Service.
func (w *WebAudio) MusicOn() bool { return w.gate.Music() }

// SoundOn implements audio.Service.
func (w *WebAudio) SoundOn() bool { return w.gate.Sound() }

// Close stops the music and the context.
func (w *WebAudio) Close() {
	w.stopMusic()
	w.ctx.Call("close")
}
