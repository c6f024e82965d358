package desktop

import (
	"bytes"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/piggyhop/internal/audio"
	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
)

// Sound plays cues and music through ebiten's audio context.
// It implements audio.Service.
type Sound struct {
	ctx   *ebaudio.Context
	gate  *audio.Gate
	cues  map[core.Cue][]byte
	music *ebaudio.Player
}

// NewSound renders all tones up front and prepares the looping music player.
// Only one ebiten audio context may exist per process.
func NewSound(cfg config.AudioConfig) (*Sound, error) {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	gain := cfg.Gain
	if gain <= 0 {
		gain = audio.DefaultGain
	}

	ctx := ebaudio.NewContext(rate)
	s := &Sound{
		ctx:  ctx,
		gate: audio.NewGate(cfg.Sound, cfg.Music),
		cues: map[core.Cue][]byte{
			core.CueJump:    audio.ToneFor(core.CueJump).PCM16(rate, gain),
			core.CueCollect: audio.ToneFor(core.CueCollect).PCM16(rate, gain),
		},
	}

	pcm := audio.MusicPCM16(rate, gain)
	loop := ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	music, err := ebaudio.NewPlayer(ctx, loop)
	if err != nil {
		return nil, err
	}
	s.music = music
	if s.gate.Music() {
		s.music.Play()
	}
	return s, nil
}

// PlayCue implements audio.Service.
func (s *Sound) PlayCue(c core.Cue) {
	if !s.gate.Sound() {
		return
	}
	pcm, ok := s.cues[c]
	if !ok {
		return
	}
	ebaudio.NewPlayerFromBytes(s.ctx, pcm).Play()
}

// ToggleMusic implements audio.Service.
func (s *Sound) ToggleMusic() bool {
	on := s.gate.ToggleMusic()
	if on {
		s.music.Play()
	} else {
		s.music.Pause()
	}
	return on
}

// ToggleSound implements audio.Service.
func (s *Sound) ToggleSound() bool { return s.gate.ToggleSound() }

// MusicOn implements audio.Service.
func (s *Sound) MusicOn() bool { return s.gate.Music() }

// SoundOn implements audio.Service.
func (s *Sound) SoundOn() bool { return s.gate.Sound() }

// Close stops the music.
func (s *Sound) Close() {
	s.music.Pause()
	_ = s.music.Close()
}
