package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
)

// Service plays cues and background music. Failures never reach the caller:
// a broken device simply stays quiet.
type Service interface {
	PlayCue(c core.Cue)
	ToggleMusic() bool
	ToggleSound() bool
	MusicOn() bool
	SoundOn() bool
	Close()
}

// Open returns a speaker-backed service, or a silent one if the audio device
// cannot be initialized.
func Open(cfg config.AudioConfig, logger *log.Logger) Service {
	svc, err := NewBeepService(cfg)
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, running silent", "err", err)
		}
		return NewSilent(cfg)
	}
	if logger != nil {
		logger.Debug("audio ready", "sample_rate", cfg.SampleRate)
	}
	return svc
}

// Silent is a Service that tracks the switches but produces no sound.
type Silent struct {
	gate *Gate
}

// NewSilent creates a silent service with the configured switches.
func NewSilent(cfg config.AudioConfig) *Silent {
	return &Silent{gate: NewGate(cfg.Sound, cfg.Music)}
}

func (s *Silent) PlayCue(core.Cue)  {}
func (s *Silent) ToggleMusic() bool { return s.gate.ToggleMusic() }
func (s *Silent) ToggleSound() bool { return s.gate.ToggleSound() }
func (s *Silent) MusicOn() bool     { return s.gate.Music() }
func (s *Silent) SoundOn() bool     { return s.gate.Sound() }
func (s *Silent) Close()            {}
