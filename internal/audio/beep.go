package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
)

// BeepService plays tones on the local speaker through a shared mixer.
type BeepService struct {
	mu     sync.Mutex
	gate   *Gate
	rate   beep.SampleRate
	gain   float64
	mixer  *beep.Mixer
	music  *beep.Ctrl
	closed bool
}

// NewBeepService initializes the speaker and starts the mixer.
func NewBeepService(cfg config.AudioConfig) (*BeepService, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	gain := cfg.Gain
	if gain <= 0 {
		gain = DefaultGain
	}

	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	s := &BeepService{
		gate:  NewGate(cfg.Sound, false),
		rate:  rate,
		gain:  gain,
		mixer: &beep.Mixer{},
	}
	speaker.Play(s.mixer)

	if cfg.Music {
		s.ToggleMusic()
	}
	return s, nil
}

// PlayCue mixes in the cue's tone if sound effects are on.
func (s *BeepService) PlayCue(c core.Cue) {
	if !s.gate.Sound() {
		return
	}
	st, err := NewToneStreamer(ToneFor(c), s.rate, s.gain)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// ToggleMusic starts the music loop from its first note, or stops it.
func (s *BeepService) ToggleMusic() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	on := s.gate.ToggleMusic()
	if s.closed {
		return on
	}

	speaker.Lock()
	defer speaker.Unlock()
	if s.music != nil {
		// A nil streamer drains out of the mixer
		s.music.Streamer = nil
		s.music = nil
	}
	if on {
		s.music = &beep.Ctrl{Streamer: NewMusicStreamer(s.rate, s.gain)}
		s.mixer.Add(s.music)
	}
	return on
}

// ToggleSound flips sound effects.
func (s *BeepService) ToggleSound() bool { return s.gate.ToggleSound() }

// MusicOn reports whether music is playing.
func (s *BeepService) MusicOn() bool { return s.gate.Music() }

// SoundOn reports whether sound effects are enabled.
func (s *BeepService) SoundOn() bool { return s.gate.Sound() }

// Close silences everything. The speaker itself stays initialized for the
// life of the process.
func (s *BeepService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	s.music = nil
	speaker.Unlock()
}

// toneStreamer applies a Tone's decay envelope to a sine generator and stops
// after the tone's duration.
type toneStreamer struct {
	src   beep.Streamer
	tone  Tone
	rate  beep.SampleRate
	gain  float64
	pos   int
	total int
}

// NewToneStreamer returns a finite streamer playing t.
func NewToneStreamer(t Tone, rate beep.SampleRate, gain float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot build %vHz tone: %w", t.Freq, err)
	}
	return &toneStreamer{
		src:   sine,
		tone:  t,
		rate:  rate,
		gain:  gain,
		total: rate.N(t.Duration),
	}, nil
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := s.total - s.pos
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, _ = s.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := s.tone.Gain(s.gain, float64(s.pos)/float64(s.rate))
		samples[i][0] *= g
		samples[i][1] *= g
		s.pos++
	}
	return n, n > 0
}

func (s *toneStreamer) Err() error {
	return nil
}

// musicStreamer loops MusicNotes forever, one note per NoteInterval.
type musicStreamer struct {
	rate     beep.SampleRate
	gain     float64
	pos      int
	slot     int
	noteSize int
}

// NewMusicStreamer returns an endless background music streamer.
func NewMusicStreamer(rate beep.SampleRate, gain float64) beep.Streamer {
	return &musicStreamer{
		rate:     rate,
		gain:     gain,
		slot:     rate.N(NoteInterval),
		noteSize: rate.N(NoteLength),
	}
}

func (m *musicStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		offset := m.pos % m.slot
		var v float64
		if offset < m.noteSize {
			note := MusicTone(m.pos / m.slot)
			v = note.At(m.gain, float64(offset)/float64(m.rate))
		}
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *musicStreamer) Err() error {
	return nil
}
