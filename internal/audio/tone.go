// Package audio synthesizes piggyhop's sound effects and background music.
// Tones are shared by every frontend; BeepService plays them on the local
// speaker and Silent stands in where no audio device exists.
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/vovakirdan/piggyhop/internal/core"
)

// Tone is a sine note whose gain decays exponentially to a tenth of its
// starting value over its duration.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Sound effect and music parameters
var (
	JumpTone    = Tone{Freq: 600, Duration: 100 * time.Millisecond}
	CollectTone = Tone{Freq: 800, Duration: 100 * time.Millisecond}

	// MusicNotes is the C major scale looped as background music.
	MusicNotes = []float64{262, 294, 330, 349, 392, 440, 494, 523}
)

const (
	NoteLength   = 200 * time.Millisecond
	NoteInterval = 300 * time.Millisecond
	DefaultGain  = 0.1
)

// ToneFor returns the tone played for a cue.
func ToneFor(c core.Cue) Tone {
	if c == core.CueCollect {
		return CollectTone
	}
	return JumpTone
}

// MusicTone returns the i-th note of the music loop.
func MusicTone(i int) Tone {
	n := len(MusicNotes)
	return Tone{Freq: MusicNotes[((i%n)+n)%n], Duration: NoteLength}
}

// Gain returns the envelope at t seconds for a tone starting at gain start.
func (t Tone) Gain(start, at float64) float64 {
	d := t.Duration.Seconds()
	if d <= 0 || at >= d {
		return start / 10
	}
	if at <= 0 {
		return start
	}
	return start * math.Pow(0.1, at/d)
}

// At returns the signal value at t seconds.
func (t Tone) At(gain, at float64) float64 {
	return t.Gain(gain, at) * math.Sin(2*math.Pi*t.Freq*at)
}

// Samples returns the number of frames the tone lasts at the sample rate.
func (t Tone) Samples(rate int) int {
	return int(math.Round(t.Duration.Seconds() * float64(rate)))
}

// PCM16 renders the tone as interleaved little-endian signed 16-bit stereo,
// the format ebiten's audio players consume.
func (t Tone) PCM16(rate int, gain float64) []byte {
	n := t.Samples(rate)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := t.At(gain, float64(i)/float64(rate))
		s := uint16(int16(core.ClampF(v, -1, 1) * math.MaxInt16)) //#nosec G115 -- clamped sample
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}

// MusicPCM16 renders one pass over MusicNotes, each note followed by the
// silence that completes its NoteInterval.
func MusicPCM16(rate int, gain float64) []byte {
	slot := int(math.Round(NoteInterval.Seconds() * float64(rate)))
	out := make([]byte, 0, slot*len(MusicNotes)*4)
	for i := range MusicNotes {
		note := MusicTone(i).PCM16(rate, gain)
		out = append(out, note...)
		out = append(out, make([]byte, slot*4-len(note))...)
	}
	return out
}
