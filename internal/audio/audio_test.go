package audio

import (
	"encoding/binary"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
)

func TestToneFor(t *testing.T) {
	assert.Equal(t, 600.0, ToneFor(core.CueJump).Freq)
	assert.Equal(t, 800.0, ToneFor(core.CueCollect).Freq)
	assert.Equal(t, 100*time.Millisecond, ToneFor(core.CueCollect).Duration)
}

func TestMusicToneWraps(t *testing.T) {
	assert.Equal(t, 262.0, MusicTone(0).Freq)
	assert.Equal(t, 523.0, MusicTone(7).Freq)
	assert.Equal(t, 262.0, MusicTone(8).Freq)
	assert.Equal(t, 523.0, MusicTone(-1).Freq)
	assert.Equal(t, NoteLength, MusicTone(3).Duration)
}

func TestToneEnvelope(t *testing.T) {
	tone := JumpTone
	assert.InDelta(t, 0.1, tone.Gain(0.1, 0), 1e-12)
	assert.InDelta(t, 0.1*math.Sqrt(0.1), tone.Gain(0.1, 0.05), 1e-12)
	assert.InDelta(t, 0.01, tone.Gain(0.1, 0.1), 1e-12)
	assert.InDelta(t, 0.01, tone.Gain(0.1, 5), 1e-12)

	// Monotonic decay
	prev := tone.Gain(0.1, 0)
	for at := 0.001; at < 0.1; at += 0.001 {
		g := tone.Gain(0.1, at)
		require.Less(t, g, prev)
		prev = g
	}
}

func TestTonePCM16(t *testing.T) {
	pcm := CollectTone.PCM16(44100, DefaultGain)
	require.Len(t, pcm, 4410*4)

	peak := 0
	for i := 0; i < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		require.Equal(t, l, r, "channels must match")
		peak = max(peak, int(math.Abs(float64(l))))
	}
	maxSample := float64(math.MaxInt16)
	assert.LessOrEqual(t, peak, int(0.1*maxSample)+1)
	assert.Greater(t, peak, 1000)
}

func TestMusicPCM16Length(t *testing.T) {
	pcm := MusicPCM16(8000, DefaultGain)
	// 8 notes, 300ms slots at 8kHz, 4 bytes per frame
	assert.Len(t, pcm, 8*2400*4)

	// The tail of each slot is silent
	for i := 1700 * 4; i < 2400*4; i++ {
		require.Zero(t, pcm[i])
	}
}

func TestToneStreamerStopsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	st, err := NewToneStreamer(JumpTone, rate, DefaultGain)
	require.NoError(t, err)

	buf := make([][2]float64, 1000)
	total := 0
	for {
		n, ok := st.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			require.LessOrEqual(t, math.Abs(buf[i][0]), DefaultGain+1e-9)
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, rate.N(100*time.Millisecond), total)
	assert.NoError(t, st.Err())
}

func TestToneStreamerRejectsAliasedFrequency(t *testing.T) {
	_, err := NewToneStreamer(Tone{Freq: 30000, Duration: time.Millisecond}, beep.SampleRate(44100), DefaultGain)
	assert.Error(t, err)
}

func TestMusicStreamerSlots(t *testing.T) {
	rate := beep.SampleRate(10000)
	m := NewMusicStreamer(rate, DefaultGain)

	buf := make([][2]float64, rate.N(NoteInterval))
	n, ok := m.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 3000, n)

	var loud bool
	for i := 0; i < 2000; i++ {
		if math.Abs(buf[i][0]) > 0.01 {
			loud = true
		}
	}
	assert.True(t, loud, "note plays during the first 200ms")
	for i := 2000; i < 3000; i++ {
		require.Zero(t, buf[i][0], "gap after the note is silent")
	}
}

func TestGateConcurrentToggle(t *testing.T) {
	g := NewGate(true, false)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.ToggleSound()
			g.ToggleMusic()
		}()
	}
	wg.Wait()

	// An even number of flips restores the initial values
	assert.True(t, g.Sound())
	assert.False(t, g.Music())
}

func TestSilentService(t *testing.T) {
	cfg := config.DefaultGameConfig().Audio
	var s Service = NewSilent(cfg)

	assert.True(t, s.SoundOn())
	assert.False(t, s.MusicOn())
	assert.True(t, s.ToggleMusic())
	assert.False(t, s.ToggleSound())
	assert.True(t, s.MusicOn())
	assert.False(t, s.SoundOn())

	assert.NotPanics(t, func() {
		s.PlayCue(core.CueJump)
		s.Close()
	})
}
