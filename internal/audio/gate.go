package audio

import "sync/atomic"

// Gate holds the sound effect and music switches. It is safe for concurrent
// use so frontends can flip it from input handlers while audio goroutines
// read it.
type Gate struct {
	sound atomic.Bool
	music atomic.Bool
}

// NewGate creates a gate with the given initial switches.
func NewGate(sound, music bool) *Gate {
	g := &Gate{}
	g.sound.Store(sound)
	g.music.Store(music)
	return g
}

// Sound reports whether sound effects are enabled.
func (g *Gate) Sound() bool { return g.sound.Load() }

// Music reports whether background music is enabled.
func (g *Gate) Music() bool { return g.music.Load() }

// ToggleSound flips the sound effect switch and returns the new value.
func (g *Gate) ToggleSound() bool { return toggle(&g.sound) }

// ToggleMusic flips the music switch and returns the new value.
func (g *Gate) ToggleMusic() bool { return toggle(&g.music) }

func toggle(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
