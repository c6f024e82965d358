package tui

import (
	"time"

	"github.com/vovakirdan/piggyhop/internal/core"
)

// KeyLatch emulates held keys on terminals that only report key presses.
// A press keeps its action active for the hold duration; terminal auto-repeat
// refreshes it while the key stays down.
type KeyLatch struct {
	clock core.TimeProvider
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewKeyLatch creates a latch that holds each press for hold.
func NewKeyLatch(clock core.TimeProvider, hold time.Duration) *KeyLatch {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &KeyLatch{
		clock: clock,
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

// Press starts or refreshes the hold for a.
func (l *KeyLatch) Press(a core.Action) {
	l.until[a] = l.clock.Now().Add(l.hold)
}

// Release drops a immediately.
func (l *KeyLatch) Release(a core.Action) {
	delete(l.until, a)
}

// Frame returns the actions still held now and forgets expired ones.
func (l *KeyLatch) Frame() core.InputFrame {
	now := l.clock.Now()
	frame := core.NewInputFrame()
	for a, until := range l.until {
		if now.Before(until) {
			frame.Set(a)
			continue
		}
		delete(l.until, a)
	}
	return frame
}

// Reset releases everything.
func (l *KeyLatch) Reset() {
	clear(l.until)
}
