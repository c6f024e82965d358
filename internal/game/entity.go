// Package game implements the piggyhop platformer simulation: a pig runs and
// jumps across moving platforms, collects coins, bounces on trampolines and
// spends its coins on upgrades between levels.
//
// The package is pure: it never reads the keyboard, draws to a device or
// plays audio. Frontends feed it InputFrames and consume the events, cues and
// HUD updates it returns.
package game

import (
	"math"
	"time"

	"github.com/vovakirdan/piggyhop/internal/core"
)

// Player is the controllable pig.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Horizontal pixels per tick, upgradeable
	JumpForce     float64 // Initial upward velocity of a jump, upgradeable
	Gravity       float64
	VelocityY     float64
	Airborne      bool // Set by a jump, cleared by landing on a platform
	Facing        int  // +1 right, -1 left
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// PlatformKind selects how a platform moves.
type PlatformKind int

const (
	PlatformStatic     PlatformKind = iota // Never moves
	PlatformHorizontal                     // Oscillates along X around its anchor
	PlatformVertical                       // Oscillates along Y around its anchor
)

// String returns the kind name used in level listings.
func (k PlatformKind) String() string {
	switch k {
	case PlatformStatic:
		return "static"
	case PlatformHorizontal:
		return "horizontal"
	case PlatformVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Platform is a solid surface the player can land on.
type Platform struct {
	X, Y          float64
	Width, Height float64
	Kind          PlatformKind
	Color         core.Color

	AnchorX, AnchorY float64 // Center of oscillation
	Speed            float64
	Range            float64 // Maximum distance from the anchor before reversing
	Direction        float64 // +1 or -1

	LastDX, LastDY float64 // Displacement applied by the latest Move
}

// Rect returns the platform's collision box.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Move advances a moving platform by one tick. Once it is farther than Range
// from its anchor the direction flips; the position is not clamped, so a
// platform may overshoot by up to one tick of travel.
func (p *Platform) Move() {
	p.LastDX, p.LastDY = 0, 0
	step := p.Speed * p.Direction

	switch p.Kind {
	case PlatformHorizontal:
		p.X += step
		p.LastDX = step
		if core.AbsF(p.X-p.AnchorX) > p.Range {
			p.Direction = -p.Direction
		}
	case PlatformVertical:
		p.Y += step
		p.LastDY = step
		if core.AbsF(p.Y-p.AnchorY) > p.Range {
			p.Direction = -p.Direction
		}
	}
}

// Collectible is a floating coin.
type Collectible struct {
	X, Y      float64
	Size      float64
	Collected bool

	FloatOffset float64 // Visual bob, never part of the collision box
	FloatSpeed  float64 // Radians per millisecond
	FloatHeight float64
}

// Rect returns the coin's collision box at its base position.
func (c Collectible) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.Size, c.Size)
}

// Animate recomputes the floating offset from wall-clock time.
func (c *Collectible) Animate(now time.Time) {
	ms := float64(now.UnixMilli())
	c.FloatOffset = math.Sin(ms*c.FloatSpeed) * c.FloatHeight
}

// Trampoline bounces the player upward on contact.
type Trampoline struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the trampoline's collision box.
func (t Trampoline) Rect() core.Rect {
	return core.NewRect(t.X, t.Y, t.Width, t.Height)
}
