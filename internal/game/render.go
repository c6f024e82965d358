package game

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/piggyhop/internal/core"
)

// Renderer draws world entities. It only observes them.
type Renderer interface {
	DrawPlatform(p Platform)
	DrawCollectible(c Collectible)
	DrawTrampoline(t Trampoline)
	DrawPlayer(p Player)
}

// Draw sends the world to r: platforms, uncollected coins, trampolines and
// finally the player.
func (g *Game) Draw(r Renderer) {
	for _, p := range g.platforms {
		r.DrawPlatform(p)
	}
	for _, c := range g.collectibles {
		if !c.Collected {
			r.DrawCollectible(c)
		}
	}
	for _, t := range g.trampolines {
		r.DrawTrampoline(t)
	}
	r.DrawPlayer(g.player)
}

// Visual characters for the terminal renderer
const (
	PlatformChar   = '█'
	CoinChar       = '●'
	TrampolineChar = '▄'
	PigChar        = '█'
	SnoutChar      = 'o'
)

// CellRenderer draws the world scaled into a rectangle of a core.Screen.
type CellRenderer struct {
	dst            *core.Screen
	originX        int
	originY        int
	scaleX, scaleY float64
}

// NewCellRenderer maps a worldW x worldH world onto the w x h cell area at
// (x, y) of dst.
func NewCellRenderer(dst *core.Screen, x, y, w, h int, worldW, worldH float64) *CellRenderer {
	return &CellRenderer{
		dst:     dst,
		originX: x,
		originY: y,
		scaleX:  float64(w) / worldW,
		scaleY:  float64(h) / worldH,
	}
}

// cells converts a world rectangle to a cell rectangle at least one cell in
// each dimension.
func (r *CellRenderer) cells(x, y, w, h float64) (cx, cy, cw, ch int) {
	cx = r.originX + int(math.Floor(x*r.scaleX))
	cy = r.originY + int(math.Floor(y*r.scaleY))
	cw = max(1, int(math.Round(w*r.scaleX)))
	ch = max(1, int(math.Round(h*r.scaleY)))
	return cx, cy, cw, ch
}

// DrawPlatform implements Renderer.
func (r *CellRenderer) DrawPlatform(p Platform) {
	cx, cy, cw, ch := r.cells(p.X, p.Y, p.Width, p.Height)
	r.dst.FillRect(cx, cy, cw, ch, PlatformChar, p.Color)

	var arrow rune
	switch p.Kind {
	case PlatformHorizontal:
		arrow = '↔'
	case PlatformVertical:
		arrow = '↕'
	default:
		return
	}
	r.dst.SetColored(cx+cw/2, cy+ch/2, arrow, core.ColorWhite)
}

// DrawCollectible implements Renderer. The coin is drawn at its floating
// position.
func (r *CellRenderer) DrawCollectible(c Collectible) {
	mx, my := c.Rect().Center()
	cx := r.originX + int(math.Floor(mx*r.scaleX))
	cy := r.originY + int(math.Floor((my+c.FloatOffset)*r.scaleY))
	r.dst.SetColored(cx, cy, CoinChar, core.ColorGold)
}

// DrawTrampoline implements Renderer.
func (r *CellRenderer) DrawTrampoline(t Trampoline) {
	cx, cy, cw, ch := r.cells(t.X, t.Y, t.Width, t.Height)
	r.dst.FillRect(cx, cy+ch-1, cw, 1, TrampolineChar, core.ColorHotPink)
}

// DrawPlayer implements Renderer.
func (r *CellRenderer) DrawPlayer(p Player) {
	cx, cy, cw, ch := r.cells(p.X, p.Y, p.Width, p.Height)
	r.dst.FillRect(cx, cy, cw, ch, PigChar, core.ColorPink)

	snoutX := cx + cw - 1
	if p.Facing < 0 {
		snoutX = cx
	}
	r.dst.SetColored(snoutX, cy, SnoutChar, core.ColorHotPink)
}

// Render draws the HUD line, the world and any phase overlay to dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := g.state
	hud := fmt.Sprintf(" Level %d/%d  Lives %d  Coins %d  Combo x%d  Time %d ",
		s.Level, g.Levels(), s.Lives, s.Coins, s.Combo, s.TimeLeft)
	dst.DrawText(0, 0, hud)

	r := NewCellRenderer(dst, 0, 1, dst.Width(), dst.Height()-1, g.cfg.World.Width, g.cfg.World.Height)
	g.Draw(r)

	switch s.Phase {
	case PhasePlaying:
		if s.Paused {
			drawPanel(dst, "PAUSED", "", "Press P to resume")
		}
	case PhaseUpgrade:
		drawPanel(dst,
			fmt.Sprintf("LEVEL %d CLEARED!", s.Level-1),
			"",
			fmt.Sprintf("Coins: %d", s.Coins),
			fmt.Sprintf("[1] Jump +%g   cost %d", g.cfg.Upgrades.JumpForceStep, s.UpgradeCost(UpgradeJumpForce)),
			fmt.Sprintf("[2] Speed +%g  cost %d", g.cfg.Upgrades.SpeedStep, s.UpgradeCost(UpgradeSpeed)),
			"",
			"Enter to continue",
		)
	case PhaseOver:
		drawPanel(dst, "GAME OVER", "", fmt.Sprintf("Coins: %d  |  Press R to restart", s.Coins))
	case PhaseCompleted:
		drawPanel(dst,
			"ALL LEVELS COMPLETE!",
			RatingText(s.Stars, g.cfg.Progression.MaxStars),
			"",
			fmt.Sprintf("Coins: %d  |  Press R to restart", s.Coins),
		)
	}
}

// drawPanel draws a centered box with one line of text per row.
func drawPanel(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCenteredColored(boxY+1, lines[0], core.ColorBrightYellow)
	for i, l := range lines[1:] {
		dst.DrawTextCentered(boxY+2+i, l)
	}
}
