package game

import (
	"math/rand"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
)

// PlatformSpec describes a platform placement inside a level template.
type PlatformSpec struct {
	X, Y          float64
	Width, Height float64
	Kind          PlatformKind
	Color         core.Color
	Speed         float64
	Range         float64
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// LevelTemplate is the immutable layout of one level.
type LevelTemplate struct {
	Number       int
	Platforms    []PlatformSpec
	Collectibles []Point
	Trampolines  []Point
	TimeLimit    int // Seconds on the level timer
}

// Clone creates a deep copy of the template.
func (t LevelTemplate) Clone() LevelTemplate {
	clone := t
	clone.Platforms = append([]PlatformSpec(nil), t.Platforms...)
	clone.Collectibles = append([]Point(nil), t.Collectibles...)
	clone.Trampolines = append([]Point(nil), t.Trampolines...)
	return clone
}

// Catalog maps level numbers 1..N to templates.
type Catalog struct {
	levels []LevelTemplate
}

// NewCatalog builds a catalog from templates in play order. Level numbers are
// assigned from position.
func NewCatalog(templates ...LevelTemplate) *Catalog {
	c := &Catalog{levels: make([]LevelTemplate, len(templates))}
	for i, t := range templates {
		t = t.Clone()
		t.Number = i + 1
		c.levels[i] = t
	}
	return c
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Template returns a copy of level n's template.
func (c *Catalog) Template(n int) (LevelTemplate, bool) {
	if n < 1 || n > len(c.levels) {
		return LevelTemplate{}, false
	}
	return c.levels[n-1].Clone(), true
}

// BaseTemplate returns the fixed layout shared by every level, with moving
// platform speed and the timer scaled for the given level.
func BaseTemplate(cfg config.GameConfig, level int) LevelTemplate {
	scaling := config.NewScaling(cfg)
	speed := scaling.PlatformSpeed(level)
	hr, vr := cfg.Platforms.HorizontalRange, cfg.Platforms.VerticalRange

	return LevelTemplate{
		Number: level,
		Platforms: []PlatformSpec{
			{X: 0, Y: 350, Width: 800, Height: 50, Kind: PlatformStatic, Color: core.ColorSlate},
			{X: 100, Y: 250, Width: 150, Height: 20, Kind: PlatformHorizontal, Color: core.ColorBrightRed, Speed: speed, Range: hr},
			{X: 300, Y: 200, Width: 100, Height: 20, Kind: PlatformVertical, Color: core.ColorYellow, Speed: speed, Range: vr},
			{X: 500, Y: 150, Width: 100, Height: 20, Kind: PlatformHorizontal, Color: core.ColorBrightRed, Speed: speed, Range: hr},
			{X: 700, Y: 100, Width: 100, Height: 20, Kind: PlatformVertical, Color: core.ColorYellow, Speed: speed, Range: vr},
		},
		Collectibles: []Point{
			{120, 200}, {320, 150}, {520, 100}, {720, 50}, {400, 300},
		},
		Trampolines: []Point{
			{200, 300}, {600, 250},
		},
		TimeLimit: scaling.LevelTime(level),
	}
}

// BuildCatalog generates Progression.Levels templates. Each level gets
// min(level, MaxExtra) extra coins at random positions and one extra random
// trampoline for every other extra coin.
func BuildCatalog(cfg config.GameConfig, rng *rand.Rand) *Catalog {
	cc := cfg.Collectibles
	randomPoint := func() Point {
		return Point{
			X: rng.Float64()*cc.SpawnWidth + cc.SpawnMinX,
			Y: rng.Float64()*cc.SpawnHeight + cc.SpawnMinY,
		}
	}

	templates := make([]LevelTemplate, 0, cfg.Progression.Levels)
	for level := 1; level <= cfg.Progression.Levels; level++ {
		t := BaseTemplate(cfg, level)
		for j := 0; j < min(level, cc.MaxExtra); j++ {
			t.Collectibles = append(t.Collectibles, randomPoint())
			if j%2 == 0 {
				t.Trampolines = append(t.Trampolines, randomPoint())
			}
		}
		templates = append(templates, t)
	}
	return NewCatalog(templates...)
}
