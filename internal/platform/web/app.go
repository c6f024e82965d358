//go:build js
// +build js

package web

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopherjs/gopherjs/js"

	"github.com/vovakirdan/piggyhop/internal/audio"
	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
	"github.com/vovakirdan/piggyhop/internal/game"
)

// App binds one game to the host page.
type App struct {
	doc    *js.Object
	canvas *js.Object
	ctx    *js.Object
	sim    *game.Game
	keys   HeldKeys
	hud    *domHUD
	sound  audio.Service
	web    *WebAudio
	logger *log.Logger
}

// domHUD writes HUD fields into elements by id.
type domHUD struct {
	doc *js.Object
}

func (h *domHUD) SetText(f game.HUDField, value string) {
	el := h.doc.Call("getElementById", ElementID(f))
	if el == nil || el == js.Undefined {
		return
	}
	el.Set("textContent", value)
}

// Start wires the game to doc and begins the animation and timer loops.
func Start(doc *js.Object, cfg config.GameConfig, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	canvas := doc.Call("getElementById", CanvasID)
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}
	canvas.Set("width", cfg.World.Width)
	canvas.Set("height", cfg.World.Height)

	a := &App{
		doc:    doc,
		canvas: canvas,
		ctx:    canvas.Call("getContext", "2d"),
		sim:    game.New(cfg),
		keys:   HeldKeys{},
		hud:    &domHUD{doc: doc},
		logger: logger,
	}
	if w := NewWebAudio(cfg.Audio); w != nil {
		a.web = w
		a.sound = w
	} else {
		logger.Warn("WebAudio unavailable, running silent")
		a.sound = audio.NewSilent(cfg.Audio)
	}

	a.sim.Reset(core.RuntimeConfig{
		ScreenW:  int(cfg.World.Width),
		ScreenH:  int(cfg.World.Height),
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	})
	a.dispatch(a.sim.Flush())

	a.bindInput()
	js.Global.Call("setInterval", func() {
		a.dispatch(a.sim.TimerTick())
	}, 1000)
	js.Global.Call("requestAnimationFrame", a.frame)
	return a
}

func (a *App) bindInput() {
	a.doc.Call("addEventListener", "keydown", func(event *js.Object) {
		code := event.Get("code").String()
		if a.keys.Down(code) {
			event.Call("preventDefault")
			return
		}
		if action, ok := EdgeAction(code); ok && !event.Get("repeat").Bool() {
			a.apply(action)
			event.Call("preventDefault")
		}
	})
	a.doc.Call("addEventListener", "keyup", func(event *js.Object) {
		a.keys.Up(event.Get("code").String())
	})

	for id, action := range buttonActions {
		el := a.doc.Call("getElementById", id)
		if el == nil || el == js.Undefined {
			continue
		}
		action := action
		el.Call("addEventListener", "click", func() {
			a.apply(action)
		})
	}

	// Browsers start audio contexts suspended until a user gesture.
	js.Global.Call("addEventListener", "click", func() {
		if a.web != nil {
			a.web.Resume()
		}
	}, map[string]interface{}{"once": true})
}

func (a *App) apply(action core.Action) {
	switch action {
	case core.ActionPause:
		a.sim.TogglePause()
	case core.ActionBuyJump:
		a.sim.ApplyUpgrade(game.UpgradeJumpForce)
	case core.ActionBuySpeed:
		a.sim.ApplyUpgrade(game.UpgradeSpeed)
	case core.ActionContinue:
		a.sim.Continue()
	case core.ActionRestart:
		if a.sim.State().Phase.Finished() {
			a.sim.Restart()
		}
	case core.ActionMusic:
		a.sound.ToggleMusic()
	case core.ActionSound:
		a.sound.ToggleSound()
	}
	a.dispatch(a.sim.Flush())
}

func (a *App) frame(_ float64) {
	a.dispatch(a.sim.Step(a.keys.Frame()))
	a.draw()
	js.Global.Call("requestAnimationFrame", a.frame)
}

func (a *App) dispatch(res game.StepResult) {
	game.Dispatch(res, a.hud, a.sound)
	for _, ev := range res.Events {
		a.logger.Debug("game event", "event", ev.Kind, "level", ev.Level, "value", ev.Value)
	}
	a.showOverlays()
}

func (a *App) showOverlays() {
	o := OverlaysFor(a.sim.State())
	a.setVisible(GameOverID, o.GameOver)
	a.setVisible(UpgradeScreenID, o.Upgrade)
	a.setVisible(PauseScreenID, o.Pause)
}

func (a *App) setVisible(id string, visible bool) {
	el := a.doc.Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return
	}
	display := "none"
	if visible {
		display = "block"
	}
	el.Get("style").Set("display", display)
}

func (a *App) draw() {
	a.ctx.Call("clearRect", 0, 0, a.canvas.Get("width"), a.canvas.Get("height"))
	a.sim.Draw(&canvasRenderer{ctx: a.ctx})
}

// canvasRenderer draws entities on a 2D canvas context.
type canvasRenderer struct {
	ctx *js.Object
}

func (r *canvasRenderer) fillRect(x, y, w, h float64, c core.Color) {
	r.ctx.Set("fillStyle", c.Hex())
	r.ctx.Call("fillRect", x, y, w, h)
}

func (r *canvasRenderer) circle(cx, cy, radius float64, c core.Color) {
	r.ctx.Set("fillStyle", c.Hex())
	r.ctx.Call("beginPath")
	r.ctx.Call("arc", cx, cy, radius, 0, 2*math.Pi)
	r.ctx.Call("fill")
}

func (r *canvasRenderer) DrawPlatform(p game.Platform) {
	r.fillRect(p.X, p.Y, p.Width, p.Height, p.Color)
}

func (r *canvasRenderer) DrawCollectible(c game.Collectible) {
	half := c.Size / 2
	r.circle(c.X+half, c.Y+half+c.FloatOffset, half, core.ColorGold)
}

func (r *canvasRenderer) DrawTrampoline(t game.Trampoline) {
	r.fillRect(t.X, t.Y, t.Width, t.Height, core.ColorHotPink)
}

func (r *canvasRenderer) DrawPlayer(p game.Player) {
	r.fillRect(p.X, p.Y, p.Width, p.Height, core.ColorPink)

	snoutX, eyeX := p.X+p.Width*0.8, p.X+p.Width*0.65
	if p.Facing < 0 {
		snoutX, eyeX = p.X+p.Width*0.2, p.X+p.Width*0.35
	}
	r.circle(snoutX, p.Y+p.Height*0.6, p.Width*0.15, core.ColorHotPink)
	r.ctx.Set("fillStyle", "#000000")
	r.ctx.Call("beginPath")
	r.ctx.Call("arc", eyeX, p.Y+p.Height*0.3, math.Max(2, p.Width*0.06), 0, 2*math.Pi)
	r.ctx.Call("fill")
}
