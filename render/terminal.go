// Package render draws the game state onto a tcell screen. It is view
// glue: nothing here feeds back into the simulation. Trail drawing is
// cached per missile and keyed on the trail's data version, so a trail
// is only re-projected when the integrator appended a sample or the
// view moved.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"gravityduel/entity"
	"gravityduel/game"
)

// Aim is the provisional angle/speed the current player is dialing in,
// owned by the input loop and drawn on the HUD
type Aim struct {
	Angle float64
	Speed float64
}

// TerminalRenderer projects the world through the camera onto terminal
// cells
type TerminalRenderer struct {
	screen tcell.Screen
	trails map[*entity.MissileTrail]*trailCache
}

type trailCache struct {
	version uint64
	camera  game.Camera
	w, h    int
	cells   [][2]int
	visible []bool
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		trails: make(map[*entity.MissileTrail]*trailCache),
	}
}

// MissileRenderer is the factory handed to the core: each fired missile
// gets a handle that knows how to draw its own trail.
func (r *TerminalRenderer) MissileRenderer(g *game.GameState) func(*entity.Entity) entity.Renderer {
	return func(e *entity.Entity) entity.Renderer {
		return &missileRenderer{parent: r, state: g}
	}
}

type missileRenderer struct {
	parent *TerminalRenderer
	state  *game.GameState
}

func (m *missileRenderer) Render(e *entity.Entity) {
	m.parent.drawTrail(m.state, e.MissileTrail)
}

// Draw renders one full frame
func (r *TerminalRenderer) Draw(g *game.GameState, aim Aim) {
	r.screen.Clear()

	for _, e := range g.Entities {
		switch {
		case e.Renderer != nil:
			e.Renderer.Render(e)
		case e.MissileTrail != nil:
			r.drawTrail(g, e.MissileTrail)
		case e.Ship != nil:
			r.drawShip(g, e)
		default:
			r.drawPlanet(g, e)
		}
	}

	r.drawHUD(g, aim)
	r.screen.Show()
}

// project maps a world point to a screen cell. Terminal cells are about
// twice as tall as wide, so horizontal resolution is doubled.
func (r *TerminalRenderer) project(g *game.GameState, wx, wy float64) (int, int, bool) {
	w, h := r.screen.Size()
	if h == 0 {
		return 0, 0, false
	}
	unitsPerRow := 2 * g.Camera.Scale() / float64(h)
	unitsPerCol := unitsPerRow / 2

	sx := w/2 + int(math.Round((wx-g.Camera.Position.X)/unitsPerCol))
	sy := h/2 - int(math.Round((wy-g.Camera.Position.Y)/unitsPerRow))
	return sx, sy, sx >= 0 && sx < w && sy >= 0 && sy < h
}

func (r *TerminalRenderer) drawPlanet(g *game.GameState, e *entity.Entity) {
	if e.CollisionShape == nil {
		return
	}
	radius := e.CollisionShape.BoundingRadius()
	pos := e.Position()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	_, h := r.screen.Size()
	unitsPerRow := 2 * g.Camera.Scale() / float64(h)
	unitsPerCol := unitsPerRow / 2

	rows := int(radius/unitsPerRow) + 1
	cols := int(radius/unitsPerCol) + 1
	cx, cy, _ := r.project(g, pos.X, pos.Y)
	for dy := -rows; dy <= rows; dy++ {
		for dx := -cols; dx <= cols; dx++ {
			wx := float64(dx) * unitsPerCol
			wy := float64(dy) * unitsPerRow
			if wx*wx+wy*wy <= radius*radius {
				r.set(cx+dx, cy+dy, '▒', style)
			}
		}
	}
}

func (r *TerminalRenderer) drawShip(g *game.GameState, e *entity.Entity) {
	pos := e.Position()
	sx, sy, visible := r.project(g, pos.X, pos.Y)
	if !visible {
		return
	}
	color := playerColor(g, e.Ship.PlayerID)
	ch := '^'
	if e.Ship.State == entity.ShipDisabled {
		ch = 'x'
		color = tcell.ColorDarkGray
	}
	r.set(sx, sy, ch, tcell.StyleDefault.Foreground(color).Bold(true))
}

func (r *TerminalRenderer) drawTrail(g *game.GameState, trail *entity.MissileTrail) {
	cache := r.trails[trail]
	w, h := r.screen.Size()
	if cache == nil {
		cache = &trailCache{}
		r.trails[trail] = cache
	}
	if cache.version != trail.DataVersion() || cache.camera != g.Camera ||
		cache.w != w || cache.h != h {
		positions := trail.Positions()
		cache.cells = cache.cells[:0]
		cache.visible = cache.visible[:0]
		for _, p := range positions {
			sx, sy, ok := r.project(g, p.X, p.Y)
			cache.cells = append(cache.cells, [2]int{sx, sy})
			cache.visible = append(cache.visible, ok)
		}
		cache.version = trail.DataVersion()
		cache.camera = g.Camera
		cache.w, cache.h = w, h
	}

	color := playerColor(g, trail.PlayerID)
	dim := tcell.StyleDefault.Foreground(color).Dim(true)
	for i, c := range cache.cells {
		if cache.visible[i] {
			r.set(c[0], c[1], '·', dim)
		}
	}
	// Head of a live missile drawn bright
	if trail.TimeToLive > 0 && len(cache.cells) > 0 {
		head := cache.cells[len(cache.cells)-1]
		if cache.visible[len(cache.visible)-1] {
			r.set(head[0], head[1], '*', tcell.StyleDefault.Foreground(color).Bold(true))
		}
	}
}

func (r *TerminalRenderer) drawHUD(g *game.GameState, aim Aim) {
	var status string
	switch g.Phase.Kind {
	case game.PhaseNotStarted:
		status = "press enter to start"
	case game.PhaseGameOver:
		if active := g.ActivePlayerIDs(); len(active) == 1 {
			status = fmt.Sprintf("game over - player %d wins", active[0]+1)
		} else {
			status = "game over"
		}
	case game.PhasePlaying:
		turn := g.Phase.Turn
		verb := "aiming"
		if turn.State == game.TurnFiring {
			verb = "firing"
		}
		status = fmt.Sprintf("player %d %s | angle %6.1f° speed %4.1f",
			turn.CurrentPlayer+1, verb, aim.Angle*180/math.Pi, aim.Speed)
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range status {
		r.set(i, 0, ch, style)
	}
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func playerColor(g *game.GameState, playerID int) tcell.Color {
	if playerID < 0 || playerID >= len(g.Players) {
		return tcell.ColorWhite
	}
	c := g.Players[playerID].Color
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
