// internal/terminal/renderer.go
package terminal

import (
	"fmt"
	"image/color"
	"math"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/pkg/route"

	"github.com/gdamore/tcell/v2"
)

// Мир 800x600 отображается в сетку 80x30
const (
	CellWidth  = 10
	CellHeight = 20
	GridCols   = config.WorldWidth / CellWidth
	GridRows   = config.WorldHeight / CellHeight
	hudCol     = GridCols + 2
)

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// CellAt returns the cell under a world point.
func CellAt(x, y float64) Cell {
	return Cell{Col: int(x) / CellWidth, Row: int(y) / CellHeight}
}

// Center returns the world point in the middle of the cell.
func (c Cell) Center() (x, y float64) {
	return float64(c.Col*CellWidth) + CellWidth/2, float64(c.Row*CellHeight) + CellHeight/2
}

var (
	groundColor     = tcell.NewRGBColor(60, 100, 45)
	pathColor       = tcell.NewRGBColor(127, 140, 141)
	styleGround     = tcell.StyleDefault.Background(groundColor)
	stylePath       = tcell.StyleDefault.Background(pathColor)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xc0, 0x39, 0x2b)).Bold(true)
	styleSlowed     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x5d, 0xad, 0xe2)).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleMuted      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleAlert      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws a game snapshot onto a tcell screen.
type Renderer struct {
	screen   tcell.Screen
	pathMask [GridRows][GridCols]bool
}

func NewRenderer(screen tcell.Screen, path *route.Route) *Renderer {
	r := &Renderer{screen: screen}
	// Путь шириной config.PathWidth, растеризуем один раз
	half := config.PathWidth / 2
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			x, y := Cell{col, row}.Center()
			r.pathMask[row][col] = path.DistanceTo(route.Point{X: x, Y: y}) <= half
		}
	}
	return r
}

// View carries frontend-only state into Draw.
type View struct {
	Cursor     Cell
	Preview    *app.Preview
	Paused     bool
	Multiplier int
}

func (r *Renderer) Draw(snap app.Snapshot, view View) {
	r.screen.Clear()
	r.drawGround()
	if view.Preview != nil {
		r.drawRange(view.Preview.X, view.Preview.Y, view.Preview.Range, view.Preview.Valid && view.Preview.Affordable)
	}
	for _, t := range snap.Towers {
		if t.Inspected {
			r.drawRange(t.X, t.Y, t.Range, true)
		}
	}
	for _, t := range snap.Towers {
		c := CellAt(t.X, t.Y)
		glyph := rune('0' + t.Level)
		r.put(c, glyph, tcell.StyleDefault.Background(rgb(t.Color)).Foreground(tcell.ColorWhite).Bold(t.Inspected))
	}
	for _, e := range snap.Enemies {
		style := styleEnemy
		if e.Slowed {
			style = styleSlowed
		}
		glyph := 'e'
		if e.HealthRatio > 0.5 {
			glyph = 'E'
		}
		r.put(CellAt(e.X, e.Y), glyph, style.Background(r.bgAt(CellAt(e.X, e.Y))))
	}
	for _, p := range snap.Projectiles {
		c := CellAt(p.X, p.Y)
		r.put(c, '*', styleProjectile.Background(r.bgAt(c)))
	}
	r.drawCursor(view.Cursor)
	r.drawHUD(snap, view)
	r.screen.Show()
}

func (r *Renderer) drawGround() {
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if r.pathMask[row][col] {
				r.screen.SetContent(col, row, ' ', nil, stylePath)
			} else {
				r.screen.SetContent(col, row, ' ', nil, styleGround)
			}
		}
	}
}

func (r *Renderer) bgAt(c Cell) tcell.Color {
	if c.Row >= 0 && c.Row < GridRows && c.Col >= 0 && c.Col < GridCols && r.pathMask[c.Row][c.Col] {
		return pathColor
	}
	return groundColor
}

// drawRange обводит окружность радиуса точками
func (r *Renderer) drawRange(x, y, radius float64, valid bool) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if !valid {
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	steps := int(2 * math.Pi * radius / CellWidth)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c := CellAt(x+radius*math.Cos(a), y+radius*math.Sin(a))
		r.put(c, '.', style.Background(r.bgAt(c)))
	}
}

func (r *Renderer) drawCursor(c Cell) {
	if c.Col < 0 || c.Col >= GridCols || c.Row < 0 || c.Row >= GridRows {
		return
	}
	mainc, _, style, _ := r.screen.GetContent(c.Col, c.Row)
	r.screen.SetContent(c.Col, c.Row, mainc, nil, style.Reverse(true))
}

func (r *Renderer) drawHUD(snap app.Snapshot, view View) {
	row := 0
	line := func(style tcell.Style, format string, args ...interface{}) {
		r.text(hudCol, row, style, fmt.Sprintf(format, args...))
		row++
	}
	line(styleHUD, "Lives %d", snap.Lives)
	line(styleHUD, "Money %d", snap.Money)
	line(styleHUD, "Wave  %d", snap.Wave)
	line(styleMuted, "%s x%d", snap.Phase, view.Multiplier)
	if snap.PendingSpawns > 0 {
		line(styleMuted, "incoming %d", snap.PendingSpawns)
	}
	row++

	if info := snap.Inspected; info != nil {
		line(styleHUD, "%s lvl %d/%d", info.Name, info.Level, info.MaxLevel)
		line(styleMuted, "dmg %d rng %.0f", info.Damage, info.Range)
		line(styleMuted, "cd %dms", info.Cooldown.Milliseconds())
		if info.MaxedOut {
			line(styleMuted, "[u] max level")
		} else {
			line(styleHUD, "[u] upgrade %d", info.UpgradeCost)
		}
		line(styleHUD, "[s] sell %d", info.SellValue)
		line(styleMuted, "[esc] close")
	} else {
		line(styleMuted, "[1-9] build, [w] wave")
	}

	switch {
	case snap.GameOver:
		row++
		line(styleAlert, "GAME OVER")
		line(styleHUD, "[r] restart  [q] quit")
	case view.Paused:
		row++
		line(styleAlert, "PAUSED")
	}
}

func (r *Renderer) text(col, row int, style tcell.Style, s string) {
	for i, ch := range s {
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}

func (r *Renderer) put(c Cell, ch rune, style tcell.Style) {
	if c.Col < 0 || c.Col >= GridCols || c.Row < 0 || c.Row >= GridRows {
		return
	}
	r.screen.SetContent(c.Col, c.Row, ch, nil, style)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
