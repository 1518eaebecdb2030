// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует "||" во время игры и "▶" на паузе
type PauseButton struct {
	Rect           image.Rectangle
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(rect image.Rectangle, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{Rect: rect, PauseColor: pauseColor, PlayColor: playColor}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := float32(1.0 + 0.3*math.Exp(-elapsed*8))
	size := float32(b.Rect.Dx()) / 2 * scale
	cx := float32(b.Rect.Min.X+b.Rect.Max.X) / 2
	cy := float32(b.Rect.Min.Y+b.Rect.Max.Y) / 2

	if b.IsPaused {
		// Треугольник (play) из линий
		p1x, p1y := cx-size*0.6, cy-size*0.8
		p2x, p2y := cx-size*0.6, cy+size*0.8
		p3x, p3y := cx+size*0.8, cy
		vector.StrokeLine(screen, p1x, p1y, p2x, p2y, 3, b.PlayColor, true)
		vector.StrokeLine(screen, p2x, p2y, p3x, p3y, 3, b.PlayColor, true)
		vector.StrokeLine(screen, p3x, p3y, p1x, p1y, 3, b.PlayColor, true)
		return
	}
	// Два прямоугольника (pause)
	width := size * 0.5
	height := size * 1.6
	spacing := size * 0.4
	vector.DrawFilledRect(screen, cx-width-spacing/2, cy-height/2, width, height, b.PauseColor, false)
	vector.DrawFilledRect(screen, cx+spacing/2, cy-height/2, width, height, b.PauseColor, false)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
