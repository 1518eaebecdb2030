// internal/ui/speed_button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает x1/x2/x4. Число стрелок = номер состояния + 1.
type SpeedButton struct {
	Rect           image.Rectangle
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(rect image.Rectangle, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{Rect: rect, StateColors: stateColors}
}

// Multiplier returns how many ticks run per frame in the current state.
func (b *SpeedButton) Multiplier() int {
	return config.SpeedMultipliers[b.CurrentState%len(config.SpeedMultipliers)]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := float32(1.0 + 0.3*math.Exp(-elapsed*8))

	cx := float32(b.Rect.Min.X+b.Rect.Max.X) / 2
	cy := float32(b.Rect.Min.Y+b.Rect.Max.Y) / 2
	r := float32(b.Rect.Dx()) / 2 * scale
	vector.DrawFilledCircle(screen, cx, cy, r, b.StateColors[b.CurrentState], true)
	vector.StrokeCircle(screen, cx, cy, r, 1, color.White, true)

	// Стрелки ">" по центру
	arrows := b.CurrentState + 1
	h := r * 0.5
	w := h * 0.6
	step := w * 0.9
	x0 := cx - step*float32(arrows-1)/2 - w/2
	for i := 0; i < arrows; i++ {
		x := x0 + step*float32(i)
		vector.StrokeLine(screen, x, cy-h, x+w, cy, 2, color.White, true)
		vector.StrokeLine(screen, x+w, cy, x, cy+h, 2, color.White, true)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
