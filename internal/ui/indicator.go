// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок цвета текущей фазы, пульсирует при смене
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	lastPhase     component.Phase
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	if phase != i.lastPhase {
		i.lastPhase = phase
		i.LastClickTime = time.Now()
	}
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, phaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}

func phaseColor(phase component.Phase) color.RGBA {
	switch phase {
	case component.WavePhase:
		return config.WaveStateColor
	case component.GameOverPhase:
		return config.ButtonDisabledColor
	default:
		return config.IdleStateColor
	}
}
