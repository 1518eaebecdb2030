// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.ButtonColor,
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 1,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, face font.Face) {
	if waveNumber <= 0 {
		return
	}
	s := layout.ToRoman(waveNumber)

	// Каждая десятая волна — красная
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.WaveStateColor
	}

	bounds := text.BoundString(face, s)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, s, face, x, i.Y, textColor)
}
