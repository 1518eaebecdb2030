// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Color    color.RGBA
	Enabled  bool
	Selected bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, clr color.RGBA) *Button {
	return &Button{Rect: rect, Text: label, Color: clr, Enabled: true}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.Color
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabledColor
	case b.Selected:
		bg = config.ButtonSelectedColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, config.SidebarBorderColor, false)

	fg := config.TextLightColor
	if !b.Enabled {
		fg = config.TextMutedColor
	}
	drawCentered(screen, b.Text, face, b.Rect, fg)
}

// drawCentered пишет текст по центру прямоугольника.
func drawCentered(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}
