// internal/ui/shop.go
package ui

import (
	"fmt"
	"image"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Shop — список башен с ценами
type Shop struct {
	catalog *defs.Catalog
	buttons []*Button
}

func NewShop(catalog *defs.Catalog, rects []image.Rectangle) *Shop {
	s := &Shop{catalog: catalog}
	for i, r := range rects {
		a := catalog.At(i)
		if a == nil {
			break
		}
		label := fmt.Sprintf("%d. %s (%d M)", i+1, a.Name, app.PlacementCost(a))
		s.buttons = append(s.buttons, NewButton(r, label, config.ButtonColor))
	}
	return s
}

// Draw greys out what the wallet cannot pay for and highlights the selection.
func (s *Shop) Draw(screen *ebiten.Image, face font.Face, money int, selected defs.TowerID) {
	for i, b := range s.buttons {
		a := s.catalog.At(i)
		b.Enabled = money >= app.PlacementCost(a)
		b.Selected = a.ID == selected
		b.Draw(screen, face)

		// Цветная метка архетипа справа
		r := b.Rect
		cy := float32(r.Min.Y+r.Max.Y) / 2
		vector.DrawFilledCircle(screen, float32(r.Max.X-14), cy, 7, a.Color, true)
		vector.StrokeCircle(screen, float32(r.Max.X-14), cy, 7, 1, render.DarkenColor(a.Color), true)
	}
}
