// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const lineHeight = 20

// InfoPanel displays the inspected tower.
type InfoPanel struct {
	Rect          image.Rectangle
	UpgradeButton *Button
	SellButton    *Button
	CloseButton   *Button
	fontFace      font.Face
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face, sb layout.Sidebar) *InfoPanel {
	return &InfoPanel{
		Rect:          sb.Info,
		UpgradeButton: NewButton(sb.Upgrade, "", config.ButtonColor),
		SellButton:    NewButton(sb.Sell, "", config.SellButtonColor),
		CloseButton:   NewButton(sb.Close, "X", config.ButtonDisabledColor),
		fontFace:      face,
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, info *app.TowerInfo, money int) {
	if info == nil {
		return
	}
	r := p.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.SidebarColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, config.SidebarBorderColor, false)

	lines := []string{
		info.Name,
		fmt.Sprintf("Level:    %d/%d", info.Level, info.MaxLevel),
		fmt.Sprintf("Damage:   %d", info.Damage),
		fmt.Sprintf("Range:    %.0f", info.Range),
		fmt.Sprintf("Cooldown: %s", layout.FormatCooldown(info.Cooldown)),
		fmt.Sprintf("Effect:   %s", layout.DescribeEffect(info.Effect)),
	}
	x, y := r.Min.X+8, r.Min.Y+lineHeight
	for i, line := range lines {
		clr := config.TextLightColor
		if i == 0 {
			clr = config.SidebarBorderColor
		}
		text.Draw(screen, line, p.fontFace, x, y+i*lineHeight, clr)
	}

	p.UpgradeButton.Text = layout.UpgradeLabel(info.UpgradeCost, info.MaxedOut)
	p.UpgradeButton.Enabled = !info.MaxedOut && money >= info.UpgradeCost
	p.SellButton.Text = layout.SellLabel(info.SellValue)

	p.UpgradeButton.Draw(screen, p.fontFace)
	p.SellButton.Draw(screen, p.fontFace)
	p.CloseButton.Draw(screen, p.fontFace)
}
