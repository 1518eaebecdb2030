// internal/ui/sidebar.go
package ui

import (
	"fmt"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Sidebar is the right-hand panel: HUD, shop or info panel, controls.
type Sidebar struct {
	Layout      layout.Sidebar
	Shop        *Shop
	InfoPanel   *InfoPanel
	StartWave   *Button
	SpeedButton *SpeedButton
	PauseButton *PauseButton
	Indicator   *StateIndicator
	Waves       *WaveIndicator
	Lives       *LivesIndicator
	maxLives    int
	fontFace    font.Face
}

func NewSidebar(catalog *defs.Catalog, maxLives int, face font.Face) *Sidebar {
	lay := layout.NewSidebar(config.WorldWidth, config.SidebarWidth, config.ScreenHeight, catalog.Len())
	hud := lay.HUD
	return &Sidebar{
		Layout:      lay,
		Shop:        NewShop(catalog, lay.Shop),
		InfoPanel:   NewInfoPanel(face, lay),
		StartWave:   NewButton(lay.StartWave, "Start Wave", config.ButtonColor),
		SpeedButton: NewSpeedButton(lay.Speed, config.SpeedButtonColors),
		PauseButton: NewPauseButton(lay.Pause, config.TextLightColor, config.ButtonSelectedColor),
		Indicator:   NewStateIndicator(float32(hud.Min.X)+config.IndicatorRadius, float32(hud.Min.Y)+config.IndicatorRadius+4, config.IndicatorRadius),
		Waves:       NewWaveIndicator(hud.Max.X-40, hud.Min.Y+62),
		Lives:       NewLivesIndicator(float32(hud.Min.X), float32(hud.Min.Y)+58),
		maxLives:    maxLives,
		fontFace:    face,
	}
}

// MaxLives is the capacity drawn by the lives grid.
func (s *Sidebar) MaxLives() int { return s.maxLives }

// HitTest maps a click to the action it triggers.
func (s *Sidebar) HitTest(x, y int, inspecting bool) layout.Hit {
	return s.Layout.HitTest(x, y, inspecting)
}

func (s *Sidebar) Draw(screen *ebiten.Image, snap app.Snapshot) {
	b := s.Layout.Bounds
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), config.SidebarColor, false)
	vector.StrokeLine(screen, float32(b.Min.X), 0, float32(b.Min.X), float32(b.Max.Y), 2, config.SidebarBorderColor, false)

	hud := s.Layout.HUD
	s.Indicator.Draw(screen, snap.Phase)
	text.Draw(screen, fmt.Sprintf("Money %d", snap.Money), s.fontFace, hud.Min.X+28, hud.Min.Y+18, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Wave %d", snap.Wave), s.fontFace, hud.Min.X+28, hud.Min.Y+36, config.TextMutedColor)
	s.Lives.Draw(screen, snap.Lives, s.maxLives, s.fontFace)
	s.Waves.Draw(screen, snap.Wave, s.fontFace)
	s.SpeedButton.Draw(screen)
	s.PauseButton.Draw(screen)

	if snap.Inspected != nil {
		s.InfoPanel.Draw(screen, snap.Inspected, snap.Money)
	} else {
		s.Shop.Draw(screen, s.fontFace, snap.Money, snap.Selected)
	}

	s.StartWave.Enabled = !snap.WaveInProgress && !snap.GameOver
	if snap.WaveInProgress {
		s.StartWave.Text = fmt.Sprintf("Wave %d: %d left", snap.Wave, len(snap.Enemies)+snap.PendingSpawns)
	} else {
		s.StartWave.Text = "Start Wave"
	}
	s.StartWave.Draw(screen, s.fontFace)
}
