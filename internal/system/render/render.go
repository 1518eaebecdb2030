// internal/system/render/render.go

// Package render рисует поле через ebiten. Вынесен из system, чтобы
// симуляция и терминальный фронтенд собирались без cgo.
package render

import (
	"image/color"
	"strconv"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	palette "go-path-defense/pkg/render"
	"go-path-defense/pkg/route"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// System рисует поле: путь, врагов, башни и снаряды
type System struct {
	world   *entity.World
	route   *route.Route
	catalog *defs.Catalog
	font    font.Face
}

func NewSystem(world *entity.World, path *route.Route, catalog *defs.Catalog, face font.Face) *System {
	return &System{world: world, route: path, catalog: catalog, font: face}
}

// Draw paints the world. inspected may be nil; when set its range is shown.
func (s *System) Draw(screen *ebiten.Image, inspected *component.Tower) {
	vector.DrawFilledRect(screen, 0, 0, config.WorldWidth, config.WorldHeight, config.BackgroundColor, false)
	s.drawPath(screen)

	for _, enemy := range s.world.Enemies {
		s.drawEnemy(screen, enemy)
	}
	for _, tower := range s.world.Towers {
		s.drawTower(screen, tower, tower == inspected)
	}
	for _, proj := range s.world.Projectiles {
		vector.DrawFilledCircle(screen, float32(proj.X), float32(proj.Y), float32(proj.Radius), config.ProjectileColor, true)
	}
}

// DrawPreview shows where a tower of the selected type would stand.
func (s *System) DrawPreview(screen *ebiten.Image, x, y float64, valid bool, rangeRadius float64) {
	fill := config.InvalidPreviewColor
	if valid {
		fill = config.ValidPreviewColor
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), config.TowerRadius, fill, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(rangeRadius), 1, palette.WithAlpha(config.TextDarkColor, 102), true)
}

func (s *System) drawPath(screen *ebiten.Image) {
	half := float32(config.PathWidth / 2)
	for _, seg := range s.route.Segments() {
		vector.StrokeLine(screen, float32(seg.From.X), float32(seg.From.Y), float32(seg.To.X), float32(seg.To.Y), config.PathWidth, config.PathColor, false)
	}
	// Квадратные стыки, как у толстой линии с miter
	for i := 1; i < s.route.LastIndex(); i++ {
		p := s.route.Waypoint(i)
		vector.DrawFilledRect(screen, float32(p.X)-half, float32(p.Y)-half, 2*half, 2*half, config.PathColor, false)
	}
}

func (s *System) drawEnemy(screen *ebiten.Image, enemy *component.Enemy) {
	fill := config.EnemyColor
	if enemy.IsSlowed() {
		fill = config.SlowedEnemyColor
	}
	x, y, r := float32(enemy.X), float32(enemy.Y), float32(enemy.Radius)
	vector.DrawFilledCircle(screen, x, y, r, fill, true)

	barY := y - r - config.HealthBarOffset
	vector.DrawFilledRect(screen, x-r, barY, 2*r, config.HealthBarHeight, config.HealthBarBackColor, false)
	vector.DrawFilledRect(screen, x-r, barY, 2*r*float32(enemy.HealthRatio()), config.HealthBarHeight, config.HealthBarFillColor, false)
}

func (s *System) drawTower(screen *ebiten.Image, tower *component.Tower, inspected bool) {
	fill := color.RGBA{128, 128, 128, 255}
	if archetype, ok := s.catalog.Get(tower.ArchetypeID); ok {
		fill = archetype.Color
	}
	x, y := float32(tower.X), float32(tower.Y)
	vector.DrawFilledCircle(screen, x, y, float32(tower.Radius), fill, true)
	if inspected {
		vector.StrokeCircle(screen, x, y, float32(tower.Radius)+2, 2, config.TowerStrokeColor, true)
		vector.StrokeCircle(screen, x, y, float32(tower.Range), 2, config.RangeColor, true)
	}
	if s.font != nil {
		level := strconv.Itoa(tower.Level)
		text.Draw(screen, level, s.font, int(tower.X)-3, int(tower.Y)+4, config.TextLightColor)
	}
}
