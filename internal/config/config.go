// internal/config/config.go
package config

import (
	"image/color"
	"time"

	"go-path-defense/pkg/route"
)

const (
	WorldWidth   = 800
	WorldHeight  = 600
	SidebarWidth = 240
	ScreenWidth  = WorldWidth + SidebarWidth
	ScreenHeight = WorldHeight

	StartingLives = 20
	StartingMoney = 150

	TowerRadius     = 20.0
	PlacementMargin = 20.0 // Отступ от краёв поля
	PathClearance   = 35.0 // Запас вокруг каждого сегмента пути
	TowerSpacing    = 40.0 // Минимальное расстояние между башнями
	PathWidth       = 40.0

	ProjectileSpeed  = 5.0 // единиц за тик
	ProjectileRadius = 4.0

	SellRefundPercent = 70

	MaxDeltaTime  = 0.06
	TickInterval  = time.Second / 60
	ClickCooldown = 300

	HealthBarHeight = 5
	HealthBarOffset = 10

	IndicatorRadius = 10.0
)

// PathWaypoints — маршрут врагов
var PathWaypoints = []route.Point{
	{X: 0, Y: 300}, {X: 150, Y: 300}, {X: 150, Y: 100}, {X: 450, Y: 100},
	{X: 450, Y: 500}, {X: 650, Y: 500}, {X: 650, Y: 200}, {X: 800, Y: 200},
}

var (
	BackgroundColor      = color.RGBA{96, 150, 72, 255}
	PathColor            = color.RGBA{0x7f, 0x8c, 0x8d, 255}
	EnemyColor           = color.RGBA{0xc0, 0x39, 0x2b, 255}
	SlowedEnemyColor     = color.RGBA{0x5d, 0xad, 0xe2, 255}
	HealthBarBackColor   = color.RGBA{0xe7, 0x4c, 0x3c, 255}
	HealthBarFillColor   = color.RGBA{0x2e, 0xcc, 0x71, 255}
	ProjectileColor      = color.RGBA{0x2c, 0x3e, 0x50, 255}
	RangeColor           = color.RGBA{0, 0, 0, 77}
	ValidPreviewColor    = color.RGBA{0x2e, 0xcc, 0x71, 102}
	InvalidPreviewColor  = color.RGBA{0xe7, 0x4c, 0x3c, 102}
	SidebarColor         = color.RGBA{25, 35, 45, 240}
	SidebarBorderColor   = color.RGBA{70, 130, 180, 255}
	TextLightColor       = color.RGBA{240, 240, 240, 255}
	TextDarkColor        = color.RGBA{20, 20, 30, 255}
	TextMutedColor       = color.RGBA{140, 150, 160, 255}
	ButtonColor          = color.RGBA{70, 130, 180, 255}
	ButtonDisabledColor  = color.RGBA{70, 75, 85, 255}
	ButtonSelectedColor  = color.RGBA{60, 160, 90, 255}
	SellButtonColor      = color.RGBA{180, 90, 40, 255}
	TowerStrokeColor     = color.RGBA{255, 255, 255, 255}
	IdleStateColor       = color.RGBA{70, 130, 180, 220}
	WaveStateColor       = color.RGBA{220, 60, 60, 220}
	GameOverOverlayColor = color.RGBA{0, 0, 0, 160}
	SpeedButtonColors    = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []int{1, 2, 4} // тиков за кадр
)
