// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 5.0
	LivesCircleSpacing = 3.0
)

// LivesIndicator отображает жизни сеткой кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует сетку: оставшиеся жизни красные, потерянные чёрные.
// Когда жизней больше половины, избыток синий.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int, face font.Face) {
	half := maxLives / 2
	cell := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		x := i.X + float32(j%LivesCols)*cell + LivesCircleRadius
		y := i.Y + float32(j/LivesCols)*cell + LivesCircleRadius

		var fill color.Color = color.Black
		if j < lives {
			fill = config.EnemyColor
			if lives > half && j < lives-half {
				fill = config.SlowedEnemyColor
			}
		}
		vector.DrawFilledCircle(screen, x, y, LivesCircleRadius, fill, true)
		vector.StrokeCircle(screen, x, y, LivesCircleRadius, 1, color.White, true)
	}

	label := "Lives " + strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	text.Draw(screen, label, face, int(i.X), int(i.Y)-4, config.TextLightColor)
}
