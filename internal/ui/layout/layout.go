// internal/ui/layout/layout.go
package layout

import (
	"fmt"
	"image"
	"strings"
	"time"

	"go-path-defense/internal/defs"
)

// Action is what a click on the sidebar asks for.
type Action int

const (
	ActionNone Action = iota
	ActionSelectTower
	ActionStartWave
	ActionUpgrade
	ActionSell
	ActionCloseInspection
	ActionToggleSpeed
	ActionTogglePause
)

func (a Action) String() string {
	switch a {
	case ActionSelectTower:
		return "select tower"
	case ActionStartWave:
		return "start wave"
	case ActionUpgrade:
		return "upgrade"
	case ActionSell:
		return "sell"
	case ActionCloseInspection:
		return "close inspection"
	case ActionToggleSpeed:
		return "toggle speed"
	case ActionTogglePause:
		return "toggle pause"
	default:
		return "none"
	}
}

// Hit is the result of a sidebar hit test. Index is the shop slot for
// ActionSelectTower and -1 otherwise.
type Hit struct {
	Action Action
	Index  int
}

const (
	padding      = 12
	hudHeight    = 96
	buttonHeight = 34
	buttonGap    = 6
	controlSize  = 28
)

// Sidebar holds the rectangles of every control on the right-hand panel.
// The shop and the info panel share the same area; only one is shown.
type Sidebar struct {
	Bounds    image.Rectangle
	HUD       image.Rectangle
	Speed     image.Rectangle
	Pause     image.Rectangle
	Shop      []image.Rectangle
	Info      image.Rectangle
	Upgrade   image.Rectangle
	Sell      image.Rectangle
	Close     image.Rectangle
	StartWave image.Rectangle
}

// NewSidebar lays out a panel starting at x with the given size and one
// shop button per tower archetype.
func NewSidebar(x, width, height, towers int) Sidebar {
	s := Sidebar{Bounds: image.Rect(x, 0, x+width, height)}
	left, right := x+padding, x+width-padding

	s.HUD = image.Rect(left, padding, right, padding+hudHeight)
	s.Pause = image.Rect(right-controlSize, padding, right, padding+controlSize)
	s.Speed = s.Pause.Sub(image.Pt(controlSize+buttonGap, 0))

	top := s.HUD.Max.Y + padding
	for i := 0; i < towers; i++ {
		y := top + i*(buttonHeight+buttonGap)
		s.Shop = append(s.Shop, image.Rect(left, y, right, y+buttonHeight))
	}

	bottom := height - padding
	s.StartWave = image.Rect(left, bottom-buttonHeight, right, bottom)

	s.Info = image.Rect(left, top, right, s.StartWave.Min.Y-padding)
	s.Close = image.Rect(right-controlSize, top, right, top+controlSize)
	s.Sell = image.Rect(left, s.Info.Max.Y-buttonHeight, right, s.Info.Max.Y)
	s.Upgrade = s.Sell.Sub(image.Pt(0, buttonHeight+buttonGap))
	return s
}

// HitTest maps a click to an action. inspecting tells whether the info
// panel is shown instead of the shop.
func (s Sidebar) HitTest(x, y int, inspecting bool) Hit {
	p := image.Pt(x, y)
	switch {
	case !p.In(s.Bounds):
		return Hit{Action: ActionNone, Index: -1}
	case p.In(s.Speed):
		return Hit{Action: ActionToggleSpeed, Index: -1}
	case p.In(s.Pause):
		return Hit{Action: ActionTogglePause, Index: -1}
	case p.In(s.StartWave):
		return Hit{Action: ActionStartWave, Index: -1}
	}
	if inspecting {
		switch {
		case p.In(s.Close):
			return Hit{Action: ActionCloseInspection, Index: -1}
		case p.In(s.Upgrade):
			return Hit{Action: ActionUpgrade, Index: -1}
		case p.In(s.Sell):
			return Hit{Action: ActionSell, Index: -1}
		}
		return Hit{Action: ActionNone, Index: -1}
	}
	for i, r := range s.Shop {
		if p.In(r) {
			return Hit{Action: ActionSelectTower, Index: i}
		}
	}
	return Hit{Action: ActionNone, Index: -1}
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// FormatCooldown prints a cooldown in whole milliseconds, e.g. "950ms".
func FormatCooldown(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// DescribeEffect is the one-line effect summary of the info panel.
func DescribeEffect(e defs.Effect) string {
	switch e.Kind {
	case defs.EffectSlow:
		return fmt.Sprintf("slow %d%% for %s", int(100-e.Factor*100+0.5), FormatCooldown(e.Duration))
	case defs.EffectSplash:
		return fmt.Sprintf("splash %.0f", e.Radius)
	default:
		return "-"
	}
}

// UpgradeLabel is the caption of the upgrade button.
func UpgradeLabel(cost int, maxed bool) string {
	if maxed {
		return "Max Level"
	}
	return fmt.Sprintf("Upgrade (%d M)", cost)
}

// SellLabel is the caption of the sell button.
func SellLabel(value int) string {
	return fmt.Sprintf("Sell (%d M)", value)
}
