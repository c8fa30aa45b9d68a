// internal/ui/checkbox.go
package ui

import (
	"go-one-button/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Checkbox рисует флажок с подписью и переключает *value по клику.
// Возвращает true, если значение изменилось в этом кадре.
func Checkbox(screen *ebiten.Image, face font.Face, r Rect, label string, value *bool) bool {
	box := Rect{X: r.X, Y: r.Y + (r.H-r.H*0.7)/2, W: r.H * 0.7, H: r.H * 0.7}
	clicked := toggle(r, value)

	vector.DrawFilledRect(screen, box.X, box.Y, box.W, box.H, config.ButtonColor, false)
	vector.StrokeRect(screen, box.X, box.Y, box.W, box.H, 1, config.PanelBorder, false)
	if *value {
		inset := box.W * 0.25
		vector.DrawFilledRect(screen, box.X+inset, box.Y+inset, box.W-2*inset, box.H-2*inset, config.CheckColor, false)
	}

	_, h := MeasureText(face, label)
	Label(screen, face, label, box.X+box.W+8, r.Y+(r.H-h)/2, config.TextLightColor)
	return clicked
}

// toggle переключает *value, если по r кликнули в этом тике.
func toggle(r Rect, value *bool) bool {
	_, clicked := interact(r, false)
	if clicked {
		*value = !*value
	}
	return clicked
}
