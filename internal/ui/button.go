// internal/ui/button.go
package ui

import (
	"go-one-button/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button рисует кнопку и возвращает true, если по ней кликнули в этом кадре.
// Выключенная кнопка рисуется серой и кликов не принимает.
func Button(screen *ebiten.Image, face font.Face, r Rect, label string, disabled bool) bool {
	hovered, clicked := interact(r, disabled)

	bgColor := config.ButtonColor
	switch {
	case disabled:
		bgColor = config.ButtonDisabled
	case hovered:
		bgColor = config.ButtonHover
	}
	vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, bgColor, false)
	vector.StrokeRect(screen, r.X, r.Y, r.W, r.H, 1, config.PanelBorder, false)

	textColor := config.TextLightColor
	if disabled {
		textColor = config.TextDimColor
	}
	LabelCentered(screen, face, label, r, textColor)
	return clicked
}
