// internal/ui/label.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MeasureText возвращает ширину и высоту строки.
func MeasureText(face font.Face, s string) (float32, float32) {
	b := text.BoundString(face, s)
	return float32(b.Dx()), float32(b.Dy())
}

// Label рисует строку, (x, y) — левый верхний угол.
func Label(screen *ebiten.Image, face font.Face, s string, x, y float32, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, int(x), int(y)-b.Min.Y, clr)
}

// LabelCentered рисует строку по центру области.
func LabelCentered(screen *ebiten.Image, face font.Face, s string, area Rect, clr color.Color) {
	w, h := MeasureText(face, s)
	r := CenteredIn(area, w, h)
	Label(screen, face, s, r.X, r.Y, clr)
}
