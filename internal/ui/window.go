// internal/ui/window.go
package ui

import (
	"go-one-button/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const titleBarHeight = 24

// WindowOptions — вид окна.
type WindowOptions struct {
	Title        string
	NoDecoration bool  // без фона, рамки и заголовка
	Open         *bool // если задан, в заголовке есть кнопка закрытия
}

// Window рисует окно и возвращает область для содержимого.
// Закрытие окна сбрасывает *opts.Open в false.
func Window(screen *ebiten.Image, face font.Face, r Rect, opts WindowOptions) Rect {
	if opts.NoDecoration {
		return r
	}

	vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, config.PanelColor, false)
	vector.StrokeRect(screen, r.X, r.Y, r.W, r.H, 2, config.PanelBorder, false)

	bar := Rect{X: r.X, Y: r.Y, W: r.W, H: titleBarHeight}
	vector.DrawFilledRect(screen, bar.X, bar.Y, bar.W, bar.H, config.TitleBarColor, false)
	_, h := MeasureText(face, opts.Title)
	Label(screen, face, opts.Title, bar.X+config.PanelPadding, bar.Y+(bar.H-h)/2, config.TextLightColor)

	if opts.Open != nil {
		closeBox := Rect{X: bar.X + bar.W - titleBarHeight, Y: bar.Y, W: titleBarHeight, H: titleBarHeight}
		if Button(screen, face, closeBox, "x", false) {
			*opts.Open = false
		}
	}

	return Rect{X: r.X, Y: r.Y + titleBarHeight, W: r.W, H: r.H - titleBarHeight}
}

// Column раскладывает виджеты сверху вниз внутри области.
type Column struct {
	area    Rect
	cursorY float32
	spacing float32
}

// NewColumn начинает раскладку с отступом padding от краёв area.
func NewColumn(area Rect, padding float32) *Column {
	return &Column{
		area:    Rect{X: area.X + padding, Y: area.Y + padding, W: area.W - 2*padding, H: area.H - 2*padding},
		cursorY: area.Y + padding,
		spacing: padding / 2,
	}
}

// Next выделяет строку высотой h на всю ширину колонки.
func (c *Column) Next(h float32) Rect {
	r := Rect{X: c.area.X, Y: c.cursorY, W: c.area.W, H: h}
	c.cursorY += h + c.spacing
	return r
}
