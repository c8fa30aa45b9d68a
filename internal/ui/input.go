// internal/ui/input.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Rect — прямоугольник в логических координатах экрана.
type Rect struct {
	X, Y, W, H float32
}

// Contains проверяет, попадает ли точка внутрь прямоугольника.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredIn размещает прямоугольник w×h по центру области area.
func CenteredIn(area Rect, w, h float32) Rect {
	return Rect{X: area.X + (area.W-w)/2, Y: area.Y + (area.H-h)/2, W: w, H: h}
}

// Pointer — источник состояния мыши. Опрашивается только из Update
// (через Poll): inpututil в Draw даёт неверные "только что нажато".
type Pointer interface {
	Position() (x, y int)
	JustPressed() bool
}

type ebitenPointer struct{}

func (ebitenPointer) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenPointer) JustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// snapshot — состояние указателя на текущий тик.
type snapshot struct {
	x, y     int
	pressed  bool
	consumed bool // клик этого тика уже отдан виджету
}

var (
	pointer Pointer = ebitenPointer{}
	current snapshot
)

// Poll снимает состояние указателя. Вызывается один раз за тик из
// Update; виджеты во время отрисовки читают только этот снимок, сколько
// бы раз ни был вызван Draw.
func Poll() {
	x, y := pointer.Position()
	current = snapshot{x: x, y: y, pressed: pointer.JustPressed()}
}

// SetPointer подменяет источник ввода и возвращает функцию восстановления.
func SetPointer(p Pointer) (restore func()) {
	prev := pointer
	pointer = p
	current = snapshot{}
	return func() {
		pointer = prev
		current = snapshot{}
	}
}

// interact возвращает, наведён ли курсор на r и был ли клик в этом тике.
// Клик одного тика достаётся только одному виджету и только один раз.
func interact(r Rect, disabled bool) (hovered, clicked bool) {
	if disabled {
		return false, false
	}
	hovered = r.Contains(float32(current.x), float32(current.y))
	if hovered && current.pressed && !current.consumed {
		current.consumed = true
		return true, true
	}
	return hovered, false
}
