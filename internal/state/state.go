// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех экранов игры.
//
// OnEnter/OnExit вызываются ровно один раз: когда состояние становится
// верхним элементом стека и перед тем, как оно из стека удаляется.
// Ресурсы (текстуры и т.п.) захватываются в OnEnter и освобождаются в
// OnExit, а не в конструкторе: состояние можно создать задолго до того,
// как оно станет активным.
//
// OnPause/OnResume получает состояние, которое перекрыли новым экраном
// и которое снова стало верхним после Pop.
//
// Update вызывается только у верхнего состояния, Render — у всех, снизу
// вверх. Render не должен менять стек.
type State interface {
	OnEnter()
	OnExit()
	OnPause()
	OnResume()
	Update(dt float64)
	Render(screen *ebiten.Image)
}

// Base реализует State пустыми методами.
// Встраивается в конкретные состояния, которые переопределяют только нужное.
type Base struct{}

var _ State = Base{}

func (Base) OnEnter()             {}
func (Base) OnExit()              {}
func (Base) OnPause()             {}
func (Base) OnResume()            {}
func (Base) Update(float64)       {}
func (Base) Render(*ebiten.Image) {}
