// internal/app/window.go
package app

import "github.com/hajimehoshi/ebiten/v2"

// Window — операции с окном, которые нужны игре.
type Window interface {
	SetFullscreen(on bool)
	SetSize(width, height int)
	SetPosition(x, y int)
}

type ebitenWindow struct{}

func (ebitenWindow) SetFullscreen(on bool)     { ebiten.SetFullscreen(on) }
func (ebitenWindow) SetSize(width, height int) { ebiten.SetWindowSize(width, height) }
func (ebitenWindow) SetPosition(x, y int)      { ebiten.SetWindowPosition(x, y) }
