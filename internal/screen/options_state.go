// internal/screen/options_state.go
package screen

import (
	"go-one-button/internal/config"
	"go-one-button/internal/event"
	"go-one-button/internal/locale"
	"go-one-button/internal/state"
	"go-one-button/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ state.State = (*OptionsState)(nil)

// OptionsState — окно настроек поверх игрового экрана. Закрытие окна
// снимает его со стека, переключение флажка отправляет
// event.FullscreenToggled. Если режим окна поменялся не через флажок
// (перезагрузка конфигурации), флажок подстраивается под хост.
type OptionsState struct {
	state.Base
	host       Host
	dispatcher *event.Dispatcher

	fullscreen    bool
	wasFullscreen bool
	open          bool
}

func NewOptionsState(host Host, dispatcher *event.Dispatcher) *OptionsState {
	fullscreen := host.Fullscreen()
	return &OptionsState{
		host:          host,
		dispatcher:    dispatcher,
		fullscreen:    fullscreen,
		wasFullscreen: fullscreen,
		open:          true,
	}
}

func (s *OptionsState) Update(float64) {
	if !s.open {
		s.host.StateStack().Pop()
		return
	}

	switch actual := s.host.Fullscreen(); {
	case s.fullscreen != s.wasFullscreen:
		s.wasFullscreen = s.fullscreen
		if s.fullscreen != actual {
			s.dispatcher.Dispatch(event.Event{Type: event.FullscreenToggled, Data: s.fullscreen})
		}
	case actual != s.wasFullscreen:
		s.fullscreen, s.wasFullscreen = actual, actual
	}
}

func (s *OptionsState) Render(screen *ebiten.Image) {
	face := s.host.Face()
	catalog := s.host.Catalog()
	b := screen.Bounds()
	area := ui.Rect{X: float32(b.Min.X), Y: float32(b.Min.Y), W: float32(b.Dx()), H: float32(b.Dy())}

	panel := ui.CenteredIn(area, config.PanelWidth, config.PanelHeight)
	panel.X += config.OptionsOffsetX
	content := ui.Window(screen, face, panel, ui.WindowOptions{
		Title: catalog.Text(locale.OptionsTitle),
		Open:  &s.open,
	})
	col := ui.NewColumn(content, config.PanelPadding)
	ui.Checkbox(screen, face, col.Next(config.ButtonHeight), catalog.Text(locale.OptionsFullscreen), &s.fullscreen)
}

// Close закрывает окно так же, как кнопка в заголовке.
func (s *OptionsState) Close() {
	s.open = false
}

// Fullscreen — значение флажка.
func (s *OptionsState) Fullscreen() bool {
	return s.fullscreen
}

// SetFullscreen меняет флажок так же, как клик по нему.
func (s *OptionsState) SetFullscreen(on bool) {
	s.fullscreen = on
}
