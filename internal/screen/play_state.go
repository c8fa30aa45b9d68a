// internal/screen/play_state.go
package screen

import (
	"go-one-button/internal/config"
	"go-one-button/internal/locale"
	"go-one-button/internal/state"
	"go-one-button/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ state.State = (*PlayState)(nil)

// scoreStep — сколько очков даёт одно нажатие.
const scoreStep = 100

// PlayState — игровой экран: счёт и кнопки "Press Me!" и "Options".
// Клики фиксируются при отрисовке и применяются в следующем Update.
// Пока сверху открыт другой экран, кнопки выключены.
type PlayState struct {
	state.Base
	host Host

	score      int
	transition bool
	addScore   bool
	paused     bool
}

func NewPlayState(host Host) *PlayState {
	return &PlayState{host: host}
}

func (s *PlayState) OnPause() {
	s.paused = true
}

func (s *PlayState) OnResume() {
	s.paused = false
}

func (s *PlayState) Update(float64) {
	if s.transition {
		s.transition = false
		transition(s.host, "push", s.host.StateStack().Push(s.host.MakeOptionsState()))
	}

	if s.addScore {
		s.score += scoreStep
		s.addScore = false
	}
}

func (s *PlayState) Render(screen *ebiten.Image) {
	face := s.host.Face()
	catalog := s.host.Catalog()
	b := screen.Bounds()
	area := ui.Rect{X: float32(b.Min.X), Y: float32(b.Min.Y), W: float32(b.Dx()), H: float32(b.Dy())}

	panel := ui.CenteredIn(area, config.PanelWidth, config.PanelHeight)
	content := ui.Window(screen, face, panel, ui.WindowOptions{NoDecoration: true})
	col := ui.NewColumn(content, config.PanelPadding)

	_, lineH := ui.MeasureText(face, "Ag")
	ui.Label(screen, face, catalog.Text(locale.PlayTitle), content.X, col.Next(lineH).Y, config.TextLightColor)
	ui.Label(screen, face, catalog.Format(locale.PlayScore, map[string]any{"Score": s.score}), content.X, col.Next(lineH).Y, config.TextLightColor)

	if ui.Button(screen, face, col.Next(config.ButtonHeight), catalog.Text(locale.PlayPressMe), s.paused) {
		s.addScore = true
	}
	if ui.Button(screen, face, col.Next(config.ButtonHeight), catalog.Text(locale.PlayOptions), s.paused) {
		s.transition = true
	}
}

func (s *PlayState) Score() int {
	return s.score
}

func (s *PlayState) Paused() bool {
	return s.paused
}
