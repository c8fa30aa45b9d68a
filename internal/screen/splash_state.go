// internal/screen/splash_state.go
package screen

import (
	"go-one-button/internal/config"
	"go-one-button/internal/locale"
	"go-one-button/internal/state"
	"go-one-button/internal/ui"
	"go-one-button/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ state.State = (*SplashState)(nil)

// fadeInTime — за сколько секунд логотип проявляется.
const fadeInTime = 0.5

// SplashState показывает логотип duration секунд и заменяется игровым
// экраном. Текстура логотипа захватывается только на время, пока экран
// в стеке.
type SplashState struct {
	state.Base
	host Host

	duration float64
	timer    float64

	textureName string
	texture     *ebiten.Image
	acquired    bool
}

func NewSplashState(host Host, duration float64) *SplashState {
	return &SplashState{
		host:        host,
		duration:    duration,
		textureName: host.Config().Assets.SplashImage,
	}
}

func (s *SplashState) OnEnter() {
	img, err := s.host.Textures().Acquire(s.textureName)
	if err != nil {
		// Без логотипа заставка всё равно показывает подпись.
		s.host.Logger().Warn("splash texture unavailable", "err", err)
		return
	}
	s.texture = img
	s.acquired = true
}

func (s *SplashState) OnExit() {
	if !s.acquired {
		return
	}
	s.host.Textures().Release(s.textureName)
	s.texture = nil
	s.acquired = false
}

func (s *SplashState) Update(dt float64) {
	s.timer += dt
	if s.timer >= s.duration {
		transition(s.host, "replace", s.host.StateStack().Replace(NewPlayState(s.host)))
	}
}

func (s *SplashState) Render(screen *ebiten.Image) {
	b := screen.Bounds()
	area := ui.Rect{X: float32(b.Min.X), Y: float32(b.Min.Y), W: float32(b.Dx()), H: float32(b.Dy())}

	if s.texture != nil {
		target := ui.CenteredIn(area, config.SplashImageSize, config.SplashImageSize)
		tb := s.texture.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(target.W)/float64(tb.Dx()), float64(target.H)/float64(tb.Dy()))
		op.GeoM.Translate(float64(target.X), float64(target.Y))
		op.ColorScale.ScaleAlpha(s.alpha())
		screen.DrawImage(s.texture, op)
	}

	face := s.host.Face()
	caption := s.host.Catalog().Text(locale.SplashCaption)
	w, h := ui.MeasureText(face, caption)
	ui.Label(screen, face, caption, (area.W-w)*0.5, area.H-h-50, config.TextLightColor)
}

// alpha — прозрачность логотипа при проявлении.
func (s *SplashState) alpha() float32 {
	return utils.Lerp(0, 1, utils.Clamp(float32(s.timer/fadeInTime), 0, 1))
}
