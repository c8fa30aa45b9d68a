// internal/screen/loading_state.go
package screen

import (
	"go-one-button/internal/config"
	"go-one-button/internal/locale"
	"go-one-button/internal/state"
	"go-one-button/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ state.State = (*LoadingState)(nil)

// LoadingState — первый экран: "Loading ..." и случайная фраза, которая
// меняется каждые QuoteInterval секунд. Через LoadingDuration экран
// заменяется заставкой.
type LoadingState struct {
	state.Base
	host Host

	duration      float64
	quoteInterval float64
	timer         float64
	quoteTimer    float64

	quotes       []string
	currentQuote string
}

func NewLoadingState(host Host) *LoadingState {
	timing := host.Config().Timing
	s := &LoadingState{
		host:          host,
		duration:      timing.LoadingDuration,
		quoteInterval: timing.QuoteInterval,
		quotes:        host.Catalog().Quotes(),
	}
	s.pickRandomQuote()
	return s
}

func (s *LoadingState) Update(dt float64) {
	s.quoteTimer += dt
	if s.quoteTimer >= s.quoteInterval {
		s.pickRandomQuote()
		s.quoteTimer = 0
	}

	s.timer += dt
	if s.timer >= s.duration {
		splash := NewSplashState(s.host, s.host.Config().Timing.SplashDuration)
		transition(s.host, "replace", s.host.StateStack().Replace(splash))
	}
}

func (s *LoadingState) Render(screen *ebiten.Image) {
	face := s.host.Face()
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	title := s.host.Catalog().Text(locale.LoadingTitle)
	tw, th := ui.MeasureText(face, title)
	titleY := (h - th) * 0.4
	ui.Label(screen, face, title, (w-tw)*0.5, titleY, config.TextLightColor)

	if s.currentQuote != "" {
		qw, _ := ui.MeasureText(face, s.currentQuote)
		ui.Label(screen, face, s.currentQuote, (w-qw)*0.5, titleY+th+20, config.TextDimColor)
	}
}

// Quote — фраза, показываемая сейчас.
func (s *LoadingState) Quote() string {
	return s.currentQuote
}

func (s *LoadingState) pickRandomQuote() {
	if len(s.quotes) > 0 {
		s.currentQuote = s.host.Rand().Choose(s.quotes)
	}
}
