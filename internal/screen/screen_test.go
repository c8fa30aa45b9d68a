package screen

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	"go-one-button/internal/assets"
	"go-one-button/internal/config"
	"go-one-button/internal/event"
	"go-one-button/internal/locale"
	"go-one-button/internal/state"
	"go-one-button/internal/utils"
)

type fakeHost struct {
	stack      *state.Stack
	cfg        config.Config
	catalog    *locale.Catalog
	textures   *assets.TextureManager
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	logger     *log.Logger
	loadErr    error
	fullscreen bool
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	catalog, err := locale.Load("en")
	require.NoError(t, err)

	h := &fakeHost{
		stack:      state.NewStack(),
		cfg:        config.Default(),
		catalog:    catalog,
		rng:        utils.NewPRNGService(1),
		dispatcher: event.NewDispatcher(),
		logger:     log.New(io.Discard),
	}
	h.dispatcher.Subscribe(event.FullscreenToggled, event.ListenerFunc(func(e event.Event) {
		h.fullscreen = e.Data.(bool)
	}))
	h.textures = assets.NewTextureManager("assets", h.logger).WithLoader(func(string) (*ebiten.Image, error) {
		return nil, h.loadErr
	})
	return h
}

func (h *fakeHost) StateStack() *state.Stack         { return h.stack }
func (h *fakeHost) Config() config.Config            { return h.cfg }
func (h *fakeHost) Catalog() *locale.Catalog         { return h.catalog }
func (h *fakeHost) Textures() *assets.TextureManager { return h.textures }
func (h *fakeHost) Rand() *utils.PRNGService         { return h.rng }
func (h *fakeHost) Logger() *log.Logger              { return h.logger }
func (h *fakeHost) Face() font.Face                  { return nil }
func (h *fakeHost) Fullscreen() bool                 { return h.fullscreen }

func (h *fakeHost) MakeOptionsState() state.State {
	return NewOptionsState(h, h.dispatcher)
}

func top(t *testing.T, h *fakeHost) state.State {
	t.Helper()
	st, err := h.stack.Top()
	require.NoError(t, err)
	return st
}

func TestLoadingPicksQuoteFromCatalog(t *testing.T) {
	h := newFakeHost(t)

	s := NewLoadingState(h)

	require.Contains(t, h.catalog.Quotes(), s.Quote())
}

func TestLoadingRotatesQuoteOnInterval(t *testing.T) {
	h := newFakeHost(t)
	s := NewLoadingState(h)
	require.NoError(t, h.stack.Push(s))

	h.stack.Update(h.cfg.Timing.QuoteInterval / 2)
	require.InDelta(t, h.cfg.Timing.QuoteInterval/2, s.quoteTimer, 1e-9)

	h.stack.Update(h.cfg.Timing.QuoteInterval / 2)
	require.Zero(t, s.quoteTimer)
	require.Contains(t, h.catalog.Quotes(), s.Quote())
}

func TestLoadingReplacedBySplash(t *testing.T) {
	h := newFakeHost(t)
	require.NoError(t, h.stack.Push(NewLoadingState(h)))

	h.stack.Update(h.cfg.Timing.LoadingDuration - 0.5)
	require.IsType(t, &LoadingState{}, top(t, h))

	h.stack.Update(0.5)
	require.IsType(t, &SplashState{}, top(t, h))
	require.Equal(t, 1, h.stack.Size())
	require.Equal(t, 1, h.textures.Refs(h.cfg.Assets.SplashImage))
}

func TestSplashReleasesTextureWhenReplaced(t *testing.T) {
	h := newFakeHost(t)
	require.NoError(t, h.stack.Push(NewSplashState(h, 1)))
	require.Equal(t, 1, h.textures.Refs(h.cfg.Assets.SplashImage))

	h.stack.Update(1)

	require.IsType(t, &PlayState{}, top(t, h))
	require.Zero(t, h.textures.Refs(h.cfg.Assets.SplashImage))
}

func TestSplashWithoutTextureStillAdvances(t *testing.T) {
	h := newFakeHost(t)
	h.loadErr = errors.New("no such file")
	s := NewSplashState(h, 1)
	require.NoError(t, h.stack.Push(s))
	require.False(t, s.acquired)

	h.stack.Update(1)

	require.IsType(t, &PlayState{}, top(t, h))
	require.Zero(t, h.textures.Refs(h.cfg.Assets.SplashImage))
}

func TestSplashFadeIn(t *testing.T) {
	h := newFakeHost(t)
	s := NewSplashState(h, 3)

	require.Equal(t, float32(0), s.alpha())
	s.timer = fadeInTime / 2
	require.InDelta(t, 0.5, s.alpha(), 1e-6)
	s.timer = 2
	require.Equal(t, float32(1), s.alpha())
}

func TestPlayAddsScoreOnUpdate(t *testing.T) {
	h := newFakeHost(t)
	s := NewPlayState(h)
	require.NoError(t, h.stack.Push(s))

	s.addScore = true
	h.stack.Update(0.016)
	h.stack.Update(0.016)

	require.Equal(t, scoreStep, s.Score())
}

func TestPlayOpensOptionsAndPauses(t *testing.T) {
	h := newFakeHost(t)
	play := NewPlayState(h)
	require.NoError(t, h.stack.Push(play))

	play.transition = true
	h.stack.Update(0.016)

	require.Equal(t, 2, h.stack.Size())
	require.IsType(t, &OptionsState{}, top(t, h))
	require.True(t, play.Paused())
	require.False(t, play.transition)
}

func TestClosingOptionsResumesPlay(t *testing.T) {
	h := newFakeHost(t)
	play := NewPlayState(h)
	require.NoError(t, h.stack.Push(play))
	opts := NewOptionsState(h, h.dispatcher)
	require.NoError(t, h.stack.Push(opts))

	h.stack.Update(0.016)
	require.Equal(t, 2, h.stack.Size())

	opts.Close()
	h.stack.Update(0.016)

	require.Equal(t, 1, h.stack.Size())
	require.Same(t, play, top(t, h))
	require.False(t, play.Paused())
}

func TestOptionsDispatchesFullscreenOncePerChange(t *testing.T) {
	h := newFakeHost(t)
	var got []bool
	h.dispatcher.Subscribe(event.FullscreenToggled, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(bool))
	}))
	opts := NewOptionsState(h, h.dispatcher)
	require.NoError(t, h.stack.Push(opts))

	h.stack.Update(0.016)
	require.Empty(t, got)

	opts.SetFullscreen(true)
	h.stack.Update(0.016)
	h.stack.Update(0.016)
	opts.SetFullscreen(false)
	h.stack.Update(0.016)

	require.Equal(t, []bool{true, false}, got)
}

func TestOptionsFollowsExternalWindowModeChange(t *testing.T) {
	h := newFakeHost(t)
	var got []bool
	h.dispatcher.Subscribe(event.FullscreenToggled, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(bool))
	}))
	opts := NewOptionsState(h, h.dispatcher)
	require.NoError(t, h.stack.Push(opts))
	require.False(t, opts.Fullscreen())

	// Режим поменялся мимо флажка, например при перезагрузке конфигурации.
	h.fullscreen = true
	h.stack.Update(0.016)

	require.True(t, opts.Fullscreen())
	require.Empty(t, got)

	opts.SetFullscreen(false)
	h.stack.Update(0.016)

	require.Equal(t, []bool{false}, got)
	require.False(t, h.fullscreen)
}

func TestOptionsStartsWithHostWindowMode(t *testing.T) {
	h := newFakeHost(t)
	h.fullscreen = true

	opts := NewOptionsState(h, h.dispatcher)

	require.True(t, opts.Fullscreen())
}

func TestScreensFlowFromLoadingToPlay(t *testing.T) {
	h := newFakeHost(t)
	require.NoError(t, h.stack.Push(NewLoadingState(h)))

	const dt = 0.05
	for i := 0; i < 200 && h.stack.Size() > 0; i++ {
		if _, ok := top(t, h).(*PlayState); ok {
			break
		}
		h.stack.Update(dt)
	}

	require.IsType(t, &PlayState{}, top(t, h))
	require.Equal(t, 1, h.stack.Size())
	require.Zero(t, h.textures.Refs(h.cfg.Assets.SplashImage))
}
