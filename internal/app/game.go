// internal/app/game.go
package app

import (
	"errors"
	"time"

	"go-one-button/internal/assets"
	"go-one-button/internal/config"
	"go-one-button/internal/event"
	"go-one-button/internal/locale"
	"go-one-button/internal/logger"
	"go-one-button/internal/metrics"
	"go-one-button/internal/screen"
	"go-one-button/internal/state"
	"go-one-button/internal/ui"
	"go-one-button/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

var (
	_ ebiten.Game = (*Game)(nil)
	_ screen.Host = (*Game)(nil)
)

// Deps — всё, что нужно игре снаружи. Необязательные поля можно не
// заполнять.
type Deps struct {
	Config   config.Config
	Logger   *log.Logger
	Catalog  *locale.Catalog
	Textures *assets.TextureManager
	Face     font.Face
	Metrics  *metrics.Frame                // nil — новый счётчик
	Reloads  <-chan config.Config          // nil — без горячей перезагрузки
	Window   Window                        // nil — окно ebiten
	Initial  func(screen.Host) state.State // nil — экран загрузки
	Now      func() time.Time              // nil — time.Now
	Stop     <-chan struct{}               // закрытие останавливает цикл
}

// Game владеет стеком экранов и связывает его с циклом ebiten:
// Update передаёт ограниченный dt вершине стека, Draw рисует все экраны
// снизу вверх. Когда стек пустеет, RunGame завершается.
type Game struct {
	cfg        config.Config
	logger     *log.Logger
	stack      *state.Stack
	catalog    *locale.Catalog
	textures   *assets.TextureManager
	face       font.Face
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	metrics    *metrics.Frame
	window     Window
	fullscreen bool
	reloads    <-chan config.Config
	detach     []func()
	stop       <-chan struct{}

	now            func() time.Time
	lastUpdateTime time.Time
}

// NewGame собирает игру и кладёт в стек начальный экран.
func NewGame(deps Deps) (*Game, error) {
	if deps.Logger == nil || deps.Catalog == nil || deps.Textures == nil {
		return nil, errors.New("logger, catalog and textures are required")
	}

	g := &Game{
		cfg:        deps.Config,
		logger:     deps.Logger,
		catalog:    deps.Catalog,
		textures:   deps.Textures,
		face:       deps.Face,
		rng:        utils.NewPRNGService(deps.Config.Seed),
		dispatcher: event.NewDispatcher(),
		metrics:    deps.Metrics,
		window:     deps.Window,
		fullscreen: deps.Config.Window.Fullscreen,
		reloads:    deps.Reloads,
		stop:       deps.Stop,
		now:        deps.Now,
	}
	if g.metrics == nil {
		g.metrics = metrics.NewFrame()
	}
	if g.window == nil {
		g.window = ebitenWindow{}
	}
	if g.now == nil {
		g.now = time.Now
	}

	listener := &GameEventListener{game: g}
	g.detach = append(g.detach,
		g.dispatcher.Subscribe(event.FullscreenToggled, listener),
		g.dispatcher.Subscribe(event.ConfigReloaded, listener),
	)

	initial := deps.Initial
	if initial == nil {
		initial = func(h screen.Host) state.State { return screen.NewLoadingState(h) }
	}
	stack, err := state.NewStackWith(initial(g), state.WithLogger(deps.Logger))
	if err != nil {
		return nil, err
	}
	g.stack = stack
	g.metrics.SetStackSize(g.stack.Size())
	g.lastUpdateTime = g.now()

	return g, nil
}

func (g *Game) Update() error {
	select {
	case <-g.stop:
		g.logger.Info("stop requested")
		return ebiten.Termination
	default:
	}

	now := g.now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	if deltaTime > g.cfg.Timing.MaxDeltaTime {
		deltaTime = g.cfg.Timing.MaxDeltaTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	g.lastUpdateTime = now

	g.drainReloads()
	ui.Poll()
	g.stack.Update(deltaTime)

	g.metrics.Update(deltaTime)
	g.metrics.SetStackSize(g.stack.Size())

	if g.stack.IsEmpty() {
		g.logger.Info("state stack is empty, stopping")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.stack.Render(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Shutdown снимает со стека оставшиеся экраны, отписывает хост от
// событий и выгружает текстуры. Вызывается после выхода из ebiten.RunGame.
func (g *Game) Shutdown() {
	g.stack.Clear()
	for _, cancel := range g.detach {
		cancel()
	}
	g.detach = nil
	g.textures.Close()
	g.logger.Info("game stopped", "frames", g.metrics.Frames())
}

// SetFullscreen переключает режим окна. При выходе из полноэкранного
// режима окну возвращаются размер из конфигурации и позиция по умолчанию.
func (g *Game) SetFullscreen(on bool) {
	g.fullscreen = on
	g.window.SetFullscreen(on)
	if !on {
		g.window.SetSize(g.cfg.Window.Width, g.cfg.Window.Height)
		g.window.SetPosition(config.WindowedPosX, config.WindowedPosY)
	}
	g.logger.Info("fullscreen toggled", "on", on)
}

func (g *Game) StateStack() *state.Stack         { return g.stack }
func (g *Game) Config() config.Config            { return g.cfg }
func (g *Game) Catalog() *locale.Catalog         { return g.catalog }
func (g *Game) Textures() *assets.TextureManager { return g.textures }
func (g *Game) Rand() *utils.PRNGService         { return g.rng }
func (g *Game) Logger() *log.Logger              { return g.logger }
func (g *Game) Face() font.Face                  { return g.face }
func (g *Game) Dispatcher() *event.Dispatcher    { return g.dispatcher }
func (g *Game) Metrics() *metrics.Frame          { return g.metrics }
func (g *Game) Fullscreen() bool                 { return g.fullscreen }

func (g *Game) MakeOptionsState() state.State {
	return screen.NewOptionsState(g, g.dispatcher)
}

// drainReloads забирает перечитанную конфигурацию, не блокируя кадр.
func (g *Game) drainReloads() {
	if g.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-g.reloads:
		if !ok {
			g.reloads = nil
			return
		}
		g.dispatcher.Dispatch(event.Event{Type: event.ConfigReloaded, Data: cfg})
	default:
	}
}

// applyConfig применяет то, что можно поменять на лету: уровень логов,
// язык, режим окна и тайминги. Размер окна меняется только при выходе
// из полноэкранного режима.
func (g *Game) applyConfig(cfg config.Config) {
	prev := g.cfg
	g.cfg = cfg

	if cfg.Log.Level != prev.Log.Level {
		if level, err := logger.ParseLevel(cfg.Log.Level); err == nil {
			g.logger.SetLevel(level)
		}
	}
	if cfg.Locale != prev.Locale {
		catalog, err := locale.Load(cfg.Locale)
		if err != nil {
			g.logger.Warn("locale not switched", "locale", cfg.Locale, "err", err)
		} else {
			g.catalog = catalog
		}
	}
	if cfg.Window.Fullscreen != prev.Window.Fullscreen {
		g.SetFullscreen(cfg.Window.Fullscreen)
	}
	g.logger.Debug("config applied", "locale", cfg.Locale, "level", cfg.Log.Level)
}

// GameEventListener обрабатывает события, важные для хоста.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.FullscreenToggled:
		if on, ok := e.Data.(bool); ok {
			l.game.SetFullscreen(on)
		}
	case event.ConfigReloaded:
		if cfg, ok := e.Data.(config.Config); ok {
			l.game.applyConfig(cfg)
		}
	}
}
