// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go-one-button/internal/app"
	"go-one-button/internal/assets"
	"go-one-button/internal/config"
	"go-one-button/internal/locale"
	"go-one-button/internal/logger"
	"go-one-button/internal/metrics"
	"go-one-button/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logger.Default().Error("game failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	l, err := logger.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	catalog, err := locale.Load(cfg.Locale)
	if err != nil {
		return fmt.Errorf("failed to load locale: %w", err)
	}
	face, err := ui.LoadFace(cfg.Window.FontSize)
	if err != nil {
		return err
	}

	frame := metrics.NewFrame()
	frame.Publish("frame")
	if cfg.Debug.Addr != "" {
		go func() {
			l.Info("debug server listening", "addr", cfg.Debug.Addr)
			if err := http.ListenAndServe(cfg.Debug.Addr, nil); err != nil && !errors.Is(err, http.ErrServerClosed) {
				l.Warn("debug server stopped", "err", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reloads, err := config.Watch(ctx, configPath, l.WithPrefix("config"))
	if err != nil {
		// Без горячей перезагрузки игра всё равно работает.
		l.Warn("config watch disabled", "err", err)
		reloads = nil
	}

	game, err := app.NewGame(app.Deps{
		Config:   cfg,
		Logger:   l,
		Catalog:  catalog,
		Textures: assets.NewTextureManager(cfg.Assets.Dir, l.WithPrefix("assets")),
		Face:     face,
		Metrics:  frame,
		Reloads:  reloads,
		Stop:     ctx.Done(),
	})
	if err != nil {
		return err
	}
	defer game.Shutdown()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	l.Info("starting", "config", filepath.Clean(configPath), "locale", cfg.Locale, "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
