// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	// Позиция и размер окна при выходе из полноэкранного режима
	WindowedPosX = 100
	WindowedPosY = 100

	FontSize = 18.0

	LoadingDuration = 4.0
	QuoteInterval   = 2.0
	SplashDuration  = 3.0

	SplashImageSize = 400
	PanelWidth      = 200
	PanelHeight     = 200
	PanelPadding    = 10
	ButtonHeight    = 28
	OptionsOffsetX  = 200 // Окно настроек смещено вправо от игрового
)

var (
	BackgroundColor = color.RGBA{26, 31, 38, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{140, 140, 150, 255}
	PanelColor      = color.RGBA{20, 20, 30, 230}
	PanelBorder     = color.RGBA{70, 100, 120, 255}
	TitleBarColor   = color.RGBA{40, 60, 90, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 240}
	ButtonDisabled  = color.RGBA{60, 60, 70, 200}
	CheckColor      = color.RGBA{240, 240, 240, 255}
)

// Config — настройки, которые можно поменять без пересборки.
// Значения по умолчанию берутся из констант выше, поверх них
// накладывается TOML-файл, затем переменные окружения ONEBUTTON_*.
type Config struct {
	Window WindowConfig `toml:"window"`
	Timing TimingConfig `toml:"timing"`
	Log    LogConfig    `toml:"log"`
	Assets AssetsConfig `toml:"assets"`
	Debug  DebugConfig  `toml:"debug"`
	Locale string       `toml:"locale" env:"ONEBUTTON_LOCALE"`
	Seed   int64        `toml:"seed" env:"ONEBUTTON_SEED"` // 0 — от текущего времени
}

type WindowConfig struct {
	Title      string  `toml:"title" env:"ONEBUTTON_WINDOW_TITLE"`
	Width      int     `toml:"width" env:"ONEBUTTON_WINDOW_WIDTH"`
	Height     int     `toml:"height" env:"ONEBUTTON_WINDOW_HEIGHT"`
	Fullscreen bool    `toml:"fullscreen" env:"ONEBUTTON_FULLSCREEN"`
	FontSize   float64 `toml:"font_size" env:"ONEBUTTON_FONT_SIZE"`
}

// TimingConfig — длительности в секундах.
type TimingConfig struct {
	MaxDeltaTime    float64 `toml:"max_delta_time" env:"ONEBUTTON_MAX_DELTA_TIME"`
	LoadingDuration float64 `toml:"loading_duration" env:"ONEBUTTON_LOADING_DURATION"`
	QuoteInterval   float64 `toml:"quote_interval" env:"ONEBUTTON_QUOTE_INTERVAL"`
	SplashDuration  float64 `toml:"splash_duration" env:"ONEBUTTON_SPLASH_DURATION"`
}

type LogConfig struct {
	Level string `toml:"level" env:"ONEBUTTON_LOG_LEVEL"`
}

type AssetsConfig struct {
	Dir         string `toml:"dir" env:"ONEBUTTON_ASSETS_DIR"`
	SplashImage string `toml:"splash_image" env:"ONEBUTTON_SPLASH_IMAGE"`
}

type DebugConfig struct {
	Addr string `toml:"addr" env:"ONEBUTTON_DEBUG_ADDR"` // пусто — сервер pprof/expvar не запускается
}

// Default возвращает конфигурацию из констант.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:    "One button adventure",
			Width:    ScreenWidth,
			Height:   ScreenHeight,
			FontSize: FontSize,
		},
		Timing: TimingConfig{
			MaxDeltaTime:    MaxDeltaTime,
			LoadingDuration: LoadingDuration,
			QuoteInterval:   QuoteInterval,
			SplashDuration:  SplashDuration,
		},
		Log:    LogConfig{Level: "info"},
		Assets: AssetsConfig{Dir: "assets", SplashImage: "textures/man_on_a_beach_logo.png"},
		Debug:  DebugConfig{Addr: "localhost:6060"},
		Locale: "en",
	}
}

// Load читает конфигурацию. Отсутствующий файл не ошибка: остаются
// значения по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет значения после слияния всех источников.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size must be positive, got %v", c.Window.FontSize))
	}
	if c.Timing.MaxDeltaTime <= 0 {
		errs = append(errs, fmt.Errorf("max_delta_time must be positive, got %v", c.Timing.MaxDeltaTime))
	}
	if c.Timing.LoadingDuration < 0 || c.Timing.SplashDuration < 0 {
		errs = append(errs, errors.New("screen durations must not be negative"))
	}
	if c.Timing.QuoteInterval <= 0 {
		errs = append(errs, fmt.Errorf("quote_interval must be positive, got %v", c.Timing.QuoteInterval))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
