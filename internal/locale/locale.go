// internal/locale/locale.go
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Идентификаторы сообщений интерфейса.
const (
	LoadingTitle      = "loading_title"
	SplashCaption     = "splash_caption"
	PlayTitle         = "play_title"
	PlayScore         = "play_score"
	PlayPressMe       = "play_press_me"
	PlayOptions       = "play_options"
	OptionsTitle      = "options_title"
	OptionsFullscreen = "options_fullscreen"

	quotePrefix = "quote_"
)

//go:embed locales/*.toml
var embedded embed.FS

// Catalog выдаёт строки интерфейса на выбранном языке с откатом на английский.
type Catalog struct {
	localizer *i18n.Localizer
	quotes    []string
}

// Load загружает встроенные переводы.
func Load(lang string) (*Catalog, error) {
	return LoadFS(embedded, lang)
}

// LoadFS загружает все locales/*.toml из fsys.
func LoadFS(fsys fs.FS, lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(fsys, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no locale files found")
	}
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return nil, fmt.Errorf("load locale file %s: %w", path, err)
		}
	}

	c := &Catalog{localizer: i18n.NewLocalizer(bundle, lang, language.English.String())}
	c.quotes = c.collectQuotes()
	return c, nil
}

// Text возвращает сообщение id. Если его нет ни в одном языке, возвращает
// сам id, чтобы пропуск был виден на экране.
func (c *Catalog) Text(id string) string {
	return c.Format(id, nil)
}

// Format подставляет data в шаблон сообщения.
func (c *Catalog) Format(id string, data map[string]any) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}

// Quotes — фразы для экрана загрузки, quote_1..quote_N без пропусков.
func (c *Catalog) Quotes() []string {
	return c.quotes
}

func (c *Catalog) collectQuotes() []string {
	var quotes []string
	for i := 1; ; i++ {
		s, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: quotePrefix + strconv.Itoa(i)})
		if err != nil {
			return quotes
		}
		quotes = append(quotes, s)
	}
}
