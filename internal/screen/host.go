// internal/screen/host.go
package screen

import (
	"go-one-button/internal/assets"
	"go-one-button/internal/config"
	"go-one-button/internal/locale"
	"go-one-button/internal/state"
	"go-one-button/internal/utils"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
)

// Host — то, что экраны могут запросить у приложения. Экран хранит
// ссылку на Host, но не владеет им и не знает о внутренностях стека.
type Host interface {
	StateStack() *state.Stack
	MakeOptionsState() state.State
	Config() config.Config
	Catalog() *locale.Catalog
	Textures() *assets.TextureManager
	Rand() *utils.PRNGService
	Logger() *log.Logger
	Face() font.Face
	Fullscreen() bool
}

// transition применяет результат Push/Replace. Ошибка возможна только
// при nil-состоянии, то есть это ошибка программиста: пишем в лог.
func transition(host Host, op string, err error) {
	if err != nil {
		host.Logger().Error("state transition rejected", "op", op, "err", err)
	}
}
