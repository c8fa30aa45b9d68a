// internal/assets/texture_manager.go
package assets

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoaderFunc загружает изображение с диска.
type LoaderFunc func(path string) (*ebiten.Image, error)

type texture struct {
	img  *ebiten.Image
	refs int
}

// TextureManager управляет загрузкой, кэшированием и выгрузкой текстур.
// Текстура живёт, пока на неё есть хотя бы одна ссылка: Acquire в OnEnter
// состояния, Release в OnExit.
type TextureManager struct {
	root     string
	textures map[string]*texture
	load     LoaderFunc
	logger   *log.Logger
}

// NewTextureManager создает менеджер, читающий файлы относительно root.
func NewTextureManager(root string, logger *log.Logger) *TextureManager {
	return &TextureManager{
		root:     root,
		textures: make(map[string]*texture),
		load:     loadFromFile,
		logger:   logger,
	}
}

// WithLoader подменяет загрузчик (в тестах — без GPU).
func (m *TextureManager) WithLoader(load LoaderFunc) *TextureManager {
	m.load = load
	return m
}

func loadFromFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

// Acquire возвращает текстуру по относительному пути, загружая её при
// первом обращении, и увеличивает счётчик ссылок.
func (m *TextureManager) Acquire(name string) (*ebiten.Image, error) {
	if t, ok := m.textures[name]; ok {
		t.refs++
		return t.img, nil
	}

	path := filepath.Join(m.root, name)
	img, err := m.load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	m.textures[name] = &texture{img: img, refs: 1}
	m.logger.Debug("texture loaded", "path", path)
	return img, nil
}

// Release уменьшает счётчик ссылок и выгружает текстуру, когда он
// доходит до нуля. Лишний Release игнорируется.
func (m *TextureManager) Release(name string) {
	t, ok := m.textures[name]
	if !ok {
		m.logger.Warn("release of unknown texture", "name", name)
		return
	}
	t.refs--
	if t.refs > 0 {
		return
	}
	if t.img != nil {
		t.img.Deallocate()
	}
	delete(m.textures, name)
	m.logger.Debug("texture unloaded", "name", name)
}

// Refs — текущее число ссылок на текстуру.
func (m *TextureManager) Refs(name string) int {
	if t, ok := m.textures[name]; ok {
		return t.refs
	}
	return 0
}

// Close выгружает всё, что осталось, независимо от счётчиков.
func (m *TextureManager) Close() {
	for name, t := range m.textures {
		if t.img != nil {
			t.img.Deallocate()
		}
		delete(m.textures, name)
	}
	m.logger.Debug("all textures unloaded")
}
