// internal/config/watch.go
package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch следит за файлом конфигурации и отправляет в канал каждую
// успешно перечитанную версию. Канал закрывается после отмены ctx.
//
// Канал читается из горутины игрового цикла; если хост не успел забрать
// предыдущую версию, она заменяется более свежей.
func Watch(ctx context.Context, path string, logger *log.Logger) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	// Следим за каталогом: редакторы часто сохраняют файл через rename.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	out := make(chan Config, 1)
	target := filepath.Clean(path)

	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logger.Warn("config reload rejected", "path", path, "err", err)
					continue
				}
				logger.Info("config reloaded", "path", path)
				offer(out, cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "err", err)
			}
		}
	}()

	return out, nil
}

// offer кладёт cfg в буферизованный канал, вытесняя непрочитанное значение.
func offer(out chan Config, cfg Config) {
	for {
		select {
		case out <- cfg:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
