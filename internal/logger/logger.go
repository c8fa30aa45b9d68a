// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const prefix = "Game 🏖️ "

var (
	once      sync.Once
	singleton *log.Logger
)

// New создаёт логгер с указанным уровнем ("debug", "info", "warn", "error").
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
	})
	l.SetLevel(lvl)
	return l, nil
}

// Default — общий логгер процесса в stderr. Используется до того, как
// прочитана конфигурация.
func Default() *log.Logger {
	once.Do(func() {
		singleton, _ = New(os.Stderr, "info")
	})
	return singleton
}

// ParseLevel принимает также "warning".
func ParseLevel(level string) (log.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", level, err)
	}
	return lvl, nil
}
