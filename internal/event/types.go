// internal/event/types.go
package event

const (
	FullscreenToggled EventType = "FullscreenToggled" // Data: bool, новое значение
	ConfigReloaded    EventType = "ConfigReloaded"    // Data: config.Config
)
