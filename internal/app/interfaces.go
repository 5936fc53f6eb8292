package app

import (
	"github.com/asaskevich/EventBus"

	"github.com/coachdesk/coachdesk/config"
	"github.com/coachdesk/coachdesk/internal/storage"
)

// StorageProvider provides storage engine access
type StorageProvider interface {
	Store() storage.Storage
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	StorageProvider
	ConfigProvider
	BusProvider
}
