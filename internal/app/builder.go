package app

import (
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/config"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *config.Config
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, cfg *config.Config) *Components {
	return &Components{
		App:    app,
		Logger: logger,
		Config: cfg,
	}
}
