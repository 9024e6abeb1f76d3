// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/JakWdo/Symulacja-sub006/internal/adapters/api"
	_ "github.com/JakWdo/Symulacja-sub006/internal/adapters/config"
	_ "github.com/JakWdo/Symulacja-sub006/internal/adapters/logger"
	_ "github.com/JakWdo/Symulacja-sub006/internal/adapters/redirect"
	_ "github.com/JakWdo/Symulacja-sub006/internal/adapters/stream"
	_ "github.com/JakWdo/Symulacja-sub006/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/JakWdo/Symulacja-sub006/internal/app"
	_ "github.com/JakWdo/Symulacja-sub006/internal/engine/cache"
	_ "github.com/JakWdo/Symulacja-sub006/internal/engine/coordinator"
	_ "github.com/JakWdo/Symulacja-sub006/internal/engine/tracker"
)
