// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mcvm/internal/adapters/config"
	_ "go.trai.ch/mcvm/internal/adapters/fetch"
	_ "go.trai.ch/mcvm/internal/adapters/installer"
	_ "go.trai.ch/mcvm/internal/adapters/lockfile"
	_ "go.trai.ch/mcvm/internal/adapters/logger"
	_ "go.trai.ch/mcvm/internal/adapters/prompt"
	_ "go.trai.ch/mcvm/internal/adapters/registry"
	_ "go.trai.ch/mcvm/internal/adapters/script"
	_ "go.trai.ch/mcvm/internal/adapters/settings"
	_ "go.trai.ch/mcvm/internal/adapters/telemetry"
	_ "go.trai.ch/mcvm/internal/adapters/versions"
	// Register app and engine nodes.
	_ "go.trai.ch/mcvm/internal/app"
	_ "go.trai.ch/mcvm/internal/engine/eval"
	_ "go.trai.ch/mcvm/internal/engine/resolver"
	_ "go.trai.ch/mcvm/internal/engine/updater"
)
