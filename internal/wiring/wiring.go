// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shinyelectron/internal/adapters/cache"
	_ "go.trai.ch/shinyelectron/internal/adapters/cas"
	_ "go.trai.ch/shinyelectron/internal/adapters/config"
	_ "go.trai.ch/shinyelectron/internal/adapters/fs"
	_ "go.trai.ch/shinyelectron/internal/adapters/linear"
	_ "go.trai.ch/shinyelectron/internal/adapters/logger"
	_ "go.trai.ch/shinyelectron/internal/adapters/opener"
	_ "go.trai.ch/shinyelectron/internal/adapters/shell"
	_ "go.trai.ch/shinyelectron/internal/adapters/telemetry"
	_ "go.trai.ch/shinyelectron/internal/adapters/template"
	_ "go.trai.ch/shinyelectron/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/shinyelectron/internal/app"
	_ "go.trai.ch/shinyelectron/internal/engine/pipeline"
)
