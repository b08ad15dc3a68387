//go:build wireinject
// +build wireinject

package di

import (
	"TVRelay/pkg/config"
	"TVRelay/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Relay pipeline
		ProvideExtractor,
		ProvideForwarder,
		ProvideRelay,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
