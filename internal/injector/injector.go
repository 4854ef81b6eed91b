//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/rts/internal/config"
	"github.com/zeusync/rts/internal/sim"
)

func InitializeEngine(cfg *config.Config) (*sim.Engine, error) {
	wire.Build(ProviderSet, sim.New)
	return nil, nil
}
