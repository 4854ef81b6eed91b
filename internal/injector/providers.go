package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/rts/internal/config"
	"github.com/zeusync/rts/internal/core/observability/log"
	"github.com/zeusync/rts/internal/core/unittype"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideRegistry,
	wire.Bind(new(log.Log), new(*log.Logger)),
)

// ProvideLogger builds the process logger at the configured level.
func ProvideLogger(cfg *config.Config) *log.Logger {
	level, _ := log.ParseLevel(cfg.Log.Level)
	return log.New(level)
}

// ProvideRegistry returns a registry holding the built-in types.
func ProvideRegistry() (*unittype.Registry, error) {
	reg := unittype.NewRegistry()
	if err := unittype.RegisterBuiltins(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
