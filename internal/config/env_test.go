package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("RTS_CONFIG", "/etc/rts/sim.yaml")
	t.Setenv("RTS_LOG_LEVEL", "warn")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "/etc/rts/sim.yaml", e.ConfigPath)

	c := Default()
	e.Override(c)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestEnvOverrideKeepsUnset(t *testing.T) {
	c := Default()
	Env{}.Override(c)
	assert.Equal(t, "info", c.Log.Level)
}
