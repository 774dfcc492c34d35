package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	// No config file in the test working directory; defaults apply.
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "release", cfg.Mode)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, int64(32768), cfg.ReadLimit)
	require.NotZero(t, cfg.PingPeriod)
}
