// Copyright © 2023 The Gomon Project.

package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Procfs:   "/proc",
		Root:     0,
		Workers:  runtime.NumCPU(),
		LogLevel: "warning",
	}, cfg)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("PROCTREE_PROCFS", "/host/proc")
	t.Setenv("PROCTREE_ROOT", "1")
	t.Setenv("PROCTREE_WORKERS", "3")
	t.Setenv("PROCTREE_LOGLEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Procfs:   "/host/proc",
		Root:     1,
		Workers:  3,
		LogLevel: "debug",
	}, cfg)
}
