package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "BAGCTL_LOG_LEVEL", "BAGCTL_LOG_FILE", "BAGCTL_INVENTORY_SIZE", "BAGCTL_MAX_STACK")

	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 36, c.InventorySize)
	assert.Equal(t, 64, c.MaxStack)
	assert.Equal(t, "info", c.LogLevel)
}

// unsetEnv clears keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // registers restore on cleanup
		os.Unsetenv(k)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("BAGCTL_LOG_LEVEL", "debug")
	t.Setenv("BAGCTL_INVENTORY_SIZE", "27")
	t.Setenv("BAGCTL_MAX_STACK", "16")

	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 27, c.InventorySize)
	assert.Equal(t, 16, c.MaxStack)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("BAGCTL_INVENTORY_SIZE", "many")
	_, err := loadConfig()
	require.ErrorContains(t, err, "parse env")

	t.Setenv("BAGCTL_INVENTORY_SIZE", "0")
	_, err = loadConfig()
	require.ErrorContains(t, err, "must be positive")
}
