package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Test loading with defaults (no env vars set)
	cfg := Load("")

	assert.Equal(t, DefaultServiceHost, cfg.ServiceHost)
	assert.Equal(t, DefaultServicePort, cfg.ServicePort)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, ConstantLogFile, cfg.LogFile)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Equal(t, DefaultDirection, cfg.Direction)
	assert.Equal(t, DefaultToggleColor, cfg.ToggleColor)
	assert.Equal(t, DefaultRemoveEmptyCols, cfg.RemoveEmptyCols)
	assert.Equal(t, DefaultBackground, cfg.Background)
	assert.Equal(t, DefaultCellPadding, cfg.CellPadding)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HG_PORT", "9000")
	t.Setenv("HG_DIRECTION", "topToBottom")
	t.Setenv("HG_TOGGLE_COLOR", "false")
	t.Setenv("HG_CELL_PADDING", "0.1")
	t.Setenv("HG_DATA_FILE", "/tmp/data.csv")

	cfg := Load("")

	assert.Equal(t, 9000, cfg.ServicePort)
	assert.Equal(t, "topToBottom", cfg.Direction)
	assert.False(t, cfg.ToggleColor)
	assert.Equal(t, 0.1, cfg.CellPadding)
	assert.Equal(t, "/tmp/data.csv", cfg.DataFile)
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("HG_PORT", "not-a-port")
	t.Setenv("HG_TOGGLE_COLOR", "maybe")
	t.Setenv("HG_CELL_PADDING", "wide")

	cfg := Load("")

	assert.Equal(t, DefaultServicePort, cfg.ServicePort)
	assert.Equal(t, DefaultToggleColor, cfg.ToggleColor)
	assert.Equal(t, DefaultCellPadding, cfg.CellPadding)
}

func TestIsLocalhostAddr(t *testing.T) {
	tests := []struct {
		host     string
		expected bool
	}{
		// Localhost addresses
		{"127.0.0.1", true},
		{"localhost", true},
		{"::1", true},
		{"", true},

		// Non-localhost addresses
		{"0.0.0.0", false},
		{"192.168.1.1", false},
		{"example.com", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, isLocalhostAddr(tt.host), tt.host)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load("")
	assert.NoError(t, cfg.Validate())

	cfg.ServiceHost = "0.0.0.0"
	err := cfg.Validate()
	assert.ErrorContains(t, err, "non-localhost")

	cfg.InsecureAllowRemote = true
	assert.NoError(t, cfg.Validate())

	cfg = Load("")
	cfg.CellPadding = 1.5
	assert.ErrorContains(t, cfg.Validate(), "cell padding")

	cfg.CellPadding = -0.1
	assert.Error(t, cfg.Validate())
}
