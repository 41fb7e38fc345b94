package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// Logging defaults
	ConstantLogDir      = "/var/log"
	ConstantLogFilename = "heatgrid.log"
	ConstantLogFile     = ConstantLogDir + "/" + ConstantLogFilename

	ConstantConfigFilename = "/etc/default/heatgrid"

	// Service defaults
	DefaultServiceHost         = "127.0.0.1"
	DefaultServicePort         = 8316
	DefaultInsecureAllowRemote = false

	// logger
	DefaultLogLevel = "info"

	// Panel defaults
	DefaultWidth           = 800
	DefaultHeight          = 400
	DefaultDirection       = "bottomToTop"
	DefaultToggleColor     = true
	DefaultRemoveEmptyCols = true
	DefaultBackground      = "#ffffff"
	DefaultCellPadding     = 0.05
)

type Config struct {
	ServiceHost         string
	ServicePort         int
	InsecureAllowRemote bool
	LogLevel            string
	LogFile             string
	DataFile            string

	Width           int
	Height          int
	Direction       string
	ToggleColor     bool
	RemoveEmptyCols bool
	Background      string
	CellPadding     float64
}

func (c *Config) Validate() error {
	if !isLocalhostAddr(c.ServiceHost) {
		if !c.InsecureAllowRemote {
			return fmt.Errorf(`binding to non-localhost address %q exposes an unauthenticated API.

This service has no authentication. Binding to a network-accessible address
allows any host on the network to read the served panel data.

If you understand the risks and want to proceed anyway, use:
    --insecure-allow-remote
    or set HG_INSECURE_ALLOW_REMOTE=true`, c.ServiceHost)
		}
		fmt.Fprintf(os.Stderr, "WARNING: Binding to %q - unauthenticated API will be network-accessible!\n", c.ServiceHost)
	}
	if c.CellPadding < 0 || c.CellPadding >= 1 {
		return fmt.Errorf("cell padding %v out of range [0, 1)", c.CellPadding)
	}
	return nil
}

func isLocalhostAddr(host string) bool {
	switch host {
	case "127.0.0.1", "localhost", "::1", "":
		return true
	}
	return false
}

func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		ServiceHost:         getEnv("HG_HOST", DefaultServiceHost),
		ServicePort:         getEnvInt("HG_PORT", DefaultServicePort),
		InsecureAllowRemote: getEnvBool("HG_INSECURE_ALLOW_REMOTE", DefaultInsecureAllowRemote),
		LogLevel:            getEnv("HG_LOG_LEVEL", DefaultLogLevel),
		LogFile:             getEnv("HG_LOG_FILE", ConstantLogFile),
		DataFile:            getEnv("HG_DATA_FILE", ""),
		Width:               getEnvInt("HG_WIDTH", DefaultWidth),
		Height:              getEnvInt("HG_HEIGHT", DefaultHeight),
		Direction:           getEnv("HG_DIRECTION", DefaultDirection),
		ToggleColor:         getEnvBool("HG_TOGGLE_COLOR", DefaultToggleColor),
		RemoveEmptyCols:     getEnvBool("HG_REMOVE_EMPTY_COLS", DefaultRemoveEmptyCols),
		Background:          getEnv("HG_BACKGROUND", DefaultBackground),
		CellPadding:         getEnvFloat("HG_CELL_PADDING", DefaultCellPadding),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
