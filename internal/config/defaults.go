// Package config provides configuration loading and defaults for lettergrade.
package config

import (
	"time"

	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/score"
)

// DefaultConfigDir is the default location for lettergrade configuration.
const DefaultConfigDir = "~/.config/lettergrade"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix prefixes environment variable overrides, e.g.
// LETTERGRADE_MAX_INPUT_CHARS or LETTERGRADE_WEIGHTS_KEYWORDS.
const EnvPrefix = "LETTERGRADE"

// DefaultMaxInputChars caps the size of a letter accepted by the CLI.
const DefaultMaxInputChars = engine.DefaultMaxInputChars

// DefaultWeights holds the default dimension weights.
var DefaultWeights = score.DefaultWeights

// DefaultScan holds the default scan settings.
var DefaultScan = Scan{
	Extensions:  []string{".txt", ".md"},
	Concurrency: 4,
}

// DefaultWatch holds the default watch settings.
var DefaultWatch = Watch{
	Interval: 2 * time.Second,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultServe holds the default HTTP API settings.
var DefaultServe = Serve{
	Addr: "127.0.0.1:8080",
}
