// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolo configuration.
type Config struct {
	REPL REPL `yaml:"repl"`
	UI   UI   `yaml:"ui"`
	Log  Log  `yaml:"log"`
}

// REPL holds the line-mode session texts.
type REPL struct {
	Prompt   string `yaml:"prompt"`
	Greeting string `yaml:"greeting"`
}

// UI holds terminal presentation settings.
type UI struct {
	Plain bool `yaml:"plain"` // Force line mode even on a TTY.
}

// Log holds debug log settings. Logging is off when File is empty.
type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with the stock assistant texts.
func DefaultConfig() Config {
	return Config{
		REPL: REPL{
			Prompt:   "Enter a command: ",
			Greeting: "Welcome to the assistant bot!",
		},
		UI: UI{Plain: false},
		Log: Log{
			File:  "",
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	layer, err := loadLayer(path)
	if err != nil {
		return nil, err
	}
	if layer != nil {
		cfg.merge(layer)
	}
	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.REPL.Prompt == "" {
		return errors.New("config: repl.prompt cannot be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be debug, info, warn, or error, got %q", c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLO_PROMPT, ROLO_PLAIN, ROLO_LOG_FILE, ROLO_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLO_PROMPT"); v != "" {
		c.REPL.Prompt = v
	}
	if v := os.Getenv("ROLO_PLAIN"); v != "" {
		plain, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLO_PLAIN %q: %w", v, err)
		}
		c.UI.Plain = plain
	}
	if v := os.Getenv("ROLO_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("ROLO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	REPL *rawREPL `yaml:"repl"`
	UI   *rawUI   `yaml:"ui"`
	Log  *rawLog  `yaml:"log"`
}

type rawREPL struct {
	Prompt   *string `yaml:"prompt"`
	Greeting *string `yaml:"greeting"`
}

type rawUI struct {
	Plain *bool `yaml:"plain"`
}

type rawLog struct {
	File  *string `yaml:"file"`
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.REPL != nil {
		if layer.REPL.Prompt != nil {
			c.REPL.Prompt = *layer.REPL.Prompt
		}
		if layer.REPL.Greeting != nil {
			c.REPL.Greeting = *layer.REPL.Greeting
		}
	}
	if layer.UI != nil {
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
	}
	if layer.Log != nil {
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
