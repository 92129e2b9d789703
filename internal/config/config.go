package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// this is a pointer so that if someone attempts to use it before loading it will
// panic and force them to load it first.
// it is also private so that it cannot be modified after loading.
var _loaded *Config

// Config is the main configuration structure
type Config struct {
	Common Common `yaml:"common"`
}

// Load loads the configuration following proper precedence: defaults → config file → environment variables
func Load() {
	// Start with defaults
	_loaded = &defaultConfig

	// Try to load from config file and merge over defaults
	configFile := os.Getenv("RMSTACK_CONFIG_FILE")
	if configFile == "" {
		configFile = "rmstack.yaml"
	}

	if err := LoadFromFile(configFile); err != nil {
		log.Printf("Failed to load config file: %v, using defaults", err)
	}

	// Apply environment variable overrides (highest priority)
	ApplyEnvOverrides()
}

func LoadDefault() {
	config := defaultConfig
	_loaded = &config
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := defaultConfig

	// Merge YAML values over defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	_loaded = &cfg
	return nil
}

// ApplyEnvOverrides overrides loaded values from environment variables
func ApplyEnvOverrides() {
	if httpHost := os.Getenv("RMSTACK_HTTP_HOST"); httpHost != "" {
		_loaded.Common.Http.Host = httpHost
	}
	if httpPort := os.Getenv("RMSTACK_HTTP_PORT"); httpPort != "" {
		if port, err := strconv.Atoi(httpPort); err == nil {
			_loaded.Common.Http.Port = port
		}
	}
	if dbPath := os.Getenv("RMSTACK_SQLITE_PATH"); dbPath != "" {
		_loaded.Common.Sqlite.Path = dbPath
	}
	if logLevel := os.Getenv("RMSTACK_LOG_LEVEL"); logLevel != "" {
		_loaded.Common.Log.Level = logLevel
	}
	if logFormat := os.Getenv("RMSTACK_LOG_FORMAT"); logFormat != "" {
		_loaded.Common.Log.Format = logFormat
	}
}

// set sane defaults for all of the config options. when loading the config from
// the file, any options that are not set will be set to these defaults.
var defaultConfig = Config{
	Common: Common{
		Log: logConfig{
			Level:  "info",
			Format: "console",
		},
		Http: httpConfig{
			Host:           "0.0.0.0",
			Port:           3000,
			MaxRequestSize: 5242880,
		},
		Sqlite: sqliteConfig{
			Path: "data/app.db",
		},
	},
}

type Common struct {
	Log    logConfig    `yaml:"log"`
	Http   httpConfig   `yaml:"http"`
	Sqlite sqliteConfig `yaml:"sqlite"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type httpConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxRequestSize int64  `yaml:"max_request_size"`
}

type sqliteConfig struct {
	Path string `yaml:"path"`
}

// DSN returns the driver connection string for the configured database file.
func (c sqliteConfig) DSN() string {
	return fmt.Sprintf("file:%s?cache=shared", c.Path)
}

// Get returns the loaded configuration
func Get() *Config {
	return _loaded
}

// Logger returns the log section of the loaded configuration
func Logger() logConfig {
	return _loaded.Common.Log
}

// Http returns the http section of the loaded configuration
func Http() httpConfig {
	return _loaded.Common.Http
}

// Sqlite returns the sqlite section of the loaded configuration
func Sqlite() sqliteConfig {
	return _loaded.Common.Sqlite
}
