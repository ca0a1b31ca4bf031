package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

const envPrefix = "CS2INSPECT_"

var formats = []string{"json", "yaml", "msgpack", "cbor"}

// Config is the program configuration. Values are layered: defaults, the
// TOML file, CS2INSPECT_* environment variables, then flags.
type Config struct {
	Catalog  string       `toml:"catalog"`
	Format   string       `toml:"format"`
	LogLevel string       `toml:"log_level"`
	InfluxDB InfluxConfig `toml:"influxdb"`
}

// InfluxConfig enables operation metrics when Host is set.
type InfluxConfig struct {
	Host   string `toml:"host"`
	Key    string `toml:"key"`
	Org    string `toml:"org"`
	Bucket string `toml:"bucket"`
}

func defaultConfig() Config {
	return Config{
		Format:   "json",
		LogLevel: "info",
		InfluxDB: InfluxConfig{Bucket: "inspect"},
	}
}

// loadConfig reads the optional TOML file at path and applies environment
// overrides through lookup.
func loadConfig(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config load failed (%s): %w", path, err)
		}
	}

	for key, dst := range map[string]*string{
		"CATALOG":         &cfg.Catalog,
		"FORMAT":          &cfg.Format,
		"LOG_LEVEL":       &cfg.LogLevel,
		"INFLUXDB_HOST":   &cfg.InfluxDB.Host,
		"INFLUXDB_KEY":    &cfg.InfluxDB.Key,
		"INFLUXDB_ORG":    &cfg.InfluxDB.Org,
		"INFLUXDB_BUCKET": &cfg.InfluxDB.Bucket,
	} {
		if v, ok := lookup(envPrefix + key); ok {
			*dst = v
		}
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Catalog == "" {
		return errors.New("catalog path is required")
	}

	c.Format = strings.ToLower(c.Format)
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown output format %q, want one of %s", c.Format, strings.Join(formats, ", "))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if c.InfluxDB.Host != "" && c.InfluxDB.Org == "" {
		return errors.New("influxdb org is required when a host is set")
	}

	return nil
}
