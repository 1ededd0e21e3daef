package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"thegang-server/internal/util"
)

// Config provides configuration for The Gang server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log" envconfig:"log"`
	Heartbeat struct {
		PongWait  time.Duration `yaml:"pongWait" envconfig:"pong_wait"`
		WriteWait time.Duration `yaml:"writeWait" envconfig:"write_wait"`
	} `yaml:"heartbeat" envconfig:"heartbeat"`
	Room struct {
		ReconnectGrace  time.Duration `yaml:"reconnectGrace" envconfig:"reconnect_grace"`
		StaleAfter      time.Duration `yaml:"staleAfter" envconfig:"stale_after"`
		CleanupInterval time.Duration `yaml:"cleanupInterval" envconfig:"cleanup_interval"`
	} `yaml:"room" envconfig:"room"`
	Dev bool `yaml:"dev" envconfig:"dev"`
}

var config Config

// DefaultConfig returns the configuration used for anything not set
func DefaultConfig() Config {
	var c Config
	c.Addr = ":5000"
	c.Log.Level = "info"
	c.Heartbeat.PongWait = 60 * time.Second
	c.Heartbeat.WriteWait = 10 * time.Second
	c.Room.ReconnectGrace = 30 * time.Second
	c.Room.StaleAfter = 10 * time.Minute
	c.Room.CleanupInterval = time.Minute

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults and environment are used instead
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("THEGANG_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("thegang", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}
