package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdemtable-server/internal/util"
)

// Config provides configuration for the hold'em table server
type Config struct {
	loaded bool

	// PlayerStorePath is the sqlite database for player bankrolls.
	// When empty, bankrolls live in memory only.
	PlayerStorePath string `yaml:"playerStorePath" envconfig:"player_store_path"`
	DefaultBankroll int    `yaml:"defaultBankroll" envconfig:"default_bankroll"`

	Table struct {
		PlayersLimit int `yaml:"playersLimit" envconfig:"players_limit"`
		SmallBlind   int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind     int `yaml:"bigBlind" envconfig:"big_blind"`
		Ante         int `yaml:"ante" envconfig:"ante"`
	}

	Log struct {
		Level             string `yaml:"level" envconfig:"log_level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

var config Config

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

// Load will load the configuration. A missing config file is not an error;
// the environment alone can configure the server.
func Load() error {
	config = Config{}

	configFile := util.Getenv("HT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("ht", &config); err != nil {
		return err
	}

	if config.DefaultBankroll <= 0 {
		config.DefaultBankroll = 1000
	}

	config.loaded = true
	return nil
}
