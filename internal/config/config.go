// Package config loads server configuration from a YAML file with
// environment-variable overrides (prefix MONOPOLY_).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/openmonopoly/monopoly-server-go/internal/game"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Game     GameConfig     `mapstructure:"game"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig controls the WebSocket game server.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxGames        int           `mapstructure:"max_games"`
}

// DatabaseConfig controls the optional event-history store. An empty URL
// disables persistence.
type DatabaseConfig struct {
	URL              string        `mapstructure:"url"`
	MaxConns         int32         `mapstructure:"max_conns"`
	ConnectTimeout   time.Duration `mapstructure:"connect_timeout"`
	StatementTimeout time.Duration `mapstructure:"statement_timeout"`
}

// GameConfig carries the rules parameters for new games.
type GameConfig struct {
	StartingCash     int     `mapstructure:"starting_cash"`
	GoSalary         int     `mapstructure:"go_salary"`
	JailFine         int     `mapstructure:"jail_fine"`
	MortgageFeeRate  float64 `mapstructure:"mortgage_fee_rate"`
	HouseSupply      int     `mapstructure:"house_supply"`
	HotelSupply      int     `mapstructure:"hotel_supply"`
	MaxJailTurns     int     `mapstructure:"max_jail_turns"`
	MaxBidsPerPlayer int     `mapstructure:"max_bids_per_player"`
	TimeLimitTurns   int     `mapstructure:"time_limit_turns"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from path. A missing file is not an error;
// defaults and environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_games", 100)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("database.statement_timeout", 10*time.Second)

	defaults := game.DefaultOptions()
	v.SetDefault("game.starting_cash", defaults.StartingCash)
	v.SetDefault("game.go_salary", defaults.GoSalary)
	v.SetDefault("game.jail_fine", defaults.JailFine)
	v.SetDefault("game.mortgage_fee_rate", defaults.MortgageFeeRate)
	v.SetDefault("game.house_supply", defaults.HouseSupply)
	v.SetDefault("game.hotel_supply", defaults.HotelSupply)
	v.SetDefault("game.max_jail_turns", defaults.MaxJailTurns)
	v.SetDefault("game.max_bids_per_player", defaults.MaxBidsPerPlayer)
	v.SetDefault("game.time_limit_turns", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvPrefix("MONOPOLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		// A malformed file is an error; a missing one is not.
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// ToOptions converts the game section into engine options.
func (c GameConfig) ToOptions() game.Options {
	return game.Options{
		StartingCash:     c.StartingCash,
		GoSalary:         c.GoSalary,
		JailFine:         c.JailFine,
		MortgageFeeRate:  c.MortgageFeeRate,
		HouseSupply:      c.HouseSupply,
		HotelSupply:      c.HotelSupply,
		MaxJailTurns:     c.MaxJailTurns,
		MaxBidsPerPlayer: c.MaxBidsPerPlayer,
		TimeLimitTurns:   c.TimeLimitTurns,
	}
}
